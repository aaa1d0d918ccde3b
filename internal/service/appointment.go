package service

import (
	"context"
	"fmt"
	"time"

	"github.com/medicore/portal/internal/domain"
	"github.com/medicore/portal/internal/events"
	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/pkg/logging"
)

// BookAppointment requires a doctor, a date and a slot. On success it
// creates a confirmed appointment at the doctor's current fee and notifies
// the patient.
func (p *Portal) BookAppointment(ctx context.Context, doctorID, date, timeSlot string) (*domain.Appointment, error) {
	l := logging.FromContext(ctx).With("svc", "appointment.book")

	if doctorID == "" || date == "" || timeSlot == "" {
		return nil, fmt.Errorf("%w: please select all fields", ErrValidation)
	}

	if err := p.simulate(ctx, 1200*time.Millisecond); err != nil {
		return nil, err
	}

	var apt domain.Appointment
	err := p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		if snap.User == nil {
			return nil, fmt.Errorf("%w: not signed in", ErrValidation)
		}
		doctor, ok := state.DoctorByID(snap, doctorID)
		if !ok {
			return nil, fmt.Errorf("%w: doctor %s", ErrNotFound, doctorID)
		}

		apt = domain.Appointment{
			ID:          p.IDs.EntityID("apt"),
			DoctorID:    doctor.ID,
			DoctorName:  doctor.Name,
			Specialty:   doctor.Specialty,
			PatientID:   snap.User.ID,
			PatientName: snap.User.Name,
			Date:        date,
			TimeSlot:    timeSlot,
			Fee:         doctor.Fee,
			Status:      domain.AppointmentConfirmed,
			CreatedAt:   p.IDs.Now(),
		}

		return []state.Action{
			state.AddAppointment{Appointment: apt},
			p.notification("Appointment Booked",
				fmt.Sprintf("With %s at %s", doctor.Name, timeSlot),
				domain.NotificationAppointment),
		}, nil
	})
	if err != nil {
		l.Warn("book_error", "reason", err.Error())
		return nil, err
	}

	l.Info("booked", "appointment_id", apt.ID, "doctor_id", doctorID)
	p.publish(ctx, events.TopicAppointment, apt.ID, map[string]any{
		"event":     "booked",
		"doctor_id": doctorID,
		"date":      date,
		"time_slot": timeSlot,
	})
	return &apt, nil
}

// CancelAppointment moves a confirmed appointment to cancelled and emits
// the refund notification. Cancelling a completed or already-cancelled
// appointment leaves the snapshot untouched.
func (p *Portal) CancelAppointment(ctx context.Context, appointmentID string) error {
	l := logging.FromContext(ctx).With("svc", "appointment.cancel")

	if err := p.simulate(ctx, 800*time.Millisecond); err != nil {
		return err
	}

	cancelled := false
	err := p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		apt, ok := state.AppointmentByID(snap, appointmentID)
		if !ok {
			return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, appointmentID)
		}
		if apt.Status != domain.AppointmentConfirmed {
			// No transition out of completed, cancelled or in_session.
			return nil, nil
		}

		now := p.IDs.Now()
		status := domain.AppointmentCancelled
		reason := "Patient requested"
		cancelled = true

		return []state.Action{
			state.UpdateAppointment{ID: appointmentID, Patch: state.AppointmentPatch{
				Status:             &status,
				CancelledAt:        &now,
				CancellationReason: &reason,
			}},
			p.notification("Appointment Cancelled",
				fmt.Sprintf("Refund of ₹%d initiated", apt.Fee),
				domain.NotificationAppointment),
		}, nil
	})
	if err != nil {
		l.Warn("cancel_error", "reason", err.Error())
		return err
	}

	if cancelled {
		l.Info("cancelled", "appointment_id", appointmentID)
		p.publish(ctx, events.TopicAppointment, appointmentID, map[string]any{"event": "cancelled"})
	}
	return nil
}
