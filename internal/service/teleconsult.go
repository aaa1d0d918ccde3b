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

// StartTeleconsultation moves a confirmed appointment to in_session, opens
// the single active call, seeds the system chat line and starts the
// call-duration timer.
func (p *Portal) StartTeleconsultation(ctx context.Context, appointmentID string) error {
	l := logging.FromContext(ctx).With("svc", "teleconsult.start")

	if err := p.simulate(ctx, 500*time.Millisecond); err != nil {
		return err
	}

	err := p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		if snap.ActiveSession != nil {
			return nil, fmt.Errorf("%w: a consultation is already in progress", ErrConflict)
		}
		apt, ok := state.AppointmentByID(snap, appointmentID)
		if !ok {
			return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, appointmentID)
		}
		if apt.Status != domain.AppointmentConfirmed {
			return nil, fmt.Errorf("%w: appointment is %s", ErrConflict, apt.Status)
		}

		now := p.IDs.Now()
		status := domain.AppointmentInSession

		return []state.Action{
			state.UpdateAppointment{ID: appointmentID, Patch: state.AppointmentPatch{
				Status:           &status,
				SessionStartedAt: &now,
			}},
			state.StartSession{Session: domain.TeleconsultSession{
				AppointmentID: appointmentID,
				DoctorID:      apt.DoctorID,
				PatientID:     apt.PatientID,
				StartedAt:     now,
			}},
		}, nil
	})
	if err != nil {
		l.Warn("start_error", "reason", err.Error())
		return err
	}

	p.resetCall([]domain.ChatMessage{{
		ID:     "msg_1",
		Sender: "system",
		Text:   "Doctor has joined the consultation",
		Time:   p.IDs.Now(),
	}})
	p.startCallTimer()

	l.Info("session_started", "appointment_id", appointmentID)
	p.publish(ctx, events.TopicAppointment, appointmentID, map[string]any{"event": "session_started"})
	return nil
}

// EndTeleconsultation completes the appointment with the recorded duration,
// closes the session and clears the conversation.
func (p *Portal) EndTeleconsultation(ctx context.Context) error {
	l := logging.FromContext(ctx).With("svc", "teleconsult.end")

	duration := p.CallSeconds()
	var appointmentID string

	err := p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		if snap.ActiveSession == nil {
			return nil, fmt.Errorf("%w: no active consultation", ErrValidation)
		}
		appointmentID = snap.ActiveSession.AppointmentID

		now := p.IDs.Now()
		status := domain.AppointmentCompleted

		return []state.Action{
			state.UpdateAppointment{ID: appointmentID, Patch: state.AppointmentPatch{
				Status:          &status,
				CompletedAt:     &now,
				DurationSeconds: &duration,
			}},
			state.EndSession{EndedAt: now, DurationSeconds: duration},
		}, nil
	})
	if err != nil {
		l.Warn("end_error", "reason", err.Error())
		return err
	}

	p.stopCallTimer()
	p.resetCall(nil)

	l.Info("session_completed", "appointment_id", appointmentID, "duration_s", duration)
	p.publish(ctx, events.TopicAppointment, appointmentID, map[string]any{
		"event":      "session_completed",
		"duration_s": duration,
	})
	return nil
}

// SendChatMessage appends a patient message to the live conversation. A
// canned doctor reply follows shortly; the conversation is ephemeral and
// never enters the snapshot.
func (p *Portal) SendChatMessage(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("%w: empty message", ErrValidation)
	}
	if p.Store.View().ActiveSession == nil {
		return fmt.Errorf("%w: no active consultation", ErrValidation)
	}

	p.call.mu.Lock()
	p.call.chat = append(p.call.chat, domain.ChatMessage{
		ID:     p.IDs.EntityID("msg"),
		Sender: "patient",
		Text:   text,
		Time:   p.IDs.Now(),
	})
	p.call.mu.Unlock()

	time.AfterFunc(2*time.Second, func() {
		if p.Store.View().ActiveSession == nil {
			return
		}
		p.call.mu.Lock()
		p.call.chat = append(p.call.chat, domain.ChatMessage{
			ID:     p.IDs.EntityID("msg"),
			Sender: "doctor",
			Text:   "Thank you for sharing that. Continue with your prescribed medication.",
			Time:   p.IDs.Now(),
		})
		p.call.mu.Unlock()
	})
	return nil
}

func (p *Portal) ChatMessages() []domain.ChatMessage {
	p.call.mu.Lock()
	defer p.call.mu.Unlock()
	out := make([]domain.ChatMessage, len(p.call.chat))
	copy(out, p.call.chat)
	return out
}

func (p *Portal) CallSeconds() int {
	p.call.mu.Lock()
	defer p.call.mu.Unlock()
	return p.call.seconds
}

func (p *Portal) resetCall(chat []domain.ChatMessage) {
	p.call.mu.Lock()
	defer p.call.mu.Unlock()
	p.call.seconds = 0
	p.call.chat = chat
}

// startCallTimer runs the repeating one-second tick that feeds the recorded
// call duration. It is cancelled exactly when the session ends.
func (p *Portal) startCallTimer() {
	p.call.mu.Lock()
	defer p.call.mu.Unlock()
	if p.call.stop != nil {
		close(p.call.stop)
	}
	stop := make(chan struct{})
	p.call.stop = stop

	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				p.call.mu.Lock()
				p.call.seconds++
				p.call.mu.Unlock()
			case <-stop:
				return
			}
		}
	}()
}

func (p *Portal) stopCallTimer() {
	p.call.mu.Lock()
	defer p.call.mu.Unlock()
	if p.call.stop != nil {
		close(p.call.stop)
		p.call.stop = nil
	}
}
