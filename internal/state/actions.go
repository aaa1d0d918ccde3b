package state

import (
	"time"

	"github.com/medicore/portal/internal/domain"
)

// Action describes one intended state change. The set of variants is closed:
// the reducer type-switches over it and treats anything else as a no-op.
type Action interface {
	isAction()
}

type Login struct {
	User    domain.User
	Session domain.Session
}

type Logout struct{}

// UpdateProfile shallow-merges the set fields into the current user.
type UpdateProfile struct {
	Name   *string
	Email  *string
	Mobile *string
}

type AddAppointment struct {
	Appointment domain.Appointment
}

type UpdateAppointment struct {
	ID    string
	Patch AppointmentPatch
}

type AddToCart struct {
	ProductID string
	Quantity  int
}

type RemoveFromCart struct {
	ProductID string
}

// UpdateCart replaces the whole cart, used when rehydrating from storage.
type UpdateCart struct {
	Cart map[string]int
}

type ClearCart struct{}

type PlaceOrder struct {
	Order domain.Order
}

type UpdateOrder struct {
	ID    string
	Patch OrderPatch
}

type AddNotification struct {
	Notification domain.Notification
}

type ReadNotification struct {
	ID string
}

type AddProduct struct {
	Product domain.Product
}

type UpdateProduct struct {
	ID    string
	Patch ProductPatch
}

type AddDoctor struct {
	Doctor domain.Doctor
}

type UpdateDoctor struct {
	ID    string
	Patch DoctorPatch
}

type AddReview struct {
	Review domain.Review
}

// UpdateStock decrements a product's stock by Quantity. It does not clamp;
// callers must have validated sufficient stock beforehand.
type UpdateStock struct {
	ProductID string
	Quantity  int
}

type StartSession struct {
	Session domain.TeleconsultSession
}

type EndSession struct {
	EndedAt         time.Time
	DurationSeconds int
}

func (Login) isAction()             {}
func (Logout) isAction()            {}
func (UpdateProfile) isAction()     {}
func (AddAppointment) isAction()    {}
func (UpdateAppointment) isAction() {}
func (AddToCart) isAction()         {}
func (RemoveFromCart) isAction()    {}
func (UpdateCart) isAction()        {}
func (ClearCart) isAction()         {}
func (PlaceOrder) isAction()        {}
func (UpdateOrder) isAction()       {}
func (AddNotification) isAction()   {}
func (ReadNotification) isAction()  {}
func (AddProduct) isAction()        {}
func (UpdateProduct) isAction()     {}
func (AddDoctor) isAction()         {}
func (UpdateDoctor) isAction()      {}
func (AddReview) isAction()         {}
func (UpdateStock) isAction()       {}
func (StartSession) isAction()      {}
func (EndSession) isAction()        {}

// AppointmentPatch carries the optional fields an UpdateAppointment merges.
type AppointmentPatch struct {
	Status             *domain.AppointmentStatus
	Date               *string
	TimeSlot           *string
	SessionStartedAt   *time.Time
	CompletedAt        *time.Time
	DurationSeconds    *int
	CancelledAt        *time.Time
	CancellationReason *string
}

func (p AppointmentPatch) applyTo(a domain.Appointment) domain.Appointment {
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.TimeSlot != nil {
		a.TimeSlot = *p.TimeSlot
	}
	if p.SessionStartedAt != nil {
		a.SessionStartedAt = *p.SessionStartedAt
	}
	if p.CompletedAt != nil {
		a.CompletedAt = *p.CompletedAt
	}
	if p.DurationSeconds != nil {
		a.DurationSeconds = *p.DurationSeconds
	}
	if p.CancelledAt != nil {
		a.CancelledAt = *p.CancelledAt
	}
	if p.CancellationReason != nil {
		a.CancellationReason = *p.CancellationReason
	}
	return a
}

type OrderPatch struct {
	Status      *domain.OrderStatus
	UpdatedAt   *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

func (p OrderPatch) applyTo(o domain.Order) domain.Order {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.UpdatedAt != nil {
		o.UpdatedAt = *p.UpdatedAt
	}
	if p.ShippedAt != nil {
		o.ShippedAt = *p.ShippedAt
	}
	if p.DeliveredAt != nil {
		o.DeliveredAt = *p.DeliveredAt
	}
	return o
}

type ProductPatch struct {
	Name     *string
	Price    *int64
	Category *string
	Stock    *int
}

func (p ProductPatch) applyTo(prod domain.Product) domain.Product {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	return prod
}

type DoctorPatch struct {
	Name      *string
	Specialty *string
	Fee       *int64
	Rating    *float64
	Available *bool
}

func (p DoctorPatch) applyTo(d domain.Doctor) domain.Doctor {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Specialty != nil {
		d.Specialty = *p.Specialty
	}
	if p.Fee != nil {
		d.Fee = *p.Fee
	}
	if p.Rating != nil {
		d.Rating = *p.Rating
	}
	if p.Available != nil {
		d.Available = *p.Available
	}
	return d
}
