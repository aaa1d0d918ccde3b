package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// RoleFor classifies an account by a naming convention on the email.
// This is a placeholder for real authorization, not a security boundary.
func RoleFor(email string) Role {
	if strings.Contains(email, "admin") {
		return RoleAdmin
	}
	return RolePatient
}

type User struct {
	ID     string    `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
	Mobile string    `json:"mobile"`
	Joined time.Time `json:"joined"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	LastLogin time.Time `json:"last_login"`
}

type Doctor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Fee       int64     `json:"fee"`
	Rating    float64   `json:"rating"`
	Available bool      `json:"available"`
	JoinedAt  time.Time `json:"joined_at,omitzero"`
}

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Category  string    `json:"category"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentInSession AppointmentStatus = "in_session"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Terminal reports whether no further status transition is defined.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

type Appointment struct {
	ID                 string            `json:"id"`
	DoctorID           string            `json:"doctor_id"`
	DoctorName         string            `json:"doctor_name"`
	Specialty          string            `json:"specialty"`
	PatientID          string            `json:"patient_id"`
	PatientName        string            `json:"patient_name"`
	Date               string            `json:"date"`
	TimeSlot           string            `json:"time_slot"`
	Fee                int64             `json:"fee"`
	Status             AppointmentStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	SessionStartedAt   time.Time         `json:"session_started_at,omitzero"`
	CompletedAt        time.Time         `json:"completed_at,omitzero"`
	DurationSeconds    int               `json:"duration_seconds,omitempty"`
	CancelledAt        time.Time         `json:"cancelled_at,omitzero"`
	CancellationReason string            `json:"cancellation_reason,omitempty"`
}

// TeleconsultSession is the ephemeral live-call state linking one
// appointment, doctor and patient. At most one exists at a time.
type TeleconsultSession struct {
	AppointmentID string    `json:"appointment_id"`
	DoctorID      string    `json:"doctor_id"`
	PatientID     string    `json:"patient_id"`
	StartedAt     time.Time `json:"started_at"`
}

type ChatMessage struct {
	ID     string    `json:"id"`
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	Time   time.Time `json:"time"`
}

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPacked    OrderStatus = "packed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// OrderItem copies the product's name and price at checkout time so later
// catalog edits cannot retroactively alter historical orders.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Total     int64  `json:"total"`
}

type Order struct {
	ID                string      `json:"id"`
	Items             []OrderItem `json:"items"`
	Subtotal          int64       `json:"subtotal"`
	Shipping          int64       `json:"shipping"`
	TotalAmount       int64       `json:"total_amount"`
	Status            OrderStatus `json:"status"`
	Address           string      `json:"address"`
	PaymentMethod     string      `json:"payment_method"`
	PaymentStatus     string      `json:"payment_status"`
	TrackingID        string      `json:"tracking_id"`
	CreatedAt         time.Time   `json:"created_at"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
	UpdatedAt         time.Time   `json:"updated_at,omitzero"`
	ShippedAt         time.Time   `json:"shipped_at,omitzero"`
	DeliveredAt       time.Time   `json:"delivered_at,omitzero"`
	PatientID         string      `json:"patient_id"`
	PatientName       string      `json:"patient_name"`
}

type Notification struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
	Read    bool      `json:"read"`
	Type    string    `json:"type"`
}

const (
	NotificationSystem      = "system"
	NotificationAppointment = "appointment"
	NotificationCart        = "cart"
	NotificationOrder       = "order"
)

type Review struct {
	ID        string    `json:"id"`
	TargetID  string    `json:"target_id"`
	PatientID string    `json:"patient_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminStats is derived on demand, never stored authoritatively.
type AdminStats struct {
	TotalRevenue      int64 `json:"total_revenue"`
	TotalAppointments int   `json:"total_appointments"`
	TotalOrders       int   `json:"total_orders"`
	TotalPatients     int   `json:"total_patients"`
}
