package state

import (
	"time"

	"github.com/medicore/portal/internal/domain"
)

// Snapshot holds all domain entities for the current process lifetime.
// It is a value: the reducer returns a new Snapshot and never mutates the
// containers of the one it was given.
type Snapshot struct {
	User          *domain.User
	Session       *domain.Session
	Appointments  []domain.Appointment
	ActiveSession *domain.TeleconsultSession
	Products      []domain.Product
	Doctors       []domain.Doctor
	TimeSlots     []string
	Cart          map[string]int
	Orders        []domain.Order
	Notifications []domain.Notification
	Reviews       []domain.Review
}

// Seed returns the initial snapshot with the stock catalog, the doctor
// roster and the two welcome notifications.
func Seed() Snapshot {
	return Snapshot{
		Products: []domain.Product{
			{ID: "prod_1", Name: "Blood Pressure Monitor", Price: 2999, Category: "monitoring", Stock: 42},
			{ID: "prod_2", Name: "Diabetes Test Strips", Price: 899, Category: "testing", Stock: 150},
			{ID: "prod_3", Name: "Oxygen Concentrator", Price: 45999, Category: "therapy", Stock: 8},
			{ID: "prod_4", Name: "Digital Thermometer", Price: 499, Category: "monitoring", Stock: 89},
			{ID: "prod_5", Name: "Wheelchair Premium", Price: 12999, Category: "mobility", Stock: 15},
			{ID: "prod_6", Name: "Multivitamin Tablets", Price: 699, Category: "medicine", Stock: 200},
			{ID: "prod_7", Name: "First Aid Kit", Price: 1499, Category: "emergency", Stock: 35},
			{ID: "prod_8", Name: "Pulse Oximeter", Price: 1299, Category: "monitoring", Stock: 67},
		},
		Doctors: []domain.Doctor{
			{ID: "doc_1", Name: "Dr. Sharma", Specialty: "Cardiology", Fee: 800, Rating: 4.8, Available: true},
			{ID: "doc_2", Name: "Dr. Patel", Specialty: "Dermatology", Fee: 600, Rating: 4.6, Available: true},
			{ID: "doc_3", Name: "Dr. Gupta", Specialty: "Pediatrics", Fee: 500, Rating: 4.9, Available: true},
			{ID: "doc_4", Name: "Dr. Reddy", Specialty: "Orthopedics", Fee: 700, Rating: 4.7, Available: false},
			{ID: "doc_5", Name: "Dr. Kumar", Specialty: "Neurology", Fee: 900, Rating: 4.8, Available: true},
		},
		TimeSlots: []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"},
		Cart:      map[string]int{},
		Notifications: []domain.Notification{
			{
				ID:      "notif_1",
				Title:   "Welcome!",
				Message: "Your account is ready",
				Time:    time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
				Type:    domain.NotificationSystem,
			},
			{
				ID:      "notif_2",
				Title:   "Appointment Reminder",
				Message: "Dr. Sharma tomorrow at 14:00",
				Time:    time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC),
				Type:    domain.NotificationAppointment,
			},
		},
	}
}
