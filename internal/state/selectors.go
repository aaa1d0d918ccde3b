package state

import (
	"sort"

	"github.com/medicore/portal/internal/domain"
)

// Derived views: pure computations over a snapshot, recomputed on every
// read, never cached.

func UnreadNotifications(s Snapshot) int {
	n := 0
	for _, notif := range s.Notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// UpcomingAppointments returns confirmed and in-session appointments sorted
// ascending by date. Dates are ISO yyyy-mm-dd strings, so lexical order is
// chronological order.
func UpcomingAppointments(s Snapshot) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range s.Appointments {
		if a.Status == domain.AppointmentConfirmed || a.Status == domain.AppointmentInSession {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CartTotal sums price x quantity over the cart. A cart line whose product
// is no longer in the catalog is priced at zero.
func CartTotal(s Snapshot) int64 {
	var total int64
	for id, qty := range s.Cart {
		if p, ok := ProductByID(s, id); ok {
			total += p.Price * int64(qty)
		}
	}
	return total
}

func Stats(s Snapshot) domain.AdminStats {
	var revenue int64
	for _, o := range s.Orders {
		revenue += o.TotalAmount
	}
	patients := map[string]struct{}{}
	for _, a := range s.Appointments {
		patients[a.PatientID] = struct{}{}
	}
	return domain.AdminStats{
		TotalRevenue:      revenue,
		TotalAppointments: len(s.Appointments),
		TotalOrders:       len(s.Orders),
		TotalPatients:     len(patients),
	}
}

func ProductByID(s Snapshot, id string) (domain.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func DoctorByID(s Snapshot, id string) (domain.Doctor, bool) {
	for _, d := range s.Doctors {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Doctor{}, false
}

func AppointmentByID(s Snapshot, id string) (domain.Appointment, bool) {
	for _, a := range s.Appointments {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Appointment{}, false
}

func OrderByID(s Snapshot, id string) (domain.Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}
