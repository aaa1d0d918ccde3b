package state

import "github.com/medicore/portal/internal/domain"

// Reduce applies exactly one action to a snapshot and returns the result.
// It never mutates its input and never errors: actions referencing an
// unknown id, and action kinds it does not recognize, leave the snapshot
// untouched.
func Reduce(s Snapshot, a Action) Snapshot {
	switch act := a.(type) {
	case Login:
		user := act.User
		session := act.Session
		s.User = &user
		s.Session = &session

	case Logout:
		s.User = nil
		s.Session = nil

	case UpdateProfile:
		if s.User == nil {
			return s
		}
		user := *s.User
		if act.Name != nil {
			user.Name = *act.Name
		}
		if act.Email != nil {
			user.Email = *act.Email
		}
		if act.Mobile != nil {
			user.Mobile = *act.Mobile
		}
		s.User = &user

	case AddAppointment:
		s.Appointments = appended(s.Appointments, act.Appointment)

	case UpdateAppointment:
		s.Appointments = patchByID(s.Appointments, act.ID,
			func(a domain.Appointment) string { return a.ID },
			act.Patch.applyTo)

	case AddToCart:
		cart := cloneCart(s.Cart)
		cart[act.ProductID] += act.Quantity
		s.Cart = cart

	case RemoveFromCart:
		cart := cloneCart(s.Cart)
		delete(cart, act.ProductID)
		s.Cart = cart

	case UpdateCart:
		s.Cart = cloneCart(act.Cart)

	case ClearCart:
		s.Cart = map[string]int{}

	case PlaceOrder:
		s.Orders = prepended(s.Orders, act.Order)
		s.Cart = map[string]int{}

	case UpdateOrder:
		s.Orders = patchByID(s.Orders, act.ID,
			func(o domain.Order) string { return o.ID },
			act.Patch.applyTo)

	case AddNotification:
		s.Notifications = prepended(s.Notifications, act.Notification)

	case ReadNotification:
		s.Notifications = patchByID(s.Notifications, act.ID,
			func(n domain.Notification) string { return n.ID },
			func(n domain.Notification) domain.Notification {
				n.Read = true
				return n
			})

	case AddProduct:
		s.Products = appended(s.Products, act.Product)

	case UpdateProduct:
		s.Products = patchByID(s.Products, act.ID,
			func(p domain.Product) string { return p.ID },
			act.Patch.applyTo)

	case AddDoctor:
		s.Doctors = appended(s.Doctors, act.Doctor)

	case UpdateDoctor:
		s.Doctors = patchByID(s.Doctors, act.ID,
			func(d domain.Doctor) string { return d.ID },
			act.Patch.applyTo)

	case AddReview:
		s.Reviews = appended(s.Reviews, act.Review)

	case UpdateStock:
		s.Products = patchByID(s.Products, act.ProductID,
			func(p domain.Product) string { return p.ID },
			func(p domain.Product) domain.Product {
				p.Stock -= act.Quantity
				return p
			})

	case StartSession:
		session := act.Session
		s.ActiveSession = &session

	case EndSession:
		s.ActiveSession = nil
	}

	return s
}

// patchByID locates one element by id and replaces it with apply's result,
// copying the slice. An unknown id returns the input slice untouched.
func patchByID[E any](items []E, id string, idOf func(E) string, apply func(E) E) []E {
	for i := range items {
		if idOf(items[i]) != id {
			continue
		}
		out := make([]E, len(items))
		copy(out, items)
		out[i] = apply(out[i])
		return out
	}
	return items
}

func appended[E any](items []E, e E) []E {
	out := make([]E, 0, len(items)+1)
	out = append(out, items...)
	return append(out, e)
}

func prepended[E any](items []E, e E) []E {
	out := make([]E, 0, len(items)+1)
	out = append(out, e)
	return append(out, items...)
}

func cloneCart(cart map[string]int) map[string]int {
	out := make(map[string]int, len(cart))
	for id, qty := range cart {
		out[id] = qty
	}
	return out
}
