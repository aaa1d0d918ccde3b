package transport

import "github.com/medicore/portal/internal/domain"

type LoginRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type VerifyCodeRequest struct {
	Code string `json:"code"`
}

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Mobile *string `json:"mobile"`
}

type SessionResponse struct {
	User    *domain.User    `json:"user"`
	Session *domain.Session `json:"session"`
}

type BookAppointmentRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
}

type ChatMessageRequest struct {
	Text string `json:"text"`
}

type TeleconsultResponse struct {
	Session  *domain.TeleconsultSession `json:"session"`
	Seconds  int                        `json:"seconds"`
	Messages []domain.ChatMessage       `json:"messages"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

type CartResponse struct {
	Lines map[string]int `json:"lines"`
	Total int64          `json:"total"`
}

type CheckoutRequest struct {
	Address       string `json:"address"`
	City          string `json:"city"`
	Pincode       string `json:"pincode"`
	PaymentMethod string `json:"payment_method"`
}

type UpdateOrderRequest struct {
	Status domain.OrderStatus `json:"status"`
}

type AddProductRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
}

type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
	Category *string `json:"category"`
	Stock    *int    `json:"stock"`
}

type AddDoctorRequest struct {
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Fee       int64   `json:"fee"`
	Rating    float64 `json:"rating"`
}

type UpdateDoctorRequest struct {
	Name      *string  `json:"name"`
	Specialty *string  `json:"specialty"`
	Fee       *int64   `json:"fee"`
	Rating    *float64 `json:"rating"`
	Available *bool    `json:"available"`
}

type ReviewRequest struct {
	TargetID string `json:"target_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type SearchResponse struct {
	Total    int64            `json:"total"`
	Products []domain.Product `json:"products"`
}

type NotificationsResponse struct {
	Unread        int                   `json:"unread"`
	Notifications []domain.Notification `json:"notifications"`
}
