package response

import (
	"travel-booking/internal/data/entity"
)

// CreateBookingResponse carries the persisted booking plus what the
// payer needs to complete the gateway redirect.
type CreateBookingResponse struct {
	Booking      *entity.Booking `json:"booking"`
	ClientSecret string          `json:"client_secret"`
	PaymentURL   string          `json:"paymentUrl"`
}

type BookingListMeta struct {
	Total       int64   `json:"total"`
	TotalAmount float64 `json:"totalAmount"`
	Page        int     `json:"page"`
	Pages       int     `json:"pages"`
}

type BookingListResponse struct {
	Bookings []*entity.Booking `json:"bookings"`
	Meta     BookingListMeta   `json:"meta"`
}
