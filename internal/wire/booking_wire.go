package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/bookings - Create booking + payment intention
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings/user/{userId} - Bookings for one user
		r.Get("/api/bookings/user/{userId}", bookingHandler.GetUserBookings)

		// GET /api/bookings/{id} - Single booking
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// GET /api/bookings?page&limit - Paginated listing with totals
		r.Get("/api/bookings", bookingHandler.ListBookings)

		// GET /api/bookings/download/{year}/{month} - CSV export
		r.Get("/api/bookings/download/{year}/{month}", bookingHandler.DownloadMonth)

		// PUT /api/bookings/{id} - Allow-listed partial update
		r.Put("/api/bookings/{id}", bookingHandler.UpdateBooking)

		// DELETE /api/bookings/{id}
		r.Delete("/api/bookings/{id}", bookingHandler.DeleteBooking)
	})
}
