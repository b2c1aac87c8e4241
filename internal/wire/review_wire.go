package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/reviews/{tourId}", reviewHandler.GetTourReviews)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		r.Post("/api/reviews/{tourId}", reviewHandler.CreateReview)
		r.Get("/api/reviews/user/{userId}", reviewHandler.GetUserReviews)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/reviews", reviewHandler.ListReviews)
		r.Patch("/api/reviews/{id}/visibility", reviewHandler.ToggleVisibility)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
