package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTour(
	r chi.Router,
	tourHandler *adaptor.TourHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/tours", tourHandler.ListTours)
	r.Get("/api/tours/city/{city}", tourHandler.GetToursByCity)
	r.Get("/api/tours/{id}", tourHandler.GetTourByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/tours", tourHandler.CreateTour)
		r.Put("/api/tours/{id}", tourHandler.UpdateTour)
		r.Delete("/api/tours/{id}", tourHandler.DeleteTour)
	})
}
