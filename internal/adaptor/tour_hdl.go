package adaptor

import (
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/upload"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TourHandler struct {
	service usecase.TourService
	saver   *upload.Saver
	log     *zap.Logger
}

func NewTourHandler(service usecase.TourService, saver *upload.Saver, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		saver:   saver,
		log:     log.With(zap.String("handler", "tour")),
	}
}

func tourFormFromRequest(r *http.Request) *request.TourForm {
	return &request.TourForm{
		Title:            r.FormValue("title"),
		Description:      r.FormValue("description"),
		Duration:         r.FormValue("duration"),
		Type:             r.FormValue("type"),
		Availability:     r.FormValue("availability"),
		PickUpAndDropOff: r.FormValue("pickUpAndDropOff"),
		Details:          r.FormValue("details"),
		ViewPrice:        r.FormValue("viewPrice"),
		Note:             r.FormValue("note"),
		FullDay:          r.FormValue("fullDay"),
		Languages:        r.FormValue("languages"),
		Prices:           r.FormValue("prices"),
		City:             r.FormValue("city"),
		DeleteMedia:      r.FormValue("deleteMedia"),
	}
}

// CreateTour handles POST /api/tours (admin, multipart)
func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	media, err := h.saver.SaveFromRequest(r, "media")
	if err != nil {
		handleServiceError(h.log, w, err, "upload tour media")
		return
	}

	tour, err := h.service.CreateTour(r.Context(), tourFormFromRequest(r), media, userID)
	if err != nil {
		handleServiceError(h.log, w, err, "create tour")
		return
	}

	utils.ResponseCreated(w, "Tour created successfully", tour)
}

// ListTours handles GET /api/tours (public)
func (h *TourHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := h.service.ListTours(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list tours")
		return
	}

	utils.ResponseSuccess(w, "Tours retrieved successfully", tours)
}

// GetTourByID handles GET /api/tours/{id} (public)
func (h *TourHandler) GetTourByID(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	tour, err := h.service.GetTourByID(r.Context(), tourID)
	if err != nil {
		handleServiceError(h.log, w, err, "get tour")
		return
	}

	utils.ResponseSuccess(w, "Tour retrieved successfully", tour)
}

// GetToursByCity handles GET /api/tours/city/{city} (public)
func (h *TourHandler) GetToursByCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	tours, err := h.service.GetToursByCity(r.Context(), city)
	if err != nil {
		handleServiceError(h.log, w, err, "get tours by city")
		return
	}

	utils.ResponseSuccess(w, "Tours retrieved successfully", tours)
}

// UpdateTour handles PUT /api/tours/{id} (admin, multipart)
func (h *TourHandler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	media, err := h.saver.SaveFromRequest(r, "media")
	if err != nil {
		handleServiceError(h.log, w, err, "upload tour media")
		return
	}

	tour, err := h.service.UpdateTour(r.Context(), tourID, tourFormFromRequest(r), media)
	if err != nil {
		handleServiceError(h.log, w, err, "update tour")
		return
	}

	utils.ResponseSuccess(w, "Tour updated successfully", tour)
}

// DeleteTour handles DELETE /api/tours/{id} (admin)
func (h *TourHandler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	if err := h.service.DeleteTour(r.Context(), tourID); err != nil {
		handleServiceError(h.log, w, err, "delete tour")
		return
	}

	utils.ResponseSuccess(w, "Tour and associated reviews deleted successfully", nil)
}
