package adaptor

import (
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/upload"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// SingletonTourHandler serves a tour variant with at most one document
// (VIP, Nile). One instance per variant.
type SingletonTourHandler struct {
	service usecase.SingletonTourService
	saver   *upload.Saver
	log     *zap.Logger
}

func NewSingletonTourHandler(service usecase.SingletonTourService, saver *upload.Saver, kind string, log *zap.Logger) *SingletonTourHandler {
	return &SingletonTourHandler{
		service: service,
		saver:   saver,
		log:     log.With(zap.String("handler", kind+"_tour")),
	}
}

func singletonFormFromRequest(r *http.Request) *request.SingletonTourForm {
	return &request.SingletonTourForm{
		Title:            r.FormValue("title"),
		Duration:         r.FormValue("duration"),
		PickUpAndDropOff: r.FormValue("pickUpAndDropOff"),
		Details:          r.FormValue("details"),
		FullDay:          r.FormValue("fullDay"),
		Note:             r.FormValue("note"),
		Description:      r.FormValue("description"),
		Type:             r.FormValue("type"),
		Availability:     r.FormValue("availability"),
		Price:            r.FormValue("price"),
		City:             r.FormValue("city"),
	}
}

// Get handles GET /api/vip or /api/nile (public)
func (h *SingletonTourHandler) Get(w http.ResponseWriter, r *http.Request) {
	tour, err := h.service.Get(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get singleton tour")
		return
	}

	utils.ResponseSuccess(w, "Tour retrieved successfully", tour)
}

// Create handles POST /api/vip or /api/nile (admin, multipart)
func (h *SingletonTourHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	media, err := h.saver.SaveFromRequest(r, "media")
	if err != nil {
		handleServiceError(h.log, w, err, "upload singleton tour media")
		return
	}

	tour, err := h.service.Create(r.Context(), singletonFormFromRequest(r), media, userID)
	if err != nil {
		handleServiceError(h.log, w, err, "create singleton tour")
		return
	}

	utils.ResponseCreated(w, "Tour created successfully", tour)
}

// Update handles PUT /api/vip or /api/nile (admin, multipart)
func (h *SingletonTourHandler) Update(w http.ResponseWriter, r *http.Request) {
	media, err := h.saver.SaveFromRequest(r, "media")
	if err != nil {
		handleServiceError(h.log, w, err, "upload singleton tour media")
		return
	}

	tour, err := h.service.Update(r.Context(), singletonFormFromRequest(r), media)
	if err != nil {
		handleServiceError(h.log, w, err, "update singleton tour")
		return
	}

	utils.ResponseSuccess(w, "Tour updated successfully", tour)
}
