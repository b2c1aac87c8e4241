package adaptor

import (
	"net/http"
	"strconv"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/upload"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	saver   *upload.Saver
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, saver *upload.Saver, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		saver:   saver,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews/{tourId} (protected, multipart)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tourID := chi.URLParam(r, "tourId")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	media, err := h.saver.SaveFromRequest(r, "media")
	if err != nil {
		handleServiceError(h.log, w, err, "upload review media")
		return
	}

	rating, _ := strconv.Atoi(r.FormValue("rating"))
	form := &request.CreateReviewForm{
		Rating:  rating,
		Comment: r.FormValue("comment"),
	}

	review, err := h.service.CreateReview(r.Context(), tourID, userID, form, media)
	if err != nil {
		handleServiceError(h.log, w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// ListReviews handles GET /api/reviews (admin only)
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// ToggleVisibility handles PATCH /api/reviews/{id}/visibility (admin only)
func (h *ReviewHandler) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	review, err := h.service.ToggleVisibility(r.Context(), reviewID)
	if err != nil {
		handleServiceError(h.log, w, err, "toggle review visibility")
		return
	}

	utils.ResponseSuccess(w, "Review visibility updated", review)
}

// GetTourReviews handles GET /api/reviews/{tourId} (public)
func (h *ReviewHandler) GetTourReviews(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "tourId")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	reviews, err := h.service.GetTourReviews(r.Context(), tourID)
	if err != nil {
		handleServiceError(h.log, w, err, "get tour reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// GetUserReviews handles GET /api/reviews/user/{userId} (protected,
// restricted to the requesting user)
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	reviews, err := h.service.GetUserReviews(r.Context(), userID, requesterID)
	if err != nil {
		handleServiceError(h.log, w, err, "get user reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// DeleteReview handles DELETE /api/reviews/{id} (admin only)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		handleServiceError(h.log, w, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}
