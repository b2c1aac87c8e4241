package adaptor

import (
	"net/http"
	"strings"

	"travel-booking/internal/upload"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Tour    *TourHandler
	VIP     *SingletonTourHandler
	Nile    *SingletonTourHandler
	Booking *BookingHandler
	Review  *ReviewHandler
	Contact *ContactHandler
}

func NewHandler(service *usecase.Service, saver *upload.Saver, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Tour:    NewTourHandler(service.Tour, saver, log),
		VIP:     NewSingletonTourHandler(service.VIP, saver, "vip", log),
		Nile:    NewSingletonTourHandler(service.Nile, saver, "nile", log),
		Booking: NewBookingHandler(service.Booking, log),
		Review:  NewReviewHandler(service.Review, saver, log),
		Contact: NewContactHandler(service.Contact, log),
	}
}

// handleServiceError converts service error messages into HTTP responses.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "not allowed"):
		log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "already exists"),
		strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "too many files"),
		strings.Contains(errMsg, "unsupported file type"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "exchange rate"),
		strings.Contains(errMsg, "payment gateway"):
		log.Error(operation+" failed - upstream unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
