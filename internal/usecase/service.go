package usecase

import (
	"travel-booking/internal/data/repository"
	"travel-booking/internal/gateway"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Tour    TourService
	VIP     SingletonTourService
	Nile    SingletonTourService
	Booking BookingService
	Review  ReviewService
	Contact ContactService
}

// NewService wires every business service against the shared
// repositories and the external gateway clients.
func NewService(
	repo *repository.Repository,
	rates gateway.RateFetcher,
	payments gateway.PaymentGateway,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, config, log),
		Tour:    NewTourService(repo.Tour, repo.Review, log),
		VIP:     NewSingletonTourService(repo.VIP, "VIP", log),
		Nile:    NewSingletonTourService(repo.Nile, "Nile", log),
		Booking: NewBookingService(repo, rates, payments, config, log),
		Review:  NewReviewService(repo.Review, repo.Tour, log),
		Contact: NewContactService(config.Email, log),
	}
}
