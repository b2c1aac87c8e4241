package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, tourID, userID string, form *request.CreateReviewForm, media []entity.Media) (*entity.Review, error)
	ListReviews(ctx context.Context) ([]*entity.Review, error)
	GetTourReviews(ctx context.Context, tourID string) ([]*entity.Review, error)
	GetUserReviews(ctx context.Context, userID, requesterID string) ([]*entity.Review, error)
	ToggleVisibility(ctx context.Context, id string) (*entity.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

type reviewService struct {
	reviews repository.ReviewRepository
	tours   repository.TourRepository
	log     *zap.Logger
}

func NewReviewService(reviews repository.ReviewRepository, tours repository.TourRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviews: reviews,
		tours:   tours,
		log:     log.With(zap.String("service", "review")),
	}
}

// CreateReview inserts the review, then appends its id to the tour's
// reviews array. The two writes are not transactional; a failure in
// between leaves the review reachable by tour filter only.
func (s *reviewService) CreateReview(ctx context.Context, tourID, userID string, form *request.CreateReviewForm, media []entity.Media) (*entity.Review, error) {
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tid, err := primitive.ObjectIDFromHex(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s", tourID)
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", userID)
	}

	tour, err := s.tours.FindByID(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour not found")
	}

	if media == nil {
		media = []entity.Media{}
	}

	review := &entity.Review{
		UserID:    uid,
		TourID:    tid,
		Rating:    form.Rating,
		Comment:   form.Comment,
		Media:     media,
		Visible:   true,
		CreatedAt: time.Now(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if err := s.tours.PushReview(ctx, tid, review.ID); err != nil {
		s.log.Error("Failed to link review to tour",
			zap.Error(err),
			zap.String("review_id", review.ID.Hex()),
			zap.String("tour_id", tourID),
		)
		return nil, fmt.Errorf("link review to tour: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.Hex()),
		zap.String("tour_id", tourID),
		zap.Int("rating", form.Rating),
	)

	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) GetTourReviews(ctx context.Context, tourID string) ([]*entity.Review, error) {
	tid, err := primitive.ObjectIDFromHex(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s", tourID)
	}

	reviews, err := s.reviews.FindByTourID(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("get tour reviews: %w", err)
	}
	return reviews, nil
}

// GetUserReviews restricts the listing to the requesting user.
func (s *reviewService) GetUserReviews(ctx context.Context, userID, requesterID string) ([]*entity.Review, error) {
	if userID != requesterID {
		return nil, fmt.Errorf("not allowed to view these reviews")
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", userID)
	}

	reviews, err := s.reviews.FindByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get user reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) ToggleVisibility(ctx context.Context, id string) (*entity.Review, error) {
	reviewID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s", id)
	}

	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review not found")
	}

	review.Visible = !review.Visible
	if err := s.reviews.SetVisibility(ctx, reviewID, review.Visible); err != nil {
		return nil, fmt.Errorf("toggle review visibility: %w", err)
	}

	s.log.Info("Review visibility toggled",
		zap.String("review_id", id),
		zap.Bool("visible", review.Visible),
	)

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id string) error {
	reviewID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s", id)
	}

	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review not found")
	}

	return s.reviews.Delete(ctx, reviewID)
}
