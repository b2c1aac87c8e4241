package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TourService interface {
	CreateTour(ctx context.Context, form *request.TourForm, media []entity.Media, createdBy string) (*entity.Tour, error)
	ListTours(ctx context.Context) ([]*entity.Tour, error)
	GetTourByID(ctx context.Context, id string) (*entity.Tour, error)
	GetToursByCity(ctx context.Context, city string) ([]*entity.Tour, error)
	UpdateTour(ctx context.Context, id string, form *request.TourForm, newMedia []entity.Media) (*entity.Tour, error)
	DeleteTour(ctx context.Context, id string) error
}

type tourService struct {
	tours   repository.TourRepository
	reviews repository.ReviewRepository
	log     *zap.Logger
}

func NewTourService(tours repository.TourRepository, reviews repository.ReviewRepository, log *zap.Logger) TourService {
	return &tourService{
		tours:   tours,
		reviews: reviews,
		log:     log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) CreateTour(ctx context.Context, form *request.TourForm, media []entity.Media, createdBy string) (*entity.Tour, error) {
	if form.Title == "" || form.Description == "" || form.City == "" || form.Prices == "" {
		return nil, fmt.Errorf("validation failed: required fields are missing")
	}
	if len(media) == 0 {
		return nil, fmt.Errorf("validation failed: no media files uploaded")
	}

	prices, err := parsePrices(form.Prices)
	if err != nil {
		return nil, err
	}

	languages, err := parseLanguages(form.Languages)
	if err != nil {
		return nil, err
	}

	tour := &entity.Tour{
		Title:            form.Title,
		Description:      form.Description,
		Duration:         form.Duration,
		Type:             form.Type,
		Availability:     form.Availability,
		PickUpAndDropOff: form.PickUpAndDropOff,
		Details:          form.Details,
		ViewPrice:        form.ViewPrice,
		Note:             form.Note,
		FullDay:          form.FullDay,
		Languages:        languages,
		Prices:           prices,
		Media:            media,
		City:             form.City,
		Reviews:          []primitive.ObjectID{},
		CreatedAt:        time.Now(),
	}

	if creator, err := primitive.ObjectIDFromHex(createdBy); err == nil {
		tour.CreatedBy = creator
	}

	if err := s.tours.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.log.Info("Tour created",
		zap.String("tour_id", tour.ID.Hex()),
		zap.String("title", tour.Title),
		zap.String("city", tour.City),
	)

	return tour, nil
}

func (s *tourService) ListTours(ctx context.Context) ([]*entity.Tour, error) {
	tours, err := s.tours.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	return tours, nil
}

func (s *tourService) GetTourByID(ctx context.Context, id string) (*entity.Tour, error) {
	tourID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s", id)
	}

	tour, err := s.tours.FindByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour not found")
	}

	return tour, nil
}

// GetToursByCity returns an empty list, not an error, when nothing matches.
func (s *tourService) GetToursByCity(ctx context.Context, city string) ([]*entity.Tour, error) {
	tours, err := s.tours.FindByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("get tours by city: %w", err)
	}
	return tours, nil
}

// UpdateTour applies only the supplied fields; deleteMedia removes
// listed URLs and new uploads append.
func (s *tourService) UpdateTour(ctx context.Context, id string, form *request.TourForm, newMedia []entity.Media) (*entity.Tour, error) {
	tourID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s", id)
	}

	tour, err := s.tours.FindByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour not found")
	}

	if form.DeleteMedia != "" {
		var deleteURLs []string
		if err := json.Unmarshal([]byte(form.DeleteMedia), &deleteURLs); err != nil {
			return nil, fmt.Errorf("invalid deleteMedia format")
		}

		remove := make(map[string]struct{}, len(deleteURLs))
		for _, u := range deleteURLs {
			remove[u] = struct{}{}
		}

		kept := tour.Media[:0]
		for _, m := range tour.Media {
			if _, gone := remove[m.URL]; !gone {
				kept = append(kept, m)
			}
		}
		tour.Media = kept
	}

	tour.Media = append(tour.Media, newMedia...)

	if form.Title != "" {
		tour.Title = form.Title
	}
	if form.Description != "" {
		tour.Description = form.Description
	}
	if form.Duration != "" {
		tour.Duration = form.Duration
	}
	if form.Type != "" {
		tour.Type = form.Type
	}
	if form.Availability != "" {
		tour.Availability = form.Availability
	}
	if form.PickUpAndDropOff != "" {
		tour.PickUpAndDropOff = form.PickUpAndDropOff
	}
	if form.Details != "" {
		tour.Details = form.Details
	}
	if form.ViewPrice != "" {
		tour.ViewPrice = form.ViewPrice
	}
	if form.Note != "" {
		tour.Note = form.Note
	}
	if form.FullDay != "" {
		tour.FullDay = form.FullDay
	}
	if form.Languages != "" {
		languages, err := parseLanguages(form.Languages)
		if err != nil {
			return nil, err
		}
		tour.Languages = languages
	}
	if form.Prices != "" {
		prices, err := parsePrices(form.Prices)
		if err != nil {
			return nil, err
		}
		tour.Prices = prices
	}
	if form.City != "" {
		tour.City = form.City
	}

	if err := s.tours.Update(ctx, tour); err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	s.log.Info("Tour updated", zap.String("tour_id", id))
	return tour, nil
}

// DeleteTour removes the tour and cascades deletion of every review
// referencing it.
func (s *tourService) DeleteTour(ctx context.Context, id string) error {
	tourID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid tour ID format %s", id)
	}

	tour, err := s.tours.FindByID(ctx, tourID)
	if err != nil {
		return fmt.Errorf("get tour: %w", err)
	}
	if tour == nil {
		return fmt.Errorf("tour not found")
	}

	deleted, err := s.reviews.DeleteByTourID(ctx, tourID)
	if err != nil {
		return fmt.Errorf("delete tour reviews: %w", err)
	}

	if err := s.tours.Delete(ctx, tourID); err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}

	s.log.Info("Tour deleted with review cascade",
		zap.String("tour_id", id),
		zap.Int64("reviews_deleted", deleted),
	)

	return nil
}

func parsePrices(raw string) ([]entity.Price, error) {
	var prices []entity.Price
	if err := json.Unmarshal([]byte(raw), &prices); err != nil {
		return nil, fmt.Errorf("invalid prices format")
	}
	return prices, nil
}

func parseLanguages(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var languages []string
	if err := json.Unmarshal([]byte(raw), &languages); err != nil {
		return nil, fmt.Errorf("invalid languages format")
	}
	return languages, nil
}
