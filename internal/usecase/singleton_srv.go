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

// SingletonTourService manages a tour variant of which at most one
// document may exist (VIP, Nile).
type SingletonTourService interface {
	Get(ctx context.Context) (*entity.SingletonTour, error)
	Create(ctx context.Context, form *request.SingletonTourForm, media []entity.Media, createdBy string) (*entity.SingletonTour, error)
	Update(ctx context.Context, form *request.SingletonTourForm, media []entity.Media) (*entity.SingletonTour, error)
}

type singletonTourService struct {
	repo repository.SingletonTourRepository
	kind string
	log  *zap.Logger
}

func NewSingletonTourService(repo repository.SingletonTourRepository, kind string, log *zap.Logger) SingletonTourService {
	return &singletonTourService{
		repo: repo,
		kind: kind,
		log:  log.With(zap.String("service", kind+"_tour")),
	}
}

func (s *singletonTourService) Get(ctx context.Context) (*entity.SingletonTour, error) {
	tour, err := s.repo.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("get %s tour: %w", s.kind, err)
	}
	if tour == nil {
		return nil, fmt.Errorf("%s tour not found", s.kind)
	}
	return tour, nil
}

func (s *singletonTourService) Create(ctx context.Context, form *request.SingletonTourForm, media []entity.Media, createdBy string) (*entity.SingletonTour, error) {
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if len(media) == 0 {
		return nil, fmt.Errorf("validation failed: no media files uploaded")
	}

	existing, err := s.repo.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing %s tour: %w", s.kind, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%s tour already exists", s.kind)
	}

	tour := s.fromForm(form, media)
	tour.CreatedAt = time.Now()
	if creator, err := primitive.ObjectIDFromHex(createdBy); err == nil {
		tour.CreatedBy = creator
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create %s tour: %w", s.kind, err)
	}

	s.log.Info("Singleton tour created",
		zap.String("tour_id", tour.ID.Hex()),
		zap.String("title", tour.Title),
	)

	return tour, nil
}

func (s *singletonTourService) Update(ctx context.Context, form *request.SingletonTourForm, media []entity.Media) (*entity.SingletonTour, error) {
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tour := s.fromForm(form, media)

	updated, err := s.repo.Replace(ctx, tour)
	if err != nil {
		return nil, fmt.Errorf("update %s tour: %w", s.kind, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("%s tour not found", s.kind)
	}

	s.log.Info("Singleton tour updated", zap.String("tour_id", updated.ID.Hex()))
	return updated, nil
}

func (s *singletonTourService) fromForm(form *request.SingletonTourForm, media []entity.Media) *entity.SingletonTour {
	return &entity.SingletonTour{
		Title:            form.Title,
		Duration:         form.Duration,
		PickUpAndDropOff: form.PickUpAndDropOff,
		Details:          form.Details,
		FullDay:          form.FullDay,
		Note:             form.Note,
		Description:      form.Description,
		Type:             form.Type,
		Availability:     form.Availability,
		Price:            form.Price,
		City:             form.City,
		Media:            media,
	}
}
