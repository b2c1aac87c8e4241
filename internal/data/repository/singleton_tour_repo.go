package repository

import (
	"context"
	"errors"
	"fmt"

	"travel-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SingletonTourRepository backs a collection holding at most one document
// (the VIP tour, the Nile tour).
type SingletonTourRepository interface {
	Find(ctx context.Context) (*entity.SingletonTour, error)
	Create(ctx context.Context, tour *entity.SingletonTour) error
	Replace(ctx context.Context, tour *entity.SingletonTour) (*entity.SingletonTour, error)
}

type singletonTourRepository struct {
	col  *mongo.Collection
	kind string
	log  *zap.Logger
}

func NewSingletonTourRepository(col *mongo.Collection, kind string, log *zap.Logger) SingletonTourRepository {
	return &singletonTourRepository{
		col:  col,
		kind: kind,
		log:  log.With(zap.String("repository", kind+"_tour")),
	}
}

func (r *singletonTourRepository) Find(ctx context.Context) (*entity.SingletonTour, error) {
	var tour entity.SingletonTour
	err := r.col.FindOne(ctx, bson.M{}).Decode(&tour)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find singleton tour", zap.Error(err))
		return nil, fmt.Errorf("find %s tour: %w", r.kind, err)
	}

	return &tour, nil
}

func (r *singletonTourRepository) Create(ctx context.Context, tour *entity.SingletonTour) error {
	res, err := r.col.InsertOne(ctx, tour)
	if err != nil {
		r.log.Error("Failed to create singleton tour",
			zap.Error(err),
			zap.String("title", tour.Title),
		)
		return fmt.Errorf("create %s tour: %w", r.kind, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		tour.ID = oid
	}
	return nil
}

// Replace overwrites the single document's fields, keeping its id.
func (r *singletonTourRepository) Replace(ctx context.Context, tour *entity.SingletonTour) (*entity.SingletonTour, error) {
	existing, err := r.Find(ctx)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	tour.ID = existing.ID
	if tour.CreatedAt.IsZero() {
		tour.CreatedAt = existing.CreatedAt
	}

	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": existing.ID}, tour); err != nil {
		r.log.Error("Failed to replace singleton tour",
			zap.Error(err),
			zap.String("tour_id", existing.ID.Hex()),
		)
		return nil, fmt.Errorf("replace %s tour: %w", r.kind, err)
	}

	return tour, nil
}
