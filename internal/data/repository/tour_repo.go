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

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Tour, error)
	FindAll(ctx context.Context) ([]*entity.Tour, error)
	FindByCity(ctx context.Context, city string) ([]*entity.Tour, error)
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	PushReview(ctx context.Context, tourID, reviewID primitive.ObjectID) error
}

type tourRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewTourRepository(col *mongo.Collection, log *zap.Logger) TourRepository {
	return &tourRepository{
		col: col,
		log: log.With(zap.String("repository", "tour")),
	}
}

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	res, err := r.col.InsertOne(ctx, tour)
	if err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("title", tour.Title),
		)
		return fmt.Errorf("create tour %s: %w", tour.Title, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		tour.ID = oid
	}
	return nil
}

func (r *tourRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Tour, error) {
	var tour entity.Tour
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&tour)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.Hex()),
		)
		return nil, fmt.Errorf("find tour by ID %s: %w", id.Hex(), err)
	}

	return &tour, nil
}

func (r *tourRepository) FindAll(ctx context.Context) ([]*entity.Tour, error) {
	return r.find(ctx, bson.M{})
}

func (r *tourRepository) FindByCity(ctx context.Context, city string) ([]*entity.Tour, error) {
	return r.find(ctx, bson.M{"city": city})
}

func (r *tourRepository) find(ctx context.Context, filter bson.M) ([]*entity.Tour, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		r.log.Error("Failed to find tours", zap.Error(err), zap.Any("filter", filter))
		return nil, fmt.Errorf("find tours: %w", err)
	}
	defer cursor.Close(ctx)

	tours := []*entity.Tour{}
	if err := cursor.All(ctx, &tours); err != nil {
		r.log.Error("Failed to decode tours", zap.Error(err))
		return nil, fmt.Errorf("decode tours: %w", err)
	}

	return tours, nil
}

func (r *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": tour.ID}, tour)
	if err != nil {
		r.log.Error("Failed to update tour",
			zap.Error(err),
			zap.String("tour_id", tour.ID.Hex()),
		)
		return fmt.Errorf("update tour %s: %w", tour.ID.Hex(), err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("tour %s not found", tour.ID.Hex())
	}

	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete tour",
			zap.Error(err),
			zap.String("tour_id", id.Hex()),
		)
		return fmt.Errorf("delete tour %s: %w", id.Hex(), err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("tour %s not found", id.Hex())
	}

	r.log.Info("Tour deleted", zap.String("tour_id", id.Hex()))
	return nil
}

func (r *tourRepository) PushReview(ctx context.Context, tourID, reviewID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": tourID},
		bson.M{"$push": bson.M{"reviews": reviewID}},
	)
	if err != nil {
		r.log.Error("Failed to push review onto tour",
			zap.Error(err),
			zap.String("tour_id", tourID.Hex()),
			zap.String("review_id", reviewID.Hex()),
		)
		return fmt.Errorf("push review %s onto tour %s: %w", reviewID.Hex(), tourID.Hex(), err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("tour %s not found", tourID.Hex())
	}

	return nil
}
