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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error)
	FindAll(ctx context.Context) ([]*entity.Review, error)
	FindByTourID(ctx context.Context, tourID primitive.ObjectID) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Review, error)
	SetVisibility(ctx context.Context, id primitive.ObjectID, visible bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByTourID(ctx context.Context, tourID primitive.ObjectID) (int64, error)
}

type reviewRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewReviewRepository(col *mongo.Collection, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		col: col,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("tour_id", review.TourID.Hex()),
			zap.String("user_id", review.UserID.Hex()),
		)
		return fmt.Errorf("create review: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error) {
	var review entity.Review
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&review)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.Hex()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.Hex(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *reviewRepository) FindByTourID(ctx context.Context, tourID primitive.ObjectID) ([]*entity.Review, error) {
	return r.find(ctx, bson.M{"tour": tourID})
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Review, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *reviewRepository) find(ctx context.Context, filter bson.M) ([]*entity.Review, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		r.log.Error("Failed to find reviews", zap.Error(err), zap.Any("filter", filter))
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []*entity.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		r.log.Error("Failed to decode reviews", zap.Error(err))
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) SetVisibility(ctx context.Context, id primitive.ObjectID, visible bool) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"visible": visible}},
	)
	if err != nil {
		r.log.Error("Failed to set review visibility",
			zap.Error(err),
			zap.String("review_id", id.Hex()),
			zap.Bool("visible", visible),
		)
		return fmt.Errorf("set review %s visibility: %w", id.Hex(), err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("review %s not found", id.Hex())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.Hex()),
		)
		return fmt.Errorf("delete review %s: %w", id.Hex(), err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("review %s not found", id.Hex())
	}

	return nil
}

// DeleteByTourID removes every review referencing the tour. Used by
// the tour delete cascade.
func (r *reviewRepository) DeleteByTourID(ctx context.Context, tourID primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"tour": tourID})
	if err != nil {
		r.log.Error("Failed to delete reviews for tour",
			zap.Error(err),
			zap.String("tour_id", tourID.Hex()),
		)
		return 0, fmt.Errorf("delete reviews for tour %s: %w", tourID.Hex(), err)
	}

	return res.DeletedCount, nil
}
