package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Tour    TourRepository
	VIP     SingletonTourRepository
	Nile    SingletonTourRepository
	Booking BookingRepository
	Review  ReviewRepository
}

func NewRepository(db *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db.Collection("users"), log),
		Tour:    NewTourRepository(db.Collection("tours"), log),
		VIP:     NewSingletonTourRepository(db.Collection("vip_tours"), "vip", log),
		Nile:    NewSingletonTourRepository(db.Collection("nile_tours"), "nile", log),
		Booking: NewBookingRepository(db.Collection("bookings"), log),
		Review:  NewReviewRepository(db.Collection("reviews"), log),
	}
}

// EnsureIndexes creates the indexes the queries rely on.
func (r *Repository) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = db.Collection("bookings").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("bookings_created_at"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("bookings_date"),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName("bookings_user"),
		},
	})
	if err != nil {
		return fmt.Errorf("bookings indexes: %w", err)
	}

	_, err = db.Collection("reviews").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tour", Value: 1}},
			Options: options.Index().SetName("reviews_tour"),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName("reviews_user"),
		},
	})
	if err != nil {
		return fmt.Errorf("reviews indexes: %w", err)
	}

	return nil
}
