package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Booking, error)
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	SumAmount(ctx context.Context) (float64, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*entity.Booking, error)
	SetPaymentReference(ctx context.Context, id primitive.ObjectID, reference string) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.BookingStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type bookingRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewBookingRepository(col *mongo.Collection, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		col: col,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	res, err := r.col.InsertOne(ctx, booking)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.Hex()),
			zap.String("tour_name", booking.TourName),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.Hex(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"user": userID}, opts)
}

// FindPage returns bookings sorted by creation time descending.
func (r *bookingRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *bookingRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *bookingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.Booking, error) {
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err), zap.Any("filter", filter))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []*entity.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		r.log.Error("Failed to decode bookings", zap.Error(err))
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

// SumAmount aggregates the amount of every booking document,
// independent of any pagination.
func (r *bookingRepository) SumAmount(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Error("Failed to aggregate booking amounts", zap.Error(err))
		return 0, fmt.Errorf("sum booking amounts: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalAmount float64 `bson:"totalAmount"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		r.log.Error("Failed to decode booking amount sum", zap.Error(err))
		return 0, fmt.Errorf("decode booking amount sum: %w", err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalAmount, nil
}

// UpdateFields applies a partial update and returns the updated document.
func (r *bookingRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*entity.Booking, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking entity.Booking
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&booking)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return nil, fmt.Errorf("update booking %s: %w", id.Hex(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) SetPaymentReference(ctx context.Context, id primitive.ObjectID, reference string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"paymentReference": reference}},
	)
	if err != nil {
		r.log.Error("Failed to set payment reference",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return fmt.Errorf("set payment reference on booking %s: %w", id.Hex(), err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id.Hex())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.BookingStatus) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.Hex(), string(status), err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id.Hex())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return fmt.Errorf("delete booking %s: %w", id.Hex(), err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("booking %s not found", id.Hex())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.Hex()))
	return nil
}
