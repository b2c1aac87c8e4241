package usecase

import (
	"context"
	"strings"
	"testing"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestCreateReview(t *testing.T) {
	tourID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	tourLookup := func(ctx context.Context, id primitive.ObjectID) (*entity.Tour, error) {
		if id == tourID {
			return &entity.Tour{ID: tourID}, nil
		}
		return nil, nil
	}

	t.Run("Given an existing tour then the review is stored and linked", func(t *testing.T) {
		reviews := &mockReviewRepo{}
		tours := &mockTourRepo{findByIDFn: tourLookup}
		srv := NewReviewService(reviews, tours, zap.NewNop())

		review, err := srv.CreateReview(context.Background(), tourID.Hex(), userID.Hex(),
			&request.CreateReviewForm{Rating: 5, Comment: "Wonderful guide"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !review.Visible {
			t.Error("new review must be visible")
		}
		if review.Media == nil {
			t.Error("media must default to an empty slice")
		}
		if len(tours.pushedIDs) != 1 || tours.pushedIDs[0] != review.ID {
			t.Errorf("pushed review ids = %v, want [%s]", tours.pushedIDs, review.ID.Hex())
		}
	})

	t.Run("Given an unknown tour then no review is written", func(t *testing.T) {
		reviews := &mockReviewRepo{}
		srv := NewReviewService(reviews, &mockTourRepo{}, zap.NewNop())

		_, err := srv.CreateReview(context.Background(), primitive.NewObjectID().Hex(), userID.Hex(),
			&request.CreateReviewForm{Rating: 4}, nil)
		if err == nil || !strings.Contains(err.Error(), "tour not found") {
			t.Fatalf("error = %v, want tour not found", err)
		}
		if reviews.createCalls != 0 {
			t.Errorf("create called %d times, want 0", reviews.createCalls)
		}
	})

	t.Run("Given a rating outside 1 to 5 then validation rejects it", func(t *testing.T) {
		srv := NewReviewService(&mockReviewRepo{}, &mockTourRepo{findByIDFn: tourLookup}, zap.NewNop())

		_, err := srv.CreateReview(context.Background(), tourID.Hex(), userID.Hex(),
			&request.CreateReviewForm{Rating: 6}, nil)
		if err == nil || !strings.Contains(err.Error(), "validation failed") {
			t.Fatalf("error = %v, want validation failure", err)
		}
	})
}

func TestGetUserReviews(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("Given the owner asking then their reviews are returned", func(t *testing.T) {
		reviews := &mockReviewRepo{
			findByUserIDFn: func(ctx context.Context, uid primitive.ObjectID) ([]*entity.Review, error) {
				return []*entity.Review{{ID: primitive.NewObjectID(), UserID: uid}}, nil
			},
		}
		srv := NewReviewService(reviews, &mockTourRepo{}, zap.NewNop())

		got, err := srv.GetUserReviews(context.Background(), userID.Hex(), userID.Hex())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("reviews = %d, want 1", len(got))
		}
	})

	t.Run("Given a different requester then the listing is forbidden", func(t *testing.T) {
		srv := NewReviewService(&mockReviewRepo{}, &mockTourRepo{}, zap.NewNop())

		_, err := srv.GetUserReviews(context.Background(), userID.Hex(), primitive.NewObjectID().Hex())
		if err == nil || !strings.Contains(err.Error(), "not allowed") {
			t.Fatalf("error = %v, want not allowed", err)
		}
	})
}

func TestToggleVisibility(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("Given a visible review then toggling hides it", func(t *testing.T) {
		reviews := &mockReviewRepo{
			findByIDFn: func(ctx context.Context, rid primitive.ObjectID) (*entity.Review, error) {
				return &entity.Review{ID: rid, Visible: true}, nil
			},
		}
		srv := NewReviewService(reviews, &mockTourRepo{}, zap.NewNop())

		review, err := srv.ToggleVisibility(context.Background(), id.Hex())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if review.Visible {
			t.Error("review must be hidden after toggle")
		}
		if len(reviews.visibilitySets) != 1 || reviews.visibilitySets[0] {
			t.Errorf("visibility writes = %v, want [false]", reviews.visibilitySets)
		}
	})

	t.Run("Given an unknown review then toggle reports not found", func(t *testing.T) {
		srv := NewReviewService(&mockReviewRepo{}, &mockTourRepo{}, zap.NewNop())

		_, err := srv.ToggleVisibility(context.Background(), id.Hex())
		if err == nil || !strings.Contains(err.Error(), "review not found") {
			t.Fatalf("error = %v, want review not found", err)
		}
	})
}

func TestDeleteReview(t *testing.T) {
	t.Run("Given an unknown review then nothing is deleted", func(t *testing.T) {
		reviews := &mockReviewRepo{}
		srv := NewReviewService(reviews, &mockTourRepo{}, zap.NewNop())

		err := srv.DeleteReview(context.Background(), primitive.NewObjectID().Hex())
		if err == nil || !strings.Contains(err.Error(), "review not found") {
			t.Fatalf("error = %v, want review not found", err)
		}
		if reviews.deleteCalls != 0 {
			t.Errorf("delete called %d times, want 0", reviews.deleteCalls)
		}
	})
}
