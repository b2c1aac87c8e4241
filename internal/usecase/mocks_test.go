package usecase

import (
	"context"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/gateway"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hand-rolled mocks backed by function fields. A nil field returns
// zero values, so tests only wire the calls they care about.

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByIDFn    func(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)

	createCalls int
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	m.createCalls++
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn == nil {
		return nil, nil
	}
	return m.findByEmailFn(ctx, email)
}

type mockBookingRepo struct {
	createFn          func(ctx context.Context, booking *entity.Booking) error
	findByIDFn        func(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error)
	findByUserIDFn    func(ctx context.Context, userID primitive.ObjectID) ([]*entity.Booking, error)
	findPageFn        func(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	findByDateRangeFn func(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)
	countFn           func(ctx context.Context) (int64, error)
	sumAmountFn       func(ctx context.Context) (float64, error)
	updateFieldsFn    func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*entity.Booking, error)
	setPaymentRefFn   func(ctx context.Context, id primitive.ObjectID, reference string) error
	updateStatusFn    func(ctx context.Context, id primitive.ObjectID, status entity.BookingStatus) error
	deleteFn          func(ctx context.Context, id primitive.ObjectID) error

	createCalls       int
	updateFieldsCalls int
	setPaymentRefs    []string
	statusUpdates     []entity.BookingStatus
	deleteCalls       int
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	m.createCalls++
	if m.createFn == nil {
		booking.ID = primitive.NewObjectID()
		return nil
	}
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Booking, error) {
	if m.findByUserIDFn == nil {
		return nil, nil
	}
	return m.findByUserIDFn(ctx, userID)
}

func (m *mockBookingRepo) FindPage(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	if m.findPageFn == nil {
		return nil, nil
	}
	return m.findPageFn(ctx, limit, offset)
}

func (m *mockBookingRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	if m.findByDateRangeFn == nil {
		return nil, nil
	}
	return m.findByDateRangeFn(ctx, from, to)
}

func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn == nil {
		return 0, nil
	}
	return m.countFn(ctx)
}

func (m *mockBookingRepo) SumAmount(ctx context.Context) (float64, error) {
	if m.sumAmountFn == nil {
		return 0, nil
	}
	return m.sumAmountFn(ctx)
}

func (m *mockBookingRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*entity.Booking, error) {
	m.updateFieldsCalls++
	if m.updateFieldsFn == nil {
		return nil, nil
	}
	return m.updateFieldsFn(ctx, id, fields)
}

func (m *mockBookingRepo) SetPaymentReference(ctx context.Context, id primitive.ObjectID, reference string) error {
	m.setPaymentRefs = append(m.setPaymentRefs, reference)
	if m.setPaymentRefFn == nil {
		return nil
	}
	return m.setPaymentRefFn(ctx, id, reference)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status entity.BookingStatus) error {
	m.statusUpdates = append(m.statusUpdates, status)
	if m.updateStatusFn == nil {
		return nil
	}
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.deleteCalls++
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockTourRepo struct {
	createFn     func(ctx context.Context, tour *entity.Tour) error
	findByIDFn   func(ctx context.Context, id primitive.ObjectID) (*entity.Tour, error)
	findAllFn    func(ctx context.Context) ([]*entity.Tour, error)
	findByCityFn func(ctx context.Context, city string) ([]*entity.Tour, error)
	updateFn     func(ctx context.Context, tour *entity.Tour) error
	deleteFn     func(ctx context.Context, id primitive.ObjectID) error
	pushReviewFn func(ctx context.Context, tourID, reviewID primitive.ObjectID) error

	createCalls int
	deleteCalls int
	pushedIDs   []primitive.ObjectID
}

func (m *mockTourRepo) Create(ctx context.Context, tour *entity.Tour) error {
	m.createCalls++
	if m.createFn == nil {
		tour.ID = primitive.NewObjectID()
		return nil
	}
	return m.createFn(ctx, tour)
}

func (m *mockTourRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Tour, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockTourRepo) FindAll(ctx context.Context) ([]*entity.Tour, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx)
}

func (m *mockTourRepo) FindByCity(ctx context.Context, city string) ([]*entity.Tour, error) {
	if m.findByCityFn == nil {
		return nil, nil
	}
	return m.findByCityFn(ctx, city)
}

func (m *mockTourRepo) Update(ctx context.Context, tour *entity.Tour) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, tour)
}

func (m *mockTourRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.deleteCalls++
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockTourRepo) PushReview(ctx context.Context, tourID, reviewID primitive.ObjectID) error {
	m.pushedIDs = append(m.pushedIDs, reviewID)
	if m.pushReviewFn == nil {
		return nil
	}
	return m.pushReviewFn(ctx, tourID, reviewID)
}

type mockReviewRepo struct {
	createFn         func(ctx context.Context, review *entity.Review) error
	findByIDFn       func(ctx context.Context, id primitive.ObjectID) (*entity.Review, error)
	findAllFn        func(ctx context.Context) ([]*entity.Review, error)
	findByTourIDFn   func(ctx context.Context, tourID primitive.ObjectID) ([]*entity.Review, error)
	findByUserIDFn   func(ctx context.Context, userID primitive.ObjectID) ([]*entity.Review, error)
	setVisibilityFn  func(ctx context.Context, id primitive.ObjectID, visible bool) error
	deleteFn         func(ctx context.Context, id primitive.ObjectID) error
	deleteByTourIDFn func(ctx context.Context, tourID primitive.ObjectID) (int64, error)

	createCalls         int
	visibilitySets      []bool
	deleteCalls         int
	deleteByTourIDCalls int
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	m.createCalls++
	if m.createFn == nil {
		review.ID = primitive.NewObjectID()
		return nil
	}
	return m.createFn(ctx, review)
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockReviewRepo) FindAll(ctx context.Context) ([]*entity.Review, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx)
}

func (m *mockReviewRepo) FindByTourID(ctx context.Context, tourID primitive.ObjectID) ([]*entity.Review, error) {
	if m.findByTourIDFn == nil {
		return nil, nil
	}
	return m.findByTourIDFn(ctx, tourID)
}

func (m *mockReviewRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Review, error) {
	if m.findByUserIDFn == nil {
		return nil, nil
	}
	return m.findByUserIDFn(ctx, userID)
}

func (m *mockReviewRepo) SetVisibility(ctx context.Context, id primitive.ObjectID, visible bool) error {
	m.visibilitySets = append(m.visibilitySets, visible)
	if m.setVisibilityFn == nil {
		return nil
	}
	return m.setVisibilityFn(ctx, id, visible)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.deleteCalls++
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockReviewRepo) DeleteByTourID(ctx context.Context, tourID primitive.ObjectID) (int64, error) {
	m.deleteByTourIDCalls++
	if m.deleteByTourIDFn == nil {
		return 0, nil
	}
	return m.deleteByTourIDFn(ctx, tourID)
}

type mockSingletonRepo struct {
	findFn    func(ctx context.Context) (*entity.SingletonTour, error)
	createFn  func(ctx context.Context, tour *entity.SingletonTour) error
	replaceFn func(ctx context.Context, tour *entity.SingletonTour) (*entity.SingletonTour, error)

	createCalls int
}

func (m *mockSingletonRepo) Find(ctx context.Context) (*entity.SingletonTour, error) {
	if m.findFn == nil {
		return nil, nil
	}
	return m.findFn(ctx)
}

func (m *mockSingletonRepo) Create(ctx context.Context, tour *entity.SingletonTour) error {
	m.createCalls++
	if m.createFn == nil {
		tour.ID = primitive.NewObjectID()
		return nil
	}
	return m.createFn(ctx, tour)
}

func (m *mockSingletonRepo) Replace(ctx context.Context, tour *entity.SingletonTour) (*entity.SingletonTour, error) {
	if m.replaceFn == nil {
		return nil, nil
	}
	return m.replaceFn(ctx, tour)
}

type mockRateFetcher struct {
	rate  float64
	err   error
	calls int
}

func (m *mockRateFetcher) USDToEGP(ctx context.Context) (float64, error) {
	m.calls++
	return m.rate, m.err
}

type mockPaymentGateway struct {
	intention *gateway.Intention
	err       error
	requests  []*gateway.IntentionRequest
}

func (m *mockPaymentGateway) CreateIntention(ctx context.Context, req *gateway.IntentionRequest) (*gateway.Intention, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.intention, nil
}
