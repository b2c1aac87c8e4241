package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/gateway"
	"travel-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.BookingListResponse, error)
	GetBookingByID(ctx context.Context, id string) (*entity.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error)
	UpdateBooking(ctx context.Context, id string, fields map[string]any) (*entity.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	ExportMonthCSV(ctx context.Context, year, month int) ([]byte, error)
}

type bookingService struct {
	repo     *repository.Repository
	rates    gateway.RateFetcher
	payments gateway.PaymentGateway
	config   *utils.Config
	log      *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	rates gateway.RateFetcher,
	payments gateway.PaymentGateway,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		rates:    rates,
		payments: payments,
		config:   config,
		log:      log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs the full booking workflow: resolve the user, fetch
// the USD to EGP rate, convert the amount, persist the booking, create
// the payment intention, then attach the gateway reference. A gateway
// failure after the insert marks the booking cancelled instead of
// leaving it orphaned in pending.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", req.UserID)
	}

	bookingDate, err := request.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %s", req.Date)
	}

	arrivalDate, err := request.ParseOptionalDate(req.ArrivalDate)
	if err != nil {
		return nil, fmt.Errorf("invalid arrival date: %s", req.ArrivalDate)
	}

	departureDate, err := request.ParseOptionalDate(req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("invalid departure date: %s", req.DepartureDate)
	}

	// Resolve the referenced user. The id is taken as given, not
	// cross-checked against the token subject.
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// Fetch the exchange rate before any write.
	rate, err := s.rates.USDToEGP(ctx)
	if err != nil {
		s.log.Error("Failed to fetch exchange rate", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch exchange rate")
	}

	// The submitted amount is USD; only the converted value is ever
	// persisted or sent onward.
	amountEGP := utils.Round2(req.Amount * rate)

	booking := &entity.Booking{
		UserID:            userID,
		TourName:          req.TourName,
		Email:             req.Email,
		ArrivalDate:       arrivalDate,
		DepartureDate:     departureDate,
		TripLocation:      req.TripLocation,
		Adults:            req.Adults,
		Children6To11:     req.Children6To11,
		ChildrenUnder6:    req.ChildrenUnder6,
		Transportation:    req.Transportation,
		Guide:             req.Guide,
		Car:               req.Car,
		AdditionalQueries: req.AdditionalQueries,
		Date:              bookingDate,
		Time:              req.Time,
		CellPhone:         req.CellPhone,
		PaymentName:       req.PaymentName,
		Amount:            amountEGP,
		Status:            entity.BookingStatusPending,
		CreatedAt:         time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", req.UserID),
			zap.String("tour_name", req.TourName),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	intention, err := s.payments.CreateIntention(ctx, &gateway.IntentionRequest{
		AmountCents:    utils.ToMinorUnits(amountEGP),
		Currency:       s.config.Payment.Currency,
		PaymentMethods: []int{s.config.Payment.MethodID},
		BillingData: gateway.BillingData{
			Apartment:   req.Apartment,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			Street:      req.Street,
			Building:    req.Building,
			PhoneNumber: req.CellPhone,
			City:        req.City,
			Country:     req.Country,
			Email:       req.Email,
			Floor:       req.Floor,
			State:       req.State,
		},
		SpecialReference: fmt.Sprintf("booking-%s", booking.ID.Hex()),
		NotificationURL:  s.config.Payment.NotificationURL,
		RedirectionURL:   s.config.Payment.RedirectionURL,
	})
	if err != nil {
		// Compensate: the booking must not linger in pending with
		// no payment reference.
		if cancelErr := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); cancelErr != nil {
			s.log.Error("Failed to cancel booking after gateway failure",
				zap.Error(cancelErr),
				zap.String("booking_id", booking.ID.Hex()),
			)
		}
		s.log.Error("Payment intention failed, booking cancelled",
			zap.Error(err),
			zap.String("booking_id", booking.ID.Hex()),
		)
		return nil, fmt.Errorf("payment gateway error")
	}

	if err := s.repo.Booking.SetPaymentReference(ctx, booking.ID, intention.ID); err != nil {
		s.log.Error("Failed to attach payment reference",
			zap.Error(err),
			zap.String("booking_id", booking.ID.Hex()),
			zap.String("intention_id", intention.ID),
		)
		return nil, fmt.Errorf("attach payment reference: %w", err)
	}
	booking.PaymentReference = intention.ID

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.Hex()),
		zap.String("user_id", req.UserID),
		zap.Float64("amount_egp", amountEGP),
		zap.Float64("rate", rate),
	)

	return &response.CreateBookingResponse{
		Booking:      booking,
		ClientSecret: intention.ClientSecret,
		PaymentURL:   intention.RedirectURL,
	}, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.BookingListResponse, error) {
	limit := req.PerPage()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindPage(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	// Sum over every document, regardless of the requested page.
	totalAmount, err := s.repo.Booking.SumAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum booking amounts: %w", err)
	}

	return &response.BookingListResponse{
		Bookings: bookings,
		Meta: response.BookingListMeta{
			Total:       total,
			TotalAmount: totalAmount,
			Page:        req.Page,
			Pages:       utils.CalculateTotalPages(total, limit),
		},
	}, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (*entity.Booking, error) {
	bookingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", id)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	return booking, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]*entity.Booking, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s", userID)
	}

	user, err := s.repo.User.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	return bookings, nil
}

// bookingUpdateAllowList is the only field set an admin update may touch.
var bookingUpdateAllowList = map[string]struct{}{
	"time":      {},
	"cellPhone": {},
	"status":    {},
}

// UpdateBooking applies a partial update restricted to the allow-list;
// any other key rejects the request wholesale.
func (s *bookingService) UpdateBooking(ctx context.Context, id string, fields map[string]any) (*entity.Booking, error) {
	bookingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", id)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("invalid fields in request body")
	}

	update := bson.M{}
	for key, value := range fields {
		if _, ok := bookingUpdateAllowList[key]; !ok {
			return nil, fmt.Errorf("invalid fields in request body")
		}

		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("invalid value for field %s", key)
		}

		switch key {
		case "status":
			switch entity.BookingStatus(str) {
			case entity.BookingStatusPending, entity.BookingStatusApproved, entity.BookingStatusCancelled:
			default:
				return nil, fmt.Errorf("invalid status %s", str)
			}
		case "cellPhone":
			if errs := utils.ValidateStruct(struct {
				CellPhone string `validate:"required,cellphone"`
			}{str}); len(errs) > 0 {
				return nil, fmt.Errorf("invalid cell phone %s", str)
			}
		}

		update[key] = str
	}

	booking, err := s.repo.Booking.UpdateFields(ctx, bookingID, update)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", id),
		zap.Any("fields", update),
	)

	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id string) error {
	bookingID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s", id)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking not found")
	}

	// Deletion is local only; any gateway-side intention is not
	// reconciled.
	return s.repo.Booking.Delete(ctx, bookingID)
}

var csvHeader = []string{
	"Booking ID", "Full Name", "User Email", "Tour Name",
	"Arrival Date", "Departure Date", "Trip Location",
	"Adults", "Children (6-11)", "Children (<6)",
	"Transportation", "Guide", "Car", "Additional Queries",
	"Date", "Time", "Cell Phone", "Payment Name", "Amount", "Status",
}

// ExportMonthCSV renders every booking dated within the calendar month.
func (s *bookingService) ExportMonthCSV(ctx context.Context, year, month int) ([]byte, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	bookings, err := s.repo.Booking.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("find bookings for export: %w", err)
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("no bookings found for this period")
	}

	// User names are joined in per booking; the cache avoids
	// re-fetching repeat bookers.
	users := map[primitive.ObjectID]*entity.User{}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, b := range bookings {
		user, ok := users[b.UserID]
		if !ok {
			user, err = s.repo.User.FindByID(ctx, b.UserID)
			if err != nil {
				return nil, fmt.Errorf("look up booking user: %w", err)
			}
			users[b.UserID] = user
		}

		fullName, userEmail := "", ""
		if user != nil {
			fullName = user.FirstName + " " + user.LastName
			userEmail = user.Email
		}

		row := []string{
			b.ID.Hex(),
			fullName,
			userEmail,
			b.TourName,
			formatCSVDate(b.ArrivalDate),
			formatCSVDate(b.DepartureDate),
			b.TripLocation,
			strconv.Itoa(b.Adults),
			strconv.Itoa(b.Children6To11),
			strconv.Itoa(b.ChildrenUnder6),
			b.Transportation,
			b.Guide,
			b.Car,
			b.AdditionalQueries,
			b.Date.Format("02/01/2006"),
			b.Time,
			b.CellPhone,
			b.PaymentName,
			strconv.FormatFloat(b.Amount, 'f', 2, 64),
			string(b.Status),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func formatCSVDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
