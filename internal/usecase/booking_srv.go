package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// priceTolerance absorbs float rounding between the client-computed
// total and the server-side recomputation.
const priceTolerance = 0.01

// travelCompleted reports whether the trip has started or passed. A
// trip whose date equals the reference instant counts as completed.
func travelCompleted(travelDate, at time.Time) bool {
	return !travelDate.After(at)
}

type BookingService interface {
	Book(ctx context.Context, requesterID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetAdminBookings(ctx context.Context, searchTerm string, currentOnly bool) ([]response.BookingResponse, error)
	GetUserBookings(ctx context.Context, requesterID, pathUserID, searchTerm string, currentOnly bool) ([]response.BookingResponse, error)
	Cancel(ctx context.Context, requesterID, pathUserID, bookingID string) error
	DeleteHistory(ctx context.Context, requesterID, pathUserID, bookingID string) error
	CheckTravelComplete(ctx context.Context, requesterID, pathUserID, packageID string) (*response.TravelCompleteResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Book(ctx context.Context, requesterID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Buyers may only book for themselves
	if req.Buyer != requesterID {
		s.log.Warn("Booking buyer mismatch",
			zap.String("requester_id", requesterID),
			zap.String("buyer", req.Buyer),
		)
		return nil, fmt.Errorf("unauthorized: cannot book on behalf of another user")
	}

	buyerID, err := uuid.Parse(req.Buyer)
	if err != nil {
		return nil, fmt.Errorf("invalid buyer ID format %s: %w", req.Buyer, err)
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", req.PackageID, err)
	}

	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		s.log.Error("Failed to load package for booking", zap.Error(err), zap.String("package_id", req.PackageID))
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", req.PackageID)
	}

	// The submitted total must match the current discounted price
	expected := pkg.DiscountPrice * float64(req.Persons)
	if math.Abs(req.TotalPrice-expected) > priceTolerance {
		s.log.Warn("Booking price mismatch",
			zap.String("package_id", req.PackageID),
			zap.Float64("submitted", req.TotalPrice),
			zap.Float64("expected", expected),
		)
		return nil, fmt.Errorf("invalid total price: expected %.2f for %d persons", expected, req.Persons)
	}

	travelDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid travel date %s: %w", req.Date, err)
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PackageID:  packageID,
		BuyerID:    buyerID,
		Persons:    req.Persons,
		TotalPrice: expected,
		TravelDate: travelDate,
		Status:     entity.BookingStatusBooked,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("package_id", req.PackageID),
			zap.String("buyer_id", req.Buyer),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("package_id", req.PackageID),
		zap.String("buyer_id", req.Buyer),
		zap.Int("persons", req.Persons),
		zap.Float64("total_price", expected),
	)

	resp := response.BookingToResponse(booking)
	resp.PackageName = pkg.Name
	return &resp, nil
}

func (s *bookingService) GetAdminBookings(ctx context.Context, searchTerm string, currentOnly bool) ([]response.BookingResponse, error) {
	details, err := s.repo.Booking.FindAdmin(ctx, searchTerm, currentOnly)
	if err != nil {
		s.log.Error("Failed to get admin bookings", zap.Error(err))
		return nil, fmt.Errorf("get admin bookings: %w", err)
	}

	return toBookingResponses(details), nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, requesterID, pathUserID, searchTerm string, currentOnly bool) ([]response.BookingResponse, error) {
	if requesterID != pathUserID {
		s.log.Warn("Booking listing owner mismatch",
			zap.String("requester_id", requesterID),
			zap.String("path_user_id", pathUserID),
		)
		return nil, fmt.Errorf("unauthorized: cannot view another user's bookings")
	}

	buyerID, err := uuid.Parse(pathUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", pathUserID, err)
	}

	details, err := s.repo.Booking.FindByBuyer(ctx, buyerID, searchTerm, currentOnly)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("buyer_id", pathUserID))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	return toBookingResponses(details), nil
}

func (s *bookingService) Cancel(ctx context.Context, requesterID, pathUserID, bookingID string) error {
	booking, err := s.authorizedBooking(ctx, requesterID, pathUserID, bookingID)
	if err != nil {
		return err
	}

	// Cancelling twice is a no-op at the status level
	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("buyer_id", pathUserID),
	)
	return nil
}

func (s *bookingService) DeleteHistory(ctx context.Context, requesterID, pathUserID, bookingID string) error {
	booking, err := s.authorizedBooking(ctx, requesterID, pathUserID, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("delete booking: %w", err)
	}

	return nil
}

func (s *bookingService) CheckTravelComplete(ctx context.Context, requesterID, pathUserID, packageID string) (*response.TravelCompleteResponse, error) {
	if requesterID != pathUserID {
		return nil, fmt.Errorf("unauthorized: cannot check another user's bookings")
	}

	buyerID, err := uuid.Parse(pathUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", pathUserID, err)
	}
	pkgID, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	booking, err := s.repo.Booking.FindByBuyerAndPackage(ctx, buyerID, pkgID)
	if err != nil {
		s.log.Error("Failed to check travel completion",
			zap.Error(err),
			zap.String("buyer_id", pathUserID),
			zap.String("package_id", packageID),
		)
		return nil, fmt.Errorf("check travel completion: %w", err)
	}
	if booking == nil {
		return &response.TravelCompleteResponse{
			Found:     false,
			Completed: false,
			Message:   "No booking found for this package",
		}, nil
	}

	if travelCompleted(booking.TravelDate, time.Now()) {
		return &response.TravelCompleteResponse{
			Found:     true,
			Completed: true,
			Message:   "Travel completed",
		}, nil
	}

	return &response.TravelCompleteResponse{
		Found:     true,
		Completed: false,
		Message:   "Travel not yet completed",
	}, nil
}

// authorizedBooking parses the IDs, enforces the owner check and loads
// the booking, failing when it does not exist or belongs to someone
// else.
func (s *bookingService) authorizedBooking(ctx context.Context, requesterID, pathUserID, bookingID string) (*entity.Booking, error) {
	if requesterID != pathUserID {
		s.log.Warn("Booking owner mismatch",
			zap.String("requester_id", requesterID),
			zap.String("path_user_id", pathUserID),
		)
		return nil, fmt.Errorf("unauthorized: cannot modify another user's booking")
	}

	buyerID, err := uuid.Parse(pathUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", pathUserID, err)
	}
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.BuyerID != buyerID {
		s.log.Warn("Booking belongs to another buyer",
			zap.String("booking_id", bookingID),
			zap.String("requester_id", requesterID),
		)
		return nil, fmt.Errorf("unauthorized: booking belongs to another user")
	}

	return booking, nil
}

func toBookingResponses(details []*entity.BookingDetail) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(details))
	for i, d := range details {
		responses[i] = response.BookingDetailToResponse(d)
	}
	return responses
}
