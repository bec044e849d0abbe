package usecase

import (
	"context"
	"errors"
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

// Domain reasons a user may not review; everything else coming out of
// the eligibility check is an infrastructure failure.
var (
	ErrMustBookFirst    = errors.New("you must book this package before leaving a review")
	ErrTripNotCompleted = errors.New("you can only review after the trip is completed")
)

type RatingService interface {
	GiveRating(ctx context.Context, requesterID string, req *request.GiveRatingRequest) (*response.RatingStatsResponse, error)
	CanReview(ctx context.Context, userID, packageID string) (*response.CanReviewResponse, error)
	RatingGiven(ctx context.Context, userID, packageID string) (*response.RatingResponse, error)
	GetAverageRating(ctx context.Context, packageID string) (*response.RatingStatsResponse, error)
	GetPackageRatings(ctx context.Context, packageID string, limit int) ([]response.RatingResponse, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) GiveRating(ctx context.Context, requesterID string, req *request.GiveRatingRequest) (*response.RatingStatsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Give rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.UserRef != requesterID {
		s.log.Warn("Rating user mismatch",
			zap.String("requester_id", requesterID),
			zap.String("user_ref", req.UserRef),
		)
		return nil, fmt.Errorf("unauthorized: cannot rate on behalf of another user")
	}

	userRef, err := uuid.Parse(req.UserRef)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserRef, err)
	}
	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", req.PackageID, err)
	}

	if err := s.checkReviewEligibility(ctx, userRef, packageID); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, userRef)
	if err != nil {
		s.log.Error("Failed to load rating author", zap.Error(err), zap.String("user_ref", req.UserRef))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.UserRef)
	}

	rating := &entity.Rating{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		PackageID: packageID,
		UserRef:   userRef,
		Rating:    req.Rating,
		Review:    req.Review,
		Username:  user.Username,
		Avatar:    user.Avatar,
	}

	avg, count, err := s.repo.Rating.Create(ctx, rating)
	if err != nil {
		s.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("user_ref", req.UserRef),
			zap.String("package_id", req.PackageID),
		)
		return nil, err
	}

	s.log.Info("Rating created",
		zap.String("rating_id", rating.ID.String()),
		zap.String("package_id", req.PackageID),
		zap.Int("rating", req.Rating),
		zap.Float64("new_average", avg),
		zap.Int64("total_ratings", count),
	)

	return &response.RatingStatsResponse{Rating: avg, TotalRatings: count}, nil
}

func (s *ratingService) CanReview(ctx context.Context, userID, packageID string) (*response.CanReviewResponse, error) {
	userRef, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	pkgID, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	if err := s.checkReviewEligibility(ctx, userRef, pkgID); err != nil {
		if errors.Is(err, ErrMustBookFirst) || errors.Is(err, ErrTripNotCompleted) {
			return &response.CanReviewResponse{CanReview: false, Message: err.Error()}, nil
		}
		return nil, err
	}

	existing, err := s.repo.Rating.FindByUserAndPackage(ctx, userRef, pkgID)
	if err != nil {
		return nil, fmt.Errorf("find existing rating: %w", err)
	}
	if existing != nil {
		return &response.CanReviewResponse{CanReview: false, Message: "You have already reviewed this package"}, nil
	}

	return &response.CanReviewResponse{CanReview: true, Message: "You can review this package"}, nil
}

func (s *ratingService) RatingGiven(ctx context.Context, userID, packageID string) (*response.RatingResponse, error) {
	userRef, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	pkgID, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	rating, err := s.repo.Rating.FindByUserAndPackage(ctx, userRef, pkgID)
	if err != nil {
		s.log.Error("Failed to find given rating",
			zap.Error(err),
			zap.String("user_ref", userID),
			zap.String("package_id", packageID),
		)
		return nil, fmt.Errorf("find rating: %w", err)
	}
	if rating == nil {
		return nil, fmt.Errorf("rating not found")
	}

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) GetAverageRating(ctx context.Context, packageID string) (*response.RatingStatsResponse, error) {
	pkgID, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	avg, count, err := s.repo.Rating.GetPackageRatingStats(ctx, pkgID)
	if err != nil {
		s.log.Error("Failed to get average rating", zap.Error(err), zap.String("package_id", packageID))
		return nil, fmt.Errorf("get average rating: %w", err)
	}

	// No ratings yet yields 0 / 0
	avg = math.Round(avg*10) / 10

	return &response.RatingStatsResponse{Rating: avg, TotalRatings: count}, nil
}

func (s *ratingService) GetPackageRatings(ctx context.Context, packageID string, limit int) ([]response.RatingResponse, error) {
	pkgID, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	ratings, err := s.repo.Rating.FindByPackageID(ctx, pkgID, limit)
	if err != nil {
		s.log.Error("Failed to get package ratings", zap.Error(err), zap.String("package_id", packageID))
		return nil, fmt.Errorf("get package ratings: %w", err)
	}

	responses := make([]response.RatingResponse, len(ratings))
	for i, rating := range ratings {
		responses[i] = response.RatingToResponse(rating)
	}
	return responses, nil
}

// checkReviewEligibility enforces that the user booked the package and
// that the trip date has passed.
func (s *ratingService) checkReviewEligibility(ctx context.Context, userRef, packageID uuid.UUID) error {
	booking, err := s.repo.Booking.FindByBuyerAndPackage(ctx, userRef, packageID)
	if err != nil {
		s.log.Error("Failed to check review eligibility",
			zap.Error(err),
			zap.String("user_ref", userRef.String()),
			zap.String("package_id", packageID.String()),
		)
		return fmt.Errorf("check review eligibility: %w", err)
	}
	if booking == nil {
		return ErrMustBookFirst
	}
	if !travelCompleted(booking.TravelDate, time.Now()) {
		return ErrTripNotCompleted
	}
	return nil
}
