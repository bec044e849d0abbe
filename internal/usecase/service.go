package usecase

import (
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every usecase behind one handle for wiring.
type Service struct {
	Auth    AuthService
	User    UserService
	Package PackageService
	Booking BookingService
	Rating  RatingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Package: NewPackageService(repo, log),
		Booking: NewBookingService(repo, log),
		Rating:  NewRatingService(repo, log),
	}
}
