package adaptor

import (
	"net/http"
	"strings"

	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Handler bundles every HTTP handler behind one handle for wiring.
type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Package *PackageHandler
	Booking *BookingHandler
	Rating  *RatingHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Package: NewPackageHandler(service.Package, config.App.UploadDir, log),
		Booking: NewBookingHandler(service.Booking, log),
		Rating:  NewRatingHandler(service.Rating, log),
	}
}

// handleServiceError maps usecase errors onto HTTP status codes by
// message. Unrecognized errors become a 500 with a generic message so
// internals never leak to clients.
func handleServiceError(w http.ResponseWriter, err error) {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "not found"):
		utils.ResponseNotFound(w, msg)
	case strings.Contains(msg, "unauthorized"):
		utils.ResponseUnauthorized(w, msg)
	case strings.Contains(msg, "invalid credentials"):
		utils.ResponseUnauthorized(w, msg)
	case strings.Contains(msg, "validation failed"),
		strings.Contains(msg, "invalid"),
		strings.Contains(msg, "already registered"),
		strings.Contains(msg, "already taken"),
		strings.Contains(msg, "already reviewed"),
		strings.Contains(msg, "must book this package"),
		strings.Contains(msg, "trip is completed"):
		utils.ResponseBadRequest(w, msg, nil)
	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}
