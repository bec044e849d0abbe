package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/packages/{id}/ratings - Recent ratings for a package
	r.Get("/api/packages/{id}/ratings", ratingHandler.List)

	// GET /api/packages/{id}/rating-average - Live aggregate
	r.Get("/api/packages/{id}/rating-average", ratingHandler.Average)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/ratings - Leave a rating/review
		r.Post("/api/ratings", ratingHandler.Give)

		// GET /api/ratings/can-review/{userId}/{packageId} - Eligibility check
		r.Get("/api/ratings/can-review/{userId}/{packageId}", ratingHandler.CanReview)

		// GET /api/ratings/given/{userId}/{packageId} - Rating already left
		r.Get("/api/ratings/given/{userId}/{packageId}", ratingHandler.Given)
	})
}
