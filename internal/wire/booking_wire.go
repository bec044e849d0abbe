package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Book a package
		r.Post("/api/bookings", bookingHandler.Book)

		// GET /api/user/{userId}/bookings - Own booking history
		r.Get("/api/user/{userId}/bookings", bookingHandler.UserList(false))

		// GET /api/user/{userId}/bookings/current - Own upcoming bookings
		r.Get("/api/user/{userId}/bookings/current", bookingHandler.UserList(true))

		// PUT /api/user/{userId}/bookings/{id}/cancel - Cancel a booking
		r.Put("/api/user/{userId}/bookings/{id}/cancel", bookingHandler.Cancel)

		// DELETE /api/user/{userId}/bookings/{id} - Remove a history entry
		r.Delete("/api/user/{userId}/bookings/{id}", bookingHandler.Delete)

		// GET /api/user/{userId}/travel-complete/{packageId} - Trip completion check
		r.Get("/api/user/{userId}/travel-complete/{packageId}", bookingHandler.TravelComplete)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/bookings - All bookings, searchable by buyer
		r.Get("/api/admin/bookings", bookingHandler.AdminList(false))

		// GET /api/admin/bookings/current - Upcoming booked trips only
		r.Get("/api/admin/bookings/current", bookingHandler.AdminList(true))
	})
}
