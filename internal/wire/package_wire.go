package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePackage(
	r chi.Router,
	packageHandler *adaptor.PackageHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/packages - Browse the catalog with filter/sort/pagination
	r.Get("/api/packages", packageHandler.List)

	// GET /api/packages/{id} - Package detail
	r.Get("/api/packages/{id}", packageHandler.Get)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/packages - Create package (multipart form)
		r.Post("/api/admin/packages", packageHandler.Create)

		// PUT /api/admin/packages/{id} - Update package (multipart form)
		r.Put("/api/admin/packages/{id}", packageHandler.Update)

		// DELETE /api/admin/packages/{id} - Delete package
		r.Delete("/api/admin/packages/{id}", packageHandler.Delete)
	})
}
