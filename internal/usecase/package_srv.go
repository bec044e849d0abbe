package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maximum discount percentage applied to a package price
const maxDiscountPct = 20

type PackageService interface {
	CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error)
	GetPackages(ctx context.Context, req *request.PackageListRequest) ([]response.PackageResponse, error)
	GetPackageByID(ctx context.Context, packageID string) (*response.PackageResponse, error)
	UpdatePackage(ctx context.Context, packageID string, req *request.PackageRequest) (*response.PackageResponse, error)
	DeletePackage(ctx context.Context, packageID string) error
}

type packageService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPackageService(repo *repository.Repository, log *zap.Logger) PackageService {
	return &packageService{
		repo: repo,
		log:  log.With(zap.String("service", "package")),
	}
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	applied := utils.ClampDiscount(req.Discount, maxDiscountPct)
	discountPrice := req.Price - req.Price*applied/100

	now := time.Now()
	pkg := &entity.Package{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Description:    req.Description,
		Destination:    req.Destination,
		Category:       req.Category,
		Days:           req.Days,
		Nights:         req.Nights,
		Accommodation:  req.Accommodation,
		Transportation: req.Transportation,
		Price:          req.Price,
		DiscountPrice:  discountPrice,
		Offer:          applied > 0,
		Meals:          req.Meals,
		Activities:     req.Activities,
		Inclusions:     req.Inclusions,
		Exclusions:     req.Exclusions,
		Itinerary:      req.Itinerary,
		BookingTips:    req.BookingTips,
		Hotels:         req.Hotels,
		Foods:          req.Foods,
		Features:       req.Features,
		Images:         req.Images,
	}

	if err := s.repo.Package.Create(ctx, pkg); err != nil {
		s.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("Package created",
		zap.String("package_id", pkg.ID.String()),
		zap.String("name", pkg.Name),
		zap.Float64("price", pkg.Price),
		zap.Float64("discount_price", pkg.DiscountPrice),
		zap.Bool("offer", pkg.Offer),
	)

	pkgResp := response.PackageToResponse(pkg)
	return &pkgResp, nil
}

func (s *packageService) GetPackages(ctx context.Context, req *request.PackageListRequest) ([]response.PackageResponse, error) {
	limit := req.Limit
	if limit < 1 {
		limit = 8
	}
	offset := req.StartIndex
	if offset < 0 {
		offset = 0
	}

	filter := repository.PackageFilter{
		Category:   req.Category,
		SearchTerm: req.SearchTerm,
		OfferOnly:  req.OfferOnly,
		SortBy:     req.Sort,
		Order:      req.Order,
		Offset:     offset,
		Limit:      limit,
	}

	packages, err := s.repo.Package.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get packages", zap.Error(err))
		return nil, fmt.Errorf("get packages: %w", err)
	}

	// Empty result is not an error
	packageResponses := make([]response.PackageResponse, len(packages))
	for i, pkg := range packages {
		packageResponses[i] = response.PackageToResponse(pkg)
	}

	s.log.Debug("Packages retrieved",
		zap.Int("count", len(packages)),
		zap.String("category", req.Category),
		zap.String("search_term", req.SearchTerm),
	)

	return packageResponses, nil
}

func (s *packageService) GetPackageByID(ctx context.Context, packageID string) (*response.PackageResponse, error) {
	id, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	pkg, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get package", zap.Error(err), zap.String("package_id", packageID))
		return nil, fmt.Errorf("get package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", packageID)
	}

	pkgResp := response.PackageToResponse(pkg)
	return &pkgResp, nil
}

func (s *packageService) UpdatePackage(ctx context.Context, packageID string, req *request.PackageRequest) (*response.PackageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	existing, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find package for update", zap.Error(err), zap.String("package_id", packageID))
		return nil, fmt.Errorf("find package: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("package %s not found", packageID)
	}

	applied := utils.ClampDiscount(req.Discount, maxDiscountPct)
	discountPrice := req.Price - req.Price*applied/100

	// All editable fields are overwritten; images are only ever appended
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Destination = req.Destination
	existing.Category = req.Category
	existing.Days = req.Days
	existing.Nights = req.Nights
	existing.Accommodation = req.Accommodation
	existing.Transportation = req.Transportation
	existing.Price = req.Price
	existing.DiscountPrice = discountPrice
	existing.Offer = applied > 0
	existing.Meals = req.Meals
	existing.Activities = req.Activities
	existing.Inclusions = req.Inclusions
	existing.Exclusions = req.Exclusions
	existing.Itinerary = req.Itinerary
	existing.BookingTips = req.BookingTips
	existing.Hotels = req.Hotels
	existing.Foods = req.Foods
	existing.Features = req.Features
	existing.Images = append(existing.Images, req.Images...)
	existing.UpdatedAt = time.Now()

	if err := s.repo.Package.Update(ctx, existing); err != nil {
		s.log.Error("Failed to update package", zap.Error(err), zap.String("package_id", packageID))
		return nil, fmt.Errorf("update package: %w", err)
	}

	s.log.Info("Package updated",
		zap.String("package_id", packageID),
		zap.Int("new_images", len(req.Images)),
	)

	pkgResp := response.PackageToResponse(existing)
	return &pkgResp, nil
}

func (s *packageService) DeletePackage(ctx context.Context, packageID string) error {
	id, err := uuid.Parse(packageID)
	if err != nil {
		return fmt.Errorf("invalid package ID format %s: %w", packageID, err)
	}

	// Dependent bookings and ratings are intentionally left in place
	if err := s.repo.Package.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete package", zap.Error(err), zap.String("package_id", packageID))
		return fmt.Errorf("delete package: %w", err)
	}

	return nil
}
