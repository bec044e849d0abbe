package repository

import (
	"context"
	"fmt"
	"strings"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PackageFilter holds the optional filters for the public listing.
type PackageFilter struct {
	Category   string // anchored, case-insensitive full match
	SearchTerm string // substring across name OR destination
	OfferOnly  bool
	SortBy     string
	Order      string // "asc" or "desc"
	Offset     int
	Limit      int
}

// whitelist of sortable fields (query name -> column)
var packageSortColumns = map[string]string{
	"createdAt":            "created_at",
	"packageName":          "package_name",
	"packagePrice":         "package_price",
	"packageDiscountPrice": "package_discount_price",
	"packageRating":        "rating_avg",
	"packageTotalRatings":  "rating_count",
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindAll(ctx context.Context, filter PackageFilter) ([]*entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `id, package_name, package_description, package_destination, package_category,
	       package_days, package_nights, package_accommodation, package_transportation,
	       package_price, package_discount_price, package_offer,
	       package_meals, package_activities, inclusions, exclusions, itinerary,
	       booking_tips, hotels, foods, features, package_images,
	       rating_avg, rating_count, created_at, updated_at`

func scanPackage(row pgx.Row, pkg *entity.Package) error {
	return row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.Destination,
		&pkg.Category,
		&pkg.Days,
		&pkg.Nights,
		&pkg.Accommodation,
		&pkg.Transportation,
		&pkg.Price,
		&pkg.DiscountPrice,
		&pkg.Offer,
		&pkg.Meals,
		&pkg.Activities,
		&pkg.Inclusions,
		&pkg.Exclusions,
		&pkg.Itinerary,
		&pkg.BookingTips,
		&pkg.Hotels,
		&pkg.Foods,
		&pkg.Features,
		&pkg.Images,
		&pkg.RatingAvg,
		&pkg.RatingCount,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (id, package_name, package_description, package_destination, package_category,
		                      package_days, package_nights, package_accommodation, package_transportation,
		                      package_price, package_discount_price, package_offer,
		                      package_meals, package_activities, inclusions, exclusions, itinerary,
		                      booking_tips, hotels, foods, features, package_images,
		                      rating_avg, rating_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.Destination,
		pkg.Category,
		pkg.Days,
		pkg.Nights,
		pkg.Accommodation,
		pkg.Transportation,
		pkg.Price,
		pkg.DiscountPrice,
		pkg.Offer,
		pkg.Meals,
		pkg.Activities,
		pkg.Inclusions,
		pkg.Exclusions,
		pkg.Itinerary,
		pkg.BookingTips,
		pkg.Hotels,
		pkg.Foods,
		pkg.Features,
		pkg.Images,
		pkg.RatingAvg,
		pkg.RatingCount,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("name", pkg.Name),
		)
		return fmt.Errorf("failed to create package: %w", err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	var pkg entity.Package
	err := scanPackage(r.db.QueryRow(ctx, query, id), &pkg)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find package: %w", err)
	}

	return &pkg, nil
}

func (r *packageRepository) FindAll(ctx context.Context, filter PackageFilter) ([]*entity.Package, error) {
	// Build query with optional filters
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + packageColumns + ` FROM packages WHERE 1=1`)

	args := []interface{}{}
	argCount := 1

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND LOWER(package_category) = LOWER($%d)", argCount))
		args = append(args, filter.Category)
		argCount++
	}

	if filter.SearchTerm != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (package_name ILIKE '%%' || $%d || '%%' OR package_destination ILIKE '%%' || $%d || '%%')",
			argCount, argCount))
		args = append(args, filter.SearchTerm)
		argCount++
	}

	if filter.OfferOnly {
		queryBuilder.WriteString(" AND package_offer = TRUE")
	}

	// Sort only by whitelisted columns
	sortColumn, ok := packageSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortColumn, direction))

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find packages",
			zap.Error(err),
			zap.String("category", filter.Category),
			zap.String("search_term", filter.SearchTerm),
			zap.Bool("offer_only", filter.OfferOnly),
		)
		return nil, fmt.Errorf("failed to find packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		var pkg entity.Package
		if err := scanPackage(rows, &pkg); err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Packages found",
		zap.Int("count", len(packages)),
		zap.Int("offset", filter.Offset),
		zap.Int("limit", filter.Limit),
	)

	return packages, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	query := `
		UPDATE packages
		SET package_name = $2, package_description = $3, package_destination = $4,
		    package_category = $5, package_days = $6, package_nights = $7,
		    package_accommodation = $8, package_transportation = $9,
		    package_price = $10, package_discount_price = $11, package_offer = $12,
		    package_meals = $13, package_activities = $14, inclusions = $15,
		    exclusions = $16, itinerary = $17, booking_tips = $18, hotels = $19,
		    foods = $20, features = $21, package_images = $22, updated_at = $23
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.Destination,
		pkg.Category,
		pkg.Days,
		pkg.Nights,
		pkg.Accommodation,
		pkg.Transportation,
		pkg.Price,
		pkg.DiscountPrice,
		pkg.Offer,
		pkg.Meals,
		pkg.Activities,
		pkg.Inclusions,
		pkg.Exclusions,
		pkg.Itinerary,
		pkg.BookingTips,
		pkg.Hotels,
		pkg.Foods,
		pkg.Features,
		pkg.Images,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update package",
			zap.Error(err),
			zap.String("package_id", pkg.ID.String()),
		)
		return fmt.Errorf("failed to update package: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", pkg.ID.String())
	}

	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Hard delete; dependent bookings and ratings are kept as orphans
	query := `DELETE FROM packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return fmt.Errorf("failed to delete package: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", id.String())
	}

	r.log.Info("Package deleted", zap.String("package_id", id.String()))
	return nil
}
