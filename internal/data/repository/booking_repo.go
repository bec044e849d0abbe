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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByBuyerAndPackage(ctx context.Context, buyerID, packageID uuid.UUID) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Joined listings; searchTerm is a case-insensitive substring,
	// empty matches everything. Rows whose joined side does not match
	// are dropped by the join itself.
	FindAdmin(ctx context.Context, searchTerm string, currentOnly bool) ([]*entity.BookingDetail, error)
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, searchTerm string, currentOnly bool) ([]*entity.BookingDetail, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, package_id, buyer_id, persons, total_price, travel_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.PackageID,
		booking.BuyerID,
		booking.Persons,
		booking.TotalPrice,
		booking.TravelDate,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("package_id", booking.PackageID.String()),
			zap.String("buyer_id", booking.BuyerID.String()),
		)
		return fmt.Errorf("create booking for package %s: %w", booking.PackageID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, package_id, buyer_id, persons, total_price, travel_date, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.PackageID,
		&booking.BuyerID,
		&booking.Persons,
		&booking.TotalPrice,
		&booking.TravelDate,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByBuyerAndPackage(ctx context.Context, buyerID, packageID uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, package_id, buyer_id, persons, total_price, travel_date, status, created_at, updated_at
		FROM bookings
		WHERE buyer_id = $1 AND package_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, buyerID, packageID).Scan(
		&booking.ID,
		&booking.PackageID,
		&booking.BuyerID,
		&booking.Persons,
		&booking.TotalPrice,
		&booking.TravelDate,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by buyer and package",
			zap.Error(err),
			zap.String("buyer_id", buyerID.String()),
			zap.String("package_id", packageID.String()),
		)
		return nil, fmt.Errorf("find booking by buyer %s and package %s: %w",
			buyerID.String(), packageID.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

const bookingDetailColumns = `b.id, b.package_id, b.buyer_id, b.persons, b.total_price,
	       b.travel_date, b.status, b.created_at, b.updated_at,
	       p.package_name, u.username, u.email`

func (r *bookingRepository) FindAdmin(ctx context.Context, searchTerm string, currentOnly bool) ([]*entity.BookingDetail, error) {
	// Buyer match on username OR email drops non-matching rows
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN packages p ON p.id = b.package_id
		JOIN users u ON u.id = b.buyer_id
		WHERE (u.username ILIKE '%' || $1 || '%' OR u.email ILIKE '%' || $1 || '%')
	`)

	if currentOnly {
		queryBuilder.WriteString(" AND b.travel_date > NOW() AND b.status = 'Booked'")
	}
	queryBuilder.WriteString(" ORDER BY b.created_at ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), searchTerm)
	if err != nil {
		r.log.Error("Failed to find admin bookings",
			zap.Error(err),
			zap.String("search_term", searchTerm),
			zap.Bool("current_only", currentOnly),
		)
		return nil, fmt.Errorf("find admin bookings: %w", err)
	}
	defer rows.Close()

	return r.scanDetails(rows)
}

func (r *bookingRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID, searchTerm string, currentOnly bool) ([]*entity.BookingDetail, error) {
	// Package-name match drops non-matching rows
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN packages p ON p.id = b.package_id
		JOIN users u ON u.id = b.buyer_id
		WHERE b.buyer_id = $1
		  AND p.package_name ILIKE '%' || $2 || '%'
	`)

	if currentOnly {
		queryBuilder.WriteString(" AND b.travel_date > NOW() AND b.status = 'Booked'")
	}
	queryBuilder.WriteString(" ORDER BY b.created_at ASC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), buyerID, searchTerm)
	if err != nil {
		r.log.Error("Failed to find buyer bookings",
			zap.Error(err),
			zap.String("buyer_id", buyerID.String()),
			zap.String("search_term", searchTerm),
			zap.Bool("current_only", currentOnly),
		)
		return nil, fmt.Errorf("find bookings by buyer %s: %w", buyerID.String(), err)
	}
	defer rows.Close()

	return r.scanDetails(rows)
}

func (r *bookingRepository) scanDetails(rows pgx.Rows) ([]*entity.BookingDetail, error) {
	var details []*entity.BookingDetail
	for rows.Next() {
		var d entity.BookingDetail
		err := rows.Scan(
			&d.ID,
			&d.PackageID,
			&d.BuyerID,
			&d.Persons,
			&d.TotalPrice,
			&d.TravelDate,
			&d.Status,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.PackageName,
			&d.BuyerUsername,
			&d.BuyerEmail,
		)
		if err != nil {
			r.log.Error("Failed to scan booking detail row", zap.Error(err))
			return nil, fmt.Errorf("scan booking detail row: %w", err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return details, nil
}
