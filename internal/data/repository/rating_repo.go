package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type RatingRepository interface {
	// Create inserts the rating, recomputes the package aggregate and
	// writes it back, all inside one transaction. Returns the new
	// average (rounded to one decimal) and count. A duplicate
	// (user_ref, package_id) pair fails on the unique constraint.
	Create(ctx context.Context, rating *entity.Rating) (float64, int64, error)

	FindByUserAndPackage(ctx context.Context, userRef, packageID uuid.UUID) (*entity.Rating, error)
	FindByPackageID(ctx context.Context, packageID uuid.UUID, limit int) ([]*entity.Rating, error)
	GetPackageRatingStats(ctx context.Context, packageID uuid.UUID) (float64, int64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) (float64, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin rating transaction", zap.Error(err))
		return 0, 0, fmt.Errorf("begin rating transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO ratings (id, package_id, user_ref, rating, review, username, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, insert,
		rating.ID,
		rating.PackageID,
		rating.UserRef,
		rating.Rating,
		rating.Review,
		rating.Username,
		rating.Avatar,
		rating.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, 0, fmt.Errorf("user already reviewed this package")
		}
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("user_ref", rating.UserRef.String()),
			zap.String("package_id", rating.PackageID.String()),
		)
		return 0, 0, fmt.Errorf("create rating for package %s by user %s: %w",
			rating.PackageID.String(), rating.UserRef.String(), err)
	}

	var avg float64
	var count int64
	statsQuery := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM ratings WHERE package_id = $1`
	if err := tx.QueryRow(ctx, statsQuery, rating.PackageID).Scan(&avg, &count); err != nil {
		r.log.Error("Failed to recompute rating stats",
			zap.Error(err),
			zap.String("package_id", rating.PackageID.String()),
		)
		return 0, 0, fmt.Errorf("recompute rating stats for %s: %w", rating.PackageID.String(), err)
	}

	avg = math.Round(avg*10) / 10

	update := `UPDATE packages SET rating_avg = $2, rating_count = $3, updated_at = NOW() WHERE id = $1`
	result, err := tx.Exec(ctx, update, rating.PackageID, avg, count)
	if err != nil {
		r.log.Error("Failed to update package rating aggregate",
			zap.Error(err),
			zap.String("package_id", rating.PackageID.String()),
		)
		return 0, 0, fmt.Errorf("update package %s rating aggregate: %w", rating.PackageID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return 0, 0, fmt.Errorf("package %s not found", rating.PackageID.String())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit rating transaction", zap.Error(err))
		return 0, 0, fmt.Errorf("commit rating transaction: %w", err)
	}

	return avg, count, nil
}

func (r *ratingRepository) FindByUserAndPackage(ctx context.Context, userRef, packageID uuid.UUID) (*entity.Rating, error) {
	query := `
		SELECT id, package_id, user_ref, rating, review, username, avatar, created_at
		FROM ratings
		WHERE user_ref = $1 AND package_id = $2
		LIMIT 1
	`

	var rating entity.Rating
	err := r.db.QueryRow(ctx, query, userRef, packageID).Scan(
		&rating.ID,
		&rating.PackageID,
		&rating.UserRef,
		&rating.Rating,
		&rating.Review,
		&rating.Username,
		&rating.Avatar,
		&rating.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by user and package",
			zap.Error(err),
			zap.String("user_ref", userRef.String()),
			zap.String("package_id", packageID.String()),
		)
		return nil, fmt.Errorf("find rating by user %s and package %s: %w",
			userRef.String(), packageID.String(), err)
	}

	return &rating, nil
}

func (r *ratingRepository) FindByPackageID(ctx context.Context, packageID uuid.UUID, limit int) ([]*entity.Rating, error) {
	query := `
		SELECT id, package_id, user_ref, rating, review, username, avatar, created_at
		FROM ratings
		WHERE package_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, packageID, limit)
	if err != nil {
		r.log.Error("Failed to find ratings by package ID",
			zap.Error(err),
			zap.String("package_id", packageID.String()),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find ratings by package ID %s: %w", packageID.String(), err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		var rating entity.Rating
		err := rows.Scan(
			&rating.ID,
			&rating.PackageID,
			&rating.UserRef,
			&rating.Rating,
			&rating.Review,
			&rating.Username,
			&rating.Avatar,
			&rating.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}

func (r *ratingRepository) GetPackageRatingStats(ctx context.Context, packageID uuid.UUID) (float64, int64, error) {
	// Live recompute, independent of the cached package fields
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM ratings WHERE package_id = $1`

	var avg float64
	var count int64
	err := r.db.QueryRow(ctx, query, packageID).Scan(&avg, &count)
	if err != nil {
		r.log.Error("Failed to get package rating stats",
			zap.Error(err),
			zap.String("package_id", packageID.String()),
		)
		return 0, 0, fmt.Errorf("get rating stats for package %s: %w", packageID.String(), err)
	}

	return avg, count, nil
}
