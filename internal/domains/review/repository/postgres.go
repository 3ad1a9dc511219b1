package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"relecloud-backend/internal/domains/review/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, destination_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.DestinationID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		// UNIQUE(user_id, destination_id)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrDuplicateReview
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) GetByUserAndDestination(
	ctx context.Context,
	userID, destinationID uuid.UUID,
) (*model.Review, error) {
	query := `
		SELECT id, destination_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE user_id = $1 AND destination_id = $2
	`

	review := &model.Review{}
	err := r.pool.QueryRow(ctx, query, userID, destinationID).Scan(
		&review.ID,
		&review.DestinationID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *postgresReviewRepository) ListByDestination(
	ctx context.Context,
	destinationID uuid.UUID,
) ([]model.ReviewWithUser, error) {
	query := `
		SELECT r.id, r.destination_id, r.user_id, r.rating, r.comment, r.created_at, u.username
		FROM reviews r
		INNER JOIN users u ON u.id = r.user_id
		WHERE r.destination_id = $1
		ORDER BY r.created_at DESC, r.id
	`

	rows, err := r.pool.Query(ctx, query, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.ReviewWithUser
	for rows.Next() {
		var review model.ReviewWithUser
		err := rows.Scan(
			&review.ID,
			&review.DestinationID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresReviewRepository) HasEntitlement(
	ctx context.Context,
	email string,
	destinationID uuid.UUID,
) (bool, error) {
	// The purchase proxy: an info request for a cruise covering the
	// destination, matched by email rather than user foreign key.
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM info_requests ir
			INNER JOIN cruise_destinations cd ON cd.cruise_id = ir.cruise_id
			WHERE ir.email = $1 AND cd.destination_id = $2
		)
	`

	var entitled bool
	if err := r.pool.QueryRow(ctx, query, email, destinationID).Scan(&entitled); err != nil {
		return false, fmt.Errorf("failed to check entitlement: %w", err)
	}

	return entitled, nil
}
