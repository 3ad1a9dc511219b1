package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"relecloud-backend/internal/domains/destination/model"
	"relecloud-backend/pkg/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresDestinationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresDestinationRepository(pool *pgxpool.Pool) DestinationRepository {
	return &postgresDestinationRepository{pool: pool}
}

func (r *postgresDestinationRepository) Create(ctx context.Context, destination *model.Destination) error {
	query := `
		INSERT INTO destinations (id, name, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		destination.ID,
		destination.Name,
		destination.Description,
		destination.ImageURL,
		destination.CreatedAt,
		destination.UpdatedAt,
	)

	if err != nil {
		// Unique constraint on name
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "name") {
			return model.ErrNameTaken
		}
		return fmt.Errorf("failed to create destination: %w", err)
	}

	return nil
}

func (r *postgresDestinationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM destinations
		WHERE id = $1
	`

	destination := &model.Destination{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&destination.ID,
		&destination.Name,
		&destination.Description,
		&destination.ImageURL,
		&destination.CreatedAt,
		&destination.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDestinationNotFound
		}
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}

	return destination, nil
}

func (r *postgresDestinationRepository) GetWithStats(ctx context.Context, id uuid.UUID) (*model.DestinationWithStats, error) {
	query := `
		SELECT
			d.id, d.name, d.description, d.image_url, d.created_at, d.updated_at,
			COUNT(r.id) AS review_count,
			AVG(r.rating)::float8 AS avg_rating
		FROM destinations d
		LEFT JOIN reviews r ON r.destination_id = d.id
		WHERE d.id = $1
		GROUP BY d.id
	`

	item := &model.DestinationWithStats{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.Destination.ID,
		&item.Destination.Name,
		&item.Destination.Description,
		&item.Destination.ImageURL,
		&item.Destination.CreatedAt,
		&item.Destination.UpdatedAt,
		&item.ReviewCount,
		&item.AvgRating,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDestinationNotFound
		}
		return nil, fmt.Errorf("failed to get destination stats: %w", err)
	}

	return item, nil
}

func (r *postgresDestinationRepository) ListReviews(ctx context.Context, destinationID uuid.UUID) ([]model.DestinationReview, error) {
	query := `
		SELECT r.id, r.rating, r.comment, u.username, r.created_at
		FROM reviews r
		INNER JOIN users u ON u.id = r.user_id
		WHERE r.destination_id = $1
		ORDER BY r.created_at DESC, r.id
	`

	rows, err := r.pool.Query(ctx, query, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list destination reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.DestinationReview
	for rows.Next() {
		var review model.DestinationReview
		if err := rows.Scan(
			&review.ID,
			&review.Rating,
			&review.Comment,
			&review.Username,
			&review.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan destination review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate destination reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresDestinationRepository) List(ctx context.Context) ([]model.Destination, error) {
	// Insertion order keeps downstream ranking deterministic
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM destinations
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer rows.Close()

	var destinations []model.Destination
	for rows.Next() {
		var d model.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.ImageURL, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}

	return destinations, nil
}

func (r *postgresDestinationRepository) ListWithStats(ctx context.Context) ([]model.DestinationWithStats, error) {
	query := `
		SELECT
			d.id, d.name, d.description, d.image_url, d.created_at, d.updated_at,
			COUNT(r.id) AS review_count,
			AVG(r.rating)::float8 AS avg_rating
		FROM destinations d
		LEFT JOIN reviews r ON r.destination_id = d.id
		GROUP BY d.id
		ORDER BY d.created_at, d.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list destination stats: %w", err)
	}
	defer rows.Close()

	var items []model.DestinationWithStats
	for rows.Next() {
		var item model.DestinationWithStats
		err := rows.Scan(
			&item.Destination.ID,
			&item.Destination.Name,
			&item.Destination.Description,
			&item.Destination.ImageURL,
			&item.Destination.CreatedAt,
			&item.Destination.UpdatedAt,
			&item.ReviewCount,
			&item.AvgRating,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan destination stats: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list destination stats: %w", err)
	}

	return items, nil
}

func (r *postgresDestinationRepository) Update(ctx context.Context, destination *model.Destination) error {
	query := `
		UPDATE destinations
		SET name = $2, description = $3, image_url = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		destination.ID,
		destination.Name,
		destination.Description,
		destination.ImageURL,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "name") {
			return model.ErrNameTaken
		}
		return fmt.Errorf("failed to update destination: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrDestinationNotFound
	}

	return nil
}

func (r *postgresDestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Reviews belong to the destination and go with it
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM reviews WHERE destination_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete destination reviews: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete destination: %w", err)
		}

		if result.RowsAffected() == 0 {
			return model.ErrDestinationNotFound
		}

		return nil
	})
}
