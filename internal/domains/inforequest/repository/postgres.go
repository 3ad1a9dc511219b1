package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"relecloud-backend/internal/domains/inforequest/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresInfoRequestRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresInfoRequestRepository(pool *pgxpool.Pool) InfoRequestRepository {
	return &postgresInfoRequestRepository{pool: pool}
}

func (r *postgresInfoRequestRepository) Create(ctx context.Context, request *model.InfoRequest) error {
	query := `
		INSERT INTO info_requests (id, name, email, notes, cruise_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		request.ID,
		request.Name,
		request.Email,
		request.Notes,
		request.CruiseID,
		request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create info request: %w", err)
	}

	return nil
}

func (r *postgresInfoRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.InfoRequest, error) {
	query := `
		SELECT id, name, email, notes, cruise_id, created_at
		FROM info_requests
		WHERE id = $1
	`

	request := &model.InfoRequest{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.Name,
		&request.Email,
		&request.Notes,
		&request.CruiseID,
		&request.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrInfoRequestNotFound
		}
		return nil, fmt.Errorf("failed to get info request: %w", err)
	}

	return request, nil
}

func (r *postgresInfoRequestRepository) List(ctx context.Context) ([]model.InfoRequestListItem, error) {
	query := `
		SELECT ir.id, ir.name, ir.email, ir.notes, ir.cruise_id, c.name, ir.created_at
		FROM info_requests ir
		INNER JOIN cruises c ON c.id = ir.cruise_id
		ORDER BY ir.created_at DESC, ir.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list info requests: %w", err)
	}
	defer rows.Close()

	var items []model.InfoRequestListItem
	for rows.Next() {
		var item model.InfoRequestListItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Email,
			&item.Notes,
			&item.CruiseID,
			&item.CruiseName,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan info request: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate info requests: %w", err)
	}

	return items, nil
}
