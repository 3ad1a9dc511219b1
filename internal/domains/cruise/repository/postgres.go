package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"relecloud-backend/internal/domains/cruise/model"
	"relecloud-backend/pkg/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresCruiseRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCruiseRepository(pool *pgxpool.Pool) CruiseRepository {
	return &postgresCruiseRepository{pool: pool}
}

func (r *postgresCruiseRepository) Create(ctx context.Context, cruise *model.Cruise, destinationIDs []uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO cruises (id, name, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, query,
			cruise.ID, cruise.Name, cruise.Description, cruise.CreatedAt, cruise.UpdatedAt,
		); err != nil {
			return err
		}

		for _, destinationID := range destinationIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO cruise_destinations (cruise_id, destination_id) VALUES ($1, $2)`,
				cruise.ID, destinationID,
			); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return model.ErrNameTaken
			case "23503":
				// A listed destination does not exist
				return fmt.Errorf("unknown destination in cruise: %w", err)
			}
		}
		return fmt.Errorf("failed to create cruise: %w", err)
	}

	return nil
}

func (r *postgresCruiseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Cruise, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM cruises
		WHERE id = $1
	`

	cruise := &model.Cruise{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&cruise.ID,
		&cruise.Name,
		&cruise.Description,
		&cruise.CreatedAt,
		&cruise.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCruiseNotFound
		}
		return nil, fmt.Errorf("failed to get cruise: %w", err)
	}

	return cruise, nil
}

func (r *postgresCruiseRepository) GetDestinations(ctx context.Context, cruiseID uuid.UUID) ([]model.CruiseDestination, error) {
	query := `
		SELECT d.id, d.name
		FROM destinations d
		INNER JOIN cruise_destinations cd ON cd.destination_id = d.id
		WHERE cd.cruise_id = $1
		ORDER BY d.name
	`

	rows, err := r.pool.Query(ctx, query, cruiseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cruise destinations: %w", err)
	}
	defer rows.Close()

	var destinations []model.CruiseDestination
	for rows.Next() {
		var d model.CruiseDestination
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan cruise destination: %w", err)
		}
		destinations = append(destinations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list cruise destinations: %w", err)
	}

	return destinations, nil
}

func (r *postgresCruiseRepository) List(ctx context.Context) ([]model.Cruise, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM cruises
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cruises: %w", err)
	}
	defer rows.Close()

	var cruises []model.Cruise
	for rows.Next() {
		var c model.Cruise
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cruise: %w", err)
		}
		cruises = append(cruises, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list cruises: %w", err)
	}

	return cruises, nil
}

func (r *postgresCruiseRepository) Update(ctx context.Context, cruise *model.Cruise, destinationIDs *[]uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE cruises
			SET name = $2, description = $3, updated_at = NOW()
			WHERE id = $1
		`
		result, err := tx.Exec(ctx, query, cruise.ID, cruise.Name, cruise.Description)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return model.ErrCruiseNotFound
		}

		if destinationIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM cruise_destinations WHERE cruise_id = $1`, cruise.ID); err != nil {
				return err
			}
			for _, destinationID := range *destinationIDs {
				if _, err := tx.Exec(ctx,
					`INSERT INTO cruise_destinations (cruise_id, destination_id) VALUES ($1, $2)`,
					cruise.ID, destinationID,
				); err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrCruiseNotFound) {
			return err
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrNameTaken
		}
		return fmt.Errorf("failed to update cruise: %w", err)
	}

	return nil
}

func (r *postgresCruiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM cruise_destinations WHERE cruise_id = $1`, id); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, `DELETE FROM cruises WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return model.ErrCruiseNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrCruiseNotFound) {
			return err
		}
		// info_requests.cruise_id is ON DELETE RESTRICT: the purchase
		// proxy record protects its cruise
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrCruiseInUse
		}
		return fmt.Errorf("failed to delete cruise: %w", err)
	}

	return nil
}
