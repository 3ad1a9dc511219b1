package repository

import (
	"context"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/cruise/model"
)

type CruiseRepository interface {
	// Create creates a cruise and its destination links atomically
	Create(ctx context.Context, cruise *model.Cruise, destinationIDs []uuid.UUID) error

	// GetByID gets a cruise by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Cruise, error)

	// GetDestinations lists the destinations a cruise covers
	GetDestinations(ctx context.Context, cruiseID uuid.UUID) ([]model.CruiseDestination, error)

	// List lists all cruises in insertion order
	List(ctx context.Context) ([]model.Cruise, error)

	// Update updates a cruise; a non-nil destinationIDs replaces the covered set
	Update(ctx context.Context, cruise *model.Cruise, destinationIDs *[]uuid.UUID) error

	// Delete removes a cruise. Fails with ErrCruiseInUse while info
	// requests reference it (store-level foreign key protection).
	Delete(ctx context.Context, id uuid.UUID) error
}
