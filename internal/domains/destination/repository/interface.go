package repository

import (
	"context"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/destination/model"
)

// DestinationRepository is the persistence surface the destination service
// depends on. Aggregates (review count, average rating) are computed by the
// store at query time.
type DestinationRepository interface {
	// Create creates a new destination
	Create(ctx context.Context, destination *model.Destination) error

	// GetByID gets a destination by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Destination, error)

	// GetWithStats gets a destination with derived review statistics
	GetWithStats(ctx context.Context, id uuid.UUID) (*model.DestinationWithStats, error)

	// List lists all destinations in insertion order, without statistics
	List(ctx context.Context) ([]model.Destination, error)

	// ListWithStats lists all destinations with derived review statistics,
	// in insertion order. Ordering by popularity is the service's job.
	ListWithStats(ctx context.Context) ([]model.DestinationWithStats, error)

	// ListReviews lists a destination's reviews with reviewer usernames,
	// newest first, for the detail view
	ListReviews(ctx context.Context, destinationID uuid.UUID) ([]model.DestinationReview, error)

	// Update updates a destination
	Update(ctx context.Context, destination *model.Destination) error

	// Delete removes a destination and its reviews atomically
	Delete(ctx context.Context, id uuid.UUID) error
}
