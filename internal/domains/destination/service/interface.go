package service

import (
	"context"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/destination/model"
)

type ServiceInterface interface {
	// ListRanked returns all destinations ordered by the popularity rule.
	// When statistics cannot be derived it degrades to the plain listing
	// with absent stats instead of failing.
	ListRanked(ctx context.Context) (*model.ListDestinationsResponse, error)

	// GetDestination returns a destination with derived statistics
	GetDestination(ctx context.Context, id uuid.UUID) (*model.DestinationDetailResponse, error)

	// Admin operations
	CreateDestination(ctx context.Context, req model.CreateDestinationRequest) (*model.Destination, error)
	UpdateDestination(ctx context.Context, id uuid.UUID, req model.UpdateDestinationRequest) (*model.Destination, error)
	DeleteDestination(ctx context.Context, id uuid.UUID) error
}
