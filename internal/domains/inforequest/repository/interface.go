package repository

import (
	"context"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/inforequest/model"
)

type InfoRequestRepository interface {
	// Create persists an info request
	Create(ctx context.Context, request *model.InfoRequest) error

	// GetByID gets an info request by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.InfoRequest, error)

	// List lists all info requests with cruise names resolved, newest first
	List(ctx context.Context) ([]model.InfoRequestListItem, error)
}
