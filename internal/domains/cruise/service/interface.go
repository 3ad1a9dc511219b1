package service

import (
	"context"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/cruise/model"
)

type ServiceInterface interface {
	ListCruises(ctx context.Context) ([]model.Cruise, error)
	GetCruise(ctx context.Context, id uuid.UUID) (*model.CruiseResponse, error)

	// Admin operations
	CreateCruise(ctx context.Context, req model.CreateCruiseRequest) (*model.CruiseResponse, error)
	UpdateCruise(ctx context.Context, id uuid.UUID, req model.UpdateCruiseRequest) (*model.CruiseResponse, error)
	DeleteCruise(ctx context.Context, id uuid.UUID) error
}
