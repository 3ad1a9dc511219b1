package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/cruise/model"
	"relecloud-backend/internal/domains/cruise/repository"
)

type cruiseService struct {
	cruiseRepo repository.CruiseRepository
}

func NewCruiseService(cruiseRepo repository.CruiseRepository) ServiceInterface {
	return &cruiseService{
		cruiseRepo: cruiseRepo,
	}
}

func (s *cruiseService) ListCruises(ctx context.Context) ([]model.Cruise, error) {
	cruises, err := s.cruiseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cruises: %w", err)
	}
	return cruises, nil
}

func (s *cruiseService) GetCruise(ctx context.Context, id uuid.UUID) (*model.CruiseResponse, error) {
	cruise, err := s.cruiseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrCruiseNotFound) {
			return nil, model.NewCruiseNotFoundError()
		}
		return nil, fmt.Errorf("failed to get cruise: %w", err)
	}

	return s.buildResponse(ctx, cruise)
}

func (s *cruiseService) CreateCruise(ctx context.Context, req model.CreateCruiseRequest) (*model.CruiseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cruise := &model.Cruise{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.cruiseRepo.Create(ctx, cruise, req.DestinationIDs); err != nil {
		if errors.Is(err, model.ErrNameTaken) {
			return nil, model.NewNameTakenError(req.Name)
		}
		return nil, fmt.Errorf("failed to create cruise: %w", err)
	}

	return s.buildResponse(ctx, cruise)
}

func (s *cruiseService) UpdateCruise(ctx context.Context, id uuid.UUID, req model.UpdateCruiseRequest) (*model.CruiseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cruise, err := s.cruiseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrCruiseNotFound) {
			return nil, model.NewCruiseNotFoundError()
		}
		return nil, fmt.Errorf("failed to get cruise: %w", err)
	}

	if req.Name != nil {
		cruise.Name = *req.Name
	}
	if req.Description != nil {
		cruise.Description = *req.Description
	}
	cruise.UpdatedAt = time.Now()

	if err := s.cruiseRepo.Update(ctx, cruise, req.DestinationIDs); err != nil {
		if errors.Is(err, model.ErrNameTaken) {
			return nil, model.NewNameTakenError(cruise.Name)
		}
		if errors.Is(err, model.ErrCruiseNotFound) {
			return nil, model.NewCruiseNotFoundError()
		}
		return nil, fmt.Errorf("failed to update cruise: %w", err)
	}

	return s.buildResponse(ctx, cruise)
}

func (s *cruiseService) DeleteCruise(ctx context.Context, id uuid.UUID) error {
	if err := s.cruiseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrCruiseNotFound) {
			return model.NewCruiseNotFoundError()
		}
		if errors.Is(err, model.ErrCruiseInUse) {
			return model.NewCruiseInUseError()
		}
		return fmt.Errorf("failed to delete cruise: %w", err)
	}
	return nil
}

func (s *cruiseService) buildResponse(ctx context.Context, cruise *model.Cruise) (*model.CruiseResponse, error) {
	destinations, err := s.cruiseRepo.GetDestinations(ctx, cruise.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cruise destinations: %w", err)
	}

	return &model.CruiseResponse{
		ID:           cruise.ID,
		Name:         cruise.Name,
		Description:  cruise.Description,
		Destinations: destinations,
		CreatedAt:    cruise.CreatedAt,
	}, nil
}
