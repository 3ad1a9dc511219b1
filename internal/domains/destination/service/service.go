package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"relecloud-backend/internal/domains/destination/model"
	"relecloud-backend/internal/domains/destination/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type destinationService struct {
	destinationRepo repository.DestinationRepository
}

func NewDestinationService(destinationRepo repository.DestinationRepository) ServiceInterface {
	return &destinationService{
		destinationRepo: destinationRepo,
	}
}

// =====================================================
// RANKED LISTING
// =====================================================

func (s *destinationService) ListRanked(ctx context.Context) (*model.ListDestinationsResponse, error) {
	items, err := s.destinationRepo.ListWithStats(ctx)
	if err != nil {
		// Degraded path: the listing must survive an aggregation failure.
		// Serve the plain destination set with absent stats instead.
		log.Error().Err(err).Msg("Failed to derive destination statistics, serving degraded listing")
		return s.listDegraded(ctx)
	}

	ranked := rankByPopularity(items)

	listItems := make([]model.DestinationListItem, 0, len(ranked))
	for _, item := range ranked {
		count := item.ReviewCount
		listItems = append(listItems, model.DestinationListItem{
			ID:          item.Destination.ID,
			Name:        item.Destination.Name,
			Description: item.Destination.Description,
			ImageURL:    item.Destination.ImageURL,
			ReviewCount: &count,
			AvgRating:   roundRatingPtr(item.AvgRating),
		})
	}

	return &model.ListDestinationsResponse{Destinations: listItems}, nil
}

func (s *destinationService) listDegraded(ctx context.Context) (*model.ListDestinationsResponse, error) {
	destinations, err := s.destinationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}

	listItems := make([]model.DestinationListItem, 0, len(destinations))
	for _, d := range destinations {
		listItems = append(listItems, model.DestinationListItem{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			ImageURL:    d.ImageURL,
		})
	}

	return &model.ListDestinationsResponse{Destinations: listItems, Degraded: true}, nil
}

// =====================================================
// DETAIL
// =====================================================

func (s *destinationService) GetDestination(ctx context.Context, id uuid.UUID) (*model.DestinationDetailResponse, error) {
	item, err := s.destinationRepo.GetWithStats(ctx, id)
	if err != nil {
		if err == model.ErrDestinationNotFound {
			return nil, model.NewDestinationNotFoundError()
		}
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}

	reviews, err := s.destinationRepo.ListReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list destination reviews: %w", err)
	}
	if reviews == nil {
		reviews = []model.DestinationReview{}
	}

	return &model.DestinationDetailResponse{
		ID:          item.Destination.ID,
		Name:        item.Destination.Name,
		Description: item.Destination.Description,
		ImageURL:    item.Destination.ImageURL,
		ReviewCount: item.ReviewCount,
		AvgRating:   roundRatingPtr(item.AvgRating),
		Reviews:     reviews,
		CreatedAt:   item.Destination.CreatedAt,
	}, nil
}

// =====================================================
// ADMIN OPERATIONS
// =====================================================

func (s *destinationService) CreateDestination(ctx context.Context, req model.CreateDestinationRequest) (*model.Destination, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	destination := &model.Destination{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.destinationRepo.Create(ctx, destination); err != nil {
		if err == model.ErrNameTaken {
			return nil, model.NewNameTakenError(req.Name)
		}
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}

	return destination, nil
}

func (s *destinationService) UpdateDestination(ctx context.Context, id uuid.UUID, req model.UpdateDestinationRequest) (*model.Destination, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	destination, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		if err == model.ErrDestinationNotFound {
			return nil, model.NewDestinationNotFoundError()
		}
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}

	if req.Name != nil {
		destination.Name = *req.Name
	}
	if req.Description != nil {
		destination.Description = *req.Description
	}
	if req.ImageURL != nil {
		destination.ImageURL = req.ImageURL
	}
	destination.UpdatedAt = time.Now()

	if err := s.destinationRepo.Update(ctx, destination); err != nil {
		if err == model.ErrNameTaken {
			return nil, model.NewNameTakenError(destination.Name)
		}
		return nil, fmt.Errorf("failed to update destination: %w", err)
	}

	return destination, nil
}

func (s *destinationService) DeleteDestination(ctx context.Context, id uuid.UUID) error {
	if err := s.destinationRepo.Delete(ctx, id); err != nil {
		if err == model.ErrDestinationNotFound {
			return model.NewDestinationNotFoundError()
		}
		return fmt.Errorf("failed to delete destination: %w", err)
	}
	return nil
}
