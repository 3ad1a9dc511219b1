package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	dstmodel "relecloud-backend/internal/domains/destination/model"
	dstrepository "relecloud-backend/internal/domains/destination/repository"
	"relecloud-backend/internal/domains/review/model"
	"relecloud-backend/internal/domains/review/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	reviewRepo      repository.ReviewRepository
	destinationRepo dstrepository.DestinationRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	destinationRepo dstrepository.DestinationRepository,
) ServiceInterface {
	return &reviewService{
		reviewRepo:      reviewRepo,
		destinationRepo: destinationRepo,
	}
}

// =====================================================
// ELIGIBILITY-CHECKED CREATE
// =====================================================

// CreateReview checks preconditions in a fixed order so a request failing
// several of them always gets the same rejection: destination existence,
// rating bounds, comment length, duplicate, entitlement.
func (s *reviewService) CreateReview(
	ctx context.Context,
	reviewer Reviewer,
	destinationID uuid.UUID,
	req model.CreateReviewRequest,
) (*model.ReviewResponse, error) {
	if _, err := s.destinationRepo.GetByID(ctx, destinationID); err != nil {
		if errors.Is(err, dstmodel.ErrDestinationNotFound) {
			return nil, dstmodel.NewDestinationNotFoundError()
		}
		return nil, fmt.Errorf("failed to check destination: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, err := s.reviewRepo.GetByUserAndDestination(ctx, reviewer.ID, destinationID)
	if err == nil {
		return nil, model.NewDuplicateReviewError()
	}
	if !errors.Is(err, model.ErrReviewNotFound) {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	entitled, err := s.reviewRepo.HasEntitlement(ctx, reviewer.Email, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check entitlement: %w", err)
	}
	if !entitled {
		return nil, model.NewNotEntitledError()
	}

	review := &model.Review{
		ID:            uuid.New(),
		DestinationID: destinationID,
		UserID:        reviewer.ID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		CreatedAt:     time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		// Concurrent submissions can pass the read check together; the
		// unique constraint decides the winner and the loser is rejected
		// like any other duplicate.
		if errors.Is(err, model.ErrDuplicateReview) {
			return nil, model.NewDuplicateReviewError()
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	log.Info().
		Str("review_id", review.ID.String()).
		Str("destination_id", destinationID.String()).
		Str("user_id", reviewer.ID.String()).
		Int("rating", review.Rating).
		Msg("Review created")

	return &model.ReviewResponse{
		ID:            review.ID,
		DestinationID: review.DestinationID,
		UserInfo: model.UserInfo{
			ID:       reviewer.ID,
			Username: reviewer.Username,
		},
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil
}

// =====================================================
// LISTING
// =====================================================

func (s *reviewService) ListByDestination(ctx context.Context, destinationID uuid.UUID) (*model.ListReviewsResponse, error) {
	if _, err := s.destinationRepo.GetByID(ctx, destinationID); err != nil {
		if errors.Is(err, dstmodel.ErrDestinationNotFound) {
			return nil, dstmodel.NewDestinationNotFoundError()
		}
		return nil, fmt.Errorf("failed to check destination: %w", err)
	}

	reviews, err := s.reviewRepo.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	responses := make([]model.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, model.ReviewResponse{
			ID:            r.ID,
			DestinationID: r.DestinationID,
			UserInfo: model.UserInfo{
				ID:       r.UserID,
				Username: r.Username,
			},
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}

	return &model.ListReviewsResponse{Reviews: responses}, nil
}
