package service

import (
	"context"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/review/model"
)

// Reviewer identifies the authenticated user attempting to create a review.
// Email drives the entitlement check; username only decorates responses.
type Reviewer struct {
	ID       uuid.UUID
	Email    string
	Username string
}

type ServiceInterface interface {
	// CreateReview runs the eligibility checks in order and persists the
	// review when they all pass. Rejections come back as typed
	// *model.ReviewError outcomes, not infrastructure failures.
	CreateReview(ctx context.Context, reviewer Reviewer, destinationID uuid.UUID, req model.CreateReviewRequest) (*model.ReviewResponse, error)

	// ListByDestination lists a destination's reviews, newest first
	ListByDestination(ctx context.Context, destinationID uuid.UUID) (*model.ListReviewsResponse, error)
}
