package repository

import (
	"context"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/review/model"
)

type ReviewRepository interface {
	// Create inserts a review. The store enforces UNIQUE(user_id,
	// destination_id) as a second line of defense behind the application
	// level duplicate check; violations surface as ErrDuplicateReview.
	Create(ctx context.Context, review *model.Review) error

	// GetByUserAndDestination gets the review a user left for a destination
	GetByUserAndDestination(ctx context.Context, userID, destinationID uuid.UUID) (*model.Review, error)

	// ListByDestination lists a destination's reviews with reviewer
	// usernames, newest first
	ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]model.ReviewWithUser, error)

	// HasEntitlement reports whether an information request exists whose
	// email matches and whose cruise covers the destination. Entitlement is
	// derived by email match, not by a user foreign key: an info request
	// submitted before account creation still grants it.
	HasEntitlement(ctx context.Context, email string, destinationID uuid.UUID) (bool, error)
}
