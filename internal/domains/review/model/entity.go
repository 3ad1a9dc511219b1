package model

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a destination review. Reviews are created through the
// eligibility-checked write path and never updated in place.
type Review struct {
	ID            uuid.UUID `json:"id"`
	DestinationID uuid.UUID `json:"destination_id"`
	UserID        uuid.UUID `json:"user_id"`

	Rating  int    `json:"rating"` // 1-5
	Comment string `json:"comment"`

	// Assigned by the server at insert time
	CreatedAt time.Time `json:"created_at"`
}

// ReviewWithUser pairs a review with its reviewer's username for display
type ReviewWithUser struct {
	Review
	Username string `json:"username"`
}
