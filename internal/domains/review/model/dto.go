package model

import (
	"time"

	"github.com/google/uuid"
)

// CreateReviewRequest request to create a review for a destination
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate checks the request preconditions in order, short-circuiting on
// the first failure: rating bounds before comment length.
func (r CreateReviewRequest) Validate() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return NewInvalidRatingError(r.Rating)
	}
	if len(r.Comment) > MaxCommentLength {
		return NewCommentTooLongError()
	}
	return nil
}

// UserInfo reviewer information embedded in responses.
// Email is never exposed.
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// ReviewResponse response for a created or listed review
type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	DestinationID uuid.UUID `json:"destination_id"`
	UserInfo      UserInfo  `json:"user_info"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListReviewsResponse reviews for a destination, newest first
type ListReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}
