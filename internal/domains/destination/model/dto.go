package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateDestinationRequest admin request to create a destination
type CreateDestinationRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ImageURL    *string `json:"image_url"`
}

func (r CreateDestinationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(1, MaxDescriptionLength),
		),
	)
}

// UpdateDestinationRequest admin request to update a destination
type UpdateDestinationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

func (r UpdateDestinationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(1, MaxDescriptionLength)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// DestinationListItem is the presentation value object for the ranked listing.
// ReviewCount and AvgRating are nil on the degraded path, when the store's
// aggregation could not be computed; AvgRating is also nil for destinations
// with zero reviews.
type DestinationListItem struct {
	ID          uuid.UUID `json:"destination_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	ReviewCount *int      `json:"review_count"`
	AvgRating   *float64  `json:"avg_rating"`
}

// DestinationReview is a review as shown on the destination detail page
type DestinationReview struct {
	ID        uuid.UUID `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// DestinationDetailResponse destination detail with derived statistics and
// its reviews, newest first
type DestinationDetailResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ImageURL    *string             `json:"image_url"`
	ReviewCount int                 `json:"review_count"`
	AvgRating   *float64            `json:"avg_rating"`
	Reviews     []DestinationReview `json:"reviews"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ListDestinationsResponse ranked destination listing.
// Degraded is true when statistics were unavailable and the listing
// fell back to the plain destination set.
type ListDestinationsResponse struct {
	Destinations []DestinationListItem `json:"destinations"`
	Degraded     bool                  `json:"degraded,omitempty"`
}
