package model

import (
	"time"

	"github.com/google/uuid"
)

// Destination represents a travel destination entity.
// Review statistics are always derived at query time, never stored.
type Destination struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"` // unique
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DestinationWithStats pairs a destination with its derived review statistics.
// AvgRating is nil when the destination has no reviews - absent is not zero.
type DestinationWithStats struct {
	Destination Destination
	ReviewCount int
	AvgRating   *float64
}
