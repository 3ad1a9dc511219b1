package model

import (
	"time"

	"github.com/google/uuid"
)

// Cruise represents a cruise covering a set of destinations (many-to-many)
type Cruise struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"` // unique
	Description string    `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CruiseDestination is a destination summary embedded in cruise responses
type CruiseDestination struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
