package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxNameLength        = 50
	MaxDescriptionLength = 2000
)

// CreateCruiseRequest admin request to create a cruise
type CreateCruiseRequest struct {
	Name           string      `json:"name" binding:"required"`
	Description    string      `json:"description" binding:"required"`
	DestinationIDs []uuid.UUID `json:"destination_ids"`
}

func (r CreateCruiseRequest) Validate() error {
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

// UpdateCruiseRequest admin request to update a cruise.
// DestinationIDs, when present, replaces the covered destination set.
type UpdateCruiseRequest struct {
	Name           *string      `json:"name"`
	Description    *string      `json:"description"`
	DestinationIDs *[]uuid.UUID `json:"destination_ids"`
}

func (r UpdateCruiseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(1, MaxDescriptionLength)),
	)
}

// CruiseResponse cruise detail with covered destinations
type CruiseResponse struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Destinations []CruiseDestination `json:"destinations"`
	CreatedAt    time.Time           `json:"created_at"`
}
