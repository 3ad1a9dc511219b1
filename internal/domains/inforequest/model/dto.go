package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateInfoRequestRequest public request to ask about a cruise
type CreateInfoRequestRequest struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required"`
	Notes    string    `json:"notes"`
	CruiseID uuid.UUID `json:"cruise_id" binding:"required"`
}

func (r CreateInfoRequestRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email,
		),
		validation.Field(&r.Notes, validation.Length(0, MaxNotesLength)),
		validation.Field(&r.CruiseID, validation.Required.Error("cruise_id is required")),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// InfoRequestResponse is returned after a submission. EmailSent is advisory
// only: the request is persisted regardless of notification delivery.
type InfoRequestResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	CruiseID  uuid.UUID `json:"cruise_id"`
	CreatedAt time.Time `json:"created_at"`
	EmailSent bool      `json:"email_sent"`
}

// InfoRequestListItem admin listing item with the cruise name resolved
type InfoRequestListItem struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Notes      string    `json:"notes"`
	CruiseID   uuid.UUID `json:"cruise_id"`
	CruiseName string    `json:"cruise_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListInfoRequestsResponse admin listing, newest first
type ListInfoRequestsResponse struct {
	InfoRequests []InfoRequestListItem `json:"info_requests"`
}
