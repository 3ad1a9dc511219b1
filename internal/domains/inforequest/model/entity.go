package model

import (
	"time"

	"github.com/google/uuid"
)

// InfoRequest is a prospective traveler's inquiry about a cruise. Requests
// are keyed by the submitted email address, which later grants review
// entitlement for the cruise's destinations, so no user account is
// required or linked.
type InfoRequest struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Notes    string    `json:"notes"`
	CruiseID uuid.UUID `json:"cruise_id"`

	CreatedAt time.Time `json:"created_at"`
}
