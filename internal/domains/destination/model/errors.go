package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeDestinationNotFound = "DST001"
	ErrCodeNameTaken           = "DST002"
	ErrCodeStoreUnavailable    = "DST003"
)

// Errors
var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrNameTaken           = errors.New("destination name already exists")
	ErrStoreUnavailable    = errors.New("destination store unavailable")
)

// DestinationError custom error type
type DestinationError struct {
	Code    string
	Message string
	Err     error
}

func (e *DestinationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DestinationError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewDestinationNotFoundError() *DestinationError {
	return &DestinationError{
		Code:    ErrCodeDestinationNotFound,
		Message: "Destination not found",
		Err:     ErrDestinationNotFound,
	}
}

func NewNameTakenError(name string) *DestinationError {
	return &DestinationError{
		Code:    ErrCodeNameTaken,
		Message: fmt.Sprintf("A destination named %q already exists", name),
		Err:     ErrNameTaken,
	}
}
