package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCruiseNotFound = "CRU001"
	ErrCodeNameTaken      = "CRU002"
	ErrCodeCruiseInUse    = "CRU003"
)

// Errors
var (
	ErrCruiseNotFound = errors.New("cruise not found")
	ErrNameTaken      = errors.New("cruise name already exists")
	ErrCruiseInUse    = errors.New("cruise has information requests referencing it")
)

// CruiseError custom error type
type CruiseError struct {
	Code    string
	Message string
	Err     error
}

func (e *CruiseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CruiseError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewCruiseNotFoundError() *CruiseError {
	return &CruiseError{
		Code:    ErrCodeCruiseNotFound,
		Message: "Cruise not found",
		Err:     ErrCruiseNotFound,
	}
}

func NewNameTakenError(name string) *CruiseError {
	return &CruiseError{
		Code:    ErrCodeNameTaken,
		Message: fmt.Sprintf("A cruise named %q already exists", name),
		Err:     ErrNameTaken,
	}
}

func NewCruiseInUseError() *CruiseError {
	return &CruiseError{
		Code:    ErrCodeCruiseInUse,
		Message: "Cruise cannot be deleted while information requests reference it",
		Err:     ErrCruiseInUse,
	}
}
