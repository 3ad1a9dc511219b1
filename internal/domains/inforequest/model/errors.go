package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInfoRequestNotFound = "IRQ001"
)

// Errors
var (
	ErrInfoRequestNotFound = errors.New("info request not found")
)

// InfoRequestError custom error type
type InfoRequestError struct {
	Code    string
	Message string
	Err     error
}

func (e *InfoRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *InfoRequestError) Unwrap() error {
	return e.Err
}

func NewInfoRequestNotFoundError() *InfoRequestError {
	return &InfoRequestError{
		Code:    ErrCodeInfoRequestNotFound,
		Message: "Info request not found",
		Err:     ErrInfoRequestNotFound,
	}
}
