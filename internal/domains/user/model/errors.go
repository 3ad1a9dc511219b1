package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeUserNotFound       = "USR001"
	ErrCodeUsernameTaken      = "USR002"
	ErrCodeEmailTaken         = "USR003"
	ErrCodeInvalidCredentials = "USR004"
	ErrCodeAccountLocked      = "USR005"
)

// Errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked")
)

// UserError custom error type
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewUserNotFoundError() *UserError {
	return &UserError{
		Code:    ErrCodeUserNotFound,
		Message: "User not found",
		Err:     ErrUserNotFound,
	}
}

func NewUsernameTakenError(username string) *UserError {
	return &UserError{
		Code:    ErrCodeUsernameTaken,
		Message: fmt.Sprintf("Username '%s' is already taken", username),
		Err:     ErrUsernameTaken,
	}
}

func NewEmailTakenError(email string) *UserError {
	return &UserError{
		Code:    ErrCodeEmailTaken,
		Message: fmt.Sprintf("Email '%s' is already registered", email),
		Err:     ErrEmailTaken,
	}
}

func NewInvalidCredentialsError() *UserError {
	return &UserError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid username or password",
		Err:     ErrInvalidCredentials,
	}
}

func NewAccountLockedError() *UserError {
	return &UserError{
		Code:    ErrCodeAccountLocked,
		Message: "Too many failed login attempts, try again later",
		Err:     ErrAccountLocked,
	}
}
