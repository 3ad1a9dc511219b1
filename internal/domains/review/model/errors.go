package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidRating   = "REV001"
	ErrCodeCommentTooLong  = "REV002"
	ErrCodeDuplicateReview = "REV003"
	ErrCodeNotEntitled     = "REV004"
	ErrCodeReviewNotFound  = "REV005"
)

// Errors
var (
	ErrInvalidRating   = errors.New("rating out of bounds")
	ErrCommentTooLong  = errors.New("comment too long")
	ErrDuplicateReview = errors.New("already reviewed this destination")
	ErrNotEntitled     = errors.New("not entitled to review")
	ErrReviewNotFound  = errors.New("review not found")
)

// ReviewError custom error type
type ReviewError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewInvalidRatingError(rating int) *ReviewError {
	return &ReviewError{
		Code:    ErrCodeInvalidRating,
		Message: fmt.Sprintf("Rating must be an integer between %d and %d, got %d", MinRating, MaxRating, rating),
		Err:     ErrInvalidRating,
	}
}

func NewCommentTooLongError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeCommentTooLong,
		Message: fmt.Sprintf("Comment must not exceed %d characters", MaxCommentLength),
		Err:     ErrCommentTooLong,
	}
}

func NewDuplicateReviewError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeDuplicateReview,
		Message: "You have already reviewed this destination",
		Err:     ErrDuplicateReview,
	}
}

func NewNotEntitledError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNotEntitled,
		Message: "You must have requested information about a cruise covering this destination before reviewing it",
		Err:     ErrNotEntitled,
	}
}
