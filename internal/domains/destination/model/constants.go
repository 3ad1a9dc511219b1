package model

const (
	// Field limits
	MaxNameLength        = 50
	MaxDescriptionLength = 2000
)
