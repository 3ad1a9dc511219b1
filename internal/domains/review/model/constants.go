package model

const (
	// Rating bounds, inclusive
	MinRating = 1
	MaxRating = 5

	// Comment limit
	MaxCommentLength = 2000
)
