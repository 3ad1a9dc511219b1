package model

import "time"

const (
	MaxUsernameLength = 150
	MinPasswordLength = 8

	// Failed login lockout
	MaxLoginAttempts = 5
	LockoutWindow    = 15 * time.Minute
)
