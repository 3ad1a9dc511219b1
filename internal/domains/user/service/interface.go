package service

import (
	"context"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	// Register creates an account
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error)

	// Login authenticates by username and password and issues a token
	// pair. Repeated failures lock the account for a cooldown window.
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, req model.RefreshRequest) (*model.LoginResponse, error)

	// GetProfile gets the authenticated user's profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
}
