package repository

import (
	"context"

	"github.com/google/uuid"

	"relecloud-backend/internal/domains/user/model"
)

type UserRepository interface {
	// Create inserts a user. Unique violations on username or email map
	// to ErrUsernameTaken / ErrEmailTaken.
	Create(ctx context.Context, user *model.User) error

	// GetByID gets a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByUsername gets a user by username
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// GetByEmail gets a user by email
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
