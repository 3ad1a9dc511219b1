package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"relecloud-backend/internal/domains/user/model"
	"relecloud-backend/internal/domains/user/repository"
	"relecloud-backend/pkg/cache"
	"relecloud-backend/pkg/jwt"
)

const bcryptCost = 12

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type userService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
	cache      cache.Cache
}

// NewUserService builds the user service. cache may be nil, in which case
// failed login tracking is disabled.
func NewUserService(userRepo repository.UserRepository, jwtManager *jwt.Manager, c cache.Cache) ServiceInterface {
	return &userService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		cache:      c,
	}
}

// =====================================================
// REGISTRATION
// =====================================================

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken):
			return nil, model.NewUsernameTakenError(req.Username)
		case errors.Is(err, model.ErrEmailTaken):
			return nil, model.NewEmailTakenError(req.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("username", user.Username).
		Msg("User registered")

	resp := user.ToResponse()
	return &resp, nil
}

// =====================================================
// AUTHENTICATION
// =====================================================

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.isLockedOut(ctx, req.Username) {
		return nil, model.NewAccountLockedError()
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Same rejection as a wrong password, so probing for
			// usernames tells the caller nothing.
			s.recordFailedAttempt(ctx, req.Username)
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailedAttempt(ctx, req.Username)
		return nil, model.NewInvalidCredentialsError()
	}

	s.clearFailedAttempts(ctx, req.Username)

	return s.issueTokens(user)
}

func (s *userService) Refresh(ctx context.Context, req model.RefreshRequest) (*model.LoginResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.issueTokens(user)
}

func (s *userService) issueTokens(user *model.User) (*model.LoginResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID.String(), user.Email, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.jwtManager.AccessExpiry()),
		User:         user.ToResponse(),
	}, nil
}

// =====================================================
// PROFILE
// =====================================================

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	resp := user.ToResponse()
	return &resp, nil
}

// =====================================================
// FAILED LOGIN TRACKING
// =====================================================

// Lockout state lives in the cache with its own TTL. A cache outage
// disables tracking rather than blocking logins.

func loginAttemptsKey(username string) string {
	return "login_attempts:" + username
}

func (s *userService) isLockedOut(ctx context.Context, username string) bool {
	if s.cache == nil {
		return false
	}
	var attempts int64
	found, err := s.cache.Get(ctx, loginAttemptsKey(username), &attempts)
	if err != nil || !found {
		return false
	}
	return attempts >= model.MaxLoginAttempts
}

func (s *userService) recordFailedAttempt(ctx context.Context, username string) {
	if s.cache == nil {
		return
	}
	key := loginAttemptsKey(username)
	attempts, err := s.cache.Increment(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Failed to record login attempt")
		return
	}
	if attempts == 1 {
		if err := s.cache.Expire(ctx, key, model.LockoutWindow); err != nil {
			log.Warn().Err(err).Str("username", username).Msg("Failed to set lockout window")
		}
	}
	if attempts >= model.MaxLoginAttempts {
		log.Warn().
			Str("username", username).
			Int64("attempts", attempts).
			Msg("Account locked after repeated failed logins")
	}
}

func (s *userService) clearFailedAttempts(ctx context.Context, username string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, loginAttemptsKey(username)); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Failed to clear login attempts")
	}
}
