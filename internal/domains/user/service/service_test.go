package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"relecloud-backend/internal/domains/user/model"
	"relecloud-backend/pkg/jwt"
)

// =====================================================
// FAKES
// =====================================================

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return model.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return model.ErrEmailTaken
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

// memoryCache is a map-backed stand-in for the cache layer. TTLs are
// recorded but never enforced.
type memoryCache struct {
	values map[string][]byte
	ttls   map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
		delete(m.ttls, key)
	}
	return nil
}

func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func (m *memoryCache) Increment(ctx context.Context, key string) (int64, error) {
	var current int64
	if raw, ok := m.values[key]; ok {
		if err := json.Unmarshal(raw, &current); err != nil {
			return 0, err
		}
	}
	current++
	raw, _ := json.Marshal(current)
	m.values[key] = raw
	return current, nil
}

func (m *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.values[key]
	return ok, nil
}

func (m *memoryCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.ttls[key] = ttl
	return nil
}

func (m *memoryCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	return m.ttls[key], nil
}

// =====================================================
// HELPERS
// =====================================================

func newTestService(t *testing.T) (ServiceInterface, *fakeUserRepo, *memoryCache) {
	t.Helper()
	repo := &fakeUserRepo{}
	c := newMemoryCache()
	manager := jwt.NewManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	return NewUserService(repo, manager, c), repo, c
}

func registerUser(t *testing.T, svc ServiceInterface, username, email, password string) *model.UserResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return resp
}

func assertUserCode(t *testing.T, err error, code string) {
	t.Helper()
	var userErr *model.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, code, userErr.Code)
}

// =====================================================
// REGISTRATION
// =====================================================

func TestRegister(t *testing.T) {
	svc, repo, _ := newTestService(t)

	resp := registerUser(t, svc, "traveler", "traveler@example.com", "correct-horse")

	assert.Equal(t, "traveler", resp.Username)
	assert.Equal(t, model.RoleUser, resp.Role)

	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "correct-horse", repo.users[0].PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[0].PasswordHash), []byte("correct-horse")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService(t)

	registerUser(t, svc, "traveler", "first@example.com", "correct-horse")

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "traveler",
		Email:    "second@example.com",
		Password: "correct-horse",
	})
	assertUserCode(t, err, model.ErrCodeUsernameTaken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	registerUser(t, svc, "traveler", "shared@example.com", "correct-horse")

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "someoneelse",
		Email:    "shared@example.com",
		Password: "correct-horse",
	})
	assertUserCode(t, err, model.ErrCodeEmailTaken)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "traveler",
		Email:    "traveler@example.com",
		Password: "short",
	})
	require.Error(t, err)
	assert.Empty(t, repo.users)
}

// =====================================================
// LOGIN
// =====================================================

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerUser(t, svc, "traveler", "traveler@example.com", "correct-horse")

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "traveler",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "traveler", resp.User.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerUser(t, svc, "traveler", "traveler@example.com", "correct-horse")

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "traveler",
		Password: "wrong",
	})
	assertUserCode(t, err, model.ErrCodeInvalidCredentials)
}

func TestLogin_UnknownUsernameSameRejection(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "ghost",
		Password: "whatever1",
	})
	assertUserCode(t, err, model.ErrCodeInvalidCredentials)
}

func TestLogin_LockoutAfterRepeatedFailures(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerUser(t, svc, "traveler", "traveler@example.com", "correct-horse")

	for i := 0; i < model.MaxLoginAttempts; i++ {
		_, err := svc.Login(context.Background(), model.LoginRequest{
			Username: "traveler",
			Password: "wrong",
		})
		assertUserCode(t, err, model.ErrCodeInvalidCredentials)
	}

	// Even the correct password is rejected while locked.
	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "traveler",
		Password: "correct-horse",
	})
	assertUserCode(t, err, model.ErrCodeAccountLocked)
}

func TestLogin_SuccessClearsFailedAttempts(t *testing.T) {
	svc, _, c := newTestService(t)
	registerUser(t, svc, "traveler", "traveler@example.com", "correct-horse")

	for i := 0; i < model.MaxLoginAttempts-1; i++ {
		_, err := svc.Login(context.Background(), model.LoginRequest{
			Username: "traveler",
			Password: "wrong",
		})
		require.Error(t, err)
	}

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "traveler",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	exists, err := c.Exists(context.Background(), "login_attempts:traveler")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLogin_NoCacheDisablesLockout(t *testing.T) {
	repo := &fakeUserRepo{}
	manager := jwt.NewManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	svc := NewUserService(repo, manager, nil)

	registerUser(t, svc, "traveler", "traveler@example.com", "correct-horse")

	for i := 0; i < model.MaxLoginAttempts+1; i++ {
		_, err := svc.Login(context.Background(), model.LoginRequest{
			Username: "traveler",
			Password: "wrong",
		})
		assertUserCode(t, err, model.ErrCodeInvalidCredentials)
	}

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "traveler",
		Password: "correct-horse",
	})
	require.NoError(t, err)
}

// =====================================================
// REFRESH / PROFILE
// =====================================================

func TestRefresh(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerUser(t, svc, "traveler", "traveler@example.com", "correct-horse")

	login, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "traveler",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), model.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerUser(t, svc, "traveler", "traveler@example.com", "correct-horse")

	login, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "traveler",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), model.RefreshRequest{
		RefreshToken: login.AccessToken,
	})
	assertUserCode(t, err, model.ErrCodeInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	svc, _, _ := newTestService(t)
	created := registerUser(t, svc, "traveler", "traveler@example.com", "correct-horse")

	profile, err := svc.GetProfile(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "traveler@example.com", profile.Email)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assertUserCode(t, err, model.ErrCodeUserNotFound)
}
