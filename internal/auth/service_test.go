// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primehaven/realty-api/internal/core"
)

type fakeUserProvider struct {
	mu      sync.Mutex
	byEmail map[string]*UserInfo
	byID    map[string]*UserInfo
}

func newFakeUserProvider() *fakeUserProvider {
	return &fakeUserProvider{
		byEmail: make(map[string]*UserInfo),
		byID:    make(map[string]*UserInfo),
	}
}

func (f *fakeUserProvider) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	return user, nil
}

func (f *fakeUserProvider) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return user, nil
}

func (f *fakeUserProvider) Create(
	_ context.Context,
	email, passwordHash, name string,
) (*UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	normalized := strings.ToLower(email)
	if _, ok := f.byEmail[normalized]; ok {
		return nil, fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}

	user := &UserInfo{
		ID:           uuid.New().String(),
		Email:        normalized,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "user",
		CreatedAt:    time.Now(),
	}
	f.byEmail[normalized] = user
	f.byID[user.ID] = user

	return user, nil
}

func newTestService(t *testing.T) (*Service, *fakeUserProvider) {
	t.Helper()

	tm, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	users := newFakeUserProvider()
	return NewService(tm, users), users
}

func TestService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	registered, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "user", registered.User.Role)
	assert.Equal(t, "ana@x.com", registered.User.Email)

	loggedIn, err := svc.Login(ctx, LoginRequest{
		Email:    "ana@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		Name:     "Other",
		Email:    "ANA@X.COM",
		Password: "different-password",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{
		Email:    "ana@x.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret1",
	})

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_TokenAcceptedByVerifier(t *testing.T) {
	ctx := context.Background()

	tm, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	users := newFakeUserProvider()
	svc := NewService(tm, users)

	resp, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	subject, err := tm.VerifyToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, subject)
}

func TestService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)

	resp, err := svc.Register(ctx, RegisterRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	me, err := svc.GetCurrentUser(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", me.Name)

	delete(users.byID, resp.User.ID)

	_, err = svc.GetCurrentUser(ctx, resp.User.ID)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}
