package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentride_service/domain"
	"rentride_service/errors"
)

func TestSignupAndLogin(t *testing.T) {
	users := newFakeUserStore()
	sessions := newFakeSessionCache()
	service := NewAuthService(users, sessions, testTracer)

	user, token, err := service.Signup(context.Background(), "Mia", "mia@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.ID.IsZero())
	assert.Len(t, sessions.sessions, 1)

	loggedIn, loginToken, err := service.Login(context.Background(), "mia@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loggedIn.ID)

	_, _, err = service.Login(context.Background(), "mia@example.com", "wrong-password")
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	service := NewAuthService(users, nil, testTracer)

	_, _, err := service.Signup(context.Background(), "Mia", "mia@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = service.Signup(context.Background(), "Other Mia", "mia@example.com", "secret456")
	assert.ErrorIs(t, err, errors.ErrAlreadyExists)
}

func TestSignupValidation(t *testing.T) {
	users := newFakeUserStore()
	service := NewAuthService(users, nil, testTracer)

	_, _, err := service.Signup(context.Background(), "", "mia@example.com", "secret123")
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	_, _, err = service.Signup(context.Background(), "Mia", "not-an-email", "secret123")
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	_, _, err = service.Signup(context.Background(), "Mia", "mia@example.com", "tiny")
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewAuthService(newFakeUserStore(), nil, testTracer)

	_, _, err := service.Login(context.Background(), "ghost@example.com", "secret123")
	assert.ErrorIs(t, err, errors.ErrUnauthorized)

	_, _, err = service.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestLoginBlockedAccount(t *testing.T) {
	users := newFakeUserStore()
	service := NewAuthService(users, nil, testTracer)

	user, _, err := service.Signup(context.Background(), "Mia", "mia@example.com", "secret123")
	require.NoError(t, err)

	stored, err := users.Get(context.Background(), user.ID)
	require.NoError(t, err)
	stored.Blocked = true
	_, err = users.UpdateUser(context.Background(), stored)
	require.NoError(t, err)

	_, _, err = service.Login(context.Background(), "mia@example.com", "secret123")
	assert.ErrorIs(t, err, errors.ErrForbidden)
}

func TestLogout(t *testing.T) {
	users := newFakeUserStore()
	sessions := newFakeSessionCache()
	service := NewAuthService(users, sessions, testTracer)

	_, token, err := service.Signup(context.Background(), "Mia", "mia@example.com", "secret123")
	require.NoError(t, err)
	require.Len(t, sessions.sessions, 1)

	err = service.Logout(context.Background(), token)
	require.NoError(t, err)
	assert.Empty(t, sessions.sessions)

	err = service.Logout(context.Background(), "garbage-token")
	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}
