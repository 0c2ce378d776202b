package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/stay_booking/internal/core/domain"
	"github.com/srgjo27/stay_booking/internal/core/ports/mocks"
	"github.com/srgjo27/stay_booking/internal/core/services"
	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

func TestLogin_Success(t *testing.T) {
	mockProvider := mocks.NewAuthenticationProvider(t)
	mockSessions := mocks.NewSessionFlagStore(t)

	service := services.NewAuthService(mockProvider, mockSessions, logging.Discard(), nil)

	ctx := context.Background()
	creds := domain.Credentials{Username: "sameer", Password: "sameer@123"}

	mockProvider.On("Check", ctx, creds).Return(&domain.Session{Username: "sameer"}, nil)
	mockSessions.On("SetLoggedIn", ctx, mock.AnythingOfType("string")).Return(nil)

	session, err := service.Login(ctx, "sameer", "sameer@123")

	require.NoError(t, err)
	if assert.NotNil(t, session) {
		assert.Equal(t, "sameer", session.Username)
		assert.NotEmpty(t, session.ID)
		assert.False(t, session.CreatedAt.IsZero())
		mockSessions.AssertCalled(t, "SetLoggedIn", ctx, session.ID)
	}
}

func TestLogin_Fail_InvalidCredentials(t *testing.T) {
	mockProvider := mocks.NewAuthenticationProvider(t)
	mockSessions := mocks.NewSessionFlagStore(t)

	service := services.NewAuthService(mockProvider, mockSessions, logging.Discard(), nil)

	ctx := context.Background()
	creds := domain.Credentials{Username: "sameer", Password: "wrong"}

	mockProvider.On("Check", ctx, creds).Return(nil, domain.ErrInvalidCredentials)

	session, err := service.Login(ctx, "sameer", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, session)
	mockSessions.AssertNotCalled(t, "SetLoggedIn", mock.Anything, mock.Anything)
}

func TestLogin_Fail_ProviderDown(t *testing.T) {
	mockProvider := mocks.NewAuthenticationProvider(t)
	mockSessions := mocks.NewSessionFlagStore(t)

	service := services.NewAuthService(mockProvider, mockSessions, logging.Discard(), nil)

	ctx := context.Background()
	mockProvider.On("Check", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := service.Login(ctx, "sameer", "sameer@123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "check credentials")
}

func TestLogin_Fail_SessionStore(t *testing.T) {
	mockProvider := mocks.NewAuthenticationProvider(t)
	mockSessions := mocks.NewSessionFlagStore(t)

	service := services.NewAuthService(mockProvider, mockSessions, logging.Discard(), nil)

	ctx := context.Background()
	mockProvider.On("Check", ctx, mock.Anything).Return(&domain.Session{Username: "sameer"}, nil)
	mockSessions.On("SetLoggedIn", ctx, mock.Anything).Return(errors.New("redis unavailable"))

	session, err := service.Login(ctx, "sameer", "sameer@123")

	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "store session flag")
}

func TestIsLoggedIn(t *testing.T) {
	mockProvider := mocks.NewAuthenticationProvider(t)
	mockSessions := mocks.NewSessionFlagStore(t)

	service := services.NewAuthService(mockProvider, mockSessions, logging.Discard(), nil)
	ctx := context.Background()

	ok, err := service.IsLoggedIn(ctx, "")
	assert.NoError(t, err)
	assert.False(t, ok)

	mockSessions.On("IsLoggedIn", ctx, "abc").Return(true, nil)
	ok, err = service.IsLoggedIn(ctx, "abc")
	assert.NoError(t, err)
	assert.True(t, ok)

	mockSessions.On("IsLoggedIn", ctx, "broken").Return(false, errors.New("timeout"))
	_, err = service.IsLoggedIn(ctx, "broken")
	assert.Error(t, err)
}
