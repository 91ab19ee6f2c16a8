//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "tourbook/internal/handler/dto/request"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/jwt"
	"tourbook/internal/pkg/password"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"
	"tourbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserReadStore struct {
	mock.Mock
}

func (m *mockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.Error(1)
}

func (m *mockUserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.String(1), args.Error(2)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newAuthTestDeps() (*mockUserRepo, *mockUserReadStore, *jwt.Service, commands.AuthCommands) {
	userRepo := &mockUserRepo{}
	readStore := &mockUserReadStore{}
	jwtService := jwt.NewService("test-secret-key-for-unit-tests", 15*time.Minute, 24*time.Hour)
	authCommands := commands.NewAuthCommands(userRepo, readStore, jwtService)
	return userRepo, readStore, jwtService, authCommands
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("issues a token pair for valid credentials", func(t *testing.T) {
		userRepo, readStore, _, authCommands := newAuthTestDeps()
		view := builder.NewUserBuilder().WithEmail("admin@tourbook.test").BuildReadModel()

		readStore.On("FindByEmail", ctx, "admin@tourbook.test").Return(view, hash, nil)
		userRepo.On("UpdateLastLogin", ctx, view.ID).Return(nil)

		result, err := authCommands.Login(ctx, reqdto.LoginRequest{
			Email:    "admin@tourbook.test",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, view.ID, result.UserID)
		assert.NotEmpty(t, result.TokenPair.AccessToken)
		assert.NotEmpty(t, result.TokenPair.RefreshToken)
		userRepo.AssertExpectations(t)
	})

	t.Run("login succeeds even when last-login update fails", func(t *testing.T) {
		userRepo, readStore, _, authCommands := newAuthTestDeps()
		view := builder.NewUserBuilder().WithEmail("admin@tourbook.test").BuildReadModel()

		readStore.On("FindByEmail", ctx, "admin@tourbook.test").Return(view, hash, nil)
		userRepo.On("UpdateLastLogin", ctx, view.ID).Return(assert.AnError)

		_, err := authCommands.Login(ctx, reqdto.LoginRequest{
			Email:    "admin@tourbook.test",
			Password: "password123",
		})
		require.NoError(t, err)
	})

	t.Run("wrong password maps to invalid credentials", func(t *testing.T) {
		_, readStore, _, authCommands := newAuthTestDeps()
		view := builder.NewUserBuilder().WithEmail("admin@tourbook.test").BuildReadModel()

		readStore.On("FindByEmail", ctx, "admin@tourbook.test").Return(view, hash, nil)

		_, err := authCommands.Login(ctx, reqdto.LoginRequest{
			Email:    "admin@tourbook.test",
			Password: "wrongpassword",
		})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, readStore, _, authCommands := newAuthTestDeps()

		readStore.On("FindByEmail", ctx, "nobody@tourbook.test").
			Return(nil, "", notFoundErr("user not found"))

		_, err := authCommands.Login(ctx, reqdto.LoginRequest{
			Email:    "nobody@tourbook.test",
			Password: "password123",
		})
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account is rejected before password check", func(t *testing.T) {
		_, readStore, _, authCommands := newAuthTestDeps()
		view := builder.NewUserBuilder().WithEmail("admin@tourbook.test").AsInactive().BuildReadModel()

		readStore.On("FindByEmail", ctx, "admin@tourbook.test").Return(view, hash, nil)

		_, err := authCommands.Login(ctx, reqdto.LoginRequest{
			Email:    "admin@tourbook.test",
			Password: "password123",
		})
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("malformed email fails credential validation", func(t *testing.T) {
		_, _, _, authCommands := newAuthTestDeps()

		_, err := authCommands.Login(ctx, reqdto.LoginRequest{
			Email:    "not-an-email",
			Password: "password123",
		})
		require.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the token pair for a valid refresh token", func(t *testing.T) {
		_, readStore, jwtService, authCommands := newAuthTestDeps()
		view := builder.NewUserBuilder().BuildReadModel()

		refreshToken, err := jwtService.GenerateRefreshToken(view.ID, "admin")
		require.NoError(t, err)

		readStore.On("FindByID", ctx, view.ID).Return(view, nil)

		pair, err := authCommands.RefreshToken(ctx, refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("access token is not accepted as a refresh token", func(t *testing.T) {
		_, _, jwtService, authCommands := newAuthTestDeps()

		accessToken, err := jwtService.GenerateAccessToken(uuid.New(), "admin")
		require.NoError(t, err)

		_, err = authCommands.RefreshToken(ctx, accessToken)
		require.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("garbage token fails validation", func(t *testing.T) {
		_, _, _, authCommands := newAuthTestDeps()

		_, err := authCommands.RefreshToken(ctx, "not-a-jwt")
		require.True(t, errs.Is(err, commands.ErrTokenValidation))
	})

	t.Run("deleted user cannot refresh", func(t *testing.T) {
		_, readStore, jwtService, authCommands := newAuthTestDeps()
		userID := uuid.New()

		refreshToken, err := jwtService.GenerateRefreshToken(userID, "staff")
		require.NoError(t, err)

		readStore.On("FindByID", ctx, userID).Return(nil, notFoundErr("user not found"))

		_, err = authCommands.RefreshToken(ctx, refreshToken)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("deactivated user cannot refresh", func(t *testing.T) {
		_, readStore, jwtService, authCommands := newAuthTestDeps()
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()

		refreshToken, err := jwtService.GenerateRefreshToken(view.ID, "admin")
		require.NoError(t, err)

		readStore.On("FindByID", ctx, view.ID).Return(view, nil)

		_, err = authCommands.RefreshToken(ctx, refreshToken)
		require.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
