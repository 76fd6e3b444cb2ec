//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/pkg/jwt"
	"content-dispatch/internal/pkg/password"
	"content-dispatch/internal/usecase/commands"
	"content-dispatch/tests/common/builder"
	queriesmock "content-dispatch/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuth(t *testing.T, f *fixture) (commands.AuthCommands, *queriesmock.MockUserReadStore, *jwt.Service) {
	store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
	svc := jwt.NewService("unit-test-secret", 15*time.Minute, time.Hour)
	return commands.NewAuthCommands(f.uow, store, svc), store, svc
}

func TestAuth_Login(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("valid credentials return a token pair", func(t *testing.T) {
		f := newFixture(t)
		auth, store, svc := newAuth(t, f)
		view := builder.NewUserBuilder().BuildReadModel()
		store.EXPECT().FindByEmail(gomock.Any(), view.Email).Return(view, hash, nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).Return(nil)

		res, err := auth.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		require.NoError(t, err)
		assert.Equal(t, view.ID, res.UserID)
		claims, err := svc.ValidateToken(res.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, view.Role, claims.Role)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		f := newFixture(t)
		auth, store, _ := newAuth(t, f)
		view := builder.NewUserBuilder().BuildReadModel()
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		_, err := auth.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		require.NoError(t, err)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		f := newFixture(t)
		auth, store, _ := newAuth(t, f)
		view := builder.NewUserBuilder().BuildReadModel()
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", errors.New("no rows"))

		req := builder.NewAuthBuilder().BuildDTO()
		req.Password = "not-the-password"
		_, wrongPw := auth.Login(context.Background(), req)
		_, unknown := auth.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		assert.True(t, errs.Is(wrongPw, commands.ErrInvalidCredentials))
		assert.True(t, errs.Is(unknown, commands.ErrInvalidCredentials))
	})

	t.Run("inactive user is refused", func(t *testing.T) {
		f := newFixture(t)
		auth, store, _ := newAuth(t, f)
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		store.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)

		_, err := auth.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		assert.True(t, errs.Is(err, commands.ErrUserInactive))
	})
}

func TestAuth_RefreshToken(t *testing.T) {
	t.Run("refresh token yields a new pair", func(t *testing.T) {
		f := newFixture(t)
		auth, store, svc := newAuth(t, f)
		view := builder.NewUserBuilder().WithRole("operator").BuildReadModel()
		refresh, err := svc.GenerateRefreshToken(view.ID, "operator")
		require.NoError(t, err)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		pair, err := auth.RefreshToken(context.Background(), refresh)

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("access token cannot be used to refresh", func(t *testing.T) {
		f := newFixture(t)
		auth, _, svc := newAuth(t, f)
		view := builder.NewUserBuilder().BuildReadModel()
		access, err := svc.GenerateAccessToken(view.ID, "admin")
		require.NoError(t, err)

		_, err = auth.RefreshToken(context.Background(), access)

		assert.True(t, errs.Is(err, commands.ErrTokenValidation))
	})
}
