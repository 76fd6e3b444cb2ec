//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"content-dispatch/internal/domain/token"
	"content-dispatch/internal/infra/repository"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTokenManager_Issue(t *testing.T) {
	t.Run("invalidates active tokens before storing only the digest", func(t *testing.T) {
		f := newFixture(t)
		m := commands.NewTokenManager(f.clock)
		userID := uuid.New()
		ip := "203.0.113.7"

		var stored *token.ActionToken
		gomock.InOrder(
			f.tokens.EXPECT().InvalidateActive(gomock.Any(), gomock.Any(), userID, token.TypePasswordReset).Return(int64(1), nil),
			f.tokens.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, tok *token.ActionToken) error {
					stored = tok
					return nil
				}),
		)

		issued, err := m.Issue(context.Background(), f.tx, userID, token.TypePasswordReset, time.Hour, &ip)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEmpty(t, issued.RawToken)
		assert.NotEqual(t, issued.RawToken, stored.TokenHash)
		assert.Equal(t, token.Hash(issued.RawToken), stored.TokenHash)
		assert.Equal(t, fixedNow.Add(time.Hour), issued.ExpiresAt)
		assert.Equal(t, userID, stored.UserID)
		assert.Equal(t, &ip, stored.RequestedIP)
	})

	t.Run("non-positive ttl is rejected before any write", func(t *testing.T) {
		f := newFixture(t)
		m := commands.NewTokenManager(f.clock)

		_, err := m.Issue(context.Background(), f.tx, uuid.New(), token.TypeEmailVerification, 0, nil)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("invalidate failure stops issuance", func(t *testing.T) {
		f := newFixture(t)
		m := commands.NewTokenManager(f.clock)
		dbErr := errors.New("connection reset")
		f.tokens.EXPECT().InvalidateActive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), dbErr)

		_, err := m.Issue(context.Background(), f.tx, uuid.New(), token.TypeEmailVerification, time.Hour, nil)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestTokenManager_Consume(t *testing.T) {
	t.Run("matching token returns its owner", func(t *testing.T) {
		f := newFixture(t)
		m := commands.NewTokenManager(f.clock)
		userID := uuid.New()
		f.tokens.EXPECT().Consume(gomock.Any(), gomock.Any(), token.Hash("raw-secret"), token.TypeEmailVerification).Return(userID, nil)

		got, err := m.Consume(context.Background(), f.tx, "raw-secret", token.TypeEmailVerification)

		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("wrong, used and expired tokens fail alike", func(t *testing.T) {
		f := newFixture(t)
		m := commands.NewTokenManager(f.clock)
		f.tokens.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), token.TypePasswordReset).
			Return(uuid.Nil, repository.ErrTokenConsumeFailed)

		_, err := m.Consume(context.Background(), f.tx, "spent", token.TypePasswordReset)

		assert.True(t, errs.Is(err, errs.ErrInvalidOrExpiredToken))
	})

	t.Run("blank token never reaches the store", func(t *testing.T) {
		f := newFixture(t)
		m := commands.NewTokenManager(f.clock)

		_, err := m.Consume(context.Background(), f.tx, "   ", token.TypePasswordReset)

		assert.True(t, errs.Is(err, errs.ErrInvalidOrExpiredToken))
	})
}
