//go:build unit

package token_test

import (
	"encoding/base64"
	"testing"
	"time"

	"content-dispatch/internal/domain/token"
	"content-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	ip := "203.0.113.7"

	t.Run("stores only the hash of the raw secret", func(t *testing.T) {
		issued, err := token.New(userID, token.TypePasswordReset, time.Hour, &ip, now)
		require.NoError(t, err)

		assert.NotEqual(t, issued.Raw, issued.Token.TokenHash)
		assert.Equal(t, token.Hash(issued.Raw), issued.Token.TokenHash)
		assert.Equal(t, now.Add(time.Hour), issued.Token.ExpiresAt)
		assert.Equal(t, userID, issued.Token.UserID)
		assert.Equal(t, &ip, issued.Token.RequestedIP)
		assert.Nil(t, issued.Token.UsedAt)
	})

	t.Run("raw secret carries 32 bytes of entropy", func(t *testing.T) {
		issued, err := token.New(userID, token.TypeEmailVerification, time.Hour, nil, now)
		require.NoError(t, err)

		decoded, err := base64.RawURLEncoding.DecodeString(issued.Raw)
		require.NoError(t, err)
		assert.Len(t, decoded, token.SecretBytes)
	})

	t.Run("secrets do not repeat", func(t *testing.T) {
		seen := map[string]bool{}
		for range 100 {
			raw, err := token.GenerateRaw()
			require.NoError(t, err)
			require.False(t, seen[raw])
			seen[raw] = true
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := token.New(userID, token.Type("magic_link"), time.Hour, nil, now)
		assert.ErrorIs(t, err, token.ErrInvalidType)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		_, err := token.New(userID, token.TypePasswordReset, 0, nil, now)
		assert.ErrorIs(t, err, token.ErrInvalidTTL)
	})
}

func TestIsActive(t *testing.T) {
	now := time.Now()
	used := now.Add(-time.Minute)

	assert.True(t, (&token.ActionToken{ExpiresAt: now.Add(time.Minute)}).IsActive(now))
	assert.False(t, (&token.ActionToken{ExpiresAt: now.Add(-time.Second)}).IsActive(now))
	assert.False(t, (&token.ActionToken{ExpiresAt: now}).IsActive(now))
	assert.False(t, (&token.ActionToken{ExpiresAt: now.Add(time.Minute), UsedAt: &used}).IsActive(now))
}

func TestHashIsStable(t *testing.T) {
	assert.Equal(t, token.Hash("abc"), token.Hash("abc"))
	assert.NotEqual(t, token.Hash("abc"), token.Hash("abd"))
	assert.Len(t, token.Hash("abc"), 64)
}
