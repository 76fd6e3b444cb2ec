package commands

import (
	"context"
	"strings"
	"time"

	"content-dispatch/internal/domain/token"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidOrExpiredToken = errs.Mark(errs.New("invalid or expired token"), errs.ErrInvalidOrExpiredToken)

type IssuedToken struct {
	// RawToken leaves the process once, inside the action URL.
	RawToken  string
	ExpiresAt time.Time
}

// TokenManager issues and spends single-use action tokens. Both operations run
// on the caller's transaction so the token and the job announcing it commit
// together.
type TokenManager struct {
	clock clock.Clock
}

func NewTokenManager(clk clock.Clock) *TokenManager {
	return &TokenManager{clock: clk}
}

// Issue invalidates every active token of typ for the user before storing the
// digest of a fresh one.
func (m *TokenManager) Issue(ctx context.Context, tx shared.Tx, userID uuid.UUID, typ token.Type, ttl time.Duration, requestedIP *string) (*IssuedToken, error) {
	issued, err := token.New(userID, typ, ttl, requestedIP, m.clock.Now())
	if err != nil {
		return nil, err
	}

	if _, err := tx.Tokens().InvalidateActive(ctx, tx.DB(), userID, typ); err != nil {
		return nil, err
	}
	if err := tx.Tokens().Create(ctx, tx.DB(), &issued.Token); err != nil {
		return nil, err
	}

	return &IssuedToken{
		RawToken:  issued.Raw,
		ExpiresAt: issued.Token.ExpiresAt,
	}, nil
}

// Consume spends raw and returns its owner. Wrong, used and expired tokens all
// fail with ErrInvalidOrExpiredToken.
func (m *TokenManager) Consume(ctx context.Context, tx shared.Tx, raw string, typ token.Type) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrInvalidOrExpiredToken
	}

	userID, err := tx.Tokens().Consume(ctx, tx.DB(), token.Hash(raw), typ)
	if err != nil {
		if errs.Is(err, errs.ErrInvalidOrExpiredToken) {
			return uuid.Nil, ErrInvalidOrExpiredToken
		}
		return uuid.Nil, err
	}
	return userID, nil
}
