package repository

import (
	"context"
	"encoding/json"

	"content-dispatch/internal/domain/token"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var ErrTokenConsumeFailed = errs.Mark(errs.New("invalid or expired token"), errs.ErrInvalidOrExpiredToken)

type TokenQueries interface {
	InvalidateActiveTokens(ctx context.Context, db query.DBTX, arg query.InvalidateActiveTokensParams) (int64, error)
	CreateActionToken(ctx context.Context, db query.DBTX, arg query.CreateActionTokenParams) error
	ConsumeActionToken(ctx context.Context, db query.DBTX, arg query.ConsumeActionTokenParams) (uuid.UUID, error)
}

type TokenRepository struct {
	queries TokenQueries
	clock   clock.Clock
}

func NewTokenRepository(queries TokenQueries, clk clock.Clock) *TokenRepository {
	return &TokenRepository{
		queries: queries,
		clock:   clk,
	}
}

// InvalidateActive marks every unused, unexpired token of typ for the user as
// used and returns how many were affected.
func (r *TokenRepository) InvalidateActive(ctx context.Context, db query.DBTX, userID uuid.UUID, typ token.Type) (int64, error) {
	n, err := r.queries.InvalidateActiveTokens(ctx, db, query.InvalidateActiveTokensParams{
		UserID:    userID,
		TokenType: string(typ),
		Now:       pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to invalidate action tokens", err)
	}
	return n, nil
}

func (r *TokenRepository) Create(ctx context.Context, db query.DBTX, t *token.ActionToken) error {
	var metadata []byte
	if len(t.Metadata) > 0 {
		b, err := json.Marshal(t.Metadata)
		if err != nil {
			return errs.Wrap(err, "failed to encode token metadata")
		}
		metadata = b
	}
	err := r.queries.CreateActionToken(ctx, db, query.CreateActionTokenParams{
		ID:          t.ID,
		UserID:      t.UserID,
		TokenHash:   t.TokenHash,
		TokenType:   string(t.Type),
		ExpiresAt:   pgconv.TimeToPgtype(t.ExpiresAt),
		RequestedIP: pgconv.StringPtrToPgtype(t.RequestedIP),
		Metadata:    metadata,
		CreatedAt:   pgconv.TimeToPgtype(t.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create action token", err)
	}
	return nil
}

// Consume spends the token matching hash in a single statement. Unknown, used
// and expired tokens are indistinguishable to the caller.
func (r *TokenRepository) Consume(ctx context.Context, db query.DBTX, hash string, typ token.Type) (uuid.UUID, error) {
	userID, err := r.queries.ConsumeActionToken(ctx, db, query.ConsumeActionTokenParams{
		TokenHash: hash,
		TokenType: string(typ),
		Now:       pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, ErrTokenConsumeFailed
		}
		return uuid.Nil, infra.WrapRepoErr("failed to consume action token", err)
	}
	return userID, nil
}
