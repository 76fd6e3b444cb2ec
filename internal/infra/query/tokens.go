package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InvalidateActiveTokensParams struct {
	UserID    uuid.UUID
	TokenType string
	Now       pgtype.Timestamptz
}

func (q *Queries) InvalidateActiveTokens(ctx context.Context, db DBTX, arg InvalidateActiveTokensParams) (int64, error) {
	tag, err := db.Exec(ctx, `UPDATE auth_action_tokens
SET used_at = $3
WHERE user_id = $1 AND token_type = $2 AND used_at IS NULL AND expires_at > $3`,
		arg.UserID, arg.TokenType, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type CreateActionTokenParams struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TokenHash   string
	TokenType   string
	ExpiresAt   pgtype.Timestamptz
	RequestedIP pgtype.Text
	Metadata    []byte
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateActionToken(ctx context.Context, db DBTX, arg CreateActionTokenParams) error {
	_, err := db.Exec(ctx, `INSERT INTO auth_action_tokens
    (id, user_id, token_hash, token_type, expires_at, requested_ip, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		arg.ID,
		arg.UserID,
		arg.TokenHash,
		arg.TokenType,
		arg.ExpiresAt,
		arg.RequestedIP,
		arg.Metadata,
		arg.CreatedAt,
	)
	return err
}

type ConsumeActionTokenParams struct {
	TokenHash string
	TokenType string
	Now       pgtype.Timestamptz
}

// ConsumeActionToken marks the token used and returns its owner in one
// statement. pgx.ErrNoRows covers unknown, used and expired tokens alike.
func (q *Queries) ConsumeActionToken(ctx context.Context, db DBTX, arg ConsumeActionTokenParams) (uuid.UUID, error) {
	var userID uuid.UUID
	err := db.QueryRow(ctx, `UPDATE auth_action_tokens
SET used_at = $3
WHERE token_hash = $1 AND token_type = $2 AND used_at IS NULL AND expires_at > $3
RETURNING user_id`,
		arg.TokenHash, arg.TokenType, arg.Now).Scan(&userID)
	return userID, err
}
