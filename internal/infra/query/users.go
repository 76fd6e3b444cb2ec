package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, password_hash, role, email_verified_at, last_login, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (UserRow, error) {
	var u UserRow
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.EmailVerifiedAt,
		&u.LastLogin,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (UserRow, error) {
	return scanUser(db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (UserRow, error) {
	return scanUser(db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, id)
	return err
}

func (q *Queries) MarkUserEmailVerified(ctx context.Context, db DBTX, id uuid.UUID, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, `UPDATE users SET email_verified_at = COALESCE(email_verified_at, $2), updated_at = $2
WHERE id = $1`, id, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type UpdateUserPasswordParams struct {
	ID           uuid.UUID
	PasswordHash string
	Now          pgtype.Timestamptz
}

func (q *Queries) UpdateUserPassword(ctx context.Context, db DBTX, arg UpdateUserPasswordParams) (int64, error) {
	tag, err := db.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		arg.ID, arg.PasswordHash, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
