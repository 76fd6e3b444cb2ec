package repository

import (
	"context"

	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/infra/repository/converter"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserQueries interface {
	FindUserByEmail(ctx context.Context, db query.DBTX, email string) (query.UserRow, error)
	FindUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.UserRow, error)
	UpdateUserLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID) error
	MarkUserEmailVerified(ctx context.Context, db query.DBTX, id uuid.UUID, now pgtype.Timestamptz) (int64, error)
	UpdateUserPassword(ctx context.Context, db query.DBTX, arg query.UpdateUserPasswordParams) (int64, error)
}

type UserRepository struct {
	queries UserQueries
	clock   clock.Clock
}

func NewUserRepository(queries UserQueries, clk clock.Clock) *UserRepository {
	return &UserRepository{
		queries: queries,
		clock:   clk,
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, db query.DBTX, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return converter.UserFromRow(row), nil
}

func (r *UserRepository) FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return converter.UserFromRow(row), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, db query.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, db, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, db query.DBTX, userID uuid.UUID) error {
	n, err := r.queries.MarkUserEmailVerified(ctx, db, userID, pgconv.TimeToPgtype(r.clock.Now()))
	if err != nil {
		return infra.WrapRepoErr("failed to mark email verified", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, db query.DBTX, userID uuid.UUID, passwordHash string) error {
	n, err := r.queries.UpdateUserPassword(ctx, db, query.UpdateUserPasswordParams{
		ID:           userID,
		PasswordHash: passwordHash,
		Now:          pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user password", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
