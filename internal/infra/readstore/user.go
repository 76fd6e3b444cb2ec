package readstore

import (
	"context"

	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/pkg/pgconv"
	"content-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.UserRow, error)
	FindUserByEmail(ctx context.Context, db query.DBTX, email string) (query.UserRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the password hash so login can verify it without
// a second round trip.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row query.UserRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:              row.ID,
		Email:           row.Email,
		Role:            row.Role,
		EmailVerifiedAt: pgconv.TimePtrFromPgtype(row.EmailVerifiedAt),
		IsActive:        row.IsActive,
	}
}
