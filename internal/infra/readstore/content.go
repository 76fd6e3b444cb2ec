package readstore

import (
	"context"

	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/pkg/pgconv"
	"content-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContentViewQueries interface {
	FindContentByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ContentRow, error)
}

type ContentReadStore struct {
	queries ContentViewQueries
	db      query.DBTX
}

func NewContentReadStore(queries ContentViewQueries, db query.DBTX) *ContentReadStore {
	return &ContentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ContentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ContentView, error) {
	row, err := r.queries.FindContentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("content not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get content view", err)
	}
	return &queries.ContentView{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		Title:      row.Title,
		Slug:       row.Slug,
		Body:       row.Body,
		Visibility: row.Visibility,
		LiveAt:     pgconv.TimePtrFromPgtype(row.LiveAt),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
