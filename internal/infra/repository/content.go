package repository

import (
	"context"

	"content-dispatch/internal/domain/content"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/infra/repository/converter"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ErrVisibilityConflict means another transition changed the row first.
var ErrVisibilityConflict = errs.New("content visibility changed concurrently")

type ContentQueries interface {
	CreateContent(ctx context.Context, db query.DBTX, arg query.CreateContentParams) error
	FindContentByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ContentRow, error)
	UpdateContentVisibility(ctx context.Context, db query.DBTX, arg query.UpdateContentVisibilityParams) (int64, error)
	MarkContentLive(ctx context.Context, db query.DBTX, id uuid.UUID, now pgtype.Timestamptz) (int64, error)
	ClearContentLive(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type ContentRepository struct {
	queries ContentQueries
	clock   clock.Clock
}

func NewContentRepository(queries ContentQueries, clk clock.Clock) *ContentRepository {
	return &ContentRepository{
		queries: queries,
		clock:   clk,
	}
}

func (r *ContentRepository) Create(ctx context.Context, db query.DBTX, item *content.Item) error {
	if err := r.queries.CreateContent(ctx, db, converter.ContentToCreateParams(item)); err != nil {
		return infra.WrapRepoErr("failed to create content", err)
	}
	return nil
}

func (r *ContentRepository) FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*content.Item, error) {
	row, err := r.queries.FindContentByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, content.ErrContentNotFound
		}
		return nil, infra.WrapRepoErr("failed to find content", err)
	}
	return converter.ContentFromRow(row), nil
}

// UpdateVisibility persists a transition from one visibility to another.
func (r *ContentRepository) UpdateVisibility(ctx context.Context, db query.DBTX, id uuid.UUID, from, to content.Visibility) error {
	n, err := r.queries.UpdateContentVisibility(ctx, db, query.UpdateContentVisibilityParams{
		ID:   id,
		From: from.String(),
		To:   to.String(),
		Now:  pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update content visibility", err)
	}
	if n == 0 {
		return ErrVisibilityConflict
	}
	return nil
}

// MarkLive stamps live_at when the content is still published. It reports
// false when the row was unpublished in the meantime.
func (r *ContentRepository) MarkLive(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.MarkContentLive(ctx, db, id, pgconv.TimeToPgtype(r.clock.Now()))
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark content live", err)
	}
	return n > 0, nil
}

func (r *ContentRepository) ClearLive(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.ClearContentLive(ctx, db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to clear content live", err)
	}
	return n > 0, nil
}
