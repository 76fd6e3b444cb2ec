package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const contentColumns = `id, owner_id, title, slug, body, visibility, live_at, created_at, updated_at`

type CreateContentParams struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Title      string
	Slug       string
	Body       string
	Visibility string
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateContent(ctx context.Context, db DBTX, arg CreateContentParams) error {
	_, err := db.Exec(ctx, `INSERT INTO contents (id, owner_id, title, slug, body, visibility, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		arg.ID, arg.OwnerID, arg.Title, arg.Slug, arg.Body, arg.Visibility, arg.CreatedAt)
	return err
}

func (q *Queries) FindContentByID(ctx context.Context, db DBTX, id uuid.UUID) (ContentRow, error) {
	var c ContentRow
	err := db.QueryRow(ctx, `SELECT `+contentColumns+` FROM contents WHERE id = $1`, id).Scan(
		&c.ID,
		&c.OwnerID,
		&c.Title,
		&c.Slug,
		&c.Body,
		&c.Visibility,
		&c.LiveAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

type UpdateContentVisibilityParams struct {
	ID   uuid.UUID
	From string
	To   string
	Now  pgtype.Timestamptz
}

// UpdateContentVisibility only applies when the row still holds From, so two
// racing transitions cannot both succeed.
func (q *Queries) UpdateContentVisibility(ctx context.Context, db DBTX, arg UpdateContentVisibilityParams) (int64, error) {
	tag, err := db.Exec(ctx, `UPDATE contents SET visibility = $3, updated_at = $4
WHERE id = $1 AND visibility = $2`,
		arg.ID, arg.From, arg.To, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) MarkContentLive(ctx context.Context, db DBTX, id uuid.UUID, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, `UPDATE contents SET live_at = COALESCE(live_at, $2)
WHERE id = $1 AND visibility = 'published'`, id, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) ClearContentLive(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, `UPDATE contents SET live_at = NULL
WHERE id = $1 AND visibility = 'draft'`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
