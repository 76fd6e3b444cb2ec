package converter

import (
	"content-dispatch/internal/domain/content"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/pkg/pgconv"
)

func ContentToCreateParams(item *content.Item) query.CreateContentParams {
	return query.CreateContentParams{
		ID:         item.ID(),
		OwnerID:    item.OwnerID(),
		Title:      item.Title().String(),
		Slug:       item.Slug(),
		Body:       item.Body().String(),
		Visibility: item.Visibility().String(),
		CreatedAt:  pgconv.TimeToPgtype(item.CreatedAt()),
	}
}

// ContentFromRow trusts stored values; they were validated on the way in.
func ContentFromRow(row query.ContentRow) *content.Item {
	title, _ := content.NewTitle(row.Title)
	body, _ := content.NewBody(row.Body)
	return content.ReconstructItem(
		row.ID,
		row.OwnerID,
		title,
		row.Slug,
		body,
		content.Visibility(row.Visibility),
		pgconv.TimePtrFromPgtype(row.LiveAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
