package response

import (
	"content-dispatch/internal/domain/content"
	"content-dispatch/internal/usecase/commands"
	"content-dispatch/internal/usecase/queries"
)

type ContentResponse struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Body       string `json:"body"`
	Visibility string `json:"visibility"`
	LiveAt     *int64 `json:"live_at,omitempty" copier:"-"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

func FromContentView(v *queries.ContentView) (*ContentResponse, error) {
	var res ContentResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	res.LiveAt = unixPtr(v.LiveAt)
	return &res, nil
}

func FromContentItem(item *content.Item) *ContentResponse {
	return &ContentResponse{
		ID:         item.ID().String(),
		OwnerID:    item.OwnerID().String(),
		Title:      item.Title().String(),
		Slug:       item.Slug(),
		Body:       item.Body().String(),
		Visibility: item.Visibility().String(),
		LiveAt:     unixPtr(item.LiveAt()),
		CreatedAt:  item.CreatedAt().Unix(),
		UpdatedAt:  item.UpdatedAt().Unix(),
	}
}

type TransitionResponse struct {
	ContentID    string `json:"content_id"`
	Visibility   string `json:"visibility"`
	ContentJobID int64  `json:"content_job_id"`
	AlertJobID   *int64 `json:"alert_job_id,omitempty"`
}

func FromPublishResult(r *commands.PublishResult) *TransitionResponse {
	return &TransitionResponse{
		ContentID:    r.ContentID.String(),
		Visibility:   r.Visibility.String(),
		ContentJobID: r.ContentJobID,
		AlertJobID:   r.AlertJobID,
	}
}
