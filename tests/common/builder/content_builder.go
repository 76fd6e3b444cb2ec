//go:build unit || e2e

package builder

import (
	"time"

	"content-dispatch/internal/domain/content"
	reqdto "content-dispatch/internal/handler/dto/request"
	"content-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContentBuilder struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Title      string
	Body       string
	Visibility content.Visibility
	Now        time.Time
}

func NewContentBuilder() *ContentBuilder {
	return &ContentBuilder{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Title:      "Word of the Day: Serendipity",
		Body:       "Finding something good without looking for it.",
		Visibility: content.VisibilityDraft,
		Now:        time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ContentBuilder) With(mutate func(*ContentBuilder)) *ContentBuilder {
	mutate(b)
	return b
}

func (b *ContentBuilder) WithTitle(title string) *ContentBuilder {
	b.Title = title
	return b
}

func (b *ContentBuilder) WithBody(body string) *ContentBuilder {
	b.Body = body
	return b
}

func (b *ContentBuilder) WithOwner(ownerID uuid.UUID) *ContentBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ContentBuilder) AsPublished() *ContentBuilder {
	b.Visibility = content.VisibilityPublished
	return b
}

// BuildDomain validates input the same way NewItem does.
func (b *ContentBuilder) BuildDomain() (*content.Item, error) {
	return content.NewItem(b.OwnerID, b.Title, b.Body, b.Now)
}

// BuildStored returns an item as if loaded from the store.
func (b *ContentBuilder) BuildStored() *content.Item {
	title, _ := content.NewTitle(b.Title)
	body, _ := content.NewBody(b.Body)
	return content.ReconstructItem(b.ID, b.OwnerID, title, title.Slug(), body, b.Visibility, nil, b.Now, b.Now)
}

func (b *ContentBuilder) BuildView() *queries.ContentView {
	title, _ := content.NewTitle(b.Title)
	return &queries.ContentView{
		ID:         b.ID,
		OwnerID:    b.OwnerID,
		Title:      b.Title,
		Slug:       title.Slug(),
		Body:       b.Body,
		Visibility: string(b.Visibility),
		CreatedAt:  b.Now,
		UpdatedAt:  b.Now,
	}
}

func (b *ContentBuilder) BuildDTO() reqdto.CreateContentRequest {
	return reqdto.CreateContentRequest{
		Title: b.Title,
		Body:  b.Body,
	}
}
