package queries

import (
	"context"

	"content-dispatch/internal/domain/content"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra"

	"github.com/google/uuid"
)

var ErrContentNotFound = content.ErrContentNotFound

type ContentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ContentView, error)
}

type ContentQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ContentView, error)
}

type contentQueriesImpl struct {
	store ContentReadStore
}

func NewContentQueries(store ContentReadStore) ContentQueries {
	return &contentQueriesImpl{store: store}
}

// GetByID hides drafts from everyone but their owner and elevated roles.
// A hidden draft reads as not found.
func (q *contentQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ContentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	if view.Visibility == content.VisibilityPublished.String() {
		return view, nil
	}
	if view.OwnerID != actorID && !actorRole.IsElevated() {
		return nil, ErrContentNotFound
	}
	return view, nil
}
