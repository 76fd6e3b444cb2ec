package queries

import (
	"context"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/pkg/errs"
)

var (
	ErrJobNotFound = errs.Mark(errs.New("job not found"), errs.ErrNotFound)
	ErrJobAccess   = errs.Mark(errs.New("job access denied"), errs.ErrForbidden)
)

type JobReadStore interface {
	FindByID(ctx context.Context, kind job.Kind, id int64) (*JobView, error)
	List(ctx context.Context, kind job.Kind, filters JobFilters, limit, offset int32) ([]*JobView, error)
	Count(ctx context.Context, kind job.Kind, filters JobFilters) (int64, error)
}

// JobQueries backs the operator console. Only elevated roles may read job
// rows since payloads carry recipient addresses and action URLs.
type JobQueries interface {
	GetByID(ctx context.Context, actorRole user.Role, kind job.Kind, id int64) (*JobView, error)
	List(ctx context.Context, actorRole user.Role, kind job.Kind, filters JobFilters, limit, offset int) (*JobPage, error)
}

type jobQueriesImpl struct {
	store JobReadStore
}

func NewJobQueries(store JobReadStore) JobQueries {
	return &jobQueriesImpl{store: store}
}

func (q *jobQueriesImpl) GetByID(ctx context.Context, actorRole user.Role, kind job.Kind, id int64) (*JobView, error) {
	if !actorRole.IsElevated() {
		return nil, ErrJobAccess
	}
	view, err := q.store.FindByID(ctx, kind, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *jobQueriesImpl) List(ctx context.Context, actorRole user.Role, kind job.Kind, filters JobFilters, limit, offset int) (*JobPage, error) {
	if !actorRole.IsElevated() {
		return nil, ErrJobAccess
	}
	if filters.Status != nil {
		if _, err := job.NewStatus(*filters.Status); err != nil {
			return nil, err
		}
	}
	limit = ValidateLimit(limit)
	offset = ValidateOffset(offset)

	items, err := q.store.List(ctx, kind, filters, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	total, err := q.store.Count(ctx, kind, filters)
	if err != nil {
		return nil, err
	}
	return &JobPage{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}
