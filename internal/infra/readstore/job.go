package readstore

import (
	"context"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/infra/repository/converter"
	"content-dispatch/internal/pkg/pgconv"
	"content-dispatch/internal/usecase/queries"
)

type JobViewQueries interface {
	GetJob(ctx context.Context, db query.DBTX, table string, id int64) (query.JobRow, error)
	ListJobs(ctx context.Context, db query.DBTX, arg query.ListJobsParams) ([]query.JobRow, error)
	CountJobs(ctx context.Context, db query.DBTX, arg query.ListJobsParams) (int64, error)
}

type JobReadStore struct {
	queries JobViewQueries
	db      query.DBTX
}

func NewJobReadStore(queries JobViewQueries, db query.DBTX) *JobReadStore {
	return &JobReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *JobReadStore) FindByID(ctx context.Context, kind job.Kind, id int64) (*queries.JobView, error) {
	row, err := r.queries.GetJob(ctx, r.db, converter.JobTable(kind), id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get job view", err)
	}
	return toJobView(kind, row), nil
}

func (r *JobReadStore) List(ctx context.Context, kind job.Kind, filters queries.JobFilters, limit, offset int32) ([]*queries.JobView, error) {
	params := listParams(kind, filters)
	params.Limit = limit
	params.Offset = offset

	rows, err := r.queries.ListJobs(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list jobs", err)
	}
	views := make([]*queries.JobView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toJobView(kind, row))
	}
	return views, nil
}

func (r *JobReadStore) Count(ctx context.Context, kind job.Kind, filters queries.JobFilters) (int64, error) {
	n, err := r.queries.CountJobs(ctx, r.db, listParams(kind, filters))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count jobs", err)
	}
	return n, nil
}

func listParams(kind job.Kind, filters queries.JobFilters) query.ListJobsParams {
	return query.ListJobsParams{
		Table:     converter.JobTable(kind),
		Status:    pgconv.StringPtrToPgtype(filters.Status),
		SubjectID: pgconv.UUIDPtrToPgtype(filters.SubjectID),
	}
}

func toJobView(kind job.Kind, row query.JobRow) *queries.JobView {
	return &queries.JobView{
		ID:             row.ID,
		Kind:           string(kind),
		SubjectID:      pgconv.UUIDPtrFromPgtype(row.SubjectID),
		QueueMessageID: pgconv.StringPtrFromPgtype(row.QueueMessageID),
		EventType:      row.EventType,
		Status:         row.Status,
		Payload:        row.Payload,
		Error:          pgconv.StringPtrFromPgtype(row.Error),
		ProcessedAt:    pgconv.TimePtrFromPgtype(row.ProcessedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
