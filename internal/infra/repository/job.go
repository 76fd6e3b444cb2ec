package repository

import (
	"context"
	"time"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/infra/repository/converter"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/pkg/pgconv"
)

type JobQueries interface {
	CreateJob(ctx context.Context, db query.DBTX, arg query.CreateJobParams) (query.JobRow, error)
	AttachJobQueueMessage(ctx context.Context, db query.DBTX, arg query.AttachJobQueueMessageParams) (int64, error)
	TransitionJob(ctx context.Context, db query.DBTX, arg query.TransitionJobParams) (query.JobRow, error)
	GetJob(ctx context.Context, db query.DBTX, table string, id int64) (query.JobRow, error)
	ListOrphanJobs(ctx context.Context, db query.DBTX, arg query.ListStaleJobsParams) ([]query.JobRow, error)
	ListStalledJobs(ctx context.Context, db query.DBTX, arg query.ListStaleJobsParams) ([]query.JobRow, error)
}

type JobRepository struct {
	queries JobQueries
	clock   clock.Clock
}

func NewJobRepository(queries JobQueries, clk clock.Clock) *JobRepository {
	return &JobRepository{
		queries: queries,
		clock:   clk,
	}
}

func (r *JobRepository) Create(ctx context.Context, db query.DBTX, d job.Draft) (*job.Record, error) {
	if !d.Kind.IsValid() {
		return nil, job.ErrInvalidKind
	}
	row, err := r.queries.CreateJob(ctx, db, query.CreateJobParams{
		Table:     converter.JobTable(d.Kind),
		SubjectID: pgconv.UUIDPtrToPgtype(d.SubjectID),
		EventType: string(d.EventType),
		Payload:   d.Payload,
		Now:       pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create job", err)
	}
	return converter.JobFromRow(d.Kind, row), nil
}

// AttachQueueMessage records the broker id on the row. It does not touch
// status, so a worker that already moved the row on is unaffected.
func (r *JobRepository) AttachQueueMessage(ctx context.Context, db query.DBTX, kind job.Kind, id int64, messageID string) error {
	n, err := r.queries.AttachJobQueueMessage(ctx, db, query.AttachJobQueueMessageParams{
		Table:          converter.JobTable(kind),
		ID:             id,
		QueueMessageID: messageID,
		Now:            pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to attach queue message", err)
	}
	if n == 0 {
		return errs.Wrapf(job.ErrJobNotFound, "%s job %d", kind, id)
	}
	return nil
}

// Transition moves a row to next if its current status allows it. errText is
// required for failed, ignored for completed, and otherwise kept when nil.
func (r *JobRepository) Transition(ctx context.Context, db query.DBTX, kind job.Kind, id int64, next job.Status, errText *string) (*job.Record, error) {
	if !next.IsValid() || next == job.StatusPending {
		return nil, errs.Wrapf(job.ErrInvalidStatus, "cannot transition to %q", next)
	}
	if next == job.StatusFailed && (errText == nil || *errText == "") {
		return nil, job.ErrMissingFailureText
	}

	now := r.clock.Now()
	params := query.TransitionJobParams{
		Table:       converter.JobTable(kind),
		ID:          id,
		Status:      string(next),
		AllowedFrom: converter.StatusStrings(job.AllowedFrom(next)),
		ClearError:  next == job.StatusCompleted,
		Now:         pgconv.TimeToPgtype(now),
	}
	if next != job.StatusCompleted {
		params.Error = pgconv.StringPtrToPgtype(errText)
	}
	if next.IsTerminal() {
		params.ProcessedAt = pgconv.TimeToPgtype(now)
	}

	row, err := r.queries.TransitionJob(ctx, db, params)
	if err == nil {
		return converter.JobFromRow(kind, row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to transition job", err)
	}

	current, getErr := r.Get(ctx, db, kind, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, &job.TransitionError{JobID: id, From: current.Status, To: next}
}

func (r *JobRepository) Get(ctx context.Context, db query.DBTX, kind job.Kind, id int64) (*job.Record, error) {
	row, err := r.queries.GetJob(ctx, db, converter.JobTable(kind), id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Wrapf(job.ErrJobNotFound, "%s job %d", kind, id)
		}
		return nil, infra.WrapRepoErr("failed to get job", err)
	}
	return converter.JobFromRow(kind, row), nil
}

// ListOrphans returns pending rows without a queue message that are older
// than age.
func (r *JobRepository) ListOrphans(ctx context.Context, db query.DBTX, kind job.Kind, age time.Duration, limit int32) ([]*job.Record, error) {
	rows, err := r.queries.ListOrphanJobs(ctx, db, query.ListStaleJobsParams{
		Table:  converter.JobTable(kind),
		Before: pgconv.TimeToPgtype(r.clock.Now().Add(-age)),
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orphan jobs", err)
	}
	return converter.JobsFromRows(kind, rows), nil
}

// ListStalled returns processing rows not updated for longer than age.
func (r *JobRepository) ListStalled(ctx context.Context, db query.DBTX, kind job.Kind, age time.Duration, limit int32) ([]*job.Record, error) {
	rows, err := r.queries.ListStalledJobs(ctx, db, query.ListStaleJobsParams{
		Table:  converter.JobTable(kind),
		Before: pgconv.TimeToPgtype(r.clock.Now().Add(-age)),
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stalled jobs", err)
	}
	return converter.JobsFromRows(kind, rows), nil
}
