package query

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	TableContentJobs = "content_jobs"
	TableEmailJobs   = "email_jobs"
)

const jobColumns = `id, subject_id, queue_message_id, event_type, status, payload, error, processed_at, created_at, updated_at`

// table names cannot be bound as parameters, so only known tables pass
func jobTable(table string) (string, error) {
	switch table {
	case TableContentJobs, TableEmailJobs:
		return table, nil
	default:
		return "", fmt.Errorf("unknown job table %q", table)
	}
}

func scanJob(row pgx.Row) (JobRow, error) {
	var j JobRow
	err := row.Scan(
		&j.ID,
		&j.SubjectID,
		&j.QueueMessageID,
		&j.EventType,
		&j.Status,
		&j.Payload,
		&j.Error,
		&j.ProcessedAt,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	return j, err
}

func collectJobs(rows pgx.Rows) ([]JobRow, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (JobRow, error) {
		return scanJob(row)
	})
}

type CreateJobParams struct {
	Table     string
	SubjectID pgtype.UUID
	EventType string
	Payload   []byte
	Now       pgtype.Timestamptz
}

func (q *Queries) CreateJob(ctx context.Context, db DBTX, arg CreateJobParams) (JobRow, error) {
	table, err := jobTable(arg.Table)
	if err != nil {
		return JobRow{}, err
	}
	sql := `INSERT INTO ` + table + ` (subject_id, event_type, status, payload, created_at, updated_at)
VALUES ($1, $2, 'pending', $3, $4, $4)
RETURNING ` + jobColumns
	return scanJob(db.QueryRow(ctx, sql, arg.SubjectID, arg.EventType, arg.Payload, arg.Now))
}

type AttachJobQueueMessageParams struct {
	Table          string
	ID             int64
	QueueMessageID string
	Now            pgtype.Timestamptz
}

func (q *Queries) AttachJobQueueMessage(ctx context.Context, db DBTX, arg AttachJobQueueMessageParams) (int64, error) {
	table, err := jobTable(arg.Table)
	if err != nil {
		return 0, err
	}
	sql := `UPDATE ` + table + ` SET queue_message_id = $2, updated_at = $3 WHERE id = $1`
	tag, err := db.Exec(ctx, sql, arg.ID, arg.QueueMessageID, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type TransitionJobParams struct {
	Table       string
	ID          int64
	Status      string
	AllowedFrom []string
	Error       pgtype.Text
	ClearError  bool
	ProcessedAt pgtype.Timestamptz
	Now         pgtype.Timestamptz
}

// TransitionJob is a compare-and-set on status. pgx.ErrNoRows means the row
// is missing or holds a status outside AllowedFrom. Repeating a final status
// keeps the original processed_at.
func (q *Queries) TransitionJob(ctx context.Context, db DBTX, arg TransitionJobParams) (JobRow, error) {
	table, err := jobTable(arg.Table)
	if err != nil {
		return JobRow{}, err
	}
	sql := `UPDATE ` + table + `
SET status = $2,
    error = CASE WHEN $5::boolean THEN NULL ELSE COALESCE($4, error) END,
    processed_at = CASE
        WHEN status = $2::text AND $2::text IN ('completed', 'broker_exhausted') THEN processed_at
        ELSE $6
    END,
    updated_at = $7
WHERE id = $1 AND status = ANY($3::text[])
RETURNING ` + jobColumns
	return scanJob(db.QueryRow(ctx, sql,
		arg.ID,
		arg.Status,
		arg.AllowedFrom,
		arg.Error,
		arg.ClearError,
		arg.ProcessedAt,
		arg.Now,
	))
}

func (q *Queries) GetJob(ctx context.Context, db DBTX, table string, id int64) (JobRow, error) {
	t, err := jobTable(table)
	if err != nil {
		return JobRow{}, err
	}
	return scanJob(db.QueryRow(ctx, `SELECT `+jobColumns+` FROM `+t+` WHERE id = $1`, id))
}

type ListStaleJobsParams struct {
	Table  string
	Before pgtype.Timestamptz
	Limit  int32
}

// ListOrphanJobs returns pending rows that never got a queue message.
func (q *Queries) ListOrphanJobs(ctx context.Context, db DBTX, arg ListStaleJobsParams) ([]JobRow, error) {
	table, err := jobTable(arg.Table)
	if err != nil {
		return nil, err
	}
	sql := `SELECT ` + jobColumns + ` FROM ` + table + `
WHERE status = 'pending' AND queue_message_id IS NULL AND created_at < $1
ORDER BY id
LIMIT $2`
	rows, err := db.Query(ctx, sql, arg.Before, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

// ListStalledJobs returns processing rows untouched since Before.
func (q *Queries) ListStalledJobs(ctx context.Context, db DBTX, arg ListStaleJobsParams) ([]JobRow, error) {
	table, err := jobTable(arg.Table)
	if err != nil {
		return nil, err
	}
	sql := `SELECT ` + jobColumns + ` FROM ` + table + `
WHERE status = 'processing' AND updated_at < $1
ORDER BY id
LIMIT $2`
	rows, err := db.Query(ctx, sql, arg.Before, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

type ListJobsParams struct {
	Table     string
	Status    pgtype.Text
	SubjectID pgtype.UUID
	Limit     int32
	Offset    int32
}

func (q *Queries) ListJobs(ctx context.Context, db DBTX, arg ListJobsParams) ([]JobRow, error) {
	table, err := jobTable(arg.Table)
	if err != nil {
		return nil, err
	}
	sql := `SELECT ` + jobColumns + ` FROM ` + table + `
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::uuid IS NULL OR subject_id = $2)
ORDER BY id DESC
LIMIT $3 OFFSET $4`
	rows, err := db.Query(ctx, sql, arg.Status, arg.SubjectID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (q *Queries) CountJobs(ctx context.Context, db DBTX, arg ListJobsParams) (int64, error) {
	table, err := jobTable(arg.Table)
	if err != nil {
		return 0, err
	}
	sql := `SELECT count(*) FROM ` + table + `
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::uuid IS NULL OR subject_id = $2)`
	var n int64
	err = db.QueryRow(ctx, sql, arg.Status, arg.SubjectID).Scan(&n)
	return n, err
}
