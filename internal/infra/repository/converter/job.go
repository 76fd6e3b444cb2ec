package converter

import (
	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/pkg/pgconv"
)

func JobTable(kind job.Kind) string {
	if kind == job.KindEmail {
		return query.TableEmailJobs
	}
	return query.TableContentJobs
}

func JobFromRow(kind job.Kind, row query.JobRow) *job.Record {
	return &job.Record{
		ID:             row.ID,
		Kind:           kind,
		SubjectID:      pgconv.UUIDPtrFromPgtype(row.SubjectID),
		QueueMessageID: pgconv.StringPtrFromPgtype(row.QueueMessageID),
		EventType:      job.EventType(row.EventType),
		Status:         job.Status(row.Status),
		Payload:        row.Payload,
		Error:          pgconv.StringPtrFromPgtype(row.Error),
		ProcessedAt:    pgconv.TimePtrFromPgtype(row.ProcessedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func JobsFromRows(kind job.Kind, rows []query.JobRow) []*job.Record {
	out := make([]*job.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, JobFromRow(kind, r))
	}
	return out
}

func StatusStrings(statuses []job.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
