//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/pkg/pgconv"
	"content-dispatch/internal/pkg/ptr"
	"content-dispatch/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobViewQueries struct {
	mock.Mock
}

func (m *MockJobViewQueries) GetJob(ctx context.Context, db query.DBTX, table string, id int64) (query.JobRow, error) {
	args := m.Called(ctx, db, table, id)
	return args.Get(0).(query.JobRow), args.Error(1)
}

func (m *MockJobViewQueries) ListJobs(ctx context.Context, db query.DBTX, arg query.ListJobsParams) ([]query.JobRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.JobRow), args.Error(1)
}

func (m *MockJobViewQueries) CountJobs(ctx context.Context, db query.DBTX, arg query.ListJobsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestJobReadStore_FindByID(t *testing.T) {
	now := time.Date(2026, 4, 4, 4, 4, 0, 0, time.UTC)

	t.Run("maps failed row", func(t *testing.T) {
		q := new(MockJobViewQueries)
		q.On("GetJob", mock.Anything, mock.Anything, query.TableEmailJobs, int64(11)).Return(query.JobRow{
			ID:             11,
			QueueMessageID: pgconv.StringToPgtype("31"),
			EventType:      string(job.EventAuthPasswordReset),
			Status:         string(job.StatusFailed),
			Payload:        []byte(`{"to":["a@example.com"]}`),
			Error:          pgconv.StringToPgtype("smtp: connection refused"),
			ProcessedAt:    pgconv.TimeToPgtype(now),
			CreatedAt:      pgconv.TimeToPgtype(now),
			UpdatedAt:      pgconv.TimeToPgtype(now),
		}, nil)

		store := NewJobReadStore(q, nil)
		view, err := store.FindByID(context.Background(), job.KindEmail, 11)

		require.NoError(t, err)
		assert.Equal(t, "email", view.Kind)
		assert.Equal(t, "failed", view.Status)
		assert.Equal(t, "31", *view.QueueMessageID)
		assert.Equal(t, "smtp: connection refused", *view.Error)
		assert.Nil(t, view.SubjectID)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockJobViewQueries)
		q.On("GetJob", mock.Anything, mock.Anything, query.TableContentJobs, int64(2)).Return(query.JobRow{}, pgx.ErrNoRows)

		store := NewJobReadStore(q, nil)
		_, err := store.FindByID(context.Background(), job.KindContent, 2)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestJobReadStore_ListAndCount(t *testing.T) {
	q := new(MockJobViewQueries)
	filters := queries.JobFilters{Status: ptr.Of("pending")}
	q.On("ListJobs", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.ListJobsParams) bool {
		return p.Table == query.TableContentJobs && p.Status.String == "pending" && p.Limit == 20 && p.Offset == 40 && !p.SubjectID.Valid
	})).Return([]query.JobRow{{ID: 1, Status: "pending"}, {ID: 2, Status: "pending"}}, nil)
	q.On("CountJobs", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.ListJobsParams) bool {
		return p.Table == query.TableContentJobs && p.Status.Valid && p.Limit == 0
	})).Return(int64(42), nil)

	store := NewJobReadStore(q, nil)
	views, err := store.List(context.Background(), job.KindContent, filters, 20, 40)
	require.NoError(t, err)
	assert.Len(t, views, 2)

	total, err := store.Count(context.Background(), job.KindContent, filters)
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	q.AssertExpectations(t)
}
