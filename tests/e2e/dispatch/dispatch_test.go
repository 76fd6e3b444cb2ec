//go:build e2e

package dispatch_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"content-dispatch/internal/domain/content"
	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra/queue"
	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/usecase/dispatch"
	"content-dispatch/internal/usecase/shared"
	"content-dispatch/internal/worker"
	"content-dispatch/tests/common/dbtest"
	"content-dispatch/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const mailPayload = `{"to":["reader@example.com"],"subject":"hello","text":"hello there"}`

type dispatchSuite struct {
	e2e.SharedSuite
}

func TestDispatchSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(dispatchSuite))
}

func (s *dispatchSuite) record(kind job.Kind, id int64) *job.Record {
	var rec *job.Record
	err := s.UoW.WithDB(s.T().Context(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		rec, err = tx.Jobs().Get(ctx, tx.DB(), kind, id)
		return err
	})
	s.Require().NoError(err)
	return rec
}

func (s *dispatchSuite) reconciler() *worker.Reconciler {
	return worker.NewReconciler(s.UoW, s.Dispatcher, s.Broker, config.ReconcileConfig{
		Enabled:   true,
		Interval:  time.Hour,
		OrphanAge: time.Second,
		StallAge:  time.Minute,
		BatchSize: 50,
	}, nil)
}

func (s *dispatchSuite) TestReconcile() {
	s.Run("orphaned row is enqueued and delivered", func() {
		t := s.T()
		subject := uuid.New()
		id := dbtest.InsertPendingJob(t, s.DB, "email_jobs", subject, string(job.EventAuthVerifyEmail), mailPayload, time.Hour)

		res, err := s.reconciler().Sweep(t.Context())
		require.NoError(t, err)
		require.Equal(t, 1, res.Orphans)
		require.Zero(t, res.Failed)

		jobs := s.WaitForJobs("email_jobs", subject, string(job.StatusCompleted))
		require.Equal(t, id, jobs[0].ID)
		require.NotNil(t, jobs[0].QueueMessageID)
	})

	s.Run("fresh pending rows are left to their producer", func() {
		t := s.T()
		dbtest.InsertPendingJob(t, s.DB, "email_jobs", uuid.New(), string(job.EventAuthVerifyEmail), mailPayload, 0)

		res, err := s.reconciler().Sweep(t.Context())
		require.NoError(t, err)
		require.Zero(t, res.Orphans)
	})

	s.Run("stalled row is discarded and re-dispatched", func() {
		t := s.T()
		subject := uuid.New()
		id := dbtest.InsertPendingJob(t, s.DB, "email_jobs", subject, string(job.EventAuthVerifyEmail), mailPayload, time.Hour)
		_, err := s.DB.Exec(t.Context(),
			"UPDATE email_jobs SET status = 'processing', queue_message_id = 'lost-message' WHERE id = $1", id)
		require.NoError(t, err)

		res, err := s.reconciler().Sweep(t.Context())
		require.NoError(t, err)
		require.Equal(t, 1, res.Stalled)

		jobs := s.WaitForJobs("email_jobs", subject, string(job.StatusCompleted))
		require.NotEqual(t, "lost-message", *jobs[0].QueueMessageID)
	})
}

func (s *dispatchSuite) TestRetries() {
	s.Run("effect keeps failing until the broker gives up", func() {
		t := s.T()
		missing := uuid.New()
		payload := fmt.Sprintf(`{"content_id":%q,"title":"gone","slug":"gone","visibility":"draft","previous_visibility":"published"}`, missing)
		id := dbtest.InsertPendingJob(t, s.DB, "content_jobs", missing, string(job.EventContentUnpublished), payload, 0)

		before, err := s.Broker.Counts(t.Context(), queue.Content)
		require.NoError(t, err)

		_, err = s.Dispatcher.Dispatch(t.Context(), s.record(job.KindContent, id))
		require.NoError(t, err)

		// three attempts on the content queue with 2s then 4s backoff
		var snap dbtest.JobSnapshot
		require.Eventually(t, func() bool {
			snap = dbtest.JobsFor(t, s.DB, "content_jobs", missing)[0]
			return snap.Status == string(job.StatusBrokerExhausted)
		}, 30*time.Second, 200*time.Millisecond)
		require.NotNil(t, snap.Error, "last failure stays on the row")

		after, err := s.Broker.Counts(t.Context(), queue.Content)
		require.NoError(t, err)
		require.Equal(t, before.Failed+1, after.Failed)
	})

	s.Run("failed attempt is retried to completion", func() {
		t := s.T()
		contentID := uuid.New()
		payload := fmt.Sprintf(`{"content_id":%q,"title":"late","slug":"late","visibility":"draft","previous_visibility":"published"}`, contentID)
		id := dbtest.InsertPendingJob(t, s.DB, "content_jobs", contentID, string(job.EventContentUnpublished), payload, 0)

		_, err := s.Dispatcher.Dispatch(t.Context(), s.record(job.KindContent, id))
		require.NoError(t, err)

		// the item does not exist yet, so the first attempt fails
		var failed dbtest.JobSnapshot
		require.Eventually(t, func() bool {
			failed = dbtest.JobsFor(t, s.DB, "content_jobs", contentID)[0]
			return failed.Status == string(job.StatusFailed)
		}, 10*time.Second, 50*time.Millisecond)
		require.NotNil(t, failed.Error)
		require.NotNil(t, failed.ProcessedAt)

		owner := dbtest.CreateTestUser(t, s.DB, "late-owner@example.com", string(user.RoleAdmin))
		dbtest.CreateTestContentWithID(t, s.DB, contentID, owner, "late", string(content.VisibilityDraft))

		done := s.WaitForJobs("content_jobs", contentID, string(job.StatusCompleted))[0]
		require.Equal(t, id, done.ID)
		require.Nil(t, done.Error, "completion clears the earlier failure")
		require.NotNil(t, done.ProcessedAt)
		require.True(t, done.ProcessedAt.After(*failed.ProcessedAt))
	})

	s.Run("redelivery of a finished job is acknowledged without effect", func() {
		t := s.T()
		subject := uuid.New()
		id := dbtest.InsertPendingJob(t, s.DB, "email_jobs", subject, string(job.EventAuthVerifyEmail), mailPayload, 0)
		rec := s.record(job.KindEmail, id)
		_, err := s.Dispatcher.Dispatch(t.Context(), rec)
		require.NoError(t, err)
		done := s.WaitForJobs("email_jobs", subject, string(job.StatusCompleted))[0]

		before, err := s.Broker.Counts(t.Context(), queue.Email)
		require.NoError(t, err)
		_, err = s.Broker.Enqueue(t.Context(), dispatch.Route(rec.Kind, rec.EventType), rec.Message())
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			c, err := s.Broker.Counts(t.Context(), queue.Email)
			return err == nil && c.Completed > before.Completed && c.Waiting == 0 && c.Active == 0
		}, 10*time.Second, 100*time.Millisecond)

		again := dbtest.JobsFor(t, s.DB, "email_jobs", subject)[0]
		require.Equal(t, string(job.StatusCompleted), again.Status)
		require.Equal(t, done.ProcessedAt, again.ProcessedAt)
		require.Equal(t, *done.QueueMessageID, *again.QueueMessageID)
	})

	s.Run("message for a missing row is dropped", func() {
		t := s.T()
		before, err := s.Broker.Counts(t.Context(), queue.Email)
		require.NoError(t, err)

		_, err = s.Broker.Enqueue(t.Context(), queue.Email, job.Message{JobID: 987654321, Kind: job.KindEmail, EventType: job.EventAuthVerifyEmail})
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			c, err := s.Broker.Counts(t.Context(), queue.Email)
			return err == nil && c.Completed > before.Completed
		}, 10*time.Second, 100*time.Millisecond)
	})
}
