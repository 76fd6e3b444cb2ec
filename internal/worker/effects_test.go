//go:build unit

package worker_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"content-dispatch/internal/domain/content"
	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra/mailer"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/worker"
	"content-dispatch/tests/common/builder"
	mailermock "content-dispatch/tests/mock/mailer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestEmailEffect(t *testing.T) {
	payload := job.EmailPayload{To: []string{"a@example.com"}, Subject: "Hi", Text: "hello", HTML: "<p>hello</p>"}

	t.Run("sends the stored mail", func(t *testing.T) {
		sender := mailermock.NewMockSender(gomock.NewController(t))
		sender.EXPECT().Send(gomock.Any(), mailer.Mail{To: payload.To, Subject: "Hi", Text: "hello", HTML: "<p>hello</p>"}).Return(nil)

		err := worker.NewEmailEffect(sender).Apply(context.Background(), &job.Record{ID: 1, Kind: job.KindEmail, Payload: mustJSON(t, payload)})

		require.NoError(t, err)
	})

	t.Run("rejected recipient fails the effect", func(t *testing.T) {
		sender := mailermock.NewMockSender(gomock.NewController(t))
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(mailer.ErrRecipientRejected)

		err := worker.NewEmailEffect(sender).Apply(context.Background(), &job.Record{ID: 1, Kind: job.KindEmail, Payload: mustJSON(t, payload)})

		assert.True(t, errs.Is(err, mailer.ErrRecipientRejected))
	})

	t.Run("corrupt payload fails before sending", func(t *testing.T) {
		sender := mailermock.NewMockSender(gomock.NewController(t))

		err := worker.NewEmailEffect(sender).Apply(context.Background(), &job.Record{ID: 1, Kind: job.KindEmail, Payload: json.RawMessage(`{"to":[]}`)})

		assert.True(t, errs.Is(err, job.ErrNoRecipients))
	})
}

func contentRecord(t *testing.T, event job.EventType, id uuid.UUID, visibility content.Visibility) *job.Record {
	return &job.Record{
		ID:        9,
		Kind:      job.KindContent,
		EventType: event,
		Payload: mustJSON(t, job.ContentPayload{
			ContentID:  id,
			Title:      "t",
			Visibility: visibility.String(),
			OccurredAt: time.Now(),
		}),
	}
}

func TestContentEffect(t *testing.T) {
	t.Run("publish marks the item live", func(t *testing.T) {
		f := newProcessorFixture(t)
		id := uuid.New()
		f.contents.EXPECT().MarkLive(gomock.Any(), gomock.Any(), id).Return(true, nil)

		err := worker.NewContentEffect(f.uow, nil).Apply(context.Background(), contentRecord(t, job.EventContentPublished, id, content.VisibilityPublished))

		require.NoError(t, err)
	})

	t.Run("unpublish clears live_at", func(t *testing.T) {
		f := newProcessorFixture(t)
		id := uuid.New()
		f.contents.EXPECT().ClearLive(gomock.Any(), gomock.Any(), id).Return(true, nil)

		err := worker.NewContentEffect(f.uow, nil).Apply(context.Background(), contentRecord(t, job.EventContentUnpublished, id, content.VisibilityDraft))

		require.NoError(t, err)
	})

	t.Run("item unpublished since is a no-op", func(t *testing.T) {
		f := newProcessorFixture(t)
		item := builder.NewContentBuilder().BuildStored()
		f.contents.EXPECT().MarkLive(gomock.Any(), gomock.Any(), item.ID()).Return(false, nil)
		f.contents.EXPECT().FindByID(gomock.Any(), gomock.Any(), item.ID()).Return(item, nil)

		err := worker.NewContentEffect(f.uow, nil).Apply(context.Background(), contentRecord(t, job.EventContentPublished, item.ID(), content.VisibilityPublished))

		require.NoError(t, err)
	})

	t.Run("missing item fails the effect", func(t *testing.T) {
		f := newProcessorFixture(t)
		id := uuid.New()
		f.contents.EXPECT().MarkLive(gomock.Any(), gomock.Any(), id).Return(false, nil)
		f.contents.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, content.ErrContentNotFound)

		err := worker.NewContentEffect(f.uow, nil).Apply(context.Background(), contentRecord(t, job.EventContentPublished, id, content.VisibilityPublished))

		assert.True(t, errs.Is(err, content.ErrContentNotFound))
	})

	t.Run("change event checks the item exists", func(t *testing.T) {
		f := newProcessorFixture(t)
		item := builder.NewContentBuilder().BuildStored()
		f.contents.EXPECT().FindByID(gomock.Any(), gomock.Any(), item.ID()).Return(item, nil)

		err := worker.NewContentEffect(f.uow, nil).Apply(context.Background(), contentRecord(t, job.EventContentChanged, item.ID(), content.VisibilityDraft))

		require.NoError(t, err)
	})

	t.Run("unknown event is rejected", func(t *testing.T) {
		f := newProcessorFixture(t)

		err := worker.NewContentEffect(f.uow, nil).Apply(context.Background(), contentRecord(t, job.EventAuthVerifyEmail, uuid.New(), content.VisibilityDraft))

		assert.True(t, errs.Is(err, worker.ErrUnsupportedEvent))
	})
}
