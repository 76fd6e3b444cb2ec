package dispatch

import (
	"context"
	"log/slog"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra/queue"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/usecase/shared"
)

type Enqueuer interface {
	Enqueue(ctx context.Context, name queue.Name, msg job.Message) (string, error)
}

// Dispatcher hands committed job rows to the broker.
type Dispatcher interface {
	// Dispatch enqueues rec and records the message id on its row. A failure
	// is an errs.ErrDispatch and leaves the row pending for the reconciler.
	Dispatch(ctx context.Context, rec *job.Record) (string, error)
	// DispatchAll is the producer path after commit: failures are logged, never
	// returned, because the state change the jobs describe already happened.
	// Cancellation of ctx does not stop it.
	DispatchAll(ctx context.Context, recs ...*job.Record)
}

type Service struct {
	broker Enqueuer
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewService(broker Enqueuer, uow shared.UnitOfWork, logger *slog.Logger) Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		broker: broker,
		uow:    uow,
		logger: logger,
	}
}

// Route picks the queue for a job. Publications go to the high priority queue
// so they are not stuck behind routine content maintenance.
func Route(kind job.Kind, eventType job.EventType) queue.Name {
	switch kind {
	case job.KindEmail:
		return queue.Email
	default:
		if eventType == job.EventContentPublished {
			return queue.ContentHigh
		}
		return queue.Content
	}
}

func (s *Service) Dispatch(ctx context.Context, rec *job.Record) (string, error) {
	name := Route(rec.Kind, rec.EventType)

	messageID, err := s.broker.Enqueue(ctx, name, rec.Message())
	if err != nil {
		return "", errs.Mark(errs.Wrapf(err, "enqueue %s job %d", rec.Kind, rec.ID), errs.ErrDispatch)
	}

	err = s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Jobs().AttachQueueMessage(ctx, tx.DB(), rec.Kind, rec.ID, messageID)
	})
	if err != nil {
		// the message is live; the worker only needs the row id, so this is
		// reported but does not undo the enqueue
		return messageID, errs.Mark(errs.Wrapf(err, "attach message %s to %s job %d", messageID, rec.Kind, rec.ID), errs.ErrDispatch)
	}

	rec.QueueMessageID = &messageID
	s.logger.DebugContext(ctx, "job dispatched",
		slog.String("queue", string(name)),
		slog.String("kind", string(rec.Kind)),
		slog.Int64("job_id", rec.ID),
		slog.String("message_id", messageID),
	)
	return messageID, nil
}

func (s *Service) DispatchAll(ctx context.Context, recs ...*job.Record) {
	// the rows are committed; a client hanging up must not strand them
	ctx = context.WithoutCancel(ctx)
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		if _, err := s.Dispatch(ctx, rec); err != nil {
			s.logger.WarnContext(ctx, "job dispatch failed, left for reconciliation",
				slog.String("kind", string(rec.Kind)),
				slog.Int64("job_id", rec.ID),
				slog.String("event_type", string(rec.EventType)),
				slog.String("error", err.Error()),
			)
		}
	}
}
