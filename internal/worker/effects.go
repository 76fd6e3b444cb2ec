package worker

import (
	"context"
	"log/slog"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra/mailer"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/usecase/shared"
)

var ErrUnsupportedEvent = errs.New("unsupported event type")

// EmailEffect delivers the mail stored in the row payload.
type EmailEffect struct {
	sender mailer.Sender
}

func NewEmailEffect(sender mailer.Sender) *EmailEffect {
	return &EmailEffect{sender: sender}
}

func (e *EmailEffect) Apply(ctx context.Context, rec *job.Record) error {
	p, err := job.DecodeEmailPayload(rec.Payload)
	if err != nil {
		return err
	}
	return e.sender.Send(ctx, mailer.Mail{
		To:      p.To,
		Subject: p.Subject,
		Text:    p.Text,
		HTML:    p.HTML,
	})
}

// ContentEffect keeps contents.live_at in step with visibility. Both
// directions are conditional updates, so a stale job for an item that has
// since flipped back is a no-op.
type ContentEffect struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewContentEffect(uow shared.UnitOfWork, logger *slog.Logger) *ContentEffect {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentEffect{uow: uow, logger: logger}
}

func (e *ContentEffect) Apply(ctx context.Context, rec *job.Record) error {
	p, err := job.DecodeContentPayload(rec.Payload)
	if err != nil {
		return err
	}

	return e.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var changed bool
		switch rec.EventType {
		case job.EventContentPublished:
			changed, err = tx.Contents().MarkLive(ctx, tx.DB(), p.ContentID)
		case job.EventContentUnpublished:
			changed, err = tx.Contents().ClearLive(ctx, tx.DB(), p.ContentID)
		case job.EventContentChanged:
		default:
			return errs.Wrapf(ErrUnsupportedEvent, "%s", rec.EventType)
		}
		if err != nil || changed {
			return err
		}

		// nothing changed: either the item is gone or it moved on since
		item, err := tx.Contents().FindByID(ctx, tx.DB(), p.ContentID)
		if err != nil {
			return err
		}
		if item.Visibility().String() != p.Visibility {
			e.logger.InfoContext(ctx, "content moved on before job ran",
				slog.Int64("job_id", rec.ID),
				slog.String("content_id", p.ContentID.String()),
				slog.String("job_visibility", p.Visibility),
				slog.String("visibility", item.Visibility().String()),
			)
		}
		return nil
	})
}

var (
	_ Effect = (*EmailEffect)(nil)
	_ Effect = (*ContentEffect)(nil)
)
