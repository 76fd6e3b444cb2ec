package worker

import (
	"context"
	"errors"
	"log/slog"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/usecase/shared"
)

var (
	// ErrAlreadyDone is returned for a redelivered message whose row already
	// reached a final state. The message should be acknowledged.
	ErrAlreadyDone = errs.New("job already finished")
	// ErrNoEffect means no effect is registered for the row's kind.
	ErrNoEffect = errs.New("no effect registered for job kind")
)

// Effect performs the side effect a job row describes. It must tolerate
// running more than once for the same row.
type Effect interface {
	Apply(ctx context.Context, rec *job.Record) error
}

// Processor drives one job row through processing to a final status.
type Processor struct {
	uow     shared.UnitOfWork
	effects map[job.Kind]Effect
	logger  *slog.Logger
}

func NewProcessor(uow shared.UnitOfWork, effects map[job.Kind]Effect, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		uow:     uow,
		effects: effects,
		logger:  logger,
	}
}

// Handle runs the effect for msg. An effect failure is written onto the row
// before the error, marked errs.ErrEffect, is returned for the broker to retry.
func (p *Processor) Handle(ctx context.Context, msg job.Message) error {
	rec, err := p.begin(ctx, msg)
	if err != nil {
		return err
	}

	effect, ok := p.effects[rec.Kind]
	if !ok {
		return p.fail(ctx, rec, errs.Wrapf(ErrNoEffect, "%s", rec.Kind))
	}

	if err := effect.Apply(ctx, rec); err != nil {
		return p.fail(ctx, rec, err)
	}

	err = p.uow.WithDB(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Jobs().Transition(ctx, tx.DB(), rec.Kind, rec.ID, job.StatusCompleted, nil)
		return err
	})
	if err != nil {
		// the effect ran; a retry repeats it, which effects accept
		return errs.Wrapf(err, "complete %s job %d", rec.Kind, rec.ID)
	}
	return nil
}

// Exhausted records that the broker gave up on msg. A row the last attempt
// left pending or processing is failed with cause first, so the final row
// always carries an error.
func (p *Processor) Exhausted(ctx context.Context, msg job.Message, cause error) error {
	return p.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Jobs().Get(ctx, tx.DB(), msg.Kind, msg.JobID)
		if err != nil {
			return err
		}
		switch rec.Status {
		case job.StatusCompleted, job.StatusBrokerExhausted:
			return nil
		case job.StatusPending, job.StatusProcessing:
			text := exhaustedText(cause)
			if _, err := tx.Jobs().Transition(ctx, tx.DB(), msg.Kind, msg.JobID, job.StatusFailed, &text); err != nil {
				return err
			}
		}
		_, err = tx.Jobs().Transition(ctx, tx.DB(), msg.Kind, msg.JobID, job.StatusBrokerExhausted, nil)
		return err
	})
}

func exhaustedText(cause error) string {
	if cause == nil {
		return "broker retries exhausted"
	}
	return "broker retries exhausted: " + cause.Error()
}

// begin claims the row and re-reads it so the effect works from stored
// state rather than the message.
func (p *Processor) begin(ctx context.Context, msg job.Message) (*job.Record, error) {
	var rec *job.Record
	err := p.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Jobs().Transition(ctx, tx.DB(), msg.Kind, msg.JobID, job.StatusProcessing, nil); err != nil {
			return err
		}
		var err error
		rec, err = tx.Jobs().Get(ctx, tx.DB(), msg.Kind, msg.JobID)
		return err
	})
	if err == nil {
		return rec, nil
	}

	var te *job.TransitionError
	if errors.As(err, &te) && te.From.IsTerminal() {
		return nil, errs.Mark(err, ErrAlreadyDone)
	}
	if errs.Is(err, job.ErrJobNotFound) {
		// nothing to record against; retrying cannot help
		return nil, errs.Mark(err, ErrAlreadyDone)
	}
	return nil, errs.Wrapf(err, "claim %s job %d", msg.Kind, msg.JobID)
}

func (p *Processor) fail(ctx context.Context, rec *job.Record, cause error) error {
	text := cause.Error()
	// the row must record the failure even when shutdown cancelled the effect
	err := p.uow.WithDB(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Jobs().Transition(ctx, tx.DB(), rec.Kind, rec.ID, job.StatusFailed, &text)
		return err
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to record job failure",
			slog.String("kind", string(rec.Kind)),
			slog.Int64("job_id", rec.ID),
			slog.String("cause", text),
			slog.String("error", err.Error()),
		)
	}
	return errs.Mark(errs.Wrapf(cause, "%s job %d", rec.Kind, rec.ID), errs.ErrEffect)
}
