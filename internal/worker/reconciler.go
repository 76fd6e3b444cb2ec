package worker

import (
	"context"
	"log/slog"
	"time"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra/queue"
	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/usecase/dispatch"
	"content-dispatch/internal/usecase/shared"
)

// ReconcileLockKey is the advisory lock that keeps one sweep running across
// all worker processes.
const ReconcileLockKey int64 = 0x6a6f625f7377

type Discarder interface {
	Discard(ctx context.Context, name queue.Name, id string) error
}

// Reconciler finds rows the broker lost track of: pending rows that were
// never enqueued and processing rows whose worker died.
type Reconciler struct {
	uow        shared.UnitOfWork
	dispatcher dispatch.Dispatcher
	broker     Discarder
	cfg        config.ReconcileConfig
	logger     *slog.Logger
}

type SweepResult struct {
	Orphans int
	Stalled int
	Failed  int
}

func NewReconciler(uow shared.UnitOfWork, dispatcher dispatch.Dispatcher, broker Discarder, cfg config.ReconcileConfig, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		uow:        uow,
		dispatcher: dispatcher,
		broker:     broker,
		cfg:        cfg,
		logger:     logger,
	}
}

func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := r.Sweep(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("reconcile sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Sweep runs one pass. It returns a zero result when another process holds
// the lock.
func (r *Reconciler) Sweep(ctx context.Context) (SweepResult, error) {
	var res SweepResult
	acquired, err := r.uow.WithLock(ctx, ReconcileLockKey, func(ctx context.Context, tx shared.Tx) error {
		for _, kind := range []job.Kind{job.KindContent, job.KindEmail} {
			orphans, err := tx.Jobs().ListOrphans(ctx, tx.DB(), kind, r.cfg.OrphanAge, int32(r.cfg.BatchSize))
			if err != nil {
				return err
			}
			for _, rec := range orphans {
				if r.redispatch(ctx, rec) {
					res.Orphans++
				} else {
					res.Failed++
				}
			}

			stalled, err := tx.Jobs().ListStalled(ctx, tx.DB(), kind, r.cfg.StallAge, int32(r.cfg.BatchSize))
			if err != nil {
				return err
			}
			for _, rec := range stalled {
				if rec.QueueMessageID != nil {
					// the old message may still sit in active or delayed
					name := dispatch.Route(rec.Kind, rec.EventType)
					if err := r.broker.Discard(ctx, name, *rec.QueueMessageID); err != nil {
						r.logger.WarnContext(ctx, "failed to discard stalled message",
							slog.Int64("job_id", rec.ID),
							slog.String("message_id", *rec.QueueMessageID),
							slog.String("error", err.Error()),
						)
					}
				}
				if r.redispatch(ctx, rec) {
					res.Stalled++
				} else {
					res.Failed++
				}
			}
		}
		return nil
	})
	if err != nil {
		return res, err
	}
	if !acquired {
		r.logger.DebugContext(ctx, "reconcile lock held elsewhere")
		return res, nil
	}
	if res.Orphans+res.Stalled+res.Failed > 0 {
		r.logger.InfoContext(ctx, "reconcile sweep finished",
			slog.Int("orphans", res.Orphans),
			slog.Int("stalled", res.Stalled),
			slog.Int("failed", res.Failed),
		)
	}
	return res, nil
}

func (r *Reconciler) redispatch(ctx context.Context, rec *job.Record) bool {
	if _, err := r.dispatcher.Dispatch(ctx, rec); err != nil {
		r.logger.WarnContext(ctx, "reconcile dispatch failed",
			slog.String("kind", string(rec.Kind)),
			slog.Int64("job_id", rec.ID),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}
