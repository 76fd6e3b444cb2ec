package components

import (
	"context"
	"log/slog"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra/mailer"
	"content-dispatch/internal/infra/queue"
	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/usecase/dispatch"
	"content-dispatch/internal/usecase/shared"
	"content-dispatch/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		mailer.New,
		NewProcessor,
		NewPools,
		NewPromoter,
		NewReconciler,
		worker.NewManager,
	),
	fx.Invoke(RunManager),
)

func NewProcessor(uow shared.UnitOfWork, sender mailer.Sender, logger *slog.Logger) *worker.Processor {
	return worker.NewProcessor(uow, map[job.Kind]worker.Effect{
		job.KindContent: worker.NewContentEffect(uow, logger),
		job.KindEmail:   worker.NewEmailEffect(sender),
	}, logger)
}

// NewPools starts one pool per configured queue. WORKER_CONCURRENCY overrides
// every queue's default when set.
func NewPools(broker *queue.Broker, processor *worker.Processor, cfg config.Config, logger *slog.Logger) ([]*worker.Pool, error) {
	policies, err := broker.Policies().Select(cfg.Worker.Queues)
	if err != nil {
		return nil, err
	}

	pools := make([]*worker.Pool, 0, len(policies))
	for _, policy := range policies {
		opts := []worker.PoolOption{
			worker.WithReserveTimeout(cfg.Worker.ReserveTimeout),
			worker.WithHandlerTimeout(cfg.Worker.HandlerTimeout),
			worker.WithLogger(logger),
		}
		if cfg.Worker.Concurrency > 0 {
			opts = append(opts, worker.WithConcurrency(cfg.Worker.Concurrency))
		}
		pools = append(pools, worker.NewPool(broker, processor, policy, opts...))
	}
	return pools, nil
}

func NewPromoter(broker *queue.Broker, pools []*worker.Pool, cfg config.Config, logger *slog.Logger) *worker.Promoter {
	names := make([]queue.Name, 0, len(pools))
	for _, p := range pools {
		names = append(names, p.Queue())
	}
	return worker.NewPromoter(broker, names, cfg.Worker.PromoteInterval, logger)
}

// NewReconciler returns nil when sweeping is disabled; the manager skips it.
func NewReconciler(uow shared.UnitOfWork, dispatcher dispatch.Dispatcher, broker *queue.Broker, cfg config.Config, logger *slog.Logger) *worker.Reconciler {
	if !cfg.Reconcile.Enabled {
		return nil
	}
	return worker.NewReconciler(uow, dispatcher, broker, cfg.Reconcile, logger)
}

func RunManager(lc fx.Lifecycle, m *worker.Manager, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: m.Start,
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Worker.ShutdownTimeout)
			defer cancel()
			return m.Stop(ctx)
		},
	})
}
