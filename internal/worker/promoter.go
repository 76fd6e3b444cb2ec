package worker

import (
	"context"
	"log/slog"
	"time"

	"content-dispatch/internal/infra/queue"
)

type DuePromoter interface {
	PromoteDue(ctx context.Context, name queue.Name) (int64, error)
}

// Promoter moves retries whose backoff elapsed back onto their wait lists.
type Promoter struct {
	broker   DuePromoter
	queues   []queue.Name
	interval time.Duration
	logger   *slog.Logger
}

func NewPromoter(broker DuePromoter, queues []queue.Name, interval time.Duration, logger *slog.Logger) *Promoter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Promoter{
		broker:   broker,
		queues:   queues,
		interval: interval,
		logger:   logger,
	}
}

// Run ticks until ctx is done.
func (p *Promoter) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.PromoteOnce(ctx)
		}
	}
}

func (p *Promoter) PromoteOnce(ctx context.Context) {
	for _, name := range p.queues {
		n, err := p.broker.PromoteDue(ctx, name)
		if err != nil {
			if ctx.Err() == nil {
				p.logger.Error("promote delayed messages", slog.String("queue", string(name)), slog.String("error", err.Error()))
			}
			continue
		}
		if n > 0 {
			p.logger.Debug("promoted delayed messages", slog.String("queue", string(name)), slog.Int64("count", n))
		}
	}
}
