package worker

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Manager owns the background loops of a worker process.
type Manager struct {
	pools      []*Pool
	promoter   *Promoter
	reconciler *Reconciler
	logger     *slog.Logger

	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewManager accepts a nil reconciler when sweeping is disabled.
func NewManager(pools []*Pool, promoter *Promoter, reconciler *Reconciler, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		pools:      pools,
		promoter:   promoter,
		reconciler: reconciler,
		logger:     logger,
	}
}

func (m *Manager) Start(ctx context.Context) error {
	for _, p := range m.pools {
		if err := p.Start(ctx); err != nil {
			return err
		}
	}

	runCtx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(runCtx)
	m.cancel = cancel
	m.group = g

	if m.promoter != nil {
		g.Go(func() error { return m.promoter.Run(gctx) })
	}
	if m.reconciler != nil {
		g.Go(func() error { return m.reconciler.Run(gctx) })
	}

	m.logger.Info("worker manager started", slog.Int("pools", len(m.pools)))
	return nil
}

// Stop drains every pool in parallel, then stops the periodic loops.
func (m *Manager) Stop(ctx context.Context) error {
	var drain errgroup.Group
	for _, p := range m.pools {
		drain.Go(func() error { return p.Stop(ctx) })
	}
	err := drain.Wait()

	if m.cancel != nil {
		m.cancel()
		if gerr := m.group.Wait(); gerr != nil && err == nil {
			err = gerr
		}
	}
	m.logger.Info("worker manager stopped")
	return err
}
