package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/infra/queue"
	"content-dispatch/internal/pkg/errs"
)

// Broker is the consuming side of the queue.
type Broker interface {
	Reserve(ctx context.Context, name queue.Name, timeout time.Duration) (*queue.Delivery, error)
	Complete(ctx context.Context, d *queue.Delivery) error
	Fail(ctx context.Context, d *queue.Delivery, cause error) (exhausted bool, err error)
}

type Handler interface {
	Handle(ctx context.Context, msg job.Message) error
	Exhausted(ctx context.Context, msg job.Message, cause error) error
}

// Pool runs a fixed number of consumers against one queue.
type Pool struct {
	broker         Broker
	handler        Handler
	queue          queue.Name
	concurrency    int
	reserveTimeout time.Duration
	handlerTimeout time.Duration
	cancelGrace    time.Duration
	errorBackoff   time.Duration
	logger         *slog.Logger

	stopCh     chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
	running    bool
	activeJobs map[string]context.CancelFunc
	activeMu   sync.Mutex
}

type PoolOption func(*Pool)

// WithConcurrency overrides the queue policy. Values below 1 are ignored.
func WithConcurrency(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

func WithReserveTimeout(d time.Duration) PoolOption {
	return func(p *Pool) { p.reserveTimeout = d }
}

// WithHandlerTimeout bounds a single Handle call. Zero disables the bound.
func WithHandlerTimeout(d time.Duration) PoolOption {
	return func(p *Pool) { p.handlerTimeout = d }
}

// WithCancelGrace sets how long Stop waits for cancelled handlers to return.
func WithCancelGrace(d time.Duration) PoolOption {
	return func(p *Pool) { p.cancelGrace = d }
}

func WithLogger(l *slog.Logger) PoolOption {
	return func(p *Pool) { p.logger = l }
}

func NewPool(broker Broker, handler Handler, policy queue.Policy, opts ...PoolOption) *Pool {
	p := &Pool{
		broker:         broker,
		handler:        handler,
		queue:          policy.Name,
		concurrency:    policy.Concurrency,
		reserveTimeout: 2 * time.Second,
		handlerTimeout: 2 * time.Minute,
		cancelGrace:    time.Second,
		errorBackoff:   time.Second,
		logger:         slog.Default(),
		stopCh:         make(chan struct{}),
		activeJobs:     make(map[string]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(slog.String("queue", string(p.queue)))
	return p
}

func (p *Pool) Queue() queue.Name { return p.queue }

func (p *Pool) Concurrency() int { return p.concurrency }

// Start launches the consumers and returns immediately.
func (p *Pool) Start(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}
	p.running = true

	p.logger.Info("worker pool starting", slog.Int("concurrency", p.concurrency))

	for range p.concurrency {
		p.wg.Add(1)
		go p.dequeueLoop()
	}
	return nil
}

// Stop lets in-flight messages finish. When ctx expires first their
// contexts are cancelled; handlers still running after the cancel grace are
// abandoned and Stop returns ctx's error.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	p.mu.Unlock()

	p.logger.Info("worker pool stopping")
	close(p.stopCh)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("worker pool stopped gracefully")
	case <-ctx.Done():
		p.logger.Warn("worker pool shutdown timed out, cancelling active jobs")
		p.cancelActiveJobs()
		select {
		case <-done:
		case <-time.After(p.cancelGrace):
			p.logger.Error("worker pool abandoned handlers that ignored cancellation")
			return errs.Wrap(ctx.Err(), "stop worker pool")
		}
	}
	return nil
}

func (p *Pool) dequeueLoop() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopCh:
			return
		default:
		}

		d, err := p.broker.Reserve(context.Background(), p.queue, p.reserveTimeout)
		if err != nil {
			p.logger.Error("reserve error", slog.String("error", err.Error()))
			p.sleep()
			continue
		}
		if d == nil {
			continue
		}

		p.process(d)
	}
}

func (p *Pool) process(d *queue.Delivery) {
	log := p.logger.With(
		slog.Int64("job_id", d.Message.JobID),
		slog.String("message_id", d.ID),
		slog.Int("attempt", d.Attempt),
	)

	ctx, cancel := p.handlerContext()
	p.trackJob(d.ID, cancel)
	defer func() {
		p.untrackJob(d.ID)
		cancel()
	}()

	herr := p.handler.Handle(ctx, d.Message)
	// acknowledgements must land even if the handler was cancelled
	ackCtx := context.WithoutCancel(ctx)

	if herr == nil || errs.Is(herr, ErrAlreadyDone) {
		if herr != nil {
			log.Info("skipping finished job", slog.String("reason", herr.Error()))
		}
		if err := p.broker.Complete(ackCtx, d); err != nil {
			log.Error("failed to acknowledge message", slog.String("error", err.Error()))
		}
		return
	}

	log.Warn("job attempt failed", slog.String("error", herr.Error()))
	exhausted, err := p.broker.Fail(ackCtx, d, herr)
	if err != nil {
		log.Error("failed to schedule retry", slog.String("error", err.Error()))
		return
	}
	if !exhausted {
		return
	}

	log.Error("retries exhausted", slog.String("error", herr.Error()))
	if err := p.handler.Exhausted(ackCtx, d.Message, herr); err != nil {
		log.Error("failed to mark job exhausted", slog.String("error", err.Error()))
	}
}

func (p *Pool) handlerContext() (context.Context, context.CancelFunc) {
	if p.handlerTimeout > 0 {
		return context.WithTimeout(context.Background(), p.handlerTimeout)
	}
	return context.WithCancel(context.Background())
}

func (p *Pool) sleep() {
	select {
	case <-time.After(p.errorBackoff):
	case <-p.stopCh:
	}
}

func (p *Pool) trackJob(id string, cancel context.CancelFunc) {
	p.activeMu.Lock()
	p.activeJobs[id] = cancel
	p.activeMu.Unlock()
}

func (p *Pool) untrackJob(id string) {
	p.activeMu.Lock()
	delete(p.activeJobs, id)
	p.activeMu.Unlock()
}

func (p *Pool) cancelActiveJobs() {
	p.activeMu.Lock()
	defer p.activeMu.Unlock()
	for id, cancel := range p.activeJobs {
		p.logger.Warn("cancelling active job", slog.String("message_id", id))
		cancel()
	}
}
