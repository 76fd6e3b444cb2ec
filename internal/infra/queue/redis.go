package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const promoteBatch = 100

// promoteScript moves due ids from the delayed set to the wait list in one
// step so a crash cannot drop or duplicate them.
var promoteScript = redis.NewScript(`
local ids = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, tonumber(ARGV[2]))
for _, id in ipairs(ids) do
  redis.call('ZREM', KEYS[1], id)
  redis.call('LPUSH', KEYS[2], id)
end
return #ids
`)

// Delivery is one reserved message. Attempt is 1 on first delivery.
type Delivery struct {
	ID         string
	Queue      Name
	Message    job.Message
	Attempt    int
	LastError  string
	EnqueuedAt time.Time
}

type Counts struct {
	Waiting   int64 `json:"waiting"`
	Active    int64 `json:"active"`
	Delayed   int64 `json:"delayed"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}

type snapshot struct {
	ID         string        `json:"id"`
	JobID      int64         `json:"job_id"`
	Kind       job.Kind      `json:"kind"`
	EventType  job.EventType `json:"event_type"`
	Attempts   int           `json:"attempts"`
	Error      string        `json:"error,omitempty"`
	FinishedAt time.Time     `json:"finished_at"`
}

type Option func(*Broker)

func WithLogger(l *slog.Logger) Option {
	return func(b *Broker) { b.logger = l }
}

func WithClock(c clock.Clock) Option {
	return func(b *Broker) { b.clock = c }
}

// Broker is a Redis list/zset backed queue. It owns no state beyond the
// client, so any number of processes may share one keyspace.
type Broker struct {
	client   redis.UniversalClient
	prefix   string
	policies Policies
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBroker(client redis.UniversalClient, prefix string, policies Policies, opts ...Option) *Broker {
	b := &Broker{
		client:   client,
		prefix:   prefix,
		policies: policies,
		clock:    clock.NewRealClock(),
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Broker) Policies() Policies { return b.policies }

func (b *Broker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *Broker) keys(name Name) keyspace {
	return newKeyspace(b.prefix, name)
}

// Enqueue stores msg and makes it available to Reserve. The returned id is
// unique per queue.
func (b *Broker) Enqueue(ctx context.Context, name Name, msg job.Message) (string, error) {
	if _, err := b.policies.Get(name); err != nil {
		return "", err
	}
	ks := b.keys(name)

	n, err := b.client.Incr(ctx, ks.counter()).Result()
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to allocate message id"), errs.ErrDispatch)
	}
	id := formatID(n)

	payload, err := json.Marshal(msg)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to encode message"), errs.ErrDispatch)
	}

	pipe := b.client.TxPipeline()
	pipe.HSet(ctx, ks.message(id),
		"payload", payload,
		"attempts_made", 0,
		"enqueued_at", b.clock.Now().UnixMilli(),
	)
	pipe.LPush(ctx, ks.wait(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", errs.Mark(errs.Wrap(err, "failed to enqueue message"), errs.ErrDispatch)
	}
	return id, nil
}

// Reserve blocks up to timeout for the next message. It returns nil, nil when
// nothing arrived.
func (b *Broker) Reserve(ctx context.Context, name Name, timeout time.Duration) (*Delivery, error) {
	ks := b.keys(name)

	id, err := b.client.BLMove(ctx, ks.wait(), ks.active(), "RIGHT", "LEFT", timeout).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to reserve message")
	}

	fields, err := b.client.HGetAll(ctx, ks.message(id)).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to load message")
	}
	if len(fields) == 0 {
		// discarded while waiting
		b.client.LRem(ctx, ks.active(), 1, id)
		b.logger.Warn("dropped reserved message without body", "queue", name, "message_id", id)
		return nil, nil
	}

	d, err := decodeDelivery(name, id, fields)
	if err != nil {
		b.client.LRem(ctx, ks.active(), 1, id)
		b.client.Del(ctx, ks.message(id))
		return nil, err
	}
	return d, nil
}

func decodeDelivery(name Name, id string, fields map[string]string) (*Delivery, error) {
	var msg job.Message
	if err := json.Unmarshal([]byte(fields["payload"]), &msg); err != nil {
		return nil, errs.Wrapf(err, "malformed message %s on %s", id, name)
	}
	made, _ := strconv.Atoi(fields["attempts_made"])
	enqueuedMs, _ := strconv.ParseInt(fields["enqueued_at"], 10, 64)
	return &Delivery{
		ID:         id,
		Queue:      name,
		Message:    msg,
		Attempt:    made + 1,
		LastError:  fields["last_error"],
		EnqueuedAt: time.UnixMilli(enqueuedMs),
	}, nil
}

// Complete acknowledges d and records it in the capped completed list.
func (b *Broker) Complete(ctx context.Context, d *Delivery) error {
	pol, err := b.policies.Get(d.Queue)
	if err != nil {
		return err
	}
	ks := b.keys(d.Queue)
	snap, err := b.snapshot(d, "")
	if err != nil {
		return err
	}

	pipe := b.client.TxPipeline()
	pipe.LRem(ctx, ks.active(), 1, d.ID)
	pipe.LPush(ctx, ks.completed(), snap)
	pipe.LTrim(ctx, ks.completed(), 0, pol.KeepCompleted-1)
	pipe.Del(ctx, ks.message(d.ID))
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "failed to complete message")
	}
	return nil
}

// Fail schedules a retry after the policy backoff, or retires the message to
// the failed list once every attempt is spent. exhausted reports the latter.
func (b *Broker) Fail(ctx context.Context, d *Delivery, cause error) (exhausted bool, err error) {
	pol, err := b.policies.Get(d.Queue)
	if err != nil {
		return false, err
	}
	ks := b.keys(d.Queue)
	reason := ""
	if cause != nil {
		reason = cause.Error()
	}

	if d.Attempt >= pol.Attempts {
		snap, err := b.snapshot(d, reason)
		if err != nil {
			return false, err
		}
		pipe := b.client.TxPipeline()
		pipe.LRem(ctx, ks.active(), 1, d.ID)
		pipe.LPush(ctx, ks.failed(), snap)
		pipe.LTrim(ctx, ks.failed(), 0, pol.KeepFailed-1)
		pipe.Del(ctx, ks.message(d.ID))
		if _, err := pipe.Exec(ctx); err != nil {
			return false, errs.Wrap(err, "failed to retire message")
		}
		return true, nil
	}

	due := b.clock.Now().Add(pol.Backoff.Delay(d.Attempt))
	pipe := b.client.TxPipeline()
	pipe.HSet(ctx, ks.message(d.ID), "attempts_made", d.Attempt, "last_error", reason)
	pipe.LRem(ctx, ks.active(), 1, d.ID)
	pipe.ZAdd(ctx, ks.delayed(), redis.Z{Score: float64(due.UnixMilli()), Member: d.ID})
	if _, err := pipe.Exec(ctx); err != nil {
		return false, errs.Wrap(err, "failed to schedule retry")
	}
	return false, nil
}

// PromoteDue moves delayed messages whose time has come back onto the wait
// list and returns how many moved.
func (b *Broker) PromoteDue(ctx context.Context, name Name) (int64, error) {
	ks := b.keys(name)
	n, err := promoteScript.Run(ctx, b.client,
		[]string{ks.delayed(), ks.wait()},
		b.clock.Now().UnixMilli(), promoteBatch,
	).Int64()
	if err != nil {
		return 0, errs.Wrap(err, "failed to promote delayed messages")
	}
	return n, nil
}

// Discard removes a message wherever it sits. Used when the reconciler
// replaces a message it considers lost.
func (b *Broker) Discard(ctx context.Context, name Name, id string) error {
	ks := b.keys(name)
	pipe := b.client.TxPipeline()
	pipe.LRem(ctx, ks.wait(), 0, id)
	pipe.LRem(ctx, ks.active(), 0, id)
	pipe.ZRem(ctx, ks.delayed(), id)
	pipe.Del(ctx, ks.message(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "failed to discard message")
	}
	return nil
}

func (b *Broker) Counts(ctx context.Context, name Name) (Counts, error) {
	ks := b.keys(name)
	pipe := b.client.Pipeline()
	waiting := pipe.LLen(ctx, ks.wait())
	active := pipe.LLen(ctx, ks.active())
	delayed := pipe.ZCard(ctx, ks.delayed())
	completed := pipe.LLen(ctx, ks.completed())
	failed := pipe.LLen(ctx, ks.failed())
	if _, err := pipe.Exec(ctx); err != nil {
		return Counts{}, errs.Wrap(err, "failed to count queue")
	}
	return Counts{
		Waiting:   waiting.Val(),
		Active:    active.Val(),
		Delayed:   delayed.Val(),
		Completed: completed.Val(),
		Failed:    failed.Val(),
	}, nil
}

func (b *Broker) snapshot(d *Delivery, reason string) ([]byte, error) {
	raw, err := json.Marshal(snapshot{
		ID:         d.ID,
		JobID:      d.Message.JobID,
		Kind:       d.Message.Kind,
		EventType:  d.Message.EventType,
		Attempts:   d.Attempt,
		Error:      reason,
		FinishedAt: b.clock.Now().UTC(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode snapshot")
	}
	return raw, nil
}
