package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/infra/repository"
	"content-dispatch/internal/pkg/backoff"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
	errAcquireConn        = errs.New("failed to acquire connection")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *query.Queries
	clock clock.Clock
	retry backoff.Strategy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries, clk clock.Clock) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		clock: clk,
		retry: backoff.NewExponential(100*time.Millisecond, 2*time.Second),
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.session(u.pool))
}

// WithLock pins one connection for the lifetime of fn because advisory locks
// belong to the session that took them.
func (u *PostgresUoW) WithLock(ctx context.Context, key int64, fn func(ctx context.Context, tx shared.Tx) error) (bool, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return false, errs.Mark(err, errAcquireConn)
	}
	defer conn.Release()

	ok, err := u.q.TryAdvisoryLock(ctx, conn, key)
	if err != nil {
		return false, errs.Wrap(err, "failed to take advisory lock")
	}
	if !ok {
		return false, nil
	}
	defer func() {
		// the caller's ctx may already be done; the unlock must still run
		u.unlockOrDrop(context.WithoutCancel(ctx), conn, key, func(ctx context.Context) error {
			return conn.Conn().Close(ctx)
		})
	}()

	return true, fn(ctx, u.session(conn))
}

// unlockOrDrop releases key on db. When the unlock fails the session may
// still hold the lock, so it is closed instead; Postgres frees session locks
// with the session and the pool discards a closed connection on Release.
func (u *PostgresUoW) unlockOrDrop(ctx context.Context, db query.DBTX, key int64, closeSession func(context.Context) error) {
	err := u.q.AdvisoryUnlock(ctx, db, key)
	if err == nil {
		return
	}
	slog.Warn("advisory unlock failed, closing session", "key", key, "error", err.Error())
	if cerr := closeSession(ctx); cerr != nil {
		slog.Error("failed to close session holding advisory lock", "key", key, "error", cerr.Error())
	}
}

func (u *PostgresUoW) session(db query.DBTX) *pgTx {
	return &pgTx{dbtx: db, uow: u}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxTxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, u.session(pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxTxRetries) {
			if attempt == maxTxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := u.retry.Delay(attempt + 1)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db query.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	jobRepo     shared.JobRepository
	tokenRepo   shared.TokenRepository
	contentRepo shared.ContentRepository
	userRepo    shared.UserRepository
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) Jobs() shared.JobRepository {
	if t.jobRepo == nil {
		t.jobRepo = repository.NewJobRepository(t.uow.q, t.uow.clock)
	}
	return t.jobRepo
}

func (t *pgTx) Tokens() shared.TokenRepository {
	if t.tokenRepo == nil {
		t.tokenRepo = repository.NewTokenRepository(t.uow.q, t.uow.clock)
	}
	return t.tokenRepo
}

func (t *pgTx) Contents() shared.ContentRepository {
	if t.contentRepo == nil {
		t.contentRepo = repository.NewContentRepository(t.uow.q, t.uow.clock)
	}
	return t.contentRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.uow.clock)
	}
	return t.userRepo
}
