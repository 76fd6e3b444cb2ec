package shared

import (
	"context"
	"time"

	"content-dispatch/internal/domain/content"
	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/domain/token"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single statements against the pool using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithLock: Runs fn only if the session advisory lock for key is free
	WithLock(ctx context.Context, key int64, fn func(ctx context.Context, tx Tx) error) (bool, error)
}

type Tx interface {
	Jobs() JobRepository
	Tokens() TokenRepository
	Contents() ContentRepository
	Users() UserRepository
	DB() query.DBTX
}

type JobRepository interface {
	Create(ctx context.Context, db query.DBTX, d job.Draft) (*job.Record, error)
	AttachQueueMessage(ctx context.Context, db query.DBTX, kind job.Kind, id int64, messageID string) error
	Transition(ctx context.Context, db query.DBTX, kind job.Kind, id int64, next job.Status, errText *string) (*job.Record, error)
	Get(ctx context.Context, db query.DBTX, kind job.Kind, id int64) (*job.Record, error)
	ListOrphans(ctx context.Context, db query.DBTX, kind job.Kind, age time.Duration, limit int32) ([]*job.Record, error)
	ListStalled(ctx context.Context, db query.DBTX, kind job.Kind, age time.Duration, limit int32) ([]*job.Record, error)
}

type TokenRepository interface {
	InvalidateActive(ctx context.Context, db query.DBTX, userID uuid.UUID, typ token.Type) (int64, error)
	Create(ctx context.Context, db query.DBTX, t *token.ActionToken) error
	Consume(ctx context.Context, db query.DBTX, hash string, typ token.Type) (uuid.UUID, error)
}

type ContentRepository interface {
	Create(ctx context.Context, db query.DBTX, item *content.Item) error
	FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*content.Item, error)
	UpdateVisibility(ctx context.Context, db query.DBTX, id uuid.UUID, from, to content.Visibility) error
	MarkLive(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error)
	ClearLive(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, db query.DBTX, email user.Email) (*user.User, error)
	UpdateLastLogin(ctx context.Context, db query.DBTX, userID uuid.UUID) error
	MarkEmailVerified(ctx context.Context, db query.DBTX, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, db query.DBTX, userID uuid.UUID, passwordHash string) error
}
