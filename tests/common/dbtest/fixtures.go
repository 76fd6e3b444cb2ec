//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword matches TestPasswordHash.
const (
	TestPassword     = "password123"
	TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func CreateTestContent(t *testing.T, db DBLike, ownerID uuid.UUID, title, visibility string) uuid.UUID {
	t.Helper()
	return CreateTestContentWithID(t, db, uuid.New(), ownerID, title, visibility)
}

// CreateTestContentWithID inserts an item under a caller-chosen id, for rows
// whose jobs were written before the item existed.
func CreateTestContentWithID(t *testing.T, db DBLike, id, ownerID uuid.UUID, title, visibility string) uuid.UUID {
	t.Helper()

	slug := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	_, err := db.Exec(context.Background(),
		"INSERT INTO contents (id, owner_id, title, slug, body, visibility) VALUES ($1, $2, $3, $4, '', $5)",
		id, ownerID, title, slug, visibility)
	require.NoError(t, err)
	return id
}

type JobSnapshot struct {
	ID             int64
	EventType      string
	Status         string
	QueueMessageID *string
	Error          *string
	ProcessedAt    *time.Time
}

// JobsFor returns the rows of table ("content_jobs" or "email_jobs") for one
// subject, oldest first.
func JobsFor(t *testing.T, db *pgxpool.Pool, table string, subjectID uuid.UUID) []JobSnapshot {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT id, event_type, status, queue_message_id, error, processed_at FROM "+table+" WHERE subject_id = $1 ORDER BY id",
		subjectID)
	require.NoError(t, err)
	defer rows.Close()

	var out []JobSnapshot
	for rows.Next() {
		var j JobSnapshot
		require.NoError(t, rows.Scan(&j.ID, &j.EventType, &j.Status, &j.QueueMessageID, &j.Error, &j.ProcessedAt))
		out = append(out, j)
	}
	require.NoError(t, rows.Err())
	return out
}

// ActionToken pulls the raw token out of the newest mail job of event for
// subjectID. Only the hash is stored, so the link is the one place it lives.
func ActionToken(t *testing.T, db DBLike, subjectID uuid.UUID, event string) string {
	t.Helper()

	var link string
	err := db.QueryRow(context.Background(),
		"SELECT payload->>'action_url' FROM email_jobs WHERE subject_id = $1 AND event_type = $2 ORDER BY id DESC LIMIT 1",
		subjectID, event).Scan(&link)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token, "no token in %q", link)
	return token
}

// InsertPendingJob writes a row the way a crashed request would leave it:
// committed, never enqueued.
func InsertPendingJob(t *testing.T, db DBLike, table string, subjectID uuid.UUID, event string, payload string, age time.Duration) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO "+table+" (subject_id, event_type, status, payload, created_at, updated_at) VALUES ($1, $2, 'pending', $3::jsonb, now() - $4::interval, now() - $4::interval) RETURNING id",
		subjectID, event, payload, fmt.Sprintf("%d milliseconds", age.Milliseconds())).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables. Identities keep counting so a message still in
// flight from an earlier subtest can never claim a new row.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
