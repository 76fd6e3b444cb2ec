//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"content-dispatch/internal/domain/content"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pgconvTime(t time.Time) pgtype.Timestamptz {
	return pgconv.TimeToPgtype(t)
}

func TestContentRepository_FindByID(t *testing.T) {
	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	id := uuid.New()
	owner := uuid.New()

	t.Run("found", func(t *testing.T) {
		db := new(MockDBTX)
		q := new(MockContentQueries)
		q.On("FindContentByID", mock.Anything, db, id).Return(query.ContentRow{
			ID:         id,
			OwnerID:    owner,
			Title:      "Word of the Day: Petrichor",
			Slug:       "word-of-the-day-petrichor",
			Body:       "The smell of rain on dry earth.",
			Visibility: "published",
			LiveAt:     pgconvTime(now),
			CreatedAt:  pgconvTime(now),
			UpdatedAt:  pgconvTime(now),
		}, nil)

		repo := NewContentRepository(q, clock.NewMockClock(now))
		item, err := repo.FindByID(context.Background(), db, id)

		require.NoError(t, err)
		assert.Equal(t, owner, item.OwnerID())
		assert.Equal(t, content.VisibilityPublished, item.Visibility())
		require.NotNil(t, item.LiveAt())
		assert.True(t, item.LiveAt().Equal(now))
	})

	t.Run("missing", func(t *testing.T) {
		db := new(MockDBTX)
		q := new(MockContentQueries)
		q.On("FindContentByID", mock.Anything, db, id).Return(query.ContentRow{}, pgx.ErrNoRows)

		repo := NewContentRepository(q, clock.NewMockClock(now))
		_, err := repo.FindByID(context.Background(), db, id)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestContentRepository_UpdateVisibility(t *testing.T) {
	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "applied", affected: 1},
		{name: "lost race", affected: 0, wantErr: ErrVisibilityConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			q := new(MockContentQueries)
			q.On("UpdateContentVisibility", mock.Anything, db, query.UpdateContentVisibilityParams{
				ID:   id,
				From: "draft",
				To:   "published",
				Now:  pgconvTime(now),
			}).Return(tt.affected, nil)

			repo := NewContentRepository(q, clock.NewMockClock(now))
			err := repo.UpdateVisibility(context.Background(), db, id, content.VisibilityDraft, content.VisibilityPublished)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentRepository_MarkLive(t *testing.T) {
	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	id := uuid.New()
	db := new(MockDBTX)
	q := new(MockContentQueries)
	q.On("MarkContentLive", mock.Anything, db, id, pgconvTime(now)).Return(int64(0), nil)

	repo := NewContentRepository(q, clock.NewMockClock(now))
	applied, err := repo.MarkLive(context.Background(), db, id)

	require.NoError(t, err)
	assert.False(t, applied)
}
