//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/domain/token"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/infra/repository"
	"content-dispatch/internal/pkg/config"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/pkg/password"
	"content-dispatch/internal/usecase/commands"
	"content-dispatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAccountCommands(f *fixture) commands.AccountCommands {
	return commands.NewAccountCommands(f.uow, commands.NewTokenManager(f.clock), f.dispatcher, config.NewTestConfig())
}

// captureJob records the draft handed to the job store and returns a row for it.
func captureJob(f *fixture, id int64, out *job.Draft) {
	f.jobs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, d job.Draft) (*job.Record, error) {
			*out = d
			return &job.Record{ID: id, Kind: d.Kind, EventType: d.EventType, Status: job.StatusPending, Payload: d.Payload}, nil
		})
}

func TestAccount_RequestEmailVerification(t *testing.T) {
	t.Run("issues a token and queues the mail after commit", func(t *testing.T) {
		f := newFixture(t)
		u := builder.NewUserBuilder().BuildStored()
		f.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)
		f.tokens.EXPECT().InvalidateActive(gomock.Any(), gomock.Any(), u.ID(), token.TypeEmailVerification).Return(int64(0), nil)
		f.tokens.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		var draft job.Draft
		captureJob(f, 41, &draft)
		f.dispatcher.EXPECT().DispatchAll(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, recs ...*job.Record) {
				require.Len(t, recs, 1)
				assert.Equal(t, int64(41), recs[0].ID)
			})

		err := newAccountCommands(f).RequestEmailVerification(context.Background(), u.ID(), nil)

		require.NoError(t, err)
		assert.Equal(t, job.KindEmail, draft.Kind)
		assert.Equal(t, job.EventAuthVerifyEmail, draft.EventType)
		assert.Equal(t, u.ID(), *draft.SubjectID)
		payload, err := job.DecodeEmailPayload(draft.Payload)
		require.NoError(t, err)
		assert.Equal(t, []string{u.Email().Value()}, payload.To)
		assert.True(t, strings.HasPrefix(payload.ActionURL, "http://localhost:3000/verify-email?token="))
		assert.Contains(t, payload.Text, payload.ActionURL)
	})

	t.Run("already verified users get a validation error and no job", func(t *testing.T) {
		f := newFixture(t)
		u := builder.NewUserBuilder().AsVerified().BuildStored()
		f.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), u.ID()).Return(u, nil)

		err := newAccountCommands(f).RequestEmailVerification(context.Background(), u.ID(), nil)

		assert.True(t, errs.Is(err, commands.ErrEmailAlreadyVerified))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		err := newAccountCommands(f).RequestEmailVerification(context.Background(), uuid.New(), nil)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestAccount_VerifyEmail(t *testing.T) {
	t.Run("consumes the token and marks the address verified", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()
		f.tokens.EXPECT().Consume(gomock.Any(), gomock.Any(), token.Hash("raw"), token.TypeEmailVerification).Return(userID, nil)
		f.users.EXPECT().MarkEmailVerified(gomock.Any(), gomock.Any(), userID).Return(nil)

		require.NoError(t, newAccountCommands(f).VerifyEmail(context.Background(), "raw"))
	})

	t.Run("spent token fails without touching the user", func(t *testing.T) {
		f := newFixture(t)
		f.tokens.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), token.TypeEmailVerification).
			Return(uuid.Nil, repository.ErrTokenConsumeFailed)

		err := newAccountCommands(f).VerifyEmail(context.Background(), "raw")

		assert.True(t, errs.Is(err, errs.ErrInvalidOrExpiredToken))
	})
}

func TestAccount_RequestPasswordReset(t *testing.T) {
	t.Run("known address gets a reset mail", func(t *testing.T) {
		f := newFixture(t)
		u := builder.NewUserBuilder().BuildStored()
		f.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), u.Email()).Return(u, nil)
		f.tokens.EXPECT().InvalidateActive(gomock.Any(), gomock.Any(), u.ID(), token.TypePasswordReset).Return(int64(1), nil)
		f.tokens.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		var draft job.Draft
		captureJob(f, 7, &draft)
		f.dispatcher.EXPECT().DispatchAll(gomock.Any(), gomock.Any())

		err := newAccountCommands(f).RequestPasswordReset(context.Background(), u.Email().Value(), nil)

		require.NoError(t, err)
		assert.Equal(t, job.EventAuthPasswordReset, draft.EventType)
		payload, err := job.DecodeEmailPayload(draft.Payload)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(payload.ActionURL, "http://localhost:3000/reset-password?token="))
	})

	t.Run("unknown address succeeds silently", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		err := newAccountCommands(f).RequestPasswordReset(context.Background(), "nobody@example.com", nil)

		require.NoError(t, err)
	})

	t.Run("inactive account succeeds silently", func(t *testing.T) {
		f := newFixture(t)
		u := builder.NewUserBuilder().AsInactive().BuildStored()
		f.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(u, nil)

		require.NoError(t, newAccountCommands(f).RequestPasswordReset(context.Background(), u.Email().Value(), nil))
	})

	t.Run("malformed address is a validation error", func(t *testing.T) {
		f := newFixture(t)

		err := newAccountCommands(f).RequestPasswordReset(context.Background(), "not-an-email", nil)

		assert.True(t, errs.Is(err, user.ErrInvalidEmail))
	})
}

func TestAccount_ResetPassword(t *testing.T) {
	t.Run("stores a bcrypt hash of the new password", func(t *testing.T) {
		f := newFixture(t)
		userID := uuid.New()
		f.tokens.EXPECT().Consume(gomock.Any(), gomock.Any(), token.Hash("raw"), token.TypePasswordReset).Return(userID, nil)
		f.users.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, _ uuid.UUID, hash string) error {
				assert.NoError(t, password.ComparePassword(hash, "new-password-1"))
				return nil
			})

		require.NoError(t, newAccountCommands(f).ResetPassword(context.Background(), "raw", "new-password-1"))
	})

	t.Run("weak password is rejected before the token is spent", func(t *testing.T) {
		f := newFixture(t)

		err := newAccountCommands(f).ResetPassword(context.Background(), "raw", "short")

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("store failure is returned", func(t *testing.T) {
		f := newFixture(t)
		dbErr := errors.New("deadlock")
		f.tokens.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.users.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr)

		err := newAccountCommands(f).ResetPassword(context.Background(), "raw", "new-password-1")

		assert.ErrorIs(t, err, dbErr)
	})
}
