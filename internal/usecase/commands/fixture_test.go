//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"content-dispatch/internal/pkg/clock"
	"content-dispatch/internal/usecase/shared"
	dispatchmock "content-dispatch/tests/mock/dispatch"
	sharedmock "content-dispatch/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	jobs       *sharedmock.MockJobRepository
	tokens     *sharedmock.MockTokenRepository
	contents   *sharedmock.MockContentRepository
	users      *sharedmock.MockUserRepository
	dispatcher *dispatchmock.MockDispatcher
	clock      *clock.MockClock
}

// newFixture runs every unit of work inline on a single mocked Tx.
func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		jobs:       sharedmock.NewMockJobRepository(ctrl),
		tokens:     sharedmock.NewMockTokenRepository(ctrl),
		contents:   sharedmock.NewMockContentRepository(ctrl),
		users:      sharedmock.NewMockUserRepository(ctrl),
		dispatcher: dispatchmock.NewMockDispatcher(ctrl),
		clock:      clock.NewMockClock(fixedNow),
	}
	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, f.tx)
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.tx.EXPECT().Jobs().Return(f.jobs).AnyTimes()
	f.tx.EXPECT().Tokens().Return(f.tokens).AnyTimes()
	f.tx.EXPECT().Contents().Return(f.contents).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}
