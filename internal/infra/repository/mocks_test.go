//go:build unit

package repository

import (
	"context"

	"content-dispatch/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

// MockDBTX is never called by repositories directly; it only travels through
// to the query mocks.
type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

type MockJobQueries struct {
	mock.Mock
}

func (m *MockJobQueries) CreateJob(ctx context.Context, db query.DBTX, arg query.CreateJobParams) (query.JobRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(query.JobRow), args.Error(1)
}

func (m *MockJobQueries) AttachJobQueueMessage(ctx context.Context, db query.DBTX, arg query.AttachJobQueueMessageParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobQueries) TransitionJob(ctx context.Context, db query.DBTX, arg query.TransitionJobParams) (query.JobRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(query.JobRow), args.Error(1)
}

func (m *MockJobQueries) GetJob(ctx context.Context, db query.DBTX, table string, id int64) (query.JobRow, error) {
	args := m.Called(ctx, db, table, id)
	return args.Get(0).(query.JobRow), args.Error(1)
}

func (m *MockJobQueries) ListOrphanJobs(ctx context.Context, db query.DBTX, arg query.ListStaleJobsParams) ([]query.JobRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.JobRow), args.Error(1)
}

func (m *MockJobQueries) ListStalledJobs(ctx context.Context, db query.DBTX, arg query.ListStaleJobsParams) ([]query.JobRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]query.JobRow), args.Error(1)
}

type MockTokenQueries struct {
	mock.Mock
}

func (m *MockTokenQueries) InvalidateActiveTokens(ctx context.Context, db query.DBTX, arg query.InvalidateActiveTokensParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenQueries) CreateActionToken(ctx context.Context, db query.DBTX, arg query.CreateActionTokenParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockTokenQueries) ConsumeActionToken(ctx context.Context, db query.DBTX, arg query.ConsumeActionTokenParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockContentQueries struct {
	mock.Mock
}

func (m *MockContentQueries) CreateContent(ctx context.Context, db query.DBTX, arg query.CreateContentParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockContentQueries) FindContentByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ContentRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.ContentRow), args.Error(1)
}

func (m *MockContentQueries) UpdateContentVisibility(ctx context.Context, db query.DBTX, arg query.UpdateContentVisibilityParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentQueries) MarkContentLive(ctx context.Context, db query.DBTX, id uuid.UUID, now pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, id, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentQueries) ClearContentLive(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) FindUserByEmail(ctx context.Context, db query.DBTX, email string) (query.UserRow, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(query.UserRow), args.Error(1)
}

func (m *MockUserQueries) FindUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.UserRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.UserRow), args.Error(1)
}

func (m *MockUserQueries) UpdateUserLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserQueries) MarkUserEmailVerified(ctx context.Context, db query.DBTX, id uuid.UUID, now pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, id, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserQueries) UpdateUserPassword(ctx context.Context, db query.DBTX, arg query.UpdateUserPasswordParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}
