//go:build unit

package readstore

import (
	"context"
	"testing"

	"content-dispatch/internal/infra"
	"content-dispatch/internal/infra/query"
	"content-dispatch/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db query.DBTX, email string) (query.UserRow, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(query.UserRow), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.UserRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.UserRow), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().AsVerified().BuildRow()
	inactiveUser := builder.NewUserBuilder().WithEmail("gone@example.com").AsInactive().BuildRow()

	tests := []struct {
		name       string
		email      string
		mockReturn query.UserRow
		mockError  error
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - verified user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: query.UserRow{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: query.UserRow{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, tt.mockReturn.EmailVerifiedAt.Valid, view.EmailVerifiedAt != nil)
				assert.Equal(t, tt.wantHash, hash)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildRow()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn query.UserRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			userID:     testUser.ID,
			mockReturn: testUser,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: query.UserRow{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: query.UserRow{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Nil(t, view.EmailVerifiedAt)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
