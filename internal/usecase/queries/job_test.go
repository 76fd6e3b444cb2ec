//go:build unit

package queries_test

import (
	"context"
	"testing"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra"
	"content-dispatch/internal/pkg/errs"
	"content-dispatch/internal/usecase/queries"
	queriesmock "content-dispatch/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJobQueries_GetByID(t *testing.T) {
	t.Run("operator reads a job", func(t *testing.T) {
		store := queriesmock.NewMockJobReadStore(gomock.NewController(t))
		view := &queries.JobView{ID: 4, Kind: "email", Status: "completed"}
		store.EXPECT().FindByID(gomock.Any(), job.KindEmail, int64(4)).Return(view, nil)

		got, err := queries.NewJobQueries(store).GetByID(context.Background(), user.RoleOperator, job.KindEmail, 4)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("viewer is refused before the store is read", func(t *testing.T) {
		store := queriesmock.NewMockJobReadStore(gomock.NewController(t))

		_, err := queries.NewJobQueries(store).GetByID(context.Background(), user.RoleViewer, job.KindEmail, 4)

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("missing job is not found", func(t *testing.T) {
		store := queriesmock.NewMockJobReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("job not found", nil, infra.KindNotFound))

		_, err := queries.NewJobQueries(store).GetByID(context.Background(), user.RoleAdmin, job.KindContent, 99)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestJobQueries_List(t *testing.T) {
	t.Run("limits are clamped and total is reported", func(t *testing.T) {
		store := queriesmock.NewMockJobReadStore(gomock.NewController(t))
		status := "failed"
		filters := queries.JobFilters{Status: &status}
		items := []*queries.JobView{{ID: 1}, {ID: 2}}
		store.EXPECT().List(gomock.Any(), job.KindContent, filters, int32(queries.MaxListLimit), int32(0)).Return(items, nil)
		store.EXPECT().Count(gomock.Any(), job.KindContent, filters).Return(int64(2), nil)

		page, err := queries.NewJobQueries(store).List(context.Background(), user.RoleAdmin, job.KindContent, filters, 5000, -3)

		require.NoError(t, err)
		assert.Equal(t, &queries.JobPage{Items: items, Total: 2, Limit: queries.MaxListLimit, Offset: 0}, page)
	})

	t.Run("unknown status filter is a validation error", func(t *testing.T) {
		store := queriesmock.NewMockJobReadStore(gomock.NewController(t))
		status := "exploded"

		_, err := queries.NewJobQueries(store).List(context.Background(), user.RoleAdmin, job.KindEmail, queries.JobFilters{Status: &status}, 0, 0)

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
