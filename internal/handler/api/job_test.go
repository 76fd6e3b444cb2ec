//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"content-dispatch/internal/domain/job"
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/handler/api"
	resdto "content-dispatch/internal/handler/dto/response"
	"content-dispatch/internal/usecase/queries"
	"content-dispatch/tests/common/httptest"
	queriesmock "content-dispatch/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JobHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockJobQueries
}

func (s *JobHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockJobQueries(s.mockCtrl)
	handler := api.NewJobHandler(s.mockQueries)

	s.router.GET("/jobs/:kind", withActor(handler.List))
	s.router.GET("/jobs/:kind/:id", withActor(handler.Get))
}

func (s *JobHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJobHandlerSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}

func jobView(id int64, status string) *queries.JobView {
	subject := uuid.New()
	processed := time.Date(2025, 3, 1, 12, 0, 5, 0, time.UTC)
	return &queries.JobView{
		ID:          id,
		Kind:        "content",
		SubjectID:   &subject,
		EventType:   "content.published",
		Status:      status,
		Payload:     json.RawMessage(`{"content_id":"x"}`),
		ProcessedAt: &processed,
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   processed,
	}
}

func (s *JobHandlerTestSuite) TestList() {
	s.Run("success: passes filters and paging through", func() {
		subject := uuid.New()
		status := "failed"
		s.mockQueries.EXPECT().
			List(gomock.Any(), user.RoleOperator, job.KindContent,
				queries.JobFilters{Status: &status, SubjectID: &subject}, 10, 20).
			Return(&queries.JobPage{Items: []*queries.JobView{jobView(3, "failed")}, Total: 21, Limit: 10, Offset: 20}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/jobs/content?status=failed&subject_id="+subject.String()+"&limit=10&offset=20", nil, "operator")

		var response resdto.JobPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(21), response.Total)
		s.Require().Len(response.Items, 1)
		s.Equal(int64(3), response.Items[0].ID)
		s.Equal("failed", response.Items[0].Status)
		s.Require().NotNil(response.Items[0].ProcessedAt)
		s.Equal(int64(1740830405), *response.Items[0].ProcessedAt)
		s.JSONEq(`{"content_id":"x"}`, string(response.Items[0].Payload))
	})

	s.Run("error: unknown kind is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/sms", nil, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid job kind")
	})

	s.Run("error: malformed subject id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/email?subject_id=nope", nil, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: viewer is forbidden", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), user.RoleViewer, job.KindEmail, gomock.Any(), 0, 0).
			Return(nil, queries.ErrJobAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/email", nil, "viewer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *JobHandlerTestSuite) TestGet() {
	s.Run("success: 200 OK", func() {
		view := jobView(5, "completed")
		s.mockQueries.EXPECT().GetByID(gomock.Any(), user.RoleAdmin, job.KindContent, int64(5)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/content/5", nil, "admin")

		var response resdto.JobResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
		s.Equal(view.SubjectID.String(), *response.SubjectID)
	})

	s.Run("error: non-numeric id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/content/abc", nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid job ID")
	})

	s.Run("error: missing job is 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), job.KindEmail, int64(99)).Return(nil, queries.ErrJobNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/jobs/email/99", nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
