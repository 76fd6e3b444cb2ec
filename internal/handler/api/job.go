package api

import (
	"net/http"
	"strconv"

	"content-dispatch/internal/domain/job"
	reqdto "content-dispatch/internal/handler/dto/request"
	resdto "content-dispatch/internal/handler/dto/response"
	"content-dispatch/internal/handler/httperr"
	"content-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	queries queries.JobQueries
}

func NewJobHandler(q queries.JobQueries) *JobHandler {
	return &JobHandler{queries: q}
}

// @Summary List job records
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param kind path string true "Job family" Enums(content, email)
// @Param status query string false "Status filter"
// @Param subject_id query string false "Subject filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} resdto.JobPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/jobs/{kind} [get]
func (h *JobHandler) List(c *gin.Context) {
	_, role, ok := actor(c)
	if !ok {
		return
	}
	kind, err := job.NewKind(c.Param("kind"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	var q reqdto.ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	filters := queries.JobFilters{Status: q.Status}
	if q.SubjectID != nil {
		id, err := uuid.Parse(*q.SubjectID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid subject ID", nil)
			return
		}
		filters.SubjectID = &id
	}

	page, err := h.queries.List(c.Request.Context(), role, kind, filters, q.Limit, q.Offset)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromJobPage(page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get a job record
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param kind path string true "Job family" Enums(content, email)
// @Param id path int true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/jobs/{kind}/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	_, role, ok := actor(c)
	if !ok {
		return
	}
	kind, err := job.NewKind(c.Param("kind"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid job ID", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), role, kind, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromJobView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
