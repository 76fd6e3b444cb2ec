package api

import (
	"context"
	"net/http"

	"content-dispatch/internal/domain/user"
	reqdto "content-dispatch/internal/handler/dto/request"
	resdto "content-dispatch/internal/handler/dto/response"
	"content-dispatch/internal/handler/httperr"
	"content-dispatch/internal/handler/middleware"
	"content-dispatch/internal/usecase/commands"
	"content-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContentHandler struct {
	commands commands.PublishingCommands
	queries  queries.ContentQueries
}

func NewContentHandler(cmds commands.PublishingCommands, q queries.ContentQueries) *ContentHandler {
	return &ContentHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Create a draft content item
// @Tags contents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateContentRequest true "Content"
// @Success 201 {object} resdto.ContentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/contents [post]
func (h *ContentHandler) Create(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	item, err := h.commands.CreateContent(c.Request.Context(), actorID, role, req.Title, req.Body)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromContentItem(item))
}

// @Summary Get a content item
// @Description Drafts are only visible to their owner and elevated roles
// @Tags contents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} resdto.ContentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/contents/{id} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := contentID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actorID, role, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromContentView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Publish a content item
// @Tags contents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/contents/{id}/publish [post]
func (h *ContentHandler) Publish(c *gin.Context) {
	h.transition(c, h.commands.Publish)
}

// @Summary Unpublish a content item
// @Tags contents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/contents/{id}/unpublish [post]
func (h *ContentHandler) Unpublish(c *gin.Context) {
	h.transition(c, h.commands.Unpublish)
}

type transitionFunc = func(ctx context.Context, contentID, actorID uuid.UUID, actorRole user.Role) (*commands.PublishResult, error)

func (h *ContentHandler) transition(c *gin.Context, fn transitionFunc) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := contentID(c)
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), id, actorID, role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublishResult(result))
}

func contentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid content ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// actor reads the identity RequireAuth stored on the context.
func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return uuid.Nil, "", false
	}
	return userID, role, true
}
