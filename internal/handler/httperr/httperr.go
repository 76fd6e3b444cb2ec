package httperr

import (
	"errors"
	"net/http"

	"content-dispatch/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context for logging while the client
// only sees msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err onto the error taxonomy. Validation messages are shown as
// they are; everything else gets a fixed message.
func Abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidOrExpiredToken):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired token", nil)
	case errs.Is(err, errs.ErrValidation):
		AbortWithError(c, http.StatusBadRequest, err, rootMessage(err), nil)
	case errs.Is(err, errs.ErrForbidden):
		AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// rootMessage drops wrapping context, which may name internal ids.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
