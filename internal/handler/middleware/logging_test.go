//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"content-dispatch/internal/handler/middleware"
	"content-dispatch/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	t.Run("generates and echoes a request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")

		id := rec.Header().Get("X-Request-ID")
		assert.NotEmpty(t, id)
		assert.Contains(t, buf.String(), "request_id="+id)
		assert.Contains(t, buf.String(), "status_code=204")
	})

	t.Run("4xx responses log at warn", func(t *testing.T) {
		buf.Reset()
		httptest.PerformRequest(t, router, http.MethodGet, "/missing", nil, "")
		assert.Contains(t, buf.String(), "level=WARN")
	})
}
