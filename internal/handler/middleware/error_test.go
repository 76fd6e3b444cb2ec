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

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	router := gin.New()
	router.Use(middleware.RequestLogger(slog.New(slog.DiscardHandler)), middleware.CustomRecovery())
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	id := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, id)
	assert.Contains(t, buf.String(), "recovered from panic")
	assert.Contains(t, buf.String(), "request_id="+id)
}
