package http_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/evan-taojiangcb/huangli-programmer/internal/adapters/http"
)

func newEchoServer(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.Use(httpadapter.RequestIDMiddleware())
	if logger != nil {
		e.Use(httpadapter.LoggingMiddleware(logger))
	}
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	return e
}

func TestRequestIDMiddleware_Generated(t *testing.T) {
	rec := do(newEchoServer(nil), httptest.NewRequest(http.MethodGet, "/ping", nil))

	_, err := uuid.Parse(rec.Header().Get("X-Request-Id"))
	assert.NoError(t, err)
}

func TestRequestIDMiddleware_RejectsUntrustedIDs(t *testing.T) {
	e := newEchoServer(nil)

	for _, id := range []string{
		strings.Repeat("a", 65),
		"has space",
		"new\tline",
		"<script>",
		"请求",
	} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-Id", id)
		rec := do(e, req)

		got := rec.Header().Get("X-Request-Id")
		assert.NotEqual(t, id, got, id)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, id)
	}
}

func TestRequestIDMiddleware_KeepsWellFormedIDs(t *testing.T) {
	e := newEchoServer(nil)

	for _, id := range []string{"abc-123", "trace_01.A", strings.Repeat("z", 64)} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-Id", id)
		rec := do(e, req)
		assert.Equal(t, id, rec.Header().Get("X-Request-Id"))
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	e := newEchoServer(logger)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "log-me")
	rec := do(e, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "log-me", entry["request_id"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "/ping", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.Contains(t, entry, "latency_ms")
}
