package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(buf *bytes.Buffer) *fiber.App {
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger), Security())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	return app
}

func TestStructuredLogger_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)

	id := resp.Header.Get("X-Request-ID")
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"request completed"`)
	assert.Contains(t, buf.String(), id)
}

func TestStructuredLogger_KeepsValidIncomingID(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	incoming := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", incoming)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, incoming, resp.Header.Get("X-Request-ID"))
}

func TestStructuredLogger_ReplacesMalformedIncomingID(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "<script>")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.NotEqual(t, "<script>", resp.Header.Get("X-Request-ID"))
}

func TestStructuredLogger_ClientErrorIsWarn(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"msg":"client error"`)
}

func TestSecurity(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "form-action 'self'")
}
