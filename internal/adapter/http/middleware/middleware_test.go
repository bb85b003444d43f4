package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		assert.NotEmpty(t, GetRequestID(c))
		return okHandler(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDPropagated(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		assert.Equal(t, "client-id-123", GetRequestID(c))
		return okHandler(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id-123", rec.Header().Get(RequestIDHeader))
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}

func TestRequestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.GET("/homes", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/homes", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	logged := buf.String()
	assert.Contains(t, logged, `"method":"GET"`)
	assert.Contains(t, logged, `"path":"/homes"`)
	assert.Contains(t, logged, `"status":200`)
	assert.Contains(t, logged, `"request_id"`)
	assert.Contains(t, logged, `"level":"info"`)
}

func TestRequestLoggerLevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "server errors log at error", status: http.StatusBadGateway, wantLevel: "error"},
		{name: "client errors log at warn", status: http.StatusBadRequest, wantLevel: "warn"},
		{name: "success logs at info", status: http.StatusOK, wantLevel: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)

			e := echo.New()
			e.Use(RequestLogger(log))
			e.GET("/", func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Contains(t, buf.String(), `"level":"`+tt.wantLevel+`"`)
		})
	}
}

func TestRecoverReturnsInternalError(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(Recover(log))
	e.GET("/", func(echo.Context) error {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() {
		e.ServeHTTP(rec, req)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")

	logged := buf.String()
	assert.Contains(t, logged, `"panic":"boom"`)
	assert.Contains(t, logged, `"stack"`)
}

func TestRecoverWithoutStack(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(RecoverWithConfig(log, RecoveryConfig{DisablePrintStack: true}))
	e.GET("/", func(echo.Context) error {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, buf.String(), `"stack"`)
}

func TestCORSPreflight(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"https://app.example.com"}))
	e.POST("/api/v1/homes/search", okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/homes/search", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSDefaultAllowsAll(t *testing.T) {
	e := echo.New()
	e.Use(CORS(nil))
	e.GET("/", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderOrigin, "https://anywhere.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestSetupOrder(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	Setup(e, log, nil)
	e.GET("/", func(c echo.Context) error {
		assert.NotEmpty(t, GetRequestID(c))
		return okHandler(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id"`)
}
