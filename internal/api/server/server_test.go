package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/news-finder/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubHealth bool

func (h stubHealth) Healthy(ctx context.Context) bool { return bool(h) }

func TestServer_HealthChecks(t *testing.T) {
	tests := []struct {
		name    string
		healthy bool
		want    int
	}{
		{name: "healthy", healthy: true, want: http.StatusOK},
		{name: "unhealthy", healthy: false, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: "8080", CorsOrigins: []string{"*"}}, stubHealth(tt.healthy)).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks("/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestServer_ErrorHandler(t *testing.T) {
	s := New(&Config{Port: "8080", CorsOrigins: []string{"*"}}, stubHealth(true)).
		SetupErrorHandler()
	s.Echo.GET("/missing", func(c echo.Context) error {
		return apperr.NewNotFound("channel", "Please provide valid channel_name in query.")
	})

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"Not Found":"Please provide valid channel_name in query."}`, rec.Body.String())
}
