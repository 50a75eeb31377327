package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// HealthHandler answers 200 while hc reports healthy and 503 otherwise.
func HealthHandler(hc HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !hc.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
