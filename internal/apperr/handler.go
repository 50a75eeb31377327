package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			if len(ve.Fields) > 0 {
				_ = c.JSON(http.StatusBadRequest, ve.Fields)
				return
			}
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var nfe *NotFoundError
		if errors.As(err, &nfe) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"Not Found": nfe.Message})
			return
		}

		var ue *UpstreamError
		if errors.As(err, &ue) {
			slog.Error("Upstream provider failed", "error", err, "status", ue.StatusCode)
			_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": ue.Message})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
