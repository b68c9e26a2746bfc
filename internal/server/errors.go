package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/fieldbase/admin/internal/middleware"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the central error handler. echo.HTTPErrors keep
// their status and message; anything else is logged with a stack trace and
// answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
			middleware.FromContext(c.Request().Context()).Debug("Request failed", "status", code, "error", err)
		} else {
			slog.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.String(code, message)
		}
		if respErr != nil {
			slog.Error("Failed to write error response", "error", respErr)
		}
	}
}
