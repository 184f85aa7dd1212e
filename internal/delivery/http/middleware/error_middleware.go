package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "cartsync/internal/delivery/context"
	"cartsync/internal/delivery/http/response"
	domainerrors "cartsync/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Clients only
// ever see the generic message; the underlying cause goes to the logs.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, "Request failed", err,
				slog.String("errorCode", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
			)
		}

		_ = response.Err(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Err(c, httpErr.Code, http.StatusText(httpErr.Code))

		return
	}

	m.logError(c, "Unhandled error", err)

	_ = response.Err(c, http.StatusInternalServerError, "Internal server error")
}

func (m *ErrorMiddleware) logError(c echo.Context, msg string, err error, extra ...slog.Attr) {
	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.String("error", err.Error()),
	}
	attrs = append(attrs, extra...)

	m.logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
}
