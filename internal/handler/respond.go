package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"handpay/internal/errors"
)

// StatusResponse is the acknowledgement body of write endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func badRequest(code, message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// fail maps a service error onto an echo HTTP error, logging anything that
// ends up as a server error.
func fail(c echo.Context, err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
