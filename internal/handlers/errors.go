package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/pkg/logging"
)

const internalMessage = "Internal server error"

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrForbiddenTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err under event and turns it into an HTTP error. Internal
// failures are reported with fallback instead of their own text.
func fail(c echo.Context, handler, event string, err error, fallback string) error {
	l := logging.FromContext(c.Request().Context()).With("handler", handler)
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		if fallback == "" {
			fallback = internalMessage
		}
		l.Error(event, "status", code, "reason", fallback, "error", err)
		return echo.NewHTTPError(code, fallback)
	}
	msg := service.Message(err)
	l.Warn(event, "status", code, "reason", msg, "error", err)
	return echo.NewHTTPError(code, msg)
}

// ErrorHandler renders errors as {"detail": "..."}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := internalMessage
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			detail = m
		case error:
			detail = m.Error()
		default:
			detail = http.StatusText(code)
		}
	} else {
		logging.FromContext(c.Request().Context()).Error("unhandled_error", "status", code, "error", err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, ErrorBody{Detail: detail})
	}
	if werr != nil {
		logging.FromContext(c.Request().Context()).Error("error_response_failed", "error", werr)
	}
}
