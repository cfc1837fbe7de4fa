package handler // handler defines http handlers

import (
	"context"  // context bounds every store call made by a request
	"errors"   // errors.As classifies service errors
	"net/http" // net/http provides status codes
	"time"     // time sets the per-request store timeout

	"github.com/labstack/echo/v4" // echo defines request context types
	"github.com/sirupsen/logrus"  // logrus records store failures

	"github.com/iliyamo/hotel-housekeeping/internal/service" // service holds the error taxonomy
)

// requestTimeout bounds the store work of one request.
const requestTimeout = 5 * time.Second

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// reqCtx derives the store context from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: false, Error: msg})
}

// respondError maps a service error to its status. Store failures are
// logged with op and key and answered with a generic message.
func respondError(c echo.Context, log logrus.FieldLogger, err error) error {
	var (
		verr *service.ValidationError
		nf   *service.NotFoundError
		cerr *service.ConstraintError
		serr *service.StoreError
	)
	switch {
	case errors.As(err, &verr):
		return fail(c, http.StatusBadRequest, verr.Msg)
	case errors.As(err, &nf):
		return fail(c, http.StatusNotFound, nf.Error())
	case errors.As(err, &cerr):
		return fail(c, http.StatusBadRequest, cerr.Msg)
	case errors.As(err, &serr):
		log.WithFields(logrus.Fields{
			"op":         serr.Op,
			"key":        serr.Key,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).WithError(serr.Err).Error("store error")
	default:
		log.WithError(err).Error("unexpected error")
	}
	return fail(c, http.StatusInternalServerError, "internal server error")
}

// ErrorHandler renders echo's own errors (unknown route, bad method,
// panics recovered by middleware) in the response envelope.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		msg := http.StatusText(status)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, isStr := he.Message.(string); isStr {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		}
		if status >= http.StatusInternalServerError {
			log.WithError(err).Error("unhandled error")
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = fail(c, status, msg)
	}
}
