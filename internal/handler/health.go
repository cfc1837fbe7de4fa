package handler // declare the package name; contains HTTP handlers

import (
	"context"      // context bounds the database ping
	"database/sql" // sql provides the pool being checked
	"net/http"     // net/http provides status codes and response helpers
	"time"         // time sets the ping timeout

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is the liveness endpoint used by load balancers and monitoring.
// It answers 200 while the database answers a ping and 503 otherwise.
func Health(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "db unavailable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}
