package router // package router defines how HTTP routes are registered for the API

import (
	"database/sql" // sql is pinged by the health check

	"github.com/google/uuid"                        // uuid generates request ids
	"github.com/labstack/echo/v4"                   // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware" // echo's stock middleware (recover, request id)
	"github.com/sirupsen/logrus"                    // logrus receives request and error logs

	"github.com/iliyamo/hotel-housekeeping/internal/handler"    // import the handlers that implement the API
	"github.com/iliyamo/hotel-housekeeping/internal/middleware" // request logging, perimeter auth and rate limiting
)

// New returns an Echo instance with the process-wide middleware installed:
// panic recovery, request ids, request logging and the envelope error
// handler.
func New(log *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	return e
}

// RegisterRoutes registers routes that live outside /api. Currently it
// exposes only the health check.
func RegisterRoutes(e *echo.Echo, db *sql.DB) {
	e.GET("/healthz", handler.Health(db))
}

// Handlers bundles the API handlers mounted under /api.
type Handlers struct {
	Cleanings  *handler.CleaningHandler
	Rooms      *handler.RoomHandler
	Worksheets *handler.WorksheetHandler
	Auth       *handler.AuthHandler
}

// RegisterAPI mounts every /api route. limiter applies to the whole group;
// perimeter guards only worksheet seeding and the credential probe.
func RegisterAPI(e *echo.Echo, h Handlers, perimeter, limiter echo.MiddlewareFunc) {
	api := e.Group("/api", limiter)

	registerCleanings(api, h.Cleanings)
	registerReferenceData(api, h.Rooms)

	api.GET("/rooms-with-cleaning/:date", h.Worksheets.RoomsWithCleaning)
	api.POST("/worksheets/:date", h.Worksheets.Seed, perimeter)
	api.GET("/worksheets/:date/export", h.Worksheets.Export)

	api.POST("/auth/token", h.Auth.Token)
	api.GET("/auth-check", h.Auth.Check, perimeter)
}
