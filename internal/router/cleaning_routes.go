package router

import (
	"github.com/labstack/echo/v4" // echo route groups

	"github.com/iliyamo/hotel-housekeeping/internal/handler" // handlers for the worksheet rows
)

// registerCleanings maps the worksheet row endpoints. POST is the upsert;
// PUT only updates rows that already exist.
func registerCleanings(g *echo.Group, h *handler.CleaningHandler) {
	g.GET("/cleanings", h.List)
	g.POST("/cleanings", h.Save)
	g.GET("/cleanings/:date", h.ListByDate)
	g.PUT("/cleanings/:date", h.Update)
	g.GET("/cleanings/:date/:room", h.Get)
	g.DELETE("/cleanings/:date/:room", h.Delete)
}
