package router

import (
	"github.com/labstack/echo/v4" // echo route groups

	"github.com/iliyamo/hotel-housekeeping/internal/handler" // handlers for rooms and room types
)

// registerReferenceData maps rooms and room types.
func registerReferenceData(g *echo.Group, h *handler.RoomHandler) {
	// ---- Rooms ----
	g.GET("/rooms", h.ListRooms)
	g.POST("/rooms", h.CreateRoom)
	g.GET("/rooms/:room", h.GetRoom)
	g.PUT("/rooms/:room", h.UpdateRoom)
	g.DELETE("/rooms/:room", h.DeleteRoom)

	// ---- Room types ----
	g.GET("/room-types", h.ListRoomTypes)
	g.POST("/room-types", h.CreateRoomType)
	g.GET("/room-types/:id", h.GetRoomType)
	g.PUT("/room-types/:id", h.UpdateRoomType)
	g.DELETE("/room-types/:id", h.DeleteRoomType)
}
