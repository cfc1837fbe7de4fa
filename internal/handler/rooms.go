package handler

import (
	"net/http" // net/http provides status codes
	"strconv"  // strconv parses numeric path ids

	"github.com/labstack/echo/v4" // echo request context
	"github.com/sirupsen/logrus"  // logrus receives handler logs

	"github.com/iliyamo/hotel-housekeeping/internal/service" // service holds room and room type rules
)

// RoomHandler serves /api/rooms and /api/room-types.
type RoomHandler struct {
	svc *service.RoomService
	log logrus.FieldLogger
}

// NewRoomHandler builds the reference data endpoints.
func NewRoomHandler(svc *service.RoomService, log logrus.FieldLogger) *RoomHandler {
	if svc == nil {
		panic("nil service passed to NewRoomHandler")
	}
	return &RoomHandler{svc: svc, log: log}
}

// ListRooms handles GET /rooms.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rooms, err := h.svc.ListRooms(ctx)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, rooms)
}

// GetRoom handles GET /rooms/:room.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	room, err := h.svc.GetRoom(ctx, c.Param("room"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, room)
}

// CreateRoom handles POST /rooms.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var in service.RoomInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	room, err := h.svc.CreateRoom(ctx, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusCreated, room)
}

// UpdateRoom handles PUT /rooms/:room. The number in the path wins.
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	var in service.RoomInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	room, err := h.svc.UpdateRoom(ctx, c.Param("room"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /rooms/:room; 400 while cleanings reference it.
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.svc.DeleteRoom(ctx, c.Param("room")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "room deleted"})
}

// ListRoomTypes handles GET /room-types.
func (h *RoomHandler) ListRoomTypes(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	types, err := h.svc.ListRoomTypes(ctx)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, types)
}

// GetRoomType handles GET /room-types/:id.
func (h *RoomHandler) GetRoomType(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	rt, err := h.svc.GetRoomType(ctx, id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, rt)
}

// CreateRoomType handles POST /room-types.
func (h *RoomHandler) CreateRoomType(c echo.Context) error {
	var in service.RoomTypeInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	rt, err := h.svc.CreateRoomType(ctx, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusCreated, rt)
}

// UpdateRoomType handles PUT /room-types/:id.
func (h *RoomHandler) UpdateRoomType(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in service.RoomTypeInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	rt, err := h.svc.UpdateRoomType(ctx, id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, rt)
}

// DeleteRoomType refuses with 400 while rooms still use the type.
func (h *RoomHandler) DeleteRoomType(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.svc.DeleteRoomType(ctx, id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "room type deleted"})
}

// parseID reads the :id path parameter. A bad value becomes a 400 rendered
// by ErrorHandler.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid room_type_id")
	}
	return id, nil
}
