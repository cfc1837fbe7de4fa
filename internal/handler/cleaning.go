package handler

import (
	"net/http" // net/http provides status codes

	"github.com/labstack/echo/v4" // echo request context
	"github.com/sirupsen/logrus"  // logrus receives handler logs

	"github.com/iliyamo/hotel-housekeeping/internal/service" // service runs validation, reconciliation and the upsert
)

// CleaningHandler exposes the worksheet rows under /api/cleanings.
type CleaningHandler struct {
	svc *service.WorksheetService
	log logrus.FieldLogger
}

// NewCleaningHandler builds the cleaning endpoints on top of the worksheet service.
func NewCleaningHandler(svc *service.WorksheetService, log logrus.FieldLogger) *CleaningHandler {
	if svc == nil {
		panic("nil service passed to NewCleaningHandler")
	}
	return &CleaningHandler{svc: svc, log: log}
}

// List handles GET /cleanings?date=YYYY-MM-DD. Without a date every row is
// returned.
func (h *CleaningHandler) List(c echo.Context) error {
	return h.list(c, c.QueryParam("date"))
}

// ListByDate handles GET /cleanings/:date.
func (h *CleaningHandler) ListByDate(c echo.Context) error {
	return h.list(c, c.Param("date"))
}

func (h *CleaningHandler) list(c echo.Context, date string) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows, err := h.svc.ListCleanings(ctx, date)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, rows)
}

// Get handles GET /cleanings/:date/:room.
func (h *CleaningHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	row, err := h.svc.GetCleaning(ctx, c.Param("date"), c.Param("room"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, row)
}

// Save handles POST /cleanings: 201 when the row was created, 200 when an
// existing row was updated.
func (h *CleaningHandler) Save(c echo.Context) error {
	var in service.CleaningInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	row, created, err := h.svc.SaveCleaning(ctx, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return ok(c, status, row)
}

// Update handles PUT /cleanings/:date. The room comes from the body and the
// row must already exist.
func (h *CleaningHandler) Update(c echo.Context) error {
	var in service.CleaningInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	row, err := h.svc.UpdateCleaning(ctx, c.Param("date"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, row)
}

// Delete handles DELETE /cleanings/:date/:room.
func (h *CleaningHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.svc.DeleteCleaning(ctx, c.Param("date"), c.Param("room")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "cleaning deleted"})
}
