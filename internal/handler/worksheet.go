package handler

import (
	"net/http" // net/http provides status codes

	"github.com/labstack/echo/v4" // echo request context
	"github.com/sirupsen/logrus"  // logrus receives handler logs

	"github.com/iliyamo/hotel-housekeeping/internal/export"  // export renders the xlsx worksheet
	"github.com/iliyamo/hotel-housekeeping/internal/model"   // model provides the Date type
	"github.com/iliyamo/hotel-housekeeping/internal/service" // service builds the worksheet views
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorksheetHandler serves the per-day views: seeding, the rooms join and
// the xlsx export.
type WorksheetHandler struct {
	svc *service.WorksheetService
	log logrus.FieldLogger
}

// NewWorksheetHandler builds the per-day worksheet endpoints.
func NewWorksheetHandler(svc *service.WorksheetService, log logrus.FieldLogger) *WorksheetHandler {
	if svc == nil {
		panic("nil service passed to NewWorksheetHandler")
	}
	return &WorksheetHandler{svc: svc, log: log}
}

// Seed handles POST /worksheets/:date and returns the day's rows.
func (h *WorksheetHandler) Seed(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows, err := h.svc.SeedWorksheet(ctx, c.Param("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusCreated, rows)
}

// RoomsWithCleaning handles GET /rooms-with-cleaning/:date.
func (h *WorksheetHandler) RoomsWithCleaning(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows, err := h.svc.RoomsWithCleaning(ctx, c.Param("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return ok(c, http.StatusOK, rows)
}

// Export handles GET /worksheets/:date/export with an xlsx attachment.
func (h *WorksheetHandler) Export(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	rows, err := h.svc.RoomsWithCleaning(ctx, c.Param("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	// already validated by the service
	date, _ := model.ParseDate(c.Param("date"))

	b, err := export.Worksheet(date, rows)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+export.Filename(date))
	return c.Blob(http.StatusOK, xlsxContentType, b)
}
