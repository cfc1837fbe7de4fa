// Package export renders a day's housekeeping worksheet as an xlsx file for
// printing. Enum columns use the Japanese labels staff are used to.
package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/iliyamo/hotel-housekeeping/internal/model"
)

// WorksheetHeader is the first row of the exported sheet.
var WorksheetHeader = []string{
	"部屋番号",
	"部屋タイプ",
	"定員",
	"清掃状況",
	"清掃可否",
	"チェックイン",
	"人数",
	"セット",
	"備考",
}

var columnWidths = []float64{10, 16, 6, 16, 16, 12, 6, 16, 40}

// Filename is the attachment name for the worksheet of date.
func Filename(date model.Date) string {
	return "worksheet-" + date.String() + ".xlsx"
}

// Worksheet writes rows, one per room, into a single sheet named after
// date and returns the encoded workbook.
func Worksheet(date model.Date, rows []model.RoomWithCleaning) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := date.String()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	header := make([]any, len(WorksheetHeader))
	for i, h := range WorksheetHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	last, err := excelize.ColumnNumberToName(len(WorksheetHeader))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}
	for i, w := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("column width %s: %w", col, err)
		}
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := record(r)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %s: %w", r.RoomNumber, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

func record(r model.RoomWithCleaning) []any {
	checkIn, guests, notes := "", "", ""
	if r.CheckInTime != nil {
		checkIn = r.CheckInTime.String()
	}
	if r.GuestCount != nil {
		guests = strconv.Itoa(*r.GuestCount)
	}
	if r.Notes != nil {
		notes = *r.Notes
	}
	return []any{
		r.RoomNumber,
		r.TypeName,
		r.Capacity,
		r.CleaningStatus.Label(),
		r.CleaningAvailability.Label(),
		checkIn,
		guests,
		r.SetType.Label(),
		notes,
	}
}
