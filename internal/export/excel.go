// Package export renders complaint data into downloadable artifacts:
// a spreadsheet, a summary PDF and tracking QR codes. Everything is
// generated fully in memory; no temporary files.
package export

import (
	"fmt"
	"time"

	"complainthub/backend/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Complaints"

var excelHeaders = []string{
	"ID", "Title", "Type", "Status", "Priority",
	"Student Name", "Email", "Submitted At", "Resolved At", "Rating",
}

// Excel renders the complaint rows into an xlsx workbook.
func Excel(complaints []models.Complaint) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for i, c := range complaints {
		row := []any{
			c.ID, c.Title, c.Type, c.Status, c.Priority,
			c.StudentName, c.Email,
			formatTime(&c.SubmittedAt), formatTime(c.ResolvedAt), formatRating(c.Rating),
		}
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel render: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatRating(r *int) any {
	if r == nil {
		return ""
	}
	return *r
}
