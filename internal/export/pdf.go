package export

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// SummaryPDF renders the headline numbers into a one-page report:
// generation time, total count and the per-status breakdown.
func SummaryPDF(total int64, byStatus map[string]int64, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Complaint Management System - Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated on: %s", generatedAt.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(0, 8, fmt.Sprintf("Total Complaints: %d", total), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.CellFormat(0, 8, "Status Breakdown:", "", 1, "L", false, 0, "")

	// Stable output regardless of map iteration order.
	statuses := make([]string, 0, len(byStatus))
	for status := range byStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	for _, status := range statuses {
		pdf.CellFormat(0, 7, fmt.Sprintf("    %s: %d", status, byStatus[status]), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	return buf.Bytes(), nil
}
