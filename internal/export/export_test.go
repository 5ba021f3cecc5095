package export_test

import (
	"bytes"
	"testing"
	"time"

	"complainthub/backend/internal/export"
	"complainthub/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleComplaints() []models.Complaint {
	rating := 4
	resolved := time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)
	assignee := "facilities-team"
	return []models.Complaint{
		{
			ID:          1,
			Title:       "Leaking pipe",
			Type:        "Facilities",
			Status:      models.StatusResolved,
			Priority:    models.PriorityHigh,
			StudentName: "Dana",
			Email:       "dana@example.edu",
			Upvotes:     3,
			Rating:      &rating,
			AssignedTo:  &assignee,
			SubmittedAt: time.Date(2026, 8, 19, 9, 30, 0, 0, time.UTC),
			ResolvedAt:  &resolved,
		},
		{
			ID:          2,
			Title:       "Slow wifi",
			Type:        "IT",
			Status:      models.StatusSubmitted,
			Priority:    models.PriorityLow,
			StudentName: "Ravi",
			Email:       "ravi@example.edu",
			SubmittedAt: time.Date(2026, 8, 21, 11, 0, 0, 0, time.UTC),
		},
	}
}

func TestExcel(t *testing.T) {
	data, err := export.Excel(sampleComplaints())
	require.NoError(t, err)

	// xlsx is a zip container.
	require.True(t, bytes.HasPrefix(data, []byte("PK")))

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Complaints")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Title", rows[0][1])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Leaking pipe", rows[1][1])
	assert.Equal(t, "Slow wifi", rows[2][1])
}

func TestExcelEmpty(t *testing.T) {
	data, err := export.Excel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Complaints")
	require.NoError(t, err)
	// Header only.
	require.Len(t, rows, 1)
}

func TestSummaryPDF(t *testing.T) {
	byStatus := map[string]int64{
		models.StatusSubmitted: 4,
		models.StatusResolved:  2,
	}

	data, err := export.SummaryPDF(6, byStatus, time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestTrackingQR(t *testing.T) {
	data, err := export.TrackingQR("https://complaints.example.edu", 42)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}
