package handler

import (
	"fmt"
	"net/http"
	"time"

	"complainthub/backend/internal/export"

	"github.com/gin-gonic/gin"
)

const (
	xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfMIME  = "application/pdf"
)

// ExportExcel streams all complaints as an xlsx download.
func (h *Handler) ExportExcel(c *gin.Context) {
	complaints, err := h.Storage.GetAllComplaints()
	if err != nil {
		h.failRead(c, err)
		return
	}

	data, err := export.Excel(complaints)
	if err != nil {
		h.failRead(c, err)
		return
	}

	filename := fmt.Sprintf("complaints_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxMIME, data)
}

// ExportPDF streams the summary report as a PDF download.
func (h *Handler) ExportPDF(c *gin.Context) {
	now := time.Now()
	report, err := h.Storage.GetAnalytics(now)
	if err != nil {
		h.failRead(c, err)
		return
	}

	data, err := export.SummaryPDF(report.TotalComplaints, report.ByStatus, now)
	if err != nil {
		h.failRead(c, err)
		return
	}

	filename := fmt.Sprintf("complaints_report_%s.pdf", now.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, pdfMIME, data)
}

// TrackingQR returns a PNG QR code pointing at the public tracking page.
func (h *Handler) TrackingQR(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	baseURL := h.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, c.Request.Host)
	}

	png, err := export.TrackingQR(baseURL, id)
	if err != nil {
		h.failRead(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
