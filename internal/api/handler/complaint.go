package handler

import (
	"net/http"
	"strconv"
	"time"

	"complainthub/backend/internal/complaint"
	"complainthub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

const timeLayout = "2006-01-02 15:04:05"

// Submit accepts a multipart submission with an optional file attachment.
func (h *Handler) Submit(c *gin.Context) {
	in := complaint.SubmitInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Type:        c.PostForm("type"),
		StudentName: c.PostForm("student_name"),
		Email:       c.PostForm("email"),
	}

	fileHeader, err := c.FormFile("file")
	if err == nil && fileHeader != nil && fileHeader.Filename != "" {
		file, err := fileHeader.Open()
		if err != nil {
			h.failMutation(c, err)
			return
		}
		defer file.Close()
		in.Attachment = &complaint.Attachment{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Reader:   file,
		}
	}

	result, err := h.Complaints.Submit(c.Request.Context(), in)
	if err != nil {
		h.failMutation(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "complaint_id": result.ComplaintRef()})
}

// GetComplaint returns one complaint with display-formatted timestamps.
func (h *Handler) GetComplaint(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	cm, err := h.Storage.GetComplaintByID(id)
	if err != nil {
		h.failRead(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaint": complaintView(cm)})
}

// ListComplaints returns every complaint, newest first.
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.Storage.GetAllComplaints()
	if err != nil {
		h.failRead(c, err)
		return
	}

	views := make([]gin.H, 0, len(complaints))
	for i := range complaints {
		views = append(views, complaintView(&complaints[i]))
	}
	c.JSON(http.StatusOK, gin.H{"complaints": views})
}

type assignRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Assignee string `json:"assignee" binding:"required"`
}

func (h *Handler) AssignComplaint(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.Complaints.Assign(req.ID, req.Assignee); err != nil {
		h.failMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Complaint assigned successfully."})
}

type updateStatusRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Status      string `json:"status" binding:"required"`
	PerformedBy string `json:"performed_by"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.PerformedBy == "" {
		req.PerformedBy = "Admin"
	}

	if err := h.Complaints.UpdateStatus(req.ID, req.Status, req.PerformedBy); err != nil {
		h.failMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Complaint status updated successfully."})
}

type rateRequest struct {
	ID     uint `json:"id" binding:"required"`
	Rating int  `json:"rating" binding:"required"`
}

func (h *Handler) RateComplaint(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.Complaints.Rate(req.ID, req.Rating); err != nil {
		h.failMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Rating submitted successfully."})
}

type upvoteRequest struct {
	ID uint `json:"id" binding:"required"`
}

func (h *Handler) UpvoteComplaint(c *gin.Context) {
	var req upvoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	count, err := h.Complaints.Upvote(req.ID)
	if err != nil {
		h.failMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "upvotes": count})
}

type commentRequest struct {
	UserName    string `json:"user_name"`
	UserType    string `json:"user_type"`
	CommentText string `json:"comment_text"`
}

// Comments handles both directions: POST appends, GET lists oldest first.
func (h *Handler) Comments(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	if c.Request.Method == http.MethodPost {
		var req commentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		comment, err := h.Complaints.AddComment(id, req.UserName, req.UserType, req.CommentText)
		if err != nil {
			h.failMutation(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "comment_id": comment.ID})
		return
	}

	comments, err := h.Complaints.FetchComments(id)
	if err != nil {
		h.failRead(c, err)
		return
	}

	views := make([]gin.H, 0, len(comments))
	for _, cm := range comments {
		views = append(views, gin.H{
			"id":           cm.ID,
			"user_name":    cm.UserName,
			"user_type":    cm.UserType,
			"comment_text": cm.CommentText,
			"created_at":   cm.CreatedAt.Format(timeLayout),
		})
	}
	c.JSON(http.StatusOK, gin.H{"comments": views})
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func complaintView(cm *models.Complaint) gin.H {
	return gin.H{
		"id":           cm.ID,
		"title":        cm.Title,
		"description":  cm.Description,
		"type":         cm.Type,
		"file_url":     cm.FileURL,
		"status":       cm.Status,
		"priority":     cm.Priority,
		"rating":       cm.Rating,
		"upvotes":      cm.Upvotes,
		"due_date":     formatTime(&cm.DueDate),
		"submitted_at": formatTime(&cm.SubmittedAt),
		"resolved_at":  formatTime(cm.ResolvedAt),
		"student_name": cm.StudentName,
		"email":        cm.Email,
		"assigned_to":  cm.AssignedTo,
	}
}

func formatTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}
