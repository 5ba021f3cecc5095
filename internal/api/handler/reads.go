package handler

import (
	"net/http"
	"time"

	"complainthub/backend/internal/config"

	"github.com/gin-gonic/gin"
)

// Analytics computes the aggregation report on demand.
func (h *Handler) Analytics(c *gin.Context) {
	report, err := h.Storage.GetAnalytics(time.Now())
	if err != nil {
		h.failRead(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Leaderboard returns the top profiles by points.
func (h *Handler) Leaderboard(c *gin.Context) {
	profiles, err := h.Storage.GetLeaderboard(config.LeaderboardSize)
	if err != nil {
		h.failRead(c, err)
		return
	}

	top := make([]gin.H, 0, len(profiles))
	for _, p := range profiles {
		top = append(top, gin.H{
			"name":                p.Name,
			"email":               p.Email,
			"points":              p.Points,
			"total_complaints":    p.TotalComplaints,
			"resolved_complaints": p.ResolvedComplaints,
		})
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": top})
}

// UserProfile returns a profile with its earned badges.
func (h *Handler) UserProfile(c *gin.Context) {
	email := c.Param("email")

	profile, err := h.Storage.GetProfile(email)
	if err != nil {
		h.failRead(c, err)
		return
	}

	badges, err := h.Storage.GetEarnedBadges(email)
	if err != nil {
		h.failRead(c, err)
		return
	}

	badgeViews := make([]gin.H, 0, len(badges))
	for _, b := range badges {
		badgeViews = append(badgeViews, gin.H{
			"name":        b.Name,
			"description": b.Description,
			"icon":        b.Icon,
			"earned_at":   b.EarnedAt.Format("2006-01-02"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"profile": gin.H{
		"name":                profile.Name,
		"email":               profile.Email,
		"avatar_url":          profile.AvatarURL,
		"total_complaints":    profile.TotalComplaints,
		"resolved_complaints": profile.ResolvedComplaints,
		"points":              profile.Points,
		"created_at":          profile.CreatedAt.Format("2006-01-02"),
		"badges":              badgeViews,
	}})
}

// ActivityLog returns a complaint's log entries, newest first.
func (h *Handler) ActivityLog(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	entries, err := h.Storage.GetActivityLog(id)
	if err != nil {
		h.failRead(c, err)
		return
	}

	views := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		views = append(views, gin.H{
			"action":       e.Action,
			"performed_by": e.PerformedBy,
			"details":      e.Details,
			"created_at":   e.CreatedAt.Format(timeLayout),
		})
	}
	c.JSON(http.StatusOK, gin.H{"activities": views})
}

// Templates lists the canned admin responses.
func (h *Handler) Templates(c *gin.Context) {
	templates, err := h.Storage.GetTemplates()
	if err != nil {
		h.failRead(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// ChatHistory returns a complaint room's messages, oldest first.
func (h *Handler) ChatHistory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	history, err := h.Storage.GetChatHistory(id)
	if err != nil {
		h.failRead(c, err)
		return
	}

	views := make([]gin.H, 0, len(history))
	for _, m := range history {
		views = append(views, gin.H{
			"sender_name": m.SenderName,
			"sender_type": m.SenderType,
			"message":     m.Message,
			"created_at":  m.CreatedAt.Format(timeLayout),
		})
	}
	c.JSON(http.StatusOK, gin.H{"messages": views})
}
