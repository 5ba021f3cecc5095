package models

import "time"

// Complaint statuses. The lifecycle is deliberately free-form: any known
// status may be set from any other. Resolved is the only status with
// extra side effects (resolved_at stamp + profile credit).
const (
	StatusSubmitted  = "Submitted"
	StatusAssigned   = "Assigned"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
)

// Priority levels derived once at submission from keyword classification.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Complaint is a user-submitted issue tracked through a status lifecycle.
type Complaint struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Type        string `gorm:"type:text;not null" json:"type"`
	// FileURL points at the uploaded attachment in object storage, if any.
	FileURL     *string    `json:"file_url"`
	Status      string     `gorm:"type:text;not null;index" json:"status"`
	StudentName string     `json:"student_name"`
	Email       string     `gorm:"index" json:"email"`
	Priority    string     `gorm:"type:text;not null;index" json:"priority"`
	Rating      *int       `json:"rating"`
	Upvotes     int        `gorm:"not null;default:0" json:"upvotes"`
	// DueDate is derived from priority at creation and never recomputed.
	DueDate     time.Time  `json:"due_date"`
	SubmittedAt time.Time  `gorm:"autoCreateTime;index" json:"submitted_at"`
	// ResolvedAt is non-nil if and only if the status is Resolved.
	ResolvedAt *time.Time `json:"resolved_at"`
	AssignedTo *string    `json:"assigned_to"`
}

// KnownStatus reports whether s is one of the recognised lifecycle statuses.
func KnownStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusAssigned, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}
