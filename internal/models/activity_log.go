package models

import "time"

// ActivityLogEntry records one state-changing operation on a complaint.
// The log is append-only; entries are never updated or deleted.
type ActivityLogEntry struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	ComplaintID uint      `gorm:"not null;index" json:"complaint_id"`
	Action      string    `gorm:"type:text;not null" json:"action"`
	PerformedBy string    `json:"performed_by"`
	Details     string    `gorm:"type:text" json:"details"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
