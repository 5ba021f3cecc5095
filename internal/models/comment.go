package models

import "time"

// Comment is a persisted discussion entry on a complaint. Comments are
// append-only and fetched ordered by creation time ascending.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID uint      `gorm:"not null;index" json:"complaint_id"`
	UserName    string    `gorm:"not null" json:"user_name"`
	// UserType is the author role, "student" or "admin".
	UserType    string    `json:"user_type"`
	CommentText string    `gorm:"type:text;not null" json:"comment_text"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
