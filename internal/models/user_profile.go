package models

import "time"

// UserProfile holds cumulative per-user activity counters. Profiles are
// created lazily on first submission and mutated incrementally:
// +1 total / +10 points on submission, +1 resolved / +50 points on
// resolution of one of the user's complaints.
type UserProfile struct {
	Email              string    `gorm:"primaryKey" json:"email"`
	Name               string    `json:"name"`
	AvatarURL          *string   `json:"avatar_url"`
	TotalComplaints    int       `gorm:"not null;default:0" json:"total_complaints"`
	ResolvedComplaints int       `gorm:"not null;default:0" json:"resolved_complaints"`
	Points             int       `gorm:"not null;default:0" json:"points"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}
