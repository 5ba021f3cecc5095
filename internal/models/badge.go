package models

import "time"

// Badge requirement types. Only one exists today; the column is kept so
// new award conditions can be added without a schema change.
const (
	RequirementComplaintsSubmitted = "complaints_submitted"
)

// Badge is a static catalog entry: an award definition with a numeric
// threshold on user activity.
type Badge struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"not null" json:"name"`
	Description      string `gorm:"type:text" json:"description"`
	Icon             string `json:"icon"`
	RequirementType  string `gorm:"not null" json:"requirement_type"`
	RequirementValue int    `gorm:"not null" json:"requirement_value"`
}

// UserBadge links a user to a granted badge. At most one grant exists per
// (user, badge) pair, enforced by the composite unique index.
type UserBadge struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserEmail string    `gorm:"not null;uniqueIndex:idx_user_badge" json:"user_email"`
	BadgeID   uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"badge_id"`
	EarnedAt  time.Time `gorm:"autoCreateTime" json:"earned_at"`
}

// EarnedBadge is the read model for a user's badge list: catalog fields
// joined with the grant timestamp.
type EarnedBadge struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earned_at"`
}
