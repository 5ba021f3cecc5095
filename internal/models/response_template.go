package models

import "github.com/lib/pq"

// ResponseTemplate is a canned admin reply, grouped by category and
// taggable for quick lookup in the admin UI.
type ResponseTemplate struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Category     string         `json:"category"`
	TemplateText string         `gorm:"type:text;not null" json:"template_text"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
}
