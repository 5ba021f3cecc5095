package models

import "time"

// ChatMessage is one live chat line inside a complaint room. Messages are
// persisted for history and broadcast to the room as they arrive.
type ChatMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID uint      `gorm:"not null;index" json:"complaint_id"`
	SenderName  string    `gorm:"not null" json:"sender_name"`
	SenderType  string    `json:"sender_type"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
