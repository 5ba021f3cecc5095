package models

import "fmt"

// Real-time event names emitted by the services. Events without a room
// are delivered to every connected client; room events only reach clients
// that joined the complaint's room.
const (
	EventNewComplaint  = "new_complaint"
	EventStatusUpdated = "status_updated"
	EventUpvoteUpdated = "upvote_updated"
	EventNewComment    = "new_comment"
	EventBadgeEarned   = "badge_earned"
	EventJoined        = "joined"
	EventNewMessage    = "new_message"
	EventUserTyping    = "user_typing"
	EventError         = "error"
)

// Event is one unit of real-time fan-out.
type Event struct {
	Name string `json:"event"`
	// Room is empty for global events and "complaint_<id>" for room-scoped ones.
	Room    string         `json:"room,omitempty"`
	Payload map[string]any `json:"payload"`
	// SkipUserID excludes one connection from delivery (typing echoes).
	SkipUserID string `json:"skip_user_id,omitempty"`
}

// ClientFrame is an inbound websocket message from a connected client.
type ClientFrame struct {
	Action      string `json:"action"` // "join", "message", "typing"
	ComplaintID uint   `json:"complaint_id"`
	SenderName  string `json:"sender_name"`
	SenderType  string `json:"sender_type"`
	Message     string `json:"message"`
}

// RoomName returns the broadcast room for a complaint.
func RoomName(complaintID uint) string {
	return fmt.Sprintf("complaint_%d", complaintID)
}
