package eventhub

import "complainthub/backend/internal/models"

// Client is the interface for one connected real-time subscriber. It
// abstracts the transport so the hub can manage connections uniformly.
type Client interface {
	// GetUserID returns the connection's identity (a token subject or a
	// generated anonymous id).
	GetUserID() string
	// GetRoomID returns the complaint room the client joined, or "" when
	// the client only receives global events.
	GetRoomID() string
	// SetRoomID moves the client into a complaint room. Called by the hub
	// when a join frame arrives.
	SetRoomID(string)

	// GetSendChannel returns the channel the hub delivers events through.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's send channel and connection.
	Close()
}
