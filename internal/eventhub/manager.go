// Package eventhub is the real-time fan-out layer: a hub of websocket
// clients receiving global lifecycle events and complaint-room chat,
// relayed across instances through redis pub/sub.
package eventhub

import (
	"time"

	"complainthub/backend/internal/models"
	"complainthub/backend/internal/storage"

	"go.uber.org/zap"
)

// Inbound couples a client frame with the connection it arrived on.
type Inbound struct {
	Client Client
	Frame  models.ClientFrame
}

// Manager owns the set of connected clients and the delivery loop. All
// membership state is touched only inside Run, so no locking is needed.
type Manager struct {
	Clients map[Client]bool

	RegisterCh   chan Client
	UnregisterCh chan Client
	IncomingCh   chan Inbound
	PubSubCh     chan models.Event

	Storage storage.Storage
	Log     *zap.SugaredLogger
}

func NewManager(s storage.Storage, log *zap.SugaredLogger) *Manager {
	return &Manager{
		Clients:      make(map[Client]bool),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		IncomingCh:   make(chan Inbound),
		PubSubCh:     make(chan models.Event, 256),
		Storage:      s,
		Log:          log,
	}
}

// Run is the hub dispatcher. It must be started exactly once.
func (m *Manager) Run() {
	m.startRelay()

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client] = true

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client]; ok {
				delete(m.Clients, client)
				client.Close()
			}

		case in := <-m.IncomingCh:
			m.handleFrame(in)

		case ev := <-m.PubSubCh:
			m.deliver(ev)
		}
	}
}

// Publish fans an event out to every instance through the redis relay.
// Without a relay the event is delivered in-process only.
func (m *Manager) Publish(ev models.Event) {
	if err := m.Storage.PublishEvent(ev); err != nil {
		m.PubSubCh <- ev
	}
}

func (m *Manager) handleFrame(in Inbound) {
	c := in.Client
	frame := in.Frame
	room := models.RoomName(frame.ComplaintID)

	switch frame.Action {
	case "join":
		c.SetRoomID(room)
		m.send(c, models.Event{
			Name:    models.EventJoined,
			Payload: map[string]any{"complaint_id": frame.ComplaintID},
		})

	case "message":
		msg := &models.ChatMessage{
			ComplaintID: frame.ComplaintID,
			SenderName:  frame.SenderName,
			SenderType:  frame.SenderType,
			Message:     frame.Message,
			CreatedAt:   time.Now(),
		}
		if err := m.Storage.SaveChatMessage(msg); err != nil {
			m.Log.Warnw("chat message persist failed", "complaint_id", frame.ComplaintID, "error", err)
			m.send(c, models.Event{
				Name:    models.EventError,
				Payload: map[string]any{"message": err.Error()},
			})
			return
		}
		m.Publish(models.Event{
			Name: models.EventNewMessage,
			Room: room,
			Payload: map[string]any{
				"sender_name": frame.SenderName,
				"sender_type": frame.SenderType,
				"message":     frame.Message,
				"timestamp":   msg.CreatedAt.Format("15:04:05"),
			},
		})

	case "typing":
		m.Publish(models.Event{
			Name:       models.EventUserTyping,
			Room:       room,
			Payload:    map[string]any{"user_name": frame.SenderName},
			SkipUserID: c.GetUserID(),
		})

	default:
		m.Log.Debugw("dropping frame with unknown action", "action", frame.Action)
	}
}

// deliver pushes an event into the send channel of every subscribed
// client. Slow clients are dropped rather than allowed to block the loop.
func (m *Manager) deliver(ev models.Event) {
	for client := range m.Clients {
		if ev.Room != "" && client.GetRoomID() != ev.Room {
			continue
		}
		if ev.SkipUserID != "" && client.GetUserID() == ev.SkipUserID {
			continue
		}
		select {
		case client.GetSendChannel() <- ev:
		default:
			delete(m.Clients, client)
			client.Close()
		}
	}
}

func (m *Manager) send(c Client, ev models.Event) {
	select {
	case c.GetSendChannel() <- ev:
	default:
	}
}
