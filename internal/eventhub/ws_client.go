package eventhub

import (
	"encoding/json"
	"time"

	"complainthub/backend/internal/models"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// WSClient implements the eventhub.Client interface over a gorilla
// websocket connection.
type WSClient struct {
	UserID string
	RoomID string
	Conn   *websocket.Conn
	Hub    *Manager
	Send   chan models.Event
}

func (c *WSClient) GetUserID() string                   { return c.UserID }
func (c *WSClient) GetRoomID() string                   { return c.RoomID }
func (c *WSClient) SetRoomID(id string)                 { c.RoomID = id }
func (c *WSClient) GetSendChannel() chan<- models.Event { return c.Send }

// Run starts the pumps for the connection.
func (c *WSClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close shuts the Send channel, which stops writePump.
func (c *WSClient) Close() {
	close(c.Send)
	// readPump stops itself when Conn.Close() fires in its defer
}

func (c *WSClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.Log.Warnw("websocket read failed", "user_id", c.UserID, "error", err)
			}
			break
		}

		var frame models.ClientFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			c.Hub.Log.Warnw("dropping malformed client frame", "user_id", c.UserID, "error", err)
			continue
		}

		c.Hub.IncomingCh <- Inbound{Client: c, Frame: frame}
	}
}

func (c *WSClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub, close the ws connection.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(ev)
			if err != nil {
				c.Hub.Log.Warnw("event encode failed", "user_id", c.UserID, "error", err)
				continue
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(data)

			// Drain whatever queued up behind this event.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				next := <-c.Send
				extra, _ := json.Marshal(next)
				w.Write(extra)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
