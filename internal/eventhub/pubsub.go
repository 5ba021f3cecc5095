package eventhub

import (
	"encoding/json"

	"complainthub/backend/internal/models"
)

// startRelay subscribes to the redis event channel and feeds received
// events into the dispatcher. Events published by this instance come back
// through the same subscription, so local and remote events take one
// delivery path. Without redis the hub runs in-process only.
func (m *Manager) startRelay() {
	pubsub := m.Storage.SubscribeEvents()
	if pubsub == nil {
		m.Log.Info("no event relay configured, running in-process fan-out only")
		return
	}

	go func() {
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var ev models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				m.Log.Warnw("dropping malformed relay payload", "error", err)
				continue
			}
			m.PubSubCh <- ev
		}
	}()
}
