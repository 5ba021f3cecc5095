package storage

import (
	"encoding/json"

	"complainthub/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// eventChannel is the redis pub/sub channel every instance publishes to
// and subscribes on, so real-time events reach clients connected anywhere.
const eventChannel = "events:broadcast"

// PublishEvent pushes an event through the redis relay.
func (s *Service) PublishEvent(ev models.Event) error {
	if s.Redis == nil {
		return ErrRelayUnavailable
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, eventChannel, string(payload)).Err()
}

// SubscribeEvents returns the relay subscription, or nil when no redis
// connection exists (single-instance mode, in-process delivery only).
func (s *Service) SubscribeEvents() *redis.PubSub {
	if s.Redis == nil {
		return nil
	}
	return s.Redis.Subscribe(s.Ctx, eventChannel)
}
