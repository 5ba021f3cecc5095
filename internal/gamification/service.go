// Package gamification evaluates badge thresholds against user activity
// and grants any awards that are due. Evaluation runs detached from the
// request path and is safe to re-run: a missed run only delays grants.
package gamification

import (
	"complainthub/backend/internal/models"
	"complainthub/backend/internal/storage"

	"go.uber.org/zap"
)

// Broadcaster fans the badge_earned event out to connected clients.
type Broadcaster interface {
	Publish(ev models.Event)
}

// Service checks the badge catalog against a user's complaint count.
type Service struct {
	Storage storage.Storage
	Hub     Broadcaster
	Log     *zap.SugaredLogger
}

func NewService(s storage.Storage, hub Broadcaster, log *zap.SugaredLogger) *Service {
	return &Service{Storage: s, Hub: hub, Log: log}
}

// EvaluateAndAward grants every catalog badge the user qualifies for and
// does not already hold. Idempotent: a user holding all eligible badges
// gets nothing.
func (s *Service) EvaluateAndAward(email string) error {
	count, err := s.Storage.CountComplaintsByEmail(email)
	if err != nil {
		return err
	}

	earnedIDs, err := s.Storage.GetEarnedBadgeIDs(email)
	if err != nil {
		return err
	}
	earned := make(map[uint]bool, len(earnedIDs))
	for _, id := range earnedIDs {
		earned[id] = true
	}

	badges, err := s.Storage.GetBadges()
	if err != nil {
		return err
	}

	for _, badge := range badges {
		if earned[badge.ID] {
			continue
		}
		if badge.RequirementType != models.RequirementComplaintsSubmitted {
			continue
		}
		if count < int64(badge.RequirementValue) {
			continue
		}
		if err := s.Storage.GrantBadge(email, badge.ID); err != nil {
			// A concurrent evaluation may have granted it first; the
			// unique index keeps the grant single either way.
			s.Log.Warnw("badge grant failed", "email", email, "badge_id", badge.ID, "error", err)
			continue
		}
		s.Hub.Publish(models.Event{
			Name:    models.EventBadgeEarned,
			Payload: map[string]any{
				"email":    email,
				"badge_id": badge.ID,
				"name":     badge.Name,
				"icon":     badge.Icon,
			},
		})
	}
	return nil
}
