package gamification_test

import (
	"errors"
	"sync"
	"testing"

	"complainthub/backend/internal/gamification"
	"complainthub/backend/internal/models"
	"complainthub/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockStorage stubs only the methods badge evaluation touches; the
// embedded interface panics on anything else, which is what we want.
type MockStorage struct {
	storage.Storage
	mock.Mock
}

func (m *MockStorage) CountComplaintsByEmail(email string) (int64, error) {
	args := m.Called(email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) GetEarnedBadgeIDs(email string) ([]uint, error) {
	args := m.Called(email)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockStorage) GetBadges() ([]models.Badge, error) {
	args := m.Called()
	return args.Get(0).([]models.Badge), args.Error(1)
}

func (m *MockStorage) GrantBadge(email string, badgeID uint) error {
	args := m.Called(email, badgeID)
	return args.Error(0)
}

type recordingHub struct {
	mu     sync.Mutex
	events []models.Event
}

func (h *recordingHub) Publish(ev models.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

func (h *recordingHub) Events() []models.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.Event(nil), h.events...)
}

func catalog() []models.Badge {
	return []models.Badge{
		{ID: 1, Name: "First Voice", Icon: "🎤", RequirementType: models.RequirementComplaintsSubmitted, RequirementValue: 1},
		{ID: 2, Name: "Persistent Reporter", Icon: "📣", RequirementType: models.RequirementComplaintsSubmitted, RequirementValue: 5},
		{ID: 3, Name: "Campus Watchdog", Icon: "🦮", RequirementType: models.RequirementComplaintsSubmitted, RequirementValue: 10},
	}
}

func newService(storageMock *MockStorage) (*gamification.Service, *recordingHub) {
	hub := &recordingHub{}
	return gamification.NewService(storageMock, hub, zap.NewNop().Sugar()), hub
}

func TestEvaluateAndAward_GrantsDueBadges(t *testing.T) {
	storageMock := new(MockStorage)
	svc, hub := newService(storageMock)

	storageMock.On("CountComplaintsByEmail", "dana@example.edu").Return(int64(5), nil)
	storageMock.On("GetEarnedBadgeIDs", "dana@example.edu").Return([]uint{1}, nil)
	storageMock.On("GetBadges").Return(catalog(), nil)
	storageMock.On("GrantBadge", "dana@example.edu", uint(2)).Return(nil)

	require.NoError(t, svc.EvaluateAndAward("dana@example.edu"))

	// Badge 1 is already held, badge 3 needs 10 submissions.
	storageMock.AssertNotCalled(t, "GrantBadge", "dana@example.edu", uint(1))
	storageMock.AssertNotCalled(t, "GrantBadge", "dana@example.edu", uint(3))

	events := hub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, models.EventBadgeEarned, events[0].Name)
	assert.Equal(t, "Persistent Reporter", events[0].Payload["name"])
	assert.Equal(t, uint(2), events[0].Payload["badge_id"])
}

func TestEvaluateAndAward_IdempotentWhenAllEarned(t *testing.T) {
	storageMock := new(MockStorage)
	svc, hub := newService(storageMock)

	storageMock.On("CountComplaintsByEmail", "dana@example.edu").Return(int64(12), nil)
	storageMock.On("GetEarnedBadgeIDs", "dana@example.edu").Return([]uint{1, 2, 3}, nil)
	storageMock.On("GetBadges").Return(catalog(), nil)

	require.NoError(t, svc.EvaluateAndAward("dana@example.edu"))

	storageMock.AssertNotCalled(t, "GrantBadge", mock.Anything, mock.Anything)
	assert.Empty(t, hub.Events())
}

func TestEvaluateAndAward_SkipsUnknownRequirementType(t *testing.T) {
	storageMock := new(MockStorage)
	svc, hub := newService(storageMock)

	badges := []models.Badge{
		{ID: 9, Name: "Night Owl", RequirementType: "comments_posted", RequirementValue: 1},
	}

	storageMock.On("CountComplaintsByEmail", "dana@example.edu").Return(int64(3), nil)
	storageMock.On("GetEarnedBadgeIDs", "dana@example.edu").Return([]uint{}, nil)
	storageMock.On("GetBadges").Return(badges, nil)

	require.NoError(t, svc.EvaluateAndAward("dana@example.edu"))

	storageMock.AssertNotCalled(t, "GrantBadge", mock.Anything, mock.Anything)
	assert.Empty(t, hub.Events())
}

func TestEvaluateAndAward_GrantFailureDoesNotStopTheRun(t *testing.T) {
	storageMock := new(MockStorage)
	svc, hub := newService(storageMock)

	storageMock.On("CountComplaintsByEmail", "dana@example.edu").Return(int64(10), nil)
	storageMock.On("GetEarnedBadgeIDs", "dana@example.edu").Return([]uint{}, nil)
	storageMock.On("GetBadges").Return(catalog(), nil)
	storageMock.On("GrantBadge", "dana@example.edu", uint(1)).Return(errors.New("duplicate key"))
	storageMock.On("GrantBadge", "dana@example.edu", uint(2)).Return(nil)
	storageMock.On("GrantBadge", "dana@example.edu", uint(3)).Return(nil)

	require.NoError(t, svc.EvaluateAndAward("dana@example.edu"))

	// The failed grant is skipped without announcing it.
	events := hub.Events()
	require.Len(t, events, 2)
	assert.Equal(t, uint(2), events[0].Payload["badge_id"])
	assert.Equal(t, uint(3), events[1].Payload["badge_id"])
}

func TestEvaluateAndAward_CountErrorSurfaces(t *testing.T) {
	storageMock := new(MockStorage)
	svc, _ := newService(storageMock)

	storageMock.On("CountComplaintsByEmail", "dana@example.edu").Return(int64(0), errors.New("store down"))

	assert.Error(t, svc.EvaluateAndAward("dana@example.edu"))
}
