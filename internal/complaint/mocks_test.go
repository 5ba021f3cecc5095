package complaint_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"complainthub/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock over the full storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateComplaint(c *models.Complaint) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) GetAllComplaints() ([]models.Complaint, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) AssignComplaint(id uint, assignee string) error {
	args := m.Called(id, assignee)
	return args.Error(0)
}

func (m *MockStorage) SetStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStorage) MarkResolved(id uint, at time.Time) (bool, error) {
	args := m.Called(id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) SetRating(id uint, rating int) error {
	args := m.Called(id, rating)
	return args.Error(0)
}

func (m *MockStorage) IncrementUpvotes(id uint) (int, error) {
	args := m.Called(id)
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) CountComplaintsByEmail(email string) (int64, error) {
	args := m.Called(email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) AppendActivity(e *models.ActivityLogEntry) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *MockStorage) GetActivityLog(complaintID uint) ([]models.ActivityLogEntry, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityLogEntry), args.Error(1)
}

func (m *MockStorage) CreateComment(c *models.Comment) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) GetComments(complaintID uint) ([]models.Comment, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockStorage) SaveChatMessage(msg *models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) GetChatHistory(complaintID uint) ([]models.ChatMessage, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockStorage) UpsertProfileOnSubmit(email, name string) error {
	args := m.Called(email, name)
	return args.Error(0)
}

func (m *MockStorage) CreditResolution(complaintID uint) error {
	args := m.Called(complaintID)
	return args.Error(0)
}

func (m *MockStorage) GetProfile(email string) (*models.UserProfile, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockStorage) GetLeaderboard(limit int) ([]models.UserProfile, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserProfile), args.Error(1)
}

func (m *MockStorage) GetBadges() ([]models.Badge, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Badge), args.Error(1)
}

func (m *MockStorage) GetEarnedBadgeIDs(email string) ([]uint, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockStorage) GrantBadge(email string, badgeID uint) error {
	args := m.Called(email, badgeID)
	return args.Error(0)
}

func (m *MockStorage) GetEarnedBadges(email string) ([]models.EarnedBadge, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EarnedBadge), args.Error(1)
}

func (m *MockStorage) GetTemplates() ([]models.ResponseTemplate, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ResponseTemplate), args.Error(1)
}

func (m *MockStorage) GetAnalytics(now time.Time) (*models.AnalyticsReport, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalyticsReport), args.Error(1)
}

func (m *MockStorage) PublishEvent(ev models.Event) error {
	args := m.Called(ev)
	return args.Error(0)
}

func (m *MockStorage) SubscribeEvents() *redis.PubSub {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*redis.PubSub)
}

// recordingHub captures published events for assertions.
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
	out := make([]models.Event, len(h.events))
	copy(out, h.events)
	return out
}

func (h *recordingHub) Named(name string) []models.Event {
	var out []models.Event
	for _, ev := range h.Events() {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}

// stubUploader records upload attempts and can be told to fail.
type stubUploader struct {
	mu       sync.Mutex
	calls    int
	fail     bool
	returned string
}

func (u *stubUploader) Upload(_ context.Context, filename string, _ io.Reader, _ int64) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls++
	if u.fail {
		return "", errors.New("blob backend down")
	}
	u.returned = "https://blob.test/complaint-images/" + filename
	return u.returned, nil
}

// stubAwarder records which emails were evaluated.
type stubAwarder struct {
	mu     sync.Mutex
	emails []string
}

func (a *stubAwarder) EvaluateAndAward(email string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.emails = append(a.emails, email)
	return nil
}

func (a *stubAwarder) Emails() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.emails))
	copy(out, a.emails)
	return out
}

// stubNotifier records the complaints it was asked to announce.
type stubNotifier struct {
	mu        sync.Mutex
	announced []*models.Complaint
}

func (n *stubNotifier) ComplaintSubmitted(c *models.Complaint) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.announced = append(n.announced, c)
}

func (n *stubNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.announced)
}
