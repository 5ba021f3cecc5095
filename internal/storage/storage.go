package storage

import (
	"context"
	"errors"
	"time"

	"complainthub/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	// ErrStoreUnavailable is returned by every query method when the
	// process was started without a reachable database. Submission is
	// expected to degrade on this error, pure reads surface it.
	ErrStoreUnavailable = errors.New("storage: database not configured")

	// ErrNotFound is the storage-level translation of gorm.ErrRecordNotFound.
	ErrNotFound = errors.New("storage: record not found")

	// ErrRelayUnavailable is returned when no redis connection exists for
	// event publishing; the hub falls back to in-process delivery.
	ErrRelayUnavailable = errors.New("storage: event relay not configured")
)

// Storage is the persistence gateway. It is the sole writer for all
// entities; services only mutate data through it.
type Storage interface {
	CreateComplaint(c *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	GetAllComplaints() ([]models.Complaint, error)
	AssignComplaint(id uint, assignee string) error
	SetStatus(id uint, status string) error
	MarkResolved(id uint, at time.Time) (bool, error)
	SetRating(id uint, rating int) error
	IncrementUpvotes(id uint) (int, error)
	CountComplaintsByEmail(email string) (int64, error)

	AppendActivity(e *models.ActivityLogEntry) error
	GetActivityLog(complaintID uint) ([]models.ActivityLogEntry, error)

	CreateComment(c *models.Comment) error
	GetComments(complaintID uint) ([]models.Comment, error)

	SaveChatMessage(m *models.ChatMessage) error
	GetChatHistory(complaintID uint) ([]models.ChatMessage, error)

	UpsertProfileOnSubmit(email, name string) error
	CreditResolution(complaintID uint) error
	GetProfile(email string) (*models.UserProfile, error)
	GetLeaderboard(limit int) ([]models.UserProfile, error)

	GetBadges() ([]models.Badge, error)
	GetEarnedBadgeIDs(email string) ([]uint, error)
	GrantBadge(email string, badgeID uint) error
	GetEarnedBadges(email string) ([]models.EarnedBadge, error)

	GetTemplates() ([]models.ResponseTemplate, error)

	GetAnalytics(now time.Time) (*models.AnalyticsReport, error)

	PublishEvent(ev models.Event) error
	SubscribeEvents() *redis.PubSub
}

// Service implements Storage over PostgreSQL (gorm) and Redis. Either
// backend may be nil: a nil DB degrades every query to
// ErrStoreUnavailable, a nil Redis disables the cross-instance relay.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

func (s *Service) ready() error {
	if s.DB == nil {
		return ErrStoreUnavailable
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
