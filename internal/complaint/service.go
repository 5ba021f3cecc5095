// Package complaint implements the complaint lifecycle: submission with
// priority classification and due-date derivation, triage operations, and
// the real-time and notification side effects they trigger.
package complaint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"
	"complainthub/backend/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const timeLayout = "2006-01-02 15:04:05"

// ValidationError marks input rejected before any side effect.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Broadcaster fans an event out to connected real-time clients.
type Broadcaster interface {
	Publish(ev models.Event)
}

// Uploader stores attachment bytes and returns a retrievable URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error)
}

// Notifier delivers the out-of-band submission notification (webhook,
// admin chat). Implementations are expected to fail soft.
type Notifier interface {
	ComplaintSubmitted(c *models.Complaint)
}

// BadgeAwarder evaluates gamification thresholds for a user.
type BadgeAwarder interface {
	EvaluateAndAward(email string) error
}

// Service orchestrates the complaint lifecycle.
type Service struct {
	Storage  storage.Storage
	Hub      Broadcaster
	Uploader Uploader // nil when no object storage is configured
	Notifier Notifier // nil when no notification channel is configured
	Awarder  BadgeAwarder
	Log      *zap.SugaredLogger
}

// NewService creates a new complaint lifecycle service.
func NewService(s storage.Storage, hub Broadcaster, log *zap.SugaredLogger) *Service {
	return &Service{Storage: s, Hub: hub, Log: log}
}

// Attachment is an optional uploaded file accompanying a submission.
type Attachment struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// SubmitInput carries a validated-on-entry submission request.
type SubmitInput struct {
	Title       string
	Description string
	Type        string
	StudentName string
	Email       string
	Attachment  *Attachment
}

// SubmitResult always carries a usable reference: the numeric id when the
// row was persisted, otherwise a locally generated token.
type SubmitResult struct {
	ComplaintID uint
	Reference   string
	Priority    string
	FileURL     *string
	Persisted   bool
}

// Submit validates and persists a new complaint. Aside from input
// validation it never fails: a broken blob backend drops the attachment,
// a broken store yields a generated reference, and every secondary write
// is best-effort.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if err := validateSubmit(in); err != nil {
		return nil, err
	}

	now := time.Now()
	priority := ClassifyPriority(in.Title, in.Description)

	var fileURL *string
	if in.Attachment != nil && s.Uploader != nil {
		url, err := s.Uploader.Upload(ctx, in.Attachment.Filename, in.Attachment.Reader, in.Attachment.Size)
		if err != nil {
			s.Log.Warnw("attachment upload failed, continuing without file", "error", err)
		} else {
			fileURL = &url
		}
	}

	c := &models.Complaint{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		FileURL:     fileURL,
		Status:      models.StatusSubmitted,
		StudentName: in.StudentName,
		Email:       in.Email,
		Priority:    priority,
		DueDate:     DueDate(priority, now),
		SubmittedAt: now,
	}

	result := &SubmitResult{Priority: priority, FileURL: fileURL}

	if err := s.Storage.CreateComplaint(c); err != nil {
		// The caller still gets a usable reference; the failure is ours
		// to log, not theirs to handle.
		result.Reference = FallbackReference()
		s.Log.Errorw("complaint insert failed, issuing generated reference",
			"reference", result.Reference, "error", err)
	} else {
		result.ComplaintID = c.ID
		result.Persisted = true

		s.appendActivity(c.ID, "Created", in.StudentName,
			fmt.Sprintf("Complaint submitted with %s priority", priority))

		if err := s.Storage.UpsertProfileOnSubmit(in.Email, in.StudentName); err != nil {
			s.Log.Warnw("profile update failed", "email", in.Email, "error", err)
		}

		if s.Awarder != nil {
			go func(email string) {
				if err := s.Awarder.EvaluateAndAward(email); err != nil {
					s.Log.Warnw("badge evaluation failed", "email", email, "error", err)
				}
			}(in.Email)
		}
	}

	if s.Notifier != nil {
		go s.Notifier.ComplaintSubmitted(c)
	}

	s.Hub.Publish(models.Event{
		Name: models.EventNewComplaint,
		Payload: map[string]any{
			"id":       result.ComplaintRef(),
			"title":    in.Title,
			"priority": priority,
			"status":   models.StatusSubmitted,
		},
	})

	return result, nil
}

// ComplaintRef returns the value callers should display: the numeric id
// when persisted, otherwise the generated token.
func (r *SubmitResult) ComplaintRef() any {
	if r.Persisted {
		return r.ComplaintID
	}
	return r.Reference
}

// FallbackReference builds the opaque token handed out when the store
// cannot produce an identity.
func FallbackReference() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:config.FallbackReferenceLen])
}

func validateSubmit(in SubmitInput) error {
	if in.Title == "" || in.Description == "" || in.Type == "" {
		return validationErr("title, description and type are required")
	}
	if in.Attachment == nil {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(in.Attachment.Filename))
	allowed := false
	for _, e := range config.AllowedAttachmentExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return validationErr("invalid file type")
	}
	if in.Attachment.Size > config.MaxAttachmentSize {
		return validationErr("file too large")
	}
	return nil
}

// Assign sets the assignee and moves the complaint to Assigned.
func (s *Service) Assign(id uint, assignee string) error {
	if assignee == "" {
		return validationErr("assignee is required")
	}
	if err := s.Storage.AssignComplaint(id, assignee); err != nil {
		return err
	}

	s.appendActivity(id, "Assigned", assignee, fmt.Sprintf("Assigned to %s", assignee))

	s.Hub.Publish(models.Event{
		Name:    models.EventStatusUpdated,
		Payload: map[string]any{"id": id, "status": models.StatusAssigned},
	})
	return nil
}

// UpdateStatus sets a new status. Resolving additionally stamps
// resolved_at and credits the submitter's profile; re-resolving an
// already-resolved complaint leaves both untouched.
func (s *Service) UpdateStatus(id uint, newStatus, performedBy string) error {
	if !models.KnownStatus(newStatus) {
		return validationErr("unknown status %q", newStatus)
	}

	if newStatus == models.StatusResolved {
		transitioned, err := s.Storage.MarkResolved(id, time.Now())
		if err != nil {
			return err
		}
		if transitioned {
			if err := s.Storage.CreditResolution(id); err != nil {
				s.Log.Warnw("resolution credit failed", "complaint_id", id, "error", err)
			}
		}
	} else {
		if err := s.Storage.SetStatus(id, newStatus); err != nil {
			return err
		}
	}

	s.appendActivity(id, "Status Updated", performedBy,
		fmt.Sprintf("Status changed to %s", newStatus))

	s.Hub.Publish(models.Event{
		Name:    models.EventStatusUpdated,
		Payload: map[string]any{"id": id, "status": newStatus},
	})
	return nil
}

// Rate records the submitter's rating of the resolution.
func (s *Service) Rate(id uint, rating int) error {
	return s.Storage.SetRating(id, rating)
}

// Upvote bumps the counter and broadcasts the new value. The read-back
// after the atomic increment is not serialized against other upvoters.
func (s *Service) Upvote(id uint) (int, error) {
	count, err := s.Storage.IncrementUpvotes(id)
	if err != nil {
		return 0, err
	}
	s.Hub.Publish(models.Event{
		Name:    models.EventUpvoteUpdated,
		Payload: map[string]any{"id": id, "upvotes": count},
	})
	return count, nil
}

// AddComment appends a comment and broadcasts it with the server-stamped
// creation time.
func (s *Service) AddComment(complaintID uint, userName, userType, text string) (*models.Comment, error) {
	if text == "" {
		return nil, validationErr("comment_text is required")
	}
	c := &models.Comment{
		ComplaintID: complaintID,
		UserName:    userName,
		UserType:    userType,
		CommentText: text,
		CreatedAt:   time.Now(),
	}
	if err := s.Storage.CreateComment(c); err != nil {
		return nil, err
	}

	s.Hub.Publish(models.Event{
		Name: models.EventNewComment,
		Payload: map[string]any{
			"complaint_id": complaintID,
			"user_name":    userName,
			"user_type":    userType,
			"comment_text": text,
			"created_at":   c.CreatedAt.Format(timeLayout),
		},
	})
	return c, nil
}

// FetchComments returns a complaint's comments oldest first.
func (s *Service) FetchComments(complaintID uint) ([]models.Comment, error) {
	return s.Storage.GetComments(complaintID)
}

// IsValidation reports whether err is an input rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func (s *Service) appendActivity(complaintID uint, action, by, details string) {
	err := s.Storage.AppendActivity(&models.ActivityLogEntry{
		ComplaintID: complaintID,
		Action:      action,
		PerformedBy: by,
		Details:     details,
	})
	if err != nil {
		s.Log.Warnw("activity log append failed", "complaint_id", complaintID, "action", action, "error", err)
	}
}
