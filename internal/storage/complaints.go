package storage

import (
	"time"

	"complainthub/backend/internal/models"

	"gorm.io/gorm"
)

// CreateComplaint inserts a complaint row. The generated identity is
// written back into c.ID by gorm.
func (s *Service) CreateComplaint(c *models.Complaint) error {
	if err := s.ready(); err != nil {
		return err
	}
	if c.Status == "" {
		c.Status = models.StatusSubmitted
	}
	return s.DB.Create(c).Error
}

func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var c models.Complaint
	if err := s.DB.First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// GetAllComplaints returns every complaint, newest submission first.
func (s *Service) GetAllComplaints() ([]models.Complaint, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var complaints []models.Complaint
	if err := s.DB.Order("submitted_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *Service) AssignComplaint(id uint, assignee string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      models.StatusAssigned,
			"assigned_to": assignee,
			"resolved_at": nil,
		}).Error
}

// SetStatus writes a non-Resolved status. Leaving Resolved clears
// resolved_at, keeping the stamp present only on resolved rows.
func (s *Service) SetStatus(id uint, status string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_at": nil,
		}).Error
}

// MarkResolved sets the Resolved status and stamps resolved_at, guarded
// so a complaint that is already Resolved is left untouched. It reports
// whether the row actually transitioned, which callers use to credit the
// submitter's profile exactly once.
func (s *Service) MarkResolved(id uint, at time.Time) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	result := s.DB.Model(&models.Complaint{}).
		Where("id = ? AND status <> ?", id, models.StatusResolved).
		Updates(map[string]interface{}{
			"status":      models.StatusResolved,
			"resolved_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *Service) SetRating(id uint, rating int) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}

// IncrementUpvotes bumps the counter in place and re-reads the new value
// for broadcasting. The increment itself is atomic in the store; only the
// read-back can observe counts from interleaved callers.
func (s *Service) IncrementUpvotes(id uint) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if err := s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error; err != nil {
		return 0, err
	}
	var c models.Complaint
	if err := s.DB.Select("upvotes").First(&c, id).Error; err != nil {
		return 0, translate(err)
	}
	return c.Upvotes, nil
}

func (s *Service) CountComplaintsByEmail(email string) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	var count int64
	if err := s.DB.Model(&models.Complaint{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Service) AppendActivity(e *models.ActivityLogEntry) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Create(e).Error
}

// GetActivityLog returns a complaint's log entries, newest first.
func (s *Service) GetActivityLog(complaintID uint) ([]models.ActivityLogEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var entries []models.ActivityLogEntry
	if err := s.DB.Where("complaint_id = ?", complaintID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Service) CreateComment(c *models.Comment) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Create(c).Error
}

// GetComments returns a complaint's comments ordered oldest first.
func (s *Service) GetComments(complaintID uint) ([]models.Comment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var comments []models.Comment
	if err := s.DB.Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Service) SaveChatMessage(m *models.ChatMessage) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Create(m).Error
}

// GetChatHistory returns the room's messages ordered oldest first.
func (s *Service) GetChatHistory(complaintID uint) ([]models.ChatMessage, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var history []models.ChatMessage
	if err := s.DB.Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
