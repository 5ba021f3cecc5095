package storage

import (
	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"

	"gorm.io/gorm"
)

// UpsertProfileOnSubmit credits a submission to the user's profile,
// creating the profile on first contact. Existing profiles get their
// counters bumped in place.
func (s *Service) UpsertProfileOnSubmit(email, name string) error {
	if err := s.ready(); err != nil {
		return err
	}
	var profile models.UserProfile
	result := s.DB.Where("email = ?", email).
		Attrs(models.UserProfile{
			Email:           email,
			Name:            name,
			TotalComplaints: 1,
			Points:          config.SubmitPoints,
		}).
		FirstOrCreate(&profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		// Profile was just created with the submission already counted.
		return nil
	}
	return s.DB.Model(&models.UserProfile{}).
		Where("email = ?", email).
		UpdateColumns(map[string]interface{}{
			"total_complaints": gorm.Expr("total_complaints + 1"),
			"points":           gorm.Expr("points + ?", config.SubmitPoints),
		}).Error
}

// CreditResolution bumps the resolved counter and points of the profile
// that owns the complaint.
func (s *Service) CreditResolution(complaintID uint) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Exec(`
		UPDATE user_profiles
		SET resolved_complaints = resolved_complaints + 1, points = points + ?
		WHERE email = (SELECT email FROM complaints WHERE id = ?)
	`, config.ResolvePoints, complaintID).Error
}

func (s *Service) GetProfile(email string) (*models.UserProfile, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := s.DB.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// GetLeaderboard returns the top profiles by points.
func (s *Service) GetLeaderboard(limit int) ([]models.UserProfile, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var profiles []models.UserProfile
	if err := s.DB.Order("points DESC").Limit(limit).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetBadges returns the static badge catalog.
func (s *Service) GetBadges() ([]models.Badge, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var badges []models.Badge
	if err := s.DB.Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (s *Service) GetEarnedBadgeIDs(email string) ([]uint, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var ids []uint
	if err := s.DB.Model(&models.UserBadge{}).
		Where("user_email = ?", email).
		Pluck("badge_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Service) GrantBadge(email string, badgeID uint) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.Create(&models.UserBadge{UserEmail: email, BadgeID: badgeID}).Error
}

// GetEarnedBadges joins grants with the catalog, newest grant first.
func (s *Service) GetEarnedBadges(email string) ([]models.EarnedBadge, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var badges []models.EarnedBadge
	err := s.DB.Raw(`
		SELECT b.name, b.description, b.icon, ub.earned_at
		FROM user_badges ub
		JOIN badges b ON ub.badge_id = b.id
		WHERE ub.user_email = ?
		ORDER BY ub.earned_at DESC
	`, email).Scan(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func (s *Service) GetTemplates() ([]models.ResponseTemplate, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var templates []models.ResponseTemplate
	if err := s.DB.Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}
