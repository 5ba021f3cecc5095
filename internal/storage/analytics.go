package storage

import (
	"math"
	"time"

	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"
)

type groupCount struct {
	K string
	C int64
}

func (s *Service) groupBy(column string) (map[string]int64, error) {
	var rows []groupCount
	err := s.DB.Model(&models.Complaint{}).
		Select(column + " AS k, COUNT(*) AS c").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.K] = r.C
	}
	return out, nil
}

// GetAnalytics computes the full report on demand. No pre-aggregation is
// kept; every call goes to the store.
func (s *Service) GetAnalytics(now time.Time) (*models.AnalyticsReport, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	report := &models.AnalyticsReport{}

	if err := s.DB.Model(&models.Complaint{}).Count(&report.TotalComplaints).Error; err != nil {
		return nil, err
	}

	var err error
	if report.ByStatus, err = s.groupBy("status"); err != nil {
		return nil, err
	}
	if report.ByPriority, err = s.groupBy("priority"); err != nil {
		return nil, err
	}
	if report.ByType, err = s.groupBy("type"); err != nil {
		return nil, err
	}

	var avgHours float64
	err = s.DB.Raw(`
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (resolved_at - submitted_at)) / 3600.0), 0)
		FROM complaints
		WHERE resolved_at IS NOT NULL
	`).Scan(&avgHours).Error
	if err != nil {
		return nil, err
	}
	report.AvgResolutionHours = math.Round(avgHours*10) / 10

	err = s.DB.Model(&models.Complaint{}).
		Where("due_date < ? AND status <> ?", now, models.StatusResolved).
		Count(&report.OverdueCount).Error
	if err != nil {
		return nil, err
	}

	since := now.AddDate(0, 0, -config.ActivityWindow)
	err = s.DB.Raw(`
		SELECT TO_CHAR(DATE(submitted_at), 'YYYY-MM-DD') AS date, COUNT(*) AS count
		FROM complaints
		WHERE submitted_at >= ?
		GROUP BY DATE(submitted_at)
		ORDER BY DATE(submitted_at)
	`, since).Scan(&report.Activity7Days).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Complaint{}).
		Select("title, rating").
		Where("rating IS NOT NULL").
		Order("rating DESC").
		Limit(config.TopRatedSize).
		Scan(&report.TopRated).Error
	if err != nil {
		return nil, err
	}

	return report, nil
}
