package complaint

import (
	"strings"
	"time"

	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"
)

// ClassifyPriority derives the urgency of a complaint from keyword
// membership over the concatenated title and description,
// case-insensitive. The first matching keyword in iteration order wins;
// there is no scoring.
func ClassifyPriority(title, description string) string {
	text := strings.ToLower(title + " " + description)

	for _, keyword := range config.HighPriorityKeywords {
		if strings.Contains(text, keyword) {
			return models.PriorityHigh
		}
	}
	for _, keyword := range config.MediumPriorityKeywords {
		if strings.Contains(text, keyword) {
			return models.PriorityMedium
		}
	}
	return models.PriorityLow
}

// DueDate computes the resolution deadline from priority and submission
// time. Computed once at creation, stored immutably.
func DueDate(priority string, submitted time.Time) time.Time {
	switch priority {
	case models.PriorityHigh:
		return submitted.Add(config.HighPriorityDue)
	case models.PriorityMedium:
		return submitted.Add(config.MediumPriorityDue)
	default:
		return submitted.Add(config.LowPriorityDue)
	}
}
