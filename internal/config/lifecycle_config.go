package config

import "time"

const (
	// Points
	SubmitPoints  = 10
	ResolvePoints = 50

	// Due-date offsets by priority
	HighPriorityDue   = 24 * time.Hour
	MediumPriorityDue = 3 * 24 * time.Hour
	LowPriorityDue    = 7 * 24 * time.Hour

	// Attachments
	MaxAttachmentSize = 10 << 20 // 10 MiB

	// Fallback reference length when the store is unavailable
	FallbackReferenceLen = 8

	// Webhook
	WebhookTimeout = 2 * time.Second

	// Listings
	LeaderboardSize = 10
	TopRatedSize    = 5
	ActivityWindow  = 7 // days
)

// Keyword sets for priority classification. First match in iteration
// order wins; there is no scoring.
var (
	HighPriorityKeywords   = []string{"urgent", "emergency", "critical", "immediately", "asap", "severe"}
	MediumPriorityKeywords = []string{"important", "soon", "attention", "issue"}
)

// AllowedAttachmentExts is the attachment extension allow-list, lowercase.
var AllowedAttachmentExts = []string{".png", ".jpg", ".jpeg", ".gif", ".pdf", ".doc", ".docx"}
