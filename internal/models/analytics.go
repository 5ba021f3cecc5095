package models

// DailyCount is one bucket of the trailing submission histogram.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// RatedComplaint is one row of the top-rated listing.
type RatedComplaint struct {
	Title  string `json:"title"`
	Rating int    `json:"rating"`
}

// AnalyticsReport is the on-demand aggregation over all complaints.
// Nothing here is cached; every report is computed from the store.
type AnalyticsReport struct {
	TotalComplaints    int64            `json:"total_complaints"`
	ByStatus           map[string]int64 `json:"by_status"`
	ByPriority         map[string]int64 `json:"by_priority"`
	ByType             map[string]int64 `json:"by_type"`
	AvgResolutionHours float64          `json:"avg_resolution_hours"`
	OverdueCount       int64            `json:"overdue_count"`
	Activity7Days      []DailyCount     `json:"activity_7_days"`
	TopRated           []RatedComplaint `json:"top_rated"`
}
