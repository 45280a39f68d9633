package models

import "time"

// BookingsSummaryRequest bounds the report period. CourtID narrows the
// report to one court when set.
type BookingsSummaryRequest struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	CourtID *int64    `json:"courtId,omitempty"`
}

// DaySummary is one day's booking activity.
type DaySummary struct {
	Date      string  `json:"date"` // "2006-01-02"
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"` // Sum of fees on paid bookings
}

// BookingsSummaryResponse is the per-day bookings report.
type BookingsSummaryResponse struct {
	From         time.Time    `json:"from"`
	To           time.Time    `json:"to"`
	Days         []DaySummary `json:"days"`
	TotalCount   int          `json:"totalCount"`
	TotalRevenue float64      `json:"totalRevenue"`
}
