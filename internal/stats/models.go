// Package stats tracks daily usage counters for the admin console.
package stats

import "time"

// DayKey is the calendar-day key format for stat rows.
const DayKey = "2006-01-02"

// DailyStat is one calendar day of usage, keyed by ISO date.
type DailyStat struct {
	Date             string `json:"date"`
	Visits           int    `json:"visits"`
	SermonsGenerated int    `json:"sermonsGenerated"`
}

// Today formats a time as a calendar-day key.
func Today(t time.Time) string {
	return t.Format(DayKey)
}
