package models

// DateFormat is the day-granularity layout used for Record.Date and all
// daily aggregation keys.
const DateFormat = "2006-01-02"

// Record is one logged intake event. Records are append-only: created once
// per log command, never updated or deleted. Points is fixed at creation
// from the scoring table and is never recomputed.
type Record struct {
	// ID is the row identifier. The remote store assigns it server-side;
	// the sqlite store generates a UUID.
	ID string

	// UserID references the owning User by platform ID.
	UserID string

	// Oz is the signed intake amount. Negative values record a deficit
	// against the neutral daily target.
	Oz float64

	// Points is the score derived from Oz at creation time.
	Points float64

	// Date is the calendar day of the entry in DateFormat. No time of day.
	Date string
}

// LeaderboardEntry is one row of a ranked points aggregate, as returned by
// the store's leaderboard queries. Rows arrive sorted descending by
// TotalPoints; tie order is whatever the backing query produced.
type LeaderboardEntry struct {
	UserKey     string
	TotalPoints float64
}
