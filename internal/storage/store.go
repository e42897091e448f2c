// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/hydrohomies/waterbot/internal/models"
)

// Store defines the persistence operations the bot needs. The production
// implementation talks to the hosted Supabase database; the sqlite
// implementation backs tests and local development.
//
// Every operation is a single round trip. There is no transaction spanning
// calls: ensure-registered followed by a query is two independent trips.
type Store interface {
	// UpsertUser inserts or updates a user keyed by its platform ID.
	// Idempotent; the name (and only the name) is overwritten on conflict.
	UpsertUser(ctx context.Context, user *models.User) error

	// GetUser looks up a user by platform ID.
	// Returns (nil, nil) when the ID has never been registered. Callers
	// must branch on the nil result, never on any other property.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// InsertRecord appends one intake record. No dedup: repeated
	// submissions for the same user and day create separate rows.
	InsertRecord(ctx context.Context, record *models.Record) error

	// DailyPoints sums the points of the user's records on the given day
	// (models.DateFormat). Returns 0 when there are no matching records.
	DailyPoints(ctx context.Context, userID, date string) (float64, error)

	// DailyLeaderboard returns per-user point totals for the given day,
	// sorted descending by total. Tie order is unspecified.
	DailyLeaderboard(ctx context.Context, date string) ([]models.LeaderboardEntry, error)

	// AllTimeLeaderboard returns per-user point totals over all history,
	// sorted descending by total. Tie order is unspecified.
	AllTimeLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)

	// SetUserGoal writes the reserved goal columns for a user. No command
	// surfaces goals yet; the operation exists because the schema does.
	SetUserGoal(ctx context.Context, id string, goalOz float64, goalTime string) error

	// Close releases any resources held by the store.
	Close() error
}
