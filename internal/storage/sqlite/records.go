package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/hydrohomies/waterbot/internal/models"
)

// InsertRecord appends one intake record, generating a row ID if unset.
// No dedup: same-day submissions from one user create separate rows.
func (s *SQLiteStore) InsertRecord(ctx context.Context, record *models.Record) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO records (id, user_id, oz, points, date) VALUES (?, ?, ?, ?, ?)",
		record.ID, record.UserID, record.Oz, record.Points, record.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// DailyPoints sums the points of one user's records on one day.
// Returns 0 when there are no matching records.
func (s *SQLiteStore) DailyPoints(ctx context.Context, userID, date string) (float64, error) {
	var total float64
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(points), 0) FROM records WHERE user_id = ? AND date = ?",
		userID, date,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum daily points: %w", err)
	}
	return total, nil
}

// DailyLeaderboard aggregates per-user totals for one day, descending.
func (s *SQLiteStore) DailyLeaderboard(ctx context.Context, date string) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, SUM(points) AS total_points
		 FROM records
		 WHERE date = ?
		 GROUP BY user_id
		 ORDER BY total_points DESC`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily leaderboard: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// AllTimeLeaderboard aggregates per-user totals over all history, descending.
func (s *SQLiteStore) AllTimeLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, SUM(points) AS total_points
		 FROM records
		 GROUP BY user_id
		 ORDER BY total_points DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query all-time leaderboard: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.UserKey, &entry.TotalPoints); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
	}
	return entries, nil
}
