package supabase

import (
	"context"
	"fmt"

	"github.com/hydrohomies/waterbot/internal/models"
)

// leaderboardRow mirrors the result shape of the daily_leaderboard and
// alltime_leaderboard SQL functions.
type leaderboardRow struct {
	UserID      string  `json:"user_id"`
	TotalPoints float64 `json:"total_points"`
}

// DailyLeaderboard fetches the server-side daily aggregate. The SQL
// function sorts descending by total; tie order is whatever Postgres
// produced and is not normalized here.
func (c *Client) DailyLeaderboard(ctx context.Context, date string) ([]models.LeaderboardEntry, error) {
	var rows []leaderboardRow
	if err := c.rpc(ctx, "daily_leaderboard", map[string]string{"today": date}, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch daily leaderboard: %w", err)
	}
	return toEntries(rows), nil
}

// AllTimeLeaderboard fetches the server-side all-history aggregate.
func (c *Client) AllTimeLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var rows []leaderboardRow
	if err := c.rpc(ctx, "alltime_leaderboard", struct{}{}, &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch all-time leaderboard: %w", err)
	}
	return toEntries(rows), nil
}

func toEntries(rows []leaderboardRow) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = models.LeaderboardEntry{
			UserKey:     row.UserID,
			TotalPoints: row.TotalPoints,
		}
	}
	return entries
}
