package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hydrohomies/waterbot/internal/models"
)

// recordRow mirrors the records table. The id column is assigned
// server-side and never sent on insert.
type recordRow struct {
	UserID string  `json:"user_id"`
	Oz     float64 `json:"oz"`
	Points float64 `json:"points"`
	Date   string  `json:"date"`
}

// InsertRecord appends one intake record. There is no uniqueness constraint:
// duplicate submissions for the same user and day create separate rows.
func (c *Client) InsertRecord(ctx context.Context, record *models.Record) error {
	row := recordRow{
		UserID: record.UserID,
		Oz:     record.Oz,
		Points: record.Points,
		Date:   record.Date,
	}
	if _, err := c.do(ctx, http.MethodPost, "/rest/v1/records", []recordRow{row}, nil); err != nil {
		return fmt.Errorf("failed to insert record for user %s: %w", record.UserID, err)
	}
	return nil
}

// DailyPoints sums the points of the user's records on one day. The select
// pulls only the points column and the sum happens client-side, matching
// the remote schema which has no per-user daily aggregate.
func (c *Client) DailyPoints(ctx context.Context, userID, date string) (float64, error) {
	path := "/rest/v1/records?select=points&user_id=eq." + url.QueryEscape(userID) +
		"&date=eq." + url.QueryEscape(date)
	data, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get daily points for user %s: %w", userID, err)
	}

	var rows []struct {
		Points float64 `json:"points"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode daily points for user %s: %w", userID, err)
	}

	var total float64
	for _, row := range rows {
		total += row.Points
	}
	return total, nil
}
