package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hydrohomies/waterbot/internal/models"
)

// userRow mirrors the users table.
type userRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	GoalOz   *float64 `json:"goal_oz,omitempty"`
	GoalTime *string  `json:"goal_time,omitempty"`
}

// UpsertUser inserts or updates a user row keyed by id. The merge-duplicates
// preference makes the call idempotent: an existing row gets its name
// overwritten, goal columns are untouched.
func (c *Client) UpsertUser(ctx context.Context, user *models.User) error {
	row := userRow{ID: user.ID, Name: user.Name}
	_, err := c.do(ctx, http.MethodPost, "/rest/v1/users", []userRow{row}, map[string]string{
		"Prefer": "resolution=merge-duplicates",
	})
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", user.ID, err)
	}
	return nil
}

// GetUser looks a user up by platform ID. PostgREST answers a filtered
// select with a JSON array; an empty array means the ID was never
// registered and maps to (nil, nil).
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	path := "/rest/v1/users?select=*&id=eq." + url.QueryEscape(id)
	data, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	var rows []userRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil // User not found
	}

	row := rows[0]
	return &models.User{
		ID:       row.ID,
		Name:     row.Name,
		GoalOz:   row.GoalOz,
		GoalTime: row.GoalTime,
	}, nil
}

// SetUserGoal writes the reserved goal columns on an existing user row.
func (c *Client) SetUserGoal(ctx context.Context, id string, goalOz float64, goalTime string) error {
	path := "/rest/v1/users?id=eq." + url.QueryEscape(id)
	body := map[string]any{"goal_oz": goalOz, "goal_time": goalTime}
	if _, err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		return fmt.Errorf("failed to set goal for user %s: %w", id, err)
	}
	return nil
}
