package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hydrohomies/waterbot/internal/models"
)

// UpsertUser inserts or updates a user keyed by platform ID. Only the name
// is overwritten on conflict; goal columns keep their values.
func (s *SQLiteStore) UpsertUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name)
		VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`

	if _, err := s.db.ExecContext(ctx, query, user.ID, user.Name); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by platform ID.
// Returns (nil, nil) when the ID has never been registered.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, name, goal_oz, goal_time
		FROM users
		WHERE id = ?
	`

	user := &models.User{}
	var goalOz sql.NullFloat64
	var goalTime sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &goalOz, &goalTime)

	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if goalOz.Valid {
		user.GoalOz = &goalOz.Float64
	}
	if goalTime.Valid {
		user.GoalTime = &goalTime.String
	}
	return user, nil
}

// SetUserGoal writes the reserved goal columns for a user.
func (s *SQLiteStore) SetUserGoal(ctx context.Context, id string, goalOz float64, goalTime string) error {
	query := `UPDATE users SET goal_oz = ?, goal_time = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, goalOz, goalTime, id)
	if err != nil {
		return fmt.Errorf("failed to set user goal: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check goal update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}
