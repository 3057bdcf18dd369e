package database

import (
	"context"
	"fmt"
	"time"
)

// UnlockAchievement records an unlock if absent. Only the first call for a
// (user, achievement) pair reports true.
func (db *DB) UnlockAchievement(ctx context.Context, userID int64, achievementID string, at time.Time) (bool, error) {
	res, err := db.exec(ctx,
		`INSERT INTO achievements (user_id, achievement_id, unlocked_at) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, achievement_id) DO NOTHING`,
		userID, achievementID, toMillis(at))
	if err != nil {
		return false, fmt.Errorf("failed to unlock achievement %s: %w", achievementID, err)
	}
	return affected(res)
}

// HasAchievement reports whether the unlock exists.
func (db *DB) HasAchievement(ctx context.Context, userID int64, achievementID string) (bool, error) {
	var n int
	err := db.queryRow(ctx,
		`SELECT COUNT(*) FROM achievements WHERE user_id = ? AND achievement_id = ?`,
		userID, achievementID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check achievement %s: %w", achievementID, err)
	}
	return n > 0, nil
}

// UnlockedAchievements returns the set of achievement ids the trainer holds.
func (db *DB) UnlockedAchievements(ctx context.Context, userID int64) (map[string]bool, error) {
	rows, err := db.query(ctx, `SELECT achievement_id FROM achievements WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		out[id] = true
	}
	return out, rows.Err()
}
