package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/otychat/server/internal/models"
)

// LastKudos returns when from last sent kudos to to, if ever.
func (db *DB) LastKudos(ctx context.Context, fromID, toID int64) (time.Time, bool, error) {
	var last sql.NullInt64
	err := db.queryRow(ctx,
		`SELECT MAX(created_at) FROM kudos WHERE from_user_id = ? AND to_user_id = ?`,
		fromID, toID).Scan(&last)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get last kudos: %w", err)
	}
	if !last.Valid {
		return time.Time{}, false, nil
	}
	return fromMillis(last.Int64), true, nil
}

// AddKudos records a kudos.
func (db *DB) AddKudos(ctx context.Context, fromID, toID int64, message string, at time.Time) error {
	if _, err := db.exec(ctx,
		`INSERT INTO kudos (from_user_id, to_user_id, message, created_at) VALUES (?, ?, ?, ?)`,
		fromID, toID, message, toMillis(at)); err != nil {
		return fmt.Errorf("failed to add kudos: %w", err)
	}
	return nil
}

// KudosCounts returns how many kudos the trainer sent and received.
func (db *DB) KudosCounts(ctx context.Context, userID int64) (models.KudosCounts, error) {
	var c models.KudosCounts
	err := db.queryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM kudos WHERE from_user_id = ?),
		   (SELECT COUNT(*) FROM kudos WHERE to_user_id = ?)`,
		userID, userID).Scan(&c.Sent, &c.Received)
	if err != nil {
		return c, fmt.Errorf("failed to count kudos: %w", err)
	}
	return c, nil
}
