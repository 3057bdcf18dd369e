package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/otychat/server/internal/models"
)

// An effect stays active while neither its expiry has passed nor its uses
// have run out. Either condition alone retires it.
const effectActive = `(expires_at IS NULL OR expires_at > ?) AND (uses_remaining IS NULL OR uses_remaining > 0)`

// AddEffect starts an effect, replacing any existing effect of the same type.
// A zero duration or zero uses leaves that limit unset.
func (db *DB) AddEffect(ctx context.Context, userID int64, effectType string, duration time.Duration, uses int, at time.Time) error {
	var expires sql.NullInt64
	if duration > 0 {
		expires = sql.NullInt64{Int64: toMillis(at.Add(duration)), Valid: true}
	}
	var remaining sql.NullInt64
	if uses > 0 {
		remaining = sql.NullInt64{Int64: int64(uses), Valid: true}
	}

	_, err := db.exec(ctx,
		`INSERT INTO active_effects (user_id, effect_type, expires_at, uses_remaining, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, effect_type) DO UPDATE SET
		   expires_at = excluded.expires_at,
		   uses_remaining = excluded.uses_remaining,
		   created_at = excluded.created_at`,
		userID, effectType, expires, remaining, toMillis(at))
	if err != nil {
		return fmt.Errorf("failed to add effect %s: %w", effectType, err)
	}
	return nil
}

// ActiveEffects lists the trainer's effects still active at now.
func (db *DB) ActiveEffects(ctx context.Context, userID int64, now time.Time) ([]models.Effect, error) {
	rows, err := db.query(ctx,
		`SELECT effect_type, expires_at, uses_remaining FROM active_effects
		 WHERE user_id = ? AND `+effectActive+` ORDER BY effect_type`,
		userID, toMillis(now))
	if err != nil {
		return nil, fmt.Errorf("failed to list effects: %w", err)
	}
	defer rows.Close()

	var out []models.Effect
	for rows.Next() {
		var e models.Effect
		var expires, uses sql.NullInt64
		if err := rows.Scan(&e.Type, &expires, &uses); err != nil {
			return nil, fmt.Errorf("failed to scan effect: %w", err)
		}
		if expires.Valid {
			t := fromMillis(expires.Int64)
			e.ExpiresAt = &t
		}
		if uses.Valid {
			n := int(uses.Int64)
			e.UsesRemaining = &n
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// HasEffect reports whether an effect of effectType is active at now.
func (db *DB) HasEffect(ctx context.Context, userID int64, effectType string, now time.Time) (bool, error) {
	var n int
	err := db.queryRow(ctx,
		`SELECT COUNT(*) FROM active_effects WHERE user_id = ? AND effect_type = ? AND `+effectActive,
		userID, effectType, toMillis(now)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check effect %s: %w", effectType, err)
	}
	return n > 0, nil
}

// UseEffect consumes one use of a use-limited active effect and deletes it
// once exhausted. Reports false when there was nothing to consume.
func (db *DB) UseEffect(ctx context.Context, userID int64, effectType string, now time.Time) (bool, error) {
	res, err := db.exec(ctx,
		`UPDATE active_effects SET uses_remaining = uses_remaining - 1
		 WHERE user_id = ? AND effect_type = ? AND uses_remaining > 0
		   AND (expires_at IS NULL OR expires_at > ?)`,
		userID, effectType, toMillis(now))
	if err != nil {
		return false, fmt.Errorf("failed to use effect %s: %w", effectType, err)
	}
	used, err := affected(res)
	if err != nil || !used {
		return false, err
	}
	if _, err := db.exec(ctx,
		`DELETE FROM active_effects WHERE user_id = ? AND effect_type = ? AND uses_remaining <= 0`,
		userID, effectType); err != nil {
		return true, fmt.Errorf("failed to retire effect %s: %w", effectType, err)
	}
	return true, nil
}

// PurgeEffects deletes every effect that has expired or run out of uses.
func (db *DB) PurgeEffects(ctx context.Context, now time.Time) (int64, error) {
	res, err := db.exec(ctx,
		`DELETE FROM active_effects
		 WHERE (expires_at IS NOT NULL AND expires_at <= ?)
		    OR (uses_remaining IS NOT NULL AND uses_remaining <= 0)`,
		toMillis(now))
	if err != nil {
		return 0, fmt.Errorf("failed to purge effects: %w", err)
	}
	return res.RowsAffected()
}
