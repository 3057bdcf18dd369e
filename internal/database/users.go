package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/models"
)

const userColumns = `id, name, coins, title, level, xp, current_zone, shiny_charm,
	avatar, status, name_color, created_at, last_seen_at`

// ProfileFields lists the columns update-profile may touch.
var ProfileFields = []string{"avatar", "status", "name_color"}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var created, seen int64
	err := row.Scan(&u.ID, &u.Name, &u.Coins, &u.Title, &u.Level, &u.XP, &u.CurrentZone,
		&u.ShinyCharm, &u.Avatar, &u.Status, &u.NameColor, &created, &seen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = fromMillis(created)
	u.LastSeenAt = fromMillis(seen)
	return &u, nil
}

// GetUserByID fetches a trainer by id.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(db.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return u, err
}

// GetUserByName fetches a trainer by display name.
func (db *DB) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	u, err := scanUser(db.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE name = ?`, name))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to get user %q: %w", name, err)
	}
	if u != nil {
		db.names.Add(u.Name, u.ID)
	}
	return u, err
}

// UserIDByName resolves a display name to an id, served from the name cache
// when possible. Names never change, so cached ids never go stale.
func (db *DB) UserIDByName(ctx context.Context, name string) (int64, error) {
	if v, ok := db.names.Get(name); ok {
		return v.(int64), nil
	}
	var id int64
	err := db.queryRow(ctx, `SELECT id FROM users WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve user %q: %w", name, err)
	}
	db.names.Add(name, id)
	return id, nil
}

// GetOrCreateUser returns the trainer with name, creating it with defaults
// and empty inventories on first sight.
func (db *DB) GetOrCreateUser(ctx context.Context, name string, at time.Time) (*models.User, bool, error) {
	now := toMillis(at)
	res, err := db.exec(ctx,
		`INSERT INTO users (name, current_zone, created_at, last_seen_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (name) DO NOTHING`,
		name, catalog.DefaultZone, now, now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user %q: %w", name, err)
	}
	created, err := affected(res)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user %q: %w", name, err)
	}

	u, err := db.GetUserByName(ctx, name)
	if err != nil {
		return nil, false, err
	}

	if _, err := db.exec(ctx, `INSERT INTO ball_inventory (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`, u.ID); err != nil {
		return nil, false, fmt.Errorf("failed to create ball inventory: %w", err)
	}
	if _, err := db.exec(ctx, `INSERT INTO stone_inventory (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`, u.ID); err != nil {
		return nil, false, fmt.Errorf("failed to create stone inventory: %w", err)
	}

	if !created {
		if _, err := db.exec(ctx, `UPDATE users SET last_seen_at = ? WHERE id = ?`, now, u.ID); err != nil {
			return nil, false, fmt.Errorf("failed to touch user %q: %w", name, err)
		}
		u.LastSeenAt = fromMillis(now)
	}
	return u, created, nil
}

// ListUserNames returns every trainer name.
func (db *DB) ListUserNames(ctx context.Context) ([]string, error) {
	rows, err := db.query(ctx, `SELECT name FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan user name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// AddCoins applies a signed delta, clamping the balance at zero, and
// returns the new balance.
func (db *DB) AddCoins(ctx context.Context, userID, delta int64) (int64, error) {
	var coins int64
	err := db.queryRow(ctx,
		`UPDATE users SET coins = CASE WHEN coins + ? < 0 THEN 0 ELSE coins + ? END
		 WHERE id = ? RETURNING coins`,
		delta, delta, userID).Scan(&coins)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add coins: %w", err)
	}
	return coins, nil
}

// SpendCoins debits amount only if the balance covers it.
func (db *DB) SpendCoins(ctx context.Context, userID, amount int64) (bool, error) {
	if amount < 0 {
		return false, fmt.Errorf("negative spend %d", amount)
	}
	res, err := db.exec(ctx, `UPDATE users SET coins = coins - ? WHERE id = ? AND coins >= ?`, amount, userID, amount)
	if err != nil {
		return false, fmt.Errorf("failed to spend coins: %w", err)
	}
	return affected(res)
}

// SetTitle overwrites the display title.
func (db *DB) SetTitle(ctx context.Context, userID int64, title string) error {
	if _, err := db.exec(ctx, `UPDATE users SET title = ? WHERE id = ?`, title, userID); err != nil {
		return fmt.Errorf("failed to set title: %w", err)
	}
	return nil
}

// UpdateProfile writes the allow-listed profile fields present in fields and
// ignores everything else.
func (db *DB) UpdateProfile(ctx context.Context, userID int64, fields map[string]string) error {
	for _, col := range ProfileFields {
		v, ok := fields[col]
		if !ok {
			continue
		}
		if _, err := db.exec(ctx, `UPDATE users SET `+col+` = ? WHERE id = ?`, v, userID); err != nil {
			return fmt.Errorf("failed to update %s: %w", col, err)
		}
	}
	return nil
}

// AddXP adds a non-negative amount and returns the new total.
func (db *DB) AddXP(ctx context.Context, userID, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("negative xp %d", amount)
	}
	var xp int64
	err := db.queryRow(ctx, `UPDATE users SET xp = xp + ? WHERE id = ? RETURNING xp`, amount, userID).Scan(&xp)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add xp: %w", err)
	}
	return xp, nil
}

// RaiseLevel stores level if it is higher than the current one.
func (db *DB) RaiseLevel(ctx context.Context, userID int64, level int) (bool, error) {
	res, err := db.exec(ctx, `UPDATE users SET level = ? WHERE id = ? AND level < ?`, level, userID, level)
	if err != nil {
		return false, fmt.Errorf("failed to raise level: %w", err)
	}
	return affected(res)
}

// SetZone stores the trainer's current zone.
func (db *DB) SetZone(ctx context.Context, userID int64, zone string) error {
	if _, err := db.exec(ctx, `UPDATE users SET current_zone = ? WHERE id = ?`, zone, userID); err != nil {
		return fmt.Errorf("failed to set zone: %w", err)
	}
	return nil
}

// GrantShinyCharm sets the permanent upgrade and reports whether it was new.
func (db *DB) GrantShinyCharm(ctx context.Context, userID int64) (bool, error) {
	res, err := db.exec(ctx, `UPDATE users SET shiny_charm = 1 WHERE id = ? AND shiny_charm = 0`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to grant shiny charm: %w", err)
	}
	return affected(res)
}
