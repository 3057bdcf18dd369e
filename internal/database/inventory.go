package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/models"
)

var ballColumns = map[catalog.Ball]string{
	catalog.BallGreat:  "great",
	catalog.BallUltra:  "ultra",
	catalog.BallMaster: "master",
}

func ballColumn(ball catalog.Ball) (string, error) {
	col, ok := ballColumns[ball]
	if !ok {
		return "", fmt.Errorf("ball %q is not stored", ball)
	}
	return col, nil
}

// Stone columns share the stone id.
func stoneColumn(stone catalog.Stone) (string, error) {
	if !catalog.IsValidStone(stone) {
		return "", fmt.Errorf("unknown stone %q", stone)
	}
	return string(stone), nil
}

// GetBalls returns the stored ball counts.
func (db *DB) GetBalls(ctx context.Context, userID int64) (models.Balls, error) {
	var b models.Balls
	err := db.queryRow(ctx, `SELECT great, ultra, master FROM ball_inventory WHERE user_id = ?`, userID).
		Scan(&b.Great, &b.Ultra, &b.Master)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Balls{}, nil
	}
	if err != nil {
		return models.Balls{}, fmt.Errorf("failed to get balls: %w", err)
	}
	return b, nil
}

// AdjustBalls applies a signed delta clamped at zero and returns the new count.
func (db *DB) AdjustBalls(ctx context.Context, userID int64, ball catalog.Ball, delta int64) (int64, error) {
	col, err := ballColumn(ball)
	if err != nil {
		return 0, err
	}
	return db.adjustCounter(ctx, "ball_inventory", col, userID, delta)
}

// UseBall takes one ball if the trainer holds any.
func (db *DB) UseBall(ctx context.Context, userID int64, ball catalog.Ball) (bool, error) {
	col, err := ballColumn(ball)
	if err != nil {
		return false, err
	}
	return db.takeOne(ctx, "ball_inventory", col, userID)
}

// GetStones returns every stone count keyed by stone.
func (db *DB) GetStones(ctx context.Context, userID int64) (map[catalog.Stone]int64, error) {
	counts := make([]int64, len(catalog.Stones))
	dest := make([]any, len(counts))
	cols := ""
	for i, s := range catalog.Stones {
		dest[i] = &counts[i]
		if i > 0 {
			cols += ", "
		}
		cols += string(s)
	}

	out := make(map[catalog.Stone]int64, len(catalog.Stones))
	err := db.queryRow(ctx, `SELECT `+cols+` FROM stone_inventory WHERE user_id = ?`, userID).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		for _, s := range catalog.Stones {
			out[s] = 0
		}
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stones: %w", err)
	}
	for i, s := range catalog.Stones {
		out[s] = counts[i]
	}
	return out, nil
}

// AdjustStone applies a signed delta clamped at zero and returns the new count.
func (db *DB) AdjustStone(ctx context.Context, userID int64, stone catalog.Stone, delta int64) (int64, error) {
	col, err := stoneColumn(stone)
	if err != nil {
		return 0, err
	}
	return db.adjustCounter(ctx, "stone_inventory", col, userID, delta)
}

// UseStone takes one stone if the trainer holds any.
func (db *DB) UseStone(ctx context.Context, userID int64, stone catalog.Stone) (bool, error) {
	col, err := stoneColumn(stone)
	if err != nil {
		return false, err
	}
	return db.takeOne(ctx, "stone_inventory", col, userID)
}

// table and col come from the whitelists above, never from callers.
func (db *DB) adjustCounter(ctx context.Context, table, col string, userID, delta int64) (int64, error) {
	if _, err := db.exec(ctx, `INSERT INTO `+table+` (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
		return 0, fmt.Errorf("failed to ensure %s row: %w", table, err)
	}
	var n int64
	err := db.queryRow(ctx,
		`UPDATE `+table+` SET `+col+` = CASE WHEN `+col+` + ? < 0 THEN 0 ELSE `+col+` + ? END
		 WHERE user_id = ? RETURNING `+col,
		delta, delta, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust %s.%s: %w", table, col, err)
	}
	return n, nil
}

func (db *DB) takeOne(ctx context.Context, table, col string, userID int64) (bool, error) {
	res, err := db.exec(ctx, `UPDATE `+table+` SET `+col+` = `+col+` - 1 WHERE user_id = ? AND `+col+` > 0`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to use %s.%s: %w", table, col, err)
	}
	return affected(res)
}
