package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/otychat/server/internal/models"
)

const creatureColumns = `id, user_id, species_id, name, shiny, zone, evolved_from, caught_at`

func scanCreature(row rowScanner) (models.Creature, error) {
	var c models.Creature
	var from sql.NullInt64
	var caught int64
	if err := row.Scan(&c.ID, &c.UserID, &c.SpeciesID, &c.Name, &c.Shiny, &c.Zone, &from, &caught); err != nil {
		return c, err
	}
	if from.Valid {
		v := from.Int64
		c.EvolvedFrom = &v
	}
	c.CaughtAt = fromMillis(caught)
	return c, nil
}

// AddCreature appends a caught-creature record and returns its id.
func (db *DB) AddCreature(ctx context.Context, c models.Creature) (int64, error) {
	var from sql.NullInt64
	if c.EvolvedFrom != nil {
		from = sql.NullInt64{Int64: *c.EvolvedFrom, Valid: true}
	}
	var id int64
	err := db.queryRow(ctx,
		`INSERT INTO creatures (user_id, species_id, name, shiny, zone, evolved_from, caught_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`,
		c.UserID, c.SpeciesID, c.Name, boolInt(c.Shiny), c.Zone, from, toMillis(c.CaughtAt)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add creature: %w", err)
	}
	return id, nil
}

// ListCreatures returns the trainer's full catch history, newest first.
func (db *DB) ListCreatures(ctx context.Context, userID int64) ([]models.Creature, error) {
	rows, err := db.query(ctx,
		`SELECT `+creatureColumns+` FROM creatures WHERE user_id = ? ORDER BY caught_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list creatures: %w", err)
	}
	defer rows.Close()

	var out []models.Creature
	for rows.Next() {
		c, err := scanCreature(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan creature: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// LatestCreature returns the most recent record of speciesID owned by the trainer.
func (db *DB) LatestCreature(ctx context.Context, userID int64, speciesID int) (*models.Creature, error) {
	c, err := scanCreature(db.queryRow(ctx,
		`SELECT `+creatureColumns+` FROM creatures WHERE user_id = ? AND species_id = ?
		 ORDER BY caught_at DESC, id DESC LIMIT 1`, userID, speciesID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get creature: %w", err)
	}
	return &c, nil
}

// CreatureCounts returns total, unique and shiny catch counts.
func (db *DB) CreatureCounts(ctx context.Context, userID int64) (models.CreatureCounts, error) {
	var c models.CreatureCounts
	err := db.queryRow(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT species_id), COALESCE(SUM(shiny), 0) FROM creatures WHERE user_id = ?`,
		userID).Scan(&c.Total, &c.Unique, &c.Shiny)
	if err != nil {
		return c, fmt.Errorf("failed to count creatures: %w", err)
	}
	return c, nil
}
