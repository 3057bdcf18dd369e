package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/otychat/server/internal/models"
)

// Stat names the per-session counter columns.
type Stat string

const (
	StatReactions Stat = "reactions"
	StatQuestions Stat = "questions"
	StatDrinks    Stat = "drinks"
)

func statColumn(s Stat) (string, error) {
	switch s {
	case StatReactions, StatQuestions, StatDrinks:
		return string(s), nil
	}
	return "", fmt.Errorf("unknown stat %q", s)
}

// StartPresentation opens a new live session.
func (db *DB) StartPresentation(ctx context.Context, title string, at time.Time) (*models.Presentation, error) {
	var id int64
	err := db.queryRow(ctx,
		`INSERT INTO presentations (title, started_at) VALUES (?, ?) RETURNING id`,
		title, toMillis(at)).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to start presentation: %w", err)
	}
	return &models.Presentation{ID: id, Title: title, StartedAt: fromMillis(toMillis(at))}, nil
}

// EndPresentation closes a live session.
func (db *DB) EndPresentation(ctx context.Context, id int64, at time.Time) error {
	if _, err := db.exec(ctx,
		`UPDATE presentations SET ended_at = ? WHERE id = ? AND ended_at IS NULL`, toMillis(at), id); err != nil {
		return fmt.Errorf("failed to end presentation %d: %w", id, err)
	}
	return nil
}

// CurrentPresentation returns the newest unfinished session.
func (db *DB) CurrentPresentation(ctx context.Context) (*models.Presentation, error) {
	var p models.Presentation
	var started int64
	err := db.queryRow(ctx,
		`SELECT id, title, started_at FROM presentations WHERE ended_at IS NULL
		 ORDER BY started_at DESC, id DESC LIMIT 1`).Scan(&p.ID, &p.Title, &started)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current presentation: %w", err)
	}
	p.StartedAt = fromMillis(started)
	return &p, nil
}

// IncrementStat bumps one counter of the (user, presentation) stat row,
// creating the row on first use.
func (db *DB) IncrementStat(ctx context.Context, userID, presentationID int64, stat Stat, delta int64) error {
	col, err := statColumn(stat)
	if err != nil {
		return err
	}
	_, err = db.exec(ctx,
		`INSERT INTO session_stats (user_id, presentation_id, `+col+`) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, presentation_id) DO UPDATE SET `+col+` = session_stats.`+col+` + excluded.`+col,
		userID, presentationID, delta)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", col, err)
	}
	return nil
}

// SessionStats returns the counters for one presentation; a missing row is all zeros.
func (db *DB) SessionStats(ctx context.Context, userID, presentationID int64) (models.StatCounts, error) {
	var s models.StatCounts
	err := db.queryRow(ctx,
		`SELECT reactions, questions, drinks FROM session_stats WHERE user_id = ? AND presentation_id = ?`,
		userID, presentationID).Scan(&s.Reactions, &s.Questions, &s.Drinks)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StatCounts{}, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to get session stats: %w", err)
	}
	return s, nil
}

// LifetimeStats sums the counters over every presentation.
func (db *DB) LifetimeStats(ctx context.Context, userID int64) (models.StatCounts, error) {
	var s models.StatCounts
	err := db.queryRow(ctx,
		`SELECT COALESCE(SUM(reactions), 0), COALESCE(SUM(questions), 0), COALESCE(SUM(drinks), 0)
		 FROM session_stats WHERE user_id = ?`, userID).Scan(&s.Reactions, &s.Questions, &s.Drinks)
	if err != nil {
		return s, fmt.Errorf("failed to get lifetime stats: %w", err)
	}
	return s, nil
}

// EnsureStats creates the (user, presentation) stat row if missing.
func (db *DB) EnsureStats(ctx context.Context, userID, presentationID int64) error {
	if _, err := db.exec(ctx,
		`INSERT INTO session_stats (user_id, presentation_id) VALUES (?, ?)
		 ON CONFLICT (user_id, presentation_id) DO NOTHING`, userID, presentationID); err != nil {
		return fmt.Errorf("failed to ensure session stats: %w", err)
	}
	return nil
}

// TotalDrinks sums drinks logged by everyone during a presentation.
func (db *DB) TotalDrinks(ctx context.Context, presentationID int64) (int64, error) {
	var n int64
	err := db.queryRow(ctx,
		`SELECT COALESCE(SUM(drinks), 0) FROM session_stats WHERE presentation_id = ?`, presentationID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to total drinks: %w", err)
	}
	return n, nil
}
