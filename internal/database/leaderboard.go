package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/otychat/server/internal/models"
)

var leaderboardQueries = map[string]string{
	models.MetricXP: `SELECT name, title, level, xp FROM users
		WHERE xp > 0 ORDER BY xp DESC, id ASC LIMIT ?`,
	models.MetricCaught: `SELECT u.name, u.title, u.level, COUNT(c.id) AS v
		FROM users u JOIN creatures c ON c.user_id = u.id
		GROUP BY u.id, u.name, u.title, u.level
		ORDER BY v DESC, u.id ASC LIMIT ?`,
	models.MetricShiny: `SELECT u.name, u.title, u.level, COUNT(c.id) AS v
		FROM users u JOIN creatures c ON c.user_id = u.id
		WHERE c.shiny = 1
		GROUP BY u.id, u.name, u.title, u.level
		ORDER BY v DESC, u.id ASC LIMIT ?`,
	models.MetricReactions: `SELECT u.name, u.title, u.level, SUM(s.reactions) AS v
		FROM users u JOIN session_stats s ON s.user_id = u.id
		GROUP BY u.id, u.name, u.title, u.level
		HAVING SUM(s.reactions) > 0
		ORDER BY v DESC, u.id ASC LIMIT ?`,
}

// TopTrainers ranks trainers by metric.
func (db *DB) TopTrainers(ctx context.Context, metric string, limit int) ([]models.LeaderboardEntry, error) {
	q, ok := leaderboardQueries[metric]
	if !ok {
		return nil, fmt.Errorf("unknown leaderboard metric %q", metric)
	}
	rows, err := db.query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank by %s: %w", metric, err)
	}
	defer rows.Close()

	out := []models.LeaderboardEntry{}
	for rows.Next() {
		e := models.LeaderboardEntry{Rank: len(out) + 1}
		if err := rows.Scan(&e.Name, &e.Title, &e.Level, &e.Value); err != nil {
			return nil, fmt.Errorf("failed to scan %s ranking: %w", metric, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Leaderboards computes every ranking.
func (db *DB) Leaderboards(ctx context.Context, limit int) (models.Leaderboards, error) {
	var lb models.Leaderboards
	targets := map[string]*[]models.LeaderboardEntry{
		models.MetricXP:        &lb.XP,
		models.MetricCaught:    &lb.Caught,
		models.MetricShiny:     &lb.Shiny,
		models.MetricReactions: &lb.Reactions,
	}
	for _, metric := range models.LeaderboardMetrics {
		entries, err := db.TopTrainers(ctx, metric, limit)
		if err != nil {
			return lb, err
		}
		*targets[metric] = entries
	}
	return lb, nil
}

// AllTrainerTotals returns every trainer's ranked metrics, used to seed a
// cached leaderboard.
func (db *DB) AllTrainerTotals(ctx context.Context) ([]models.TrainerTotals, error) {
	rows, err := db.query(ctx, `SELECT u.name, u.xp,
		(SELECT COUNT(*) FROM creatures c WHERE c.user_id = u.id),
		(SELECT COUNT(*) FROM creatures c WHERE c.user_id = u.id AND c.shiny = 1),
		(SELECT COALESCE(SUM(s.reactions), 0) FROM session_stats s WHERE s.user_id = u.id)
		FROM users u ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load trainer totals: %w", err)
	}
	defer rows.Close()

	var out []models.TrainerTotals
	for rows.Next() {
		var t models.TrainerTotals
		if err := rows.Scan(&t.Name, &t.XP, &t.Caught, &t.Shiny, &t.Reactions); err != nil {
			return nil, fmt.Errorf("failed to scan trainer totals: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// TrainerProfiles returns title and level for the named trainers. Unknown
// names are left out.
func (db *DB) TrainerProfiles(ctx context.Context, names []string) (map[string]models.TrainerProfile, error) {
	out := make(map[string]models.TrainerProfile, len(names))
	if len(names) == 0 {
		return out, nil
	}
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	rows, err := db.query(ctx, `SELECT name, title, level FROM users WHERE name IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load trainer profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.TrainerProfile
		if err := rows.Scan(&p.Name, &p.Title, &p.Level); err != nil {
			return nil, fmt.Errorf("failed to scan trainer profile: %w", err)
		}
		out[p.Name] = p
	}
	return out, rows.Err()
}

// Rankings serves leaderboards straight from SQL. Counters live in the
// tables already, so Increment has nothing to do.
type Rankings struct {
	db *DB
}

// Rankings returns a SQL-backed leaderboard.
func (db *DB) Rankings() *Rankings {
	return &Rankings{db: db}
}

// Increment is a no-op; rankings are recomputed from the tables.
func (r *Rankings) Increment(ctx context.Context, name, metric string, delta int64) error {
	return nil
}

// Top returns every ranking.
func (r *Rankings) Top(ctx context.Context, limit int) (models.Leaderboards, error) {
	return r.db.Leaderboards(ctx, limit)
}
