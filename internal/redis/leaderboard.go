package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/otychat/server/internal/models"
)

// Leaderboard keys, one sorted set per metric keyed by trainer name.
const (
	leaderboardXPKey        = "leaderboard:xp"
	leaderboardCaughtKey    = "leaderboard:caught"
	leaderboardShinyKey     = "leaderboard:shiny"
	leaderboardReactionsKey = "leaderboard:reactions"
)

var leaderboardKeys = map[string]string{
	models.MetricXP:        leaderboardXPKey,
	models.MetricCaught:    leaderboardCaughtKey,
	models.MetricShiny:     leaderboardShinyKey,
	models.MetricReactions: leaderboardReactionsKey,
}

func leaderboardKey(metric string) (string, error) {
	key, ok := leaderboardKeys[metric]
	if !ok {
		return "", fmt.Errorf("unknown leaderboard metric %q", metric)
	}
	return key, nil
}

// Profiles looks up the title and level shown next to a ranked name.
type Profiles interface {
	TrainerProfiles(ctx context.Context, names []string) (map[string]models.TrainerProfile, error)
}

// Leaderboard keeps rankings in sorted sets and is updated incrementally.
// The sets only hold names and scores; titles and levels come from profiles
// when one is attached.
type Leaderboard struct {
	c        *Client
	profiles Profiles
}

// Leaderboard returns the sorted-set leaderboard backed by this client.
func (c *Client) Leaderboard() *Leaderboard {
	return &Leaderboard{c: c}
}

// WithProfiles returns a copy of l that decorates entries from p.
func (l *Leaderboard) WithProfiles(p Profiles) *Leaderboard {
	return &Leaderboard{c: l.c, profiles: p}
}

// decorate fills Title and Level in place with one lookup for every list.
func (l *Leaderboard) decorate(ctx context.Context, lists ...[]models.LeaderboardEntry) error {
	if l.profiles == nil {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, list := range lists {
		for _, e := range list {
			if !seen[e.Name] {
				seen[e.Name] = true
				names = append(names, e.Name)
			}
		}
	}
	if len(names) == 0 {
		return nil
	}

	profiles, err := l.profiles.TrainerProfiles(ctx, names)
	if err != nil {
		return err
	}
	for _, list := range lists {
		for i := range list {
			if p, ok := profiles[list[i].Name]; ok {
				list[i].Title = p.Title
				list[i].Level = p.Level
			}
		}
	}
	return nil
}

// Increment adds delta to the trainer's score for metric
func (l *Leaderboard) Increment(ctx context.Context, name, metric string, delta int64) error {
	key, err := leaderboardKey(metric)
	if err != nil {
		return err
	}
	if err := l.c.ZIncrBy(ctx, key, float64(delta), name).Err(); err != nil {
		return fmt.Errorf("failed to increment %s for %s: %w", metric, name, err)
	}
	return nil
}

// TopTrainers returns the top N trainers for metric, highest first
func (l *Leaderboard) TopTrainers(ctx context.Context, metric string, limit int) ([]models.LeaderboardEntry, error) {
	key, err := leaderboardKey(metric)
	if err != nil {
		return nil, err
	}
	players, err := l.c.ZRevRangeWithScores(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get top %s trainers: %w", metric, err)
	}

	out := []models.LeaderboardEntry{}
	for _, z := range players {
		if z.Score <= 0 {
			continue
		}
		name, _ := z.Member.(string)
		out = append(out, models.LeaderboardEntry{Rank: len(out) + 1, Name: name, Value: int64(z.Score)})
	}
	return out, nil
}

// Top returns every ranking
func (l *Leaderboard) Top(ctx context.Context, limit int) (models.Leaderboards, error) {
	var lb models.Leaderboards
	var err error
	if lb.XP, err = l.TopTrainers(ctx, models.MetricXP, limit); err != nil {
		return lb, err
	}
	if lb.Caught, err = l.TopTrainers(ctx, models.MetricCaught, limit); err != nil {
		return lb, err
	}
	if lb.Shiny, err = l.TopTrainers(ctx, models.MetricShiny, limit); err != nil {
		return lb, err
	}
	if lb.Reactions, err = l.TopTrainers(ctx, models.MetricReactions, limit); err != nil {
		return lb, err
	}
	if err := l.decorate(ctx, lb.XP, lb.Caught, lb.Shiny, lb.Reactions); err != nil {
		return lb, err
	}
	return lb, nil
}

// Rank returns the 1-based rank of a trainer for metric
func (l *Leaderboard) Rank(ctx context.Context, name, metric string) (int64, error) {
	key, err := leaderboardKey(metric)
	if err != nil {
		return 0, err
	}
	rank, err := l.c.ZRevRank(ctx, key, name).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get %s rank for %s: %w", metric, name, err)
	}
	return rank + 1, nil
}

// Rebuild replaces every ranking with totals loaded from the database
func (l *Leaderboard) Rebuild(ctx context.Context, totals []models.TrainerTotals) error {
	pipe := l.c.TxPipeline()
	for _, key := range leaderboardKeys {
		pipe.Del(ctx, key)
	}
	for _, t := range totals {
		pipe.ZAdd(ctx, leaderboardXPKey, redis.Z{Score: float64(t.XP), Member: t.Name})
		pipe.ZAdd(ctx, leaderboardCaughtKey, redis.Z{Score: float64(t.Caught), Member: t.Name})
		pipe.ZAdd(ctx, leaderboardShinyKey, redis.Z{Score: float64(t.Shiny), Member: t.Name})
		pipe.ZAdd(ctx, leaderboardReactionsKey, redis.Z{Score: float64(t.Reactions), Member: t.Name})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to rebuild leaderboards: %w", err)
	}
	return nil
}
