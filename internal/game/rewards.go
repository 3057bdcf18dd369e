package game

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/otychat/server/internal/achievements"
	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/models"
)

// Experience awarded per action.
const (
	xpReaction       = 1
	xpQuestion       = 20
	xpDrawing        = 15
	xpUpvoteReceived = 5
	xpDrink          = 10
	xpDM             = 2
)

func nextLevelXP(level int) *int64 {
	next, ok := catalog.XPForNextLevel(level)
	if !ok {
		return nil
	}
	return &next
}

// trainerStats builds the full snapshot of one identity.
func (c *Coordinator) trainerStats(ctx context.Context, userID int64) (TrainerStats, error) {
	u, err := c.db.GetUserByID(ctx, userID)
	if err != nil {
		return TrainerStats{}, err
	}
	lifetime, err := c.db.LifetimeStats(ctx, userID)
	if err != nil {
		return TrainerStats{}, err
	}
	counts, err := c.db.CreatureCounts(ctx, userID)
	if err != nil {
		return TrainerStats{}, err
	}
	balls, err := c.db.GetBalls(ctx, userID)
	if err != nil {
		return TrainerStats{}, err
	}
	stones, err := c.db.GetStones(ctx, userID)
	if err != nil {
		return TrainerStats{}, err
	}
	effects, err := c.db.ActiveEffects(ctx, userID, c.now())
	if err != nil {
		return TrainerStats{}, err
	}
	unlocked, err := c.db.UnlockedAchievements(ctx, userID)
	if err != nil {
		return TrainerStats{}, err
	}
	kudos, err := c.db.KudosCounts(ctx, userID)
	if err != nil {
		return TrainerStats{}, err
	}

	ids := make([]string, 0, len(unlocked))
	for id := range unlocked {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	stats := TrainerStats{
		Name:          u.Name,
		Title:         u.Title,
		Coins:         u.Coins,
		Level:         u.Level,
		XP:            u.XP,
		NextLevelXP:   nextLevelXP(u.Level),
		CurrentZone:   u.CurrentZone,
		UnlockedZones: catalog.UnlockedZones(u.Level),
		ShinyCharm:    u.ShinyCharm,
		Avatar:        u.Avatar,
		Status:        u.Status,
		NameColor:     u.NameColor,
		Stats:         lifetime,
		Creatures:     counts,
		Balls:         balls,
		Stones:        stones,
		Effects:       effects,
		Achievements:  ids,
		Kudos:         kudos,
	}
	if c.presentation != nil {
		session, err := c.db.SessionStats(ctx, userID, c.presentation.ID)
		if err != nil {
			return TrainerStats{}, err
		}
		stats.SessionStats = &session
	}
	return stats, nil
}

func (c *Coordinator) refreshTrainer(ctx context.Context, userID int64) error {
	stats, err := c.trainerStats(ctx, userID)
	if err != nil {
		return err
	}
	c.toIdentity(userID, stats)
	return nil
}

// awardXP credits experience, doubled under a lucky egg, and handles the
// level-up that may follow. The identity need not be online.
func (c *Coordinator) awardXP(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return nil
	}
	lucky, err := c.db.HasEffect(ctx, userID, catalog.EffectLuckyEgg, c.now())
	if err != nil {
		return err
	}
	if lucky {
		amount *= 2
	}
	return c.creditXP(ctx, userID, amount)
}

// creditXP adds amount as is and handles the level-up that may follow.
func (c *Coordinator) creditXP(ctx context.Context, userID int64, amount int64) error {
	if amount <= 0 {
		return nil
	}
	u, err := c.db.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	total, err := c.db.AddXP(ctx, userID, amount)
	if err != nil {
		return err
	}
	c.rank(ctx, u.Name, models.MetricXP, amount)

	level := max(catalog.LevelForXP(total), u.Level)
	raised := false
	if level > u.Level {
		if raised, err = c.db.RaiseLevel(ctx, userID, level); err != nil {
			return err
		}
	}
	c.toIdentity(userID, XPGained{Amount: amount, XP: total, Level: level, NextLevelXP: nextLevelXP(level)})
	if !raised {
		return nil
	}

	c.forIdentity(userID, func(m *member) { m.level = level })
	ev := LevelUp{
		Name:     u.Name,
		OldLevel: u.Level,
		NewLevel: level,
		NewZones: catalog.NewlyUnlockedZones(u.Level, level),
	}
	c.toIdentity(userID, ev)
	c.out.ToRole(RoleDisplay, ev)
	c.publish(ctx, models.FeedItem{
		Kind:   models.FeedLevelUp,
		Name:   u.Name,
		Detail: fmt.Sprintf("reached level %d", level),
		Icon:   "⭐",
	})
	log.Printf("[Game] %s reached level %d", u.Name, level)
	c.broadcastLeaderboards(ctx)
	return nil
}

// checkAchievements unlocks whatever the current totals and flags now
// satisfy. Safe to call after every action; already-unlocked ids are skipped.
func (c *Coordinator) checkAchievements(ctx context.Context, userID int64, flags achievements.Flags) error {
	lifetime, err := c.db.LifetimeStats(ctx, userID)
	if err != nil {
		return err
	}
	counts, err := c.db.CreatureCounts(ctx, userID)
	if err != nil {
		return err
	}
	unlocked, err := c.db.UnlockedAchievements(ctx, userID)
	if err != nil {
		return err
	}

	stats := achievements.Stats{
		Reactions: lifetime.Reactions,
		Questions: lifetime.Questions,
		Drinks:    lifetime.Drinks,
		Caught:    counts.Total,
	}
	earned := c.achievements.Evaluate(stats, flags, unlocked)
	if len(earned) == 0 {
		return nil
	}

	u, err := c.db.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	for _, a := range earned {
		ok, err := c.db.UnlockAchievement(ctx, userID, a.ID, c.now())
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if a.Reward > 0 {
			if _, err := c.db.AddCoins(ctx, userID, a.Reward); err != nil {
				return err
			}
		}
		if a.Title != "" {
			if err := c.db.SetTitle(ctx, userID, a.Title); err != nil {
				return err
			}
			c.forIdentity(userID, func(m *member) { m.title = a.Title })
		}

		ev := AchievementUnlocked{
			Name:        u.Name,
			ID:          a.ID,
			Achievement: a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Reward:      a.Reward,
			Title:       a.Title,
		}
		c.toIdentity(userID, ev)
		c.out.ToRole(RoleDisplay, ev)
		c.publish(ctx, models.FeedItem{Kind: models.FeedAchievement, Name: u.Name, Detail: a.Name, Icon: a.Icon})
		log.Printf("[Game] %s unlocked %s", u.Name, a.ID)
	}
	return nil
}

// publish stores a feed item and pushes it to everyone.
func (c *Coordinator) publish(ctx context.Context, item models.FeedItem) {
	item.At = c.now()
	if err := c.feed.Push(ctx, item); err != nil {
		log.Printf("[Game] Failed to store feed item: %v", err)
	}
	c.out.ToAll(FeedEvent{FeedItem: item})
}

func (c *Coordinator) rank(ctx context.Context, name, metric string, delta int64) {
	if err := c.board.Increment(ctx, name, metric, delta); err != nil {
		log.Printf("[Game] Failed to update %s ranking for %s: %v", metric, name, err)
	}
}
