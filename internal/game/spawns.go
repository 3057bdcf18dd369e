package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/otychat/server/internal/achievements"
	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/models"
)

type spawnState int

const (
	spawnArmed spawnState = iota
	spawnContested
	spawnCaught
	spawnFled
	spawnSuperseded
)

func (s spawnState) String() string {
	switch s {
	case spawnArmed:
		return "armed"
	case spawnContested:
		return "contested"
	case spawnCaught:
		return "caught"
	case spawnFled:
		return "fled"
	case spawnSuperseded:
		return "superseded"
	}
	return "unknown"
}

// spawn is one encounter owned by one identity. A fled spawn stays in the
// map as a tombstone until its window passes so a late catch still hears
// that it fled.
type spawn struct {
	handle    string
	owner     int64
	speciesID int
	name      string
	rarity    catalog.Rarity
	shiny     bool
	zone      string
	createdAt time.Time
	expiresAt time.Time
	attempts  int
	state     spawnState
}

func (s *spawn) terminal() bool {
	return s.state == spawnCaught || s.state == spawnFled || s.state == spawnSuperseded
}

type spawnRequest struct {
	zone      string
	speciesID int
	shiny     bool
	target    string
}

// spawnFor creates a spawn for one identity, superseding any previous one.
func (c *Coordinator) spawnFor(ctx context.Context, userID int64, zone string, speciesID int, forceShiny bool) (*spawn, error) {
	c.evictSpawns(userID, ReasonSuperseded)

	u, err := c.db.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var rarity catalog.Rarity
	if speciesID == 0 {
		speciesID, rarity = catalog.RollSpecies(zone, c.rng)
	} else {
		rarity = catalog.RarityFor(speciesID, zone)
	}
	shiny := forceShiny || catalog.RollShiny(u.ShinyCharm, c.rng)

	now := c.now()
	s := &spawn{
		handle:    uuid.NewString(),
		owner:     userID,
		speciesID: speciesID,
		name:      catalog.SpeciesName(speciesID),
		rarity:    rarity,
		shiny:     shiny,
		zone:      zone,
		createdAt: now,
		expiresAt: now.Add(c.catchWindow),
	}
	c.spawns[s.handle] = s
	c.active[userID] = s.handle

	c.toIdentity(userID, SpawnAppeared{
		Handle:           s.handle,
		SpeciesID:        s.speciesID,
		Name:             s.name,
		Rarity:           s.rarity,
		Shiny:            s.shiny,
		Zone:             s.zone,
		ExpiresAt:        s.expiresAt,
		CatchWindow:      c.catchWindow.Milliseconds(),
		QuickCatchWindow: catalog.QuickCatchWindow.Milliseconds(),
	})
	return s, nil
}

// evictSpawns drops every spawn an identity owns, tombstones included.
// Catchable ones become superseded so their handles can never resolve.
func (c *Coordinator) evictSpawns(userID int64, reason string) {
	for handle, s := range c.spawns {
		if s.owner != userID {
			continue
		}
		if !s.terminal() {
			s.state = spawnSuperseded
			c.toIdentity(userID, SpawnCleared{Handle: handle, Reason: reason})
		}
		delete(c.spawns, handle)
	}
	delete(c.active, userID)
}

// sweepSpawns forgets tombstones and unclaimed spawns whose window is over.
func (c *Coordinator) sweepSpawns(now time.Time) {
	for handle, s := range c.spawns {
		if now.After(s.expiresAt) {
			delete(c.spawns, handle)
			if c.active[s.owner] == handle {
				delete(c.active, s.owner)
			}
		}
	}
}

func (c *Coordinator) clearSpawns() {
	c.spawns = make(map[string]*spawn)
	c.active = make(map[int64]string)
}

// spawnWave spawns for every online identity, or only req.target.
func (c *Coordinator) spawnWave(ctx context.Context, req spawnRequest) (int, error) {
	c.sweepSpawns(c.now())

	count := 0
	for _, m := range c.trainers() {
		if req.target != "" && m.name != req.target {
			continue
		}
		zone := req.zone
		if zone == "" {
			zone = m.zone
		}
		if _, err := c.spawnFor(ctx, m.userID, zone, req.speciesID, req.shiny); err != nil {
			return count, err
		}
		count++
	}
	if count > 0 {
		c.out.ToRole(RoleDisplay, SpawnWave{Count: count})
	}
	log.Printf("[Game] Spawn wave: %d spawns", count)
	return count, nil
}

func (c *Coordinator) fled(s *spawn, ball catalog.Ball) CatchResult {
	s.state = spawnFled
	if c.active[s.owner] == s.handle {
		delete(c.active, s.owner)
	}
	return CatchResult{
		Handle:    s.handle,
		SpeciesID: s.speciesID,
		Name:      s.name,
		Rarity:    s.rarity,
		Shiny:     s.shiny,
		Zone:      s.zone,
		Ball:      ball,
		Fled:      true,
		Reason:    ReasonFled,
		Message:   fmt.Sprintf("%s fled!", s.name),
	}
}

func (c *Coordinator) sendBalls(ctx context.Context, m *member) error {
	balls, err := c.db.GetBalls(ctx, m.userID)
	if err != nil {
		return err
	}
	c.toIdentity(m.userID, BallsUpdated{Balls: balls})
	return nil
}

// catch runs one attempt against a spawn: armed -> contested -> caught|fled.
func (c *Coordinator) catch(ctx context.Context, m *member, a CatchAttempt) error {
	s, ok := c.spawns[a.Handle]
	if !ok || s.owner != m.userID || s.state == spawnCaught || s.state == spawnSuperseded {
		return nil
	}
	ball := a.Ball
	if ball == "" {
		ball = catalog.BallPoke
	}
	if s.state == spawnFled {
		c.out.ToConn(m.conn, c.fled(s, ball))
		return nil
	}
	if !catalog.IsValidBall(ball) {
		c.reject(m, a, ReasonUnknownBall, fmt.Sprintf("Unknown ball %q", ball))
		return nil
	}

	now := c.now()
	if s.attempts >= catalog.MaxCatchAttempts || now.After(s.expiresAt) {
		c.out.ToConn(m.conn, c.fled(s, ball))
		log.Printf("[Game] %s's %s fled", m.name, s.name)
		return nil
	}

	if ball != catalog.BallPoke {
		used, err := c.db.UseBall(ctx, m.userID, ball)
		if err != nil {
			return err
		}
		if !used {
			c.out.ToConn(m.conn, CatchResult{
				Handle:            s.handle,
				SpeciesID:         s.speciesID,
				Name:              s.name,
				Rarity:            s.rarity,
				Shiny:             s.shiny,
				Zone:              s.zone,
				Ball:              ball,
				AttemptsRemaining: catalog.MaxCatchAttempts - s.attempts,
				Reason:            ReasonInsufficientBalls,
				Message:           fmt.Sprintf("No %s balls left!", ball),
			})
			return nil
		}
	}

	s.attempts++
	s.state = spawnContested
	elapsed := now.Sub(s.createdAt)
	chance := catalog.CatchChance(s.rarity, ball, elapsed)
	remaining := catalog.MaxCatchAttempts - s.attempts

	var err error
	switch {
	case c.rng.Float64() < chance:
		err = c.caught(ctx, m, s, ball, elapsed, chance)
	case remaining == 0:
		res := c.fled(s, ball)
		res.CatchChance = chance
		c.out.ToConn(m.conn, res)
		log.Printf("[Game] %s's %s fled", m.name, s.name)
	default:
		c.out.ToConn(m.conn, CatchResult{
			Handle:            s.handle,
			SpeciesID:         s.speciesID,
			Name:              s.name,
			Rarity:            s.rarity,
			Shiny:             s.shiny,
			Zone:              s.zone,
			Ball:              ball,
			CatchChance:       chance,
			AttemptsRemaining: remaining,
			Reason:            ReasonBrokeFree,
			Message:           fmt.Sprintf("It broke free! %d attempt(s) left.", remaining),
		})
	}
	if err != nil {
		return err
	}
	if ball != catalog.BallPoke {
		return c.sendBalls(ctx, m)
	}
	return nil
}

func (c *Coordinator) caught(ctx context.Context, m *member, s *spawn, ball catalog.Ball, elapsed time.Duration, chance float64) error {
	s.state = spawnCaught
	delete(c.spawns, s.handle)
	if c.active[s.owner] == s.handle {
		delete(c.active, s.owner)
	}

	quick := catalog.IsQuickCatch(elapsed)
	reward := catalog.RewardFor(s.rarity, s.shiny, quick)
	now := c.now()
	if _, err := c.db.AddCreature(ctx, models.Creature{
		UserID:    m.userID,
		SpeciesID: s.speciesID,
		Name:      s.name,
		Shiny:     s.shiny,
		Zone:      s.zone,
		CaughtAt:  now,
	}); err != nil {
		return err
	}
	if _, err := c.db.AddCoins(ctx, m.userID, reward.Coins); err != nil {
		return err
	}
	if _, err := c.db.UseEffect(ctx, m.userID, catalog.EffectLure, now); err != nil {
		return err
	}

	c.out.ToConn(m.conn, CatchResult{
		Handle:            s.handle,
		Success:           true,
		SpeciesID:         s.speciesID,
		Name:              s.name,
		Rarity:            s.rarity,
		Shiny:             s.shiny,
		Zone:              s.zone,
		Ball:              ball,
		QuickCatch:        quick,
		Reward:            &reward,
		CatchChance:       chance,
		AttemptsRemaining: catalog.MaxCatchAttempts - s.attempts,
	})
	if err := c.awardXP(ctx, m.userID, reward.XP); err != nil {
		return err
	}

	c.rank(ctx, m.name, models.MetricCaught, 1)
	if s.shiny {
		c.rank(ctx, m.name, models.MetricShiny, 1)
	}
	icon := "⚪"
	if s.shiny {
		icon = "✨"
	}
	c.publish(ctx, models.FeedItem{Kind: models.FeedCatch, Name: m.name, Detail: s.name, Shiny: s.shiny, Icon: icon})
	log.Printf("[Game] %s caught %s (shiny=%t, %s ball)", m.name, s.name, s.shiny, ball)

	flags := achievements.Flags{Shiny: s.shiny, Legendary: s.rarity == catalog.RarityLegendary}
	if err := c.checkAchievements(ctx, m.userID, flags); err != nil {
		return err
	}
	if err := c.refreshTrainer(ctx, m.userID); err != nil {
		return err
	}
	c.broadcastLeaderboards(ctx)
	return nil
}

// runFromSpawn abandons the active spawn and frees the slot.
func (c *Coordinator) runFromSpawn(m *member) {
	handle, ok := c.active[m.userID]
	if !ok {
		return
	}
	if s, ok := c.spawns[handle]; ok {
		s.state = spawnFled
		delete(c.spawns, handle)
	}
	delete(c.active, m.userID)
	c.toIdentity(m.userID, SpawnCleared{Handle: handle, Reason: ReasonRan})
}
