package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/database"
	"github.com/otychat/server/internal/models"
)

// ErrNotOnline is returned when an operation needs a connected trainer.
var ErrNotOnline = errors.New("trainer is not online")

func (c *Coordinator) dispatchAdmin(ctx context.Context, conn ConnID, a Action) error {
	switch a := a.(type) {
	case StartSession:
		return c.startSession(ctx, a.Title)
	case EndSession:
		return c.endSession(ctx)
	case ForceSpawn:
		if reason, msg := validateForceSpawn(a); reason != "" {
			c.out.ToConn(conn, Rejected{Action: a.ActionType(), Reason: reason, Message: msg})
			return nil
		}
		_, err := c.spawnWave(ctx, spawnRequest{zone: a.Zone, speciesID: a.SpeciesID, shiny: a.Shiny, target: a.Target})
		return err
	case ShowQuestion:
		q, err := c.db.GetQuestion(ctx, a.QuestionID)
		if errors.Is(err, database.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		c.out.ToRole(RoleDisplay, QuestionShown{Question: *q})
	case HideQuestion:
		c.out.ToRole(RoleDisplay, QuestionHidden{})
	case DismissQuestion:
		deleted, err := c.db.DeleteQuestion(ctx, a.QuestionID)
		if err != nil {
			return err
		}
		if deleted {
			c.out.ToAll(QuestionDismissed{QuestionID: a.QuestionID})
		}
	case DrawingPrompt:
		prompt := strings.TrimSpace(a.Prompt)
		if prompt == "" {
			return nil
		}
		c.out.ToAll(DrawingPromptEvent{Prompt: prompt})
	}
	return nil
}

func validateForceSpawn(a ForceSpawn) (string, string) {
	if a.Zone != "" && !catalog.IsValidZone(a.Zone) {
		return ReasonUnknownZone, fmt.Sprintf("Unknown zone %q", a.Zone)
	}
	if a.SpeciesID != 0 {
		if _, ok := catalog.GetSpecies(a.SpeciesID); !ok {
			return ReasonUnknownSpecies, fmt.Sprintf("Unknown species %d", a.SpeciesID)
		}
	}
	return "", ""
}

// startSession moves Idle -> Live and starts the spawn timer.
func (c *Coordinator) startSession(ctx context.Context, title string) error {
	if c.presentation != nil {
		return nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Presentation"
	}
	p, err := c.db.StartPresentation(ctx, title, c.now())
	if err != nil {
		return err
	}
	c.presentation = p
	for _, m := range c.trainers() {
		if err := c.db.EnsureStats(ctx, m.userID, p.ID); err != nil {
			return err
		}
	}
	c.armSpawnTimer()
	log.Printf("[Admin] Presentation %d %q started", p.ID, p.Title)
	c.out.ToAll(c.sessionState())
	return nil
}

// endSession moves Live -> Idle, stopping the timer and dropping spawns.
func (c *Coordinator) endSession(ctx context.Context) error {
	if c.presentation == nil {
		return nil
	}
	if err := c.db.EndPresentation(ctx, c.presentation.ID, c.now()); err != nil {
		return err
	}
	log.Printf("[Admin] Presentation %d ended", c.presentation.ID)
	c.presentation = nil
	c.stopSpawnTimer()
	c.clearSpawns()
	if _, err := c.db.PurgeEffects(ctx, c.now()); err != nil {
		log.Printf("[Game] Failed to purge effects: %v", err)
	}
	c.out.ToAll(c.sessionState())
	return nil
}

// SpawnFor forces a spawn for one connected trainer. A zero speciesID rolls
// from the trainer's zone.
func (c *Coordinator) SpawnFor(ctx context.Context, name string, speciesID int, shiny bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if reason, msg := validateForceSpawn(ForceSpawn{SpeciesID: speciesID}); reason != "" {
		return errors.New(msg)
	}
	m := c.memberByName(name)
	if m == nil {
		return ErrNotOnline
	}
	_, err := c.spawnFor(ctx, m.userID, m.zone, speciesID, shiny)
	return err
}

// Grant is an admin top-up of a trainer's holdings.
type Grant struct {
	Coins     int64                   `json:"coins,omitempty"`
	XP        int64                   `json:"xp,omitempty"`
	Balls     map[catalog.Ball]int64  `json:"balls,omitempty"`
	Stones    map[catalog.Stone]int64 `json:"stones,omitempty"`
	Creatures []int                   `json:"creatures,omitempty"`
}

// Validate checks every referenced ball, stone and species.
func (g Grant) Validate() error {
	if g.Coins < 0 || g.XP < 0 {
		return errors.New("grants must be positive")
	}
	for b, n := range g.Balls {
		if b == catalog.BallPoke || !catalog.IsValidBall(b) || n < 0 {
			return fmt.Errorf("invalid ball grant %q", b)
		}
	}
	for s, n := range g.Stones {
		if !catalog.IsValidStone(s) || n < 0 {
			return fmt.Errorf("invalid stone grant %q", s)
		}
	}
	for _, id := range g.Creatures {
		if _, ok := catalog.GetSpecies(id); !ok {
			return fmt.Errorf("unknown species %d", id)
		}
	}
	return nil
}

// Grant applies g to the named trainer and refreshes their snapshot if
// they are connected.
func (c *Coordinator) Grant(ctx context.Context, name string, g Grant) error {
	if err := g.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	userID, err := c.db.UserIDByName(ctx, name)
	if err != nil {
		return err
	}
	if g.Coins > 0 {
		if _, err := c.db.AddCoins(ctx, userID, g.Coins); err != nil {
			return err
		}
	}
	for b, n := range g.Balls {
		if _, err := c.db.AdjustBalls(ctx, userID, b, n); err != nil {
			return err
		}
	}
	for s, n := range g.Stones {
		if _, err := c.db.AdjustStone(ctx, userID, s, n); err != nil {
			return err
		}
	}
	for _, id := range g.Creatures {
		if _, err := c.db.AddCreature(ctx, models.Creature{
			UserID:    userID,
			SpeciesID: id,
			Name:      catalog.SpeciesName(id),
			Zone:      catalog.DefaultZone,
			CaughtAt:  c.now(),
		}); err != nil {
			return err
		}
		c.rank(ctx, name, models.MetricCaught, 1)
	}
	if err := c.creditXP(ctx, userID, g.XP); err != nil {
		return err
	}
	log.Printf("[Admin] Granted %s: %+v", name, g)
	return c.refreshTrainer(ctx, userID)
}
