package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/otychat/server/internal/achievements"
	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/database"
	"github.com/otychat/server/internal/models"
)

// buy debits the price and applies the item. The debit is a conditional
// update, so the balance can never go below zero.
func (c *Coordinator) buy(ctx context.Context, m *member, a BuyItem) error {
	item, ok := c.shop.Item(a.ItemID)
	if !ok {
		c.out.ToConn(m.conn, ShopResult{ItemID: a.ItemID, Reason: ReasonUnknownItem, Message: "Unknown item"})
		return nil
	}

	u, err := c.db.GetUserByID(ctx, m.userID)
	if err != nil {
		return err
	}
	if item.Category == catalog.CategoryPermanent && item.Upgrade == catalog.UpgradeShinyCharm && u.ShinyCharm {
		c.out.ToConn(m.conn, ShopResult{ItemID: item.ID, ItemName: item.Name, NewBalance: u.Coins,
			Reason: ReasonAlreadyOwned, Message: "You already own this"})
		return nil
	}

	spent, err := c.db.SpendCoins(ctx, m.userID, item.Price)
	if err != nil {
		return err
	}
	if !spent {
		c.out.ToConn(m.conn, ShopResult{ItemID: item.ID, ItemName: item.Name, NewBalance: u.Coins,
			Reason: ReasonInsufficientCoins, Message: "Not enough coins"})
		return nil
	}
	if err := c.applyItem(ctx, m.userID, item); err != nil {
		return err
	}

	u, err = c.db.GetUserByID(ctx, m.userID)
	if err != nil {
		return err
	}
	log.Printf("[Game] %s bought %s for %d coins", m.name, item.ID, item.Price)
	c.out.ToConn(m.conn, ShopResult{OK: true, ItemID: item.ID, ItemName: item.Name, NewBalance: u.Coins})
	if err := c.checkAchievements(ctx, m.userID, achievements.Flags{ShopPurchase: true}); err != nil {
		return err
	}
	return c.refreshTrainer(ctx, m.userID)
}

func (c *Coordinator) applyItem(ctx context.Context, userID int64, item catalog.ShopItem) error {
	switch item.Category {
	case catalog.CategoryBall:
		_, err := c.db.AdjustBalls(ctx, userID, item.Ball, item.Quantity)
		return err
	case catalog.CategoryStone:
		_, err := c.db.AdjustStone(ctx, userID, item.Stone, 1)
		return err
	case catalog.CategoryEffect:
		return c.db.AddEffect(ctx, userID, item.Effect, item.Duration(), item.Uses, c.now())
	case catalog.CategoryPermanent:
		if item.Upgrade == catalog.UpgradeShinyCharm {
			_, err := c.db.GrantShinyCharm(ctx, userID)
			return err
		}
	}
	return fmt.Errorf("cannot apply item %q", item.ID)
}

// evolve appends the evolved creature; the pre-evolution record stays.
func (c *Coordinator) evolve(ctx context.Context, m *member, a Evolve) error {
	result := EvolveResult{FromID: a.SpeciesID, Method: a.Method, Stone: a.Stone}
	reject := func(reason, msg string) error {
		result.Reason = reason
		result.Message = msg
		c.out.ToConn(m.conn, result)
		return nil
	}

	src, err := c.db.LatestCreature(ctx, m.userID, a.SpeciesID)
	if errors.Is(err, database.ErrNotFound) {
		return reject(ReasonNotOwned, "You don't have this creature")
	}
	if err != nil {
		return err
	}

	var evo catalog.Evolution
	switch a.Method {
	case catalog.MethodLevel:
		u, err := c.db.GetUserByID(ctx, m.userID)
		if err != nil {
			return err
		}
		next, ok := catalog.LevelEvolution(a.SpeciesID)
		if !ok || !catalog.CanEvolveWithLevel(a.SpeciesID, u.Level) {
			return reject(ReasonCannotEvolve, "Cannot evolve this creature")
		}
		evo = next
	case catalog.MethodStone:
		next, ok := catalog.StoneEvolution(a.SpeciesID, a.Stone)
		if !ok {
			return reject(ReasonCannotEvolve, "Cannot evolve this creature")
		}
		used, err := c.db.UseStone(ctx, m.userID, a.Stone)
		if err != nil {
			return err
		}
		if !used {
			return reject(ReasonNoStone, "You don't have this stone")
		}
		evo = next
	default:
		return reject(ReasonCannotEvolve, "Cannot evolve this creature")
	}

	from := src.ID
	if _, err := c.db.AddCreature(ctx, models.Creature{
		UserID:      m.userID,
		SpeciesID:   evo.To,
		Name:        evo.Name,
		Shiny:       src.Shiny,
		Zone:        src.Zone,
		EvolvedFrom: &from,
		CaughtAt:    c.now(),
	}); err != nil {
		return err
	}

	result.OK = true
	result.ToID = evo.To
	result.ToName = evo.Name
	c.out.ToConn(m.conn, result)

	c.rank(ctx, m.name, models.MetricCaught, 1)
	if src.Shiny {
		c.rank(ctx, m.name, models.MetricShiny, 1)
	}
	c.publish(ctx, models.FeedItem{
		Kind:   models.FeedEvolution,
		Name:   m.name,
		Detail: fmt.Sprintf("%s evolved into %s", src.Name, evo.Name),
		Shiny:  src.Shiny,
		Icon:   "🔄",
	})
	log.Printf("[Game] %s evolved %s into %s", m.name, src.Name, evo.Name)

	if err := c.checkAchievements(ctx, m.userID, achievements.Flags{}); err != nil {
		return err
	}
	if err := c.refreshTrainer(ctx, m.userID); err != nil {
		return err
	}
	c.broadcastLeaderboards(ctx)
	return nil
}

func (c *Coordinator) sendEvolutions(ctx context.Context, m *member, speciesID int) error {
	u, err := c.db.GetUserByID(ctx, m.userID)
	if err != nil {
		return err
	}
	stones, err := c.db.GetStones(ctx, m.userID)
	if err != nil {
		return err
	}
	c.out.ToConn(m.conn, EvolutionsData{
		SpeciesID: speciesID,
		Options:   catalog.AvailableEvolutions(speciesID, u.Level, stones),
	})
	return nil
}
