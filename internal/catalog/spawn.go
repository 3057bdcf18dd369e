package catalog

import (
	"math"
	"time"
)

// Ball is a capture item. BallPoke is free and unlimited.
type Ball string

const (
	BallPoke   Ball = "pokeball"
	BallGreat  Ball = "great"
	BallUltra  Ball = "ultra"
	BallMaster Ball = "master"
)

// StoredBalls are the ball types kept in inventory.
var StoredBalls = []Ball{BallGreat, BallUltra, BallMaster}

var ballModifiers = map[Ball]float64{
	BallPoke:   1.0,
	BallGreat:  1.5,
	BallUltra:  2.0,
	BallMaster: math.Inf(1),
}

var baseCatchRates = map[Rarity]float64{
	RarityCommon:    0.90,
	RarityUncommon:  0.70,
	RarityRare:      0.40,
	RarityLegendary: 0.15,
}

const (
	MaxCatchAttempts   = 3
	QuickCatchWindow   = 5 * time.Second
	QuickCatchBonus    = 0.10
	DefaultCatchWindow = 30 * time.Second

	ShinyOdds      = 100
	ShinyCharmOdds = 50

	DefaultMinSpawnInterval = 3 * time.Minute
	DefaultMaxSpawnInterval = 8 * time.Minute
)

const (
	xpCatch           = 25
	xpShinyCatch      = 100
	xpLegendaryBonus  = 50
	xpQuickCatchBonus = 10
	shinyCoinFactor   = 5
)

var coinRewards = map[Rarity]int64{
	RarityCommon:    5,
	RarityUncommon:  10,
	RarityRare:      20,
	RarityLegendary: 50,
}

// IsValidBall reports whether b is a known capture item.
func IsValidBall(b Ball) bool {
	_, ok := ballModifiers[b]
	return ok
}

// RollSpecies draws a species from the zone's rarity-weighted pool. Each tier
// contributes weight entries, each a uniform pick from that tier; the final
// draw is uniform over the flattened pool.
func RollSpecies(zoneID string, rng Rand) (int, Rarity) {
	z := GetZoneDetails(zoneID)

	type candidate struct {
		id     int
		rarity Rarity
	}
	var pool []candidate
	for _, r := range rarityOrder {
		ids := z.Pool[r]
		w := z.Weights[r]
		if w <= 0 || len(ids) == 0 {
			continue
		}
		for i := 0; i < w; i++ {
			pool = append(pool, candidate{id: ids[rng.IntN(len(ids))], rarity: r})
		}
	}

	if len(pool) == 0 {
		if common := z.Pool[RarityCommon]; len(common) > 0 {
			return common[0], RarityCommon
		}
		return 1, RarityCommon
	}
	c := pool[rng.IntN(len(pool))]
	return c.id, c.rarity
}

// RollShiny rolls shininess at 1/100, or 1/50 with the shiny charm.
func RollShiny(hasCharm bool, rng Rand) bool {
	odds := ShinyOdds
	if hasCharm {
		odds = ShinyCharmOdds
	}
	return rng.Float64() < 1/float64(odds)
}

// IsQuickCatch reports whether elapsed falls inside the quick-catch window.
func IsQuickCatch(elapsed time.Duration) bool {
	return elapsed >= 0 && elapsed <= QuickCatchWindow
}

// CatchChance is base rarity rate times ball multiplier plus the quick-catch
// bonus, capped at 1. A master ball always yields 1.
func CatchChance(rarity Rarity, ball Ball, elapsed time.Duration) float64 {
	chance, ok := baseCatchRates[rarity]
	if !ok {
		chance = baseCatchRates[RarityCommon]
	}

	mod, ok := ballModifiers[ball]
	if !ok {
		mod = 1.0
	}
	if math.IsInf(mod, 1) {
		return 1.0
	}
	chance *= mod

	if IsQuickCatch(elapsed) {
		chance += QuickCatchBonus
	}
	return math.Min(chance, 1.0)
}

// CatchReward is the currency and experience for a successful catch.
type CatchReward struct {
	Coins int64 `json:"coins"`
	XP    int64 `json:"xp"`
}

// RewardFor computes the catch reward for a species of the given tier.
func RewardFor(rarity Rarity, shiny, quick bool) CatchReward {
	coins, ok := coinRewards[rarity]
	if !ok {
		coins = coinRewards[RarityCommon]
	}
	var xp int64 = xpCatch

	if shiny {
		coins *= shinyCoinFactor
		xp = xpShinyCatch
	}
	if rarity == RarityLegendary {
		xp += xpLegendaryBonus
	}
	if quick {
		xp += xpQuickCatchBonus
	}
	return CatchReward{Coins: coins, XP: xp}
}
