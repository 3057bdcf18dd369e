package catalog

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct {
	f float64
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return 0 }

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int64
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{2700, 10},
		{16199, 24},
		{16200, 25},
		{1 << 40, 25},
	}
	for _, c := range cases {
		assert.Equal(t, c.level, LevelForXP(c.xp), "xp=%d", c.xp)
	}
}

func TestLevelForXPIsNonDecreasing(t *testing.T) {
	prev := LevelForXP(0)
	for xp := int64(0); xp <= 17000; xp += 7 {
		level := LevelForXP(xp)
		require.GreaterOrEqual(t, level, prev, "xp=%d", xp)
		prev = level
	}
}

func TestXPForNextLevel(t *testing.T) {
	next, ok := XPForNextLevel(1)
	assert.True(t, ok)
	assert.Equal(t, int64(100), next)

	_, ok = XPForNextLevel(MaxLevel)
	assert.False(t, ok)
}

func TestCatchChance(t *testing.T) {
	slow := 10 * time.Second

	assert.InDelta(t, 0.90, CatchChance(RarityCommon, BallPoke, slow), 1e-9)
	assert.InDelta(t, 0.60, CatchChance(RarityRare, BallGreat, slow), 1e-9)
	assert.InDelta(t, 0.30, CatchChance(RarityLegendary, BallUltra, slow), 1e-9)
	assert.InDelta(t, 0.50, CatchChance(RarityRare, BallPoke, 2*time.Second), 1e-9)
	assert.Equal(t, 1.0, CatchChance(RarityCommon, BallGreat, slow), "capped at 1")
	assert.Equal(t, 1.0, CatchChance(RarityLegendary, BallMaster, slow))
}

func TestRewardFor(t *testing.T) {
	assert.Equal(t, CatchReward{Coins: 5, XP: 25}, RewardFor(RarityCommon, false, false))
	assert.Equal(t, CatchReward{Coins: 100, XP: 100}, RewardFor(RarityRare, true, false))
	assert.Equal(t, CatchReward{Coins: 250, XP: 160}, RewardFor(RarityLegendary, true, true))
	assert.Equal(t, CatchReward{Coins: 50, XP: 75}, RewardFor(RarityLegendary, false, false))
}

func TestRollSpeciesStaysInZonePool(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, z := range GetAllZones() {
		members := map[int]Rarity{}
		for r, ids := range z.Pool {
			for _, id := range ids {
				if _, seen := members[id]; !seen {
					members[id] = r
				}
			}
		}
		for i := 0; i < 200; i++ {
			id, rarity := RollSpecies(z.ID, rng)
			_, ok := members[id]
			require.True(t, ok, "zone %s drew %d", z.ID, id)
			assert.Contains(t, z.Pool[rarity], id)
		}
	}
}

func TestRollSpeciesMysteryIsLegendary(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 50; i++ {
		_, rarity := RollSpecies(ZoneMystery, rng)
		assert.Equal(t, RarityLegendary, rarity)
	}
}

func TestRollShiny(t *testing.T) {
	assert.True(t, RollShiny(false, fixedRand{f: 0.005}))
	assert.False(t, RollShiny(false, fixedRand{f: 0.015}))
	assert.True(t, RollShiny(true, fixedRand{f: 0.015}), "charm doubles the odds")
	assert.False(t, RollShiny(true, fixedRand{f: 0.025}))
}

func TestZoneUnlocks(t *testing.T) {
	assert.Equal(t, []string{ZoneMeadow}, UnlockedZones(1))
	assert.Equal(t, []string{ZoneMeadow, ZoneForest, ZoneMountain}, UnlockedZones(12))
	assert.Len(t, UnlockedZones(25), 6)

	assert.True(t, IsZoneUnlocked(ZoneForest, 5))
	assert.False(t, IsZoneUnlocked(ZoneForest, 4))
	assert.False(t, IsZoneUnlocked("volcano", 25))

	assert.Equal(t, []string{ZoneForest, ZoneMountain}, NewlyUnlockedZones(4, 10))
	assert.Empty(t, NewlyUnlockedZones(5, 9))
}

func TestRarityFor(t *testing.T) {
	assert.Equal(t, RarityUncommon, RarityFor(25, ZoneMeadow))
	assert.Equal(t, RarityLegendary, RarityFor(150, ZoneSky))
	assert.Equal(t, RarityCommon, RarityFor(150, ZoneMeadow), "outside the pool counts as common")
}

func TestEvolutionEligibility(t *testing.T) {
	assert.True(t, CanEvolveWithStone(25, StoneThunder, 1))
	assert.False(t, CanEvolveWithStone(25, StoneThunder, 0))
	assert.False(t, CanEvolveWithStone(25, StoneFire, 3))

	assert.True(t, CanEvolveWithLevel(129, 10))
	assert.False(t, CanEvolveWithLevel(129, 9))
	assert.False(t, CanEvolveWithLevel(25, 25))

	opts := AvailableEvolutions(133, 1, map[Stone]int64{StoneFire: 1, StoneWater: 2})
	require.Len(t, opts, 2)
	assert.Equal(t, 136, opts[0].To)
	assert.Equal(t, 134, opts[1].To)
}

func TestDefaultShop(t *testing.T) {
	shop := DefaultShop()
	assert.Len(t, shop.Items(), 14)

	item, ok := shop.Item("lure")
	require.True(t, ok)
	assert.Equal(t, CategoryEffect, item.Category)
	assert.Equal(t, 5, item.Uses)
	assert.Equal(t, 24*time.Hour, item.Duration())

	_, ok = shop.Item("pokeflute")
	assert.False(t, ok)
}

func TestLoadShopRejectsInvalidRows(t *testing.T) {
	_, err := LoadShop([]byte(`
[[item]]
id = "free_balls"
price = 1
category = "ball"
ball = "pokeball"
quantity = 10
`))
	assert.Error(t, err)

	_, err = LoadShop([]byte(`
[[item]]
id = "a"
price = 1
category = "stone"
stone = "fire_stone"

[[item]]
id = "a"
price = 2
category = "stone"
stone = "fire_stone"
`))
	assert.Error(t, err)
}

func TestSpeciesLookup(t *testing.T) {
	s, ok := GetSpecies(25)
	require.True(t, ok)
	assert.Equal(t, "Pikachu", s.Name)
	assert.Equal(t, 25, s.ID)

	_, ok = GetSpecies(9999)
	assert.False(t, ok)
	assert.Equal(t, "#9999", SpeciesName(9999))
}
