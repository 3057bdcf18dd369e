package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/models"
)

var t0 = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQLite(":memory:", 16)
	require.NoError(t, err)
	require.NoError(t, db.InitSchema())
	t.Cleanup(func() { db.Close() })
	return db
}

func mustUser(t *testing.T, db *DB, name string) *models.User {
	t.Helper()
	u, _, err := db.GetOrCreateUser(context.Background(), name, t0)
	require.NoError(t, err)
	return u
}

func TestRebind(t *testing.T) {
	pg := &DB{dialect: DialectPostgres}
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y = $2", pg.rebind("SELECT a FROM t WHERE x = ? AND y = ?"))

	lite := &DB{dialect: DialectSQLite}
	assert.Equal(t, "SELECT ?", lite.rebind("SELECT ?"))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/party.db")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, "/tmp/party.db", cfg.Path)
	assert.Equal(t, 90*time.Second, cfg.ConnMaxLifetime)
	assert.Equal(t, 25, cfg.MaxOpenConns)
}

func TestNewConnectionRejectsUnknownDriver(t *testing.T) {
	_, err := NewConnection(&Config{Driver: "oracle"})
	assert.Error(t, err)
}

func TestGetOrCreateUser(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	u, created, err := db.GetOrCreateUser(ctx, "Zoe", t0)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Zoe", u.Name)
	assert.Equal(t, 1, u.Level)
	assert.Equal(t, int64(0), u.XP)
	assert.Equal(t, int64(0), u.Coins)
	assert.Equal(t, catalog.DefaultZone, u.CurrentZone)
	assert.False(t, u.ShinyCharm)

	again, created, err := db.GetOrCreateUser(ctx, "Zoe", t0.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
	assert.Equal(t, t0.Add(time.Hour), again.LastSeenAt)

	id, err := db.UserIDByName(ctx, "Zoe")
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, err = db.UserIDByName(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = db.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCoinsNeverNegative(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Ash")

	coins, err := db.AddCoins(ctx, u.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), coins)

	ok, err := db.SpendCoins(ctx, u.ID, 150)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = db.SpendCoins(ctx, u.ID, 60)
	require.NoError(t, err)
	assert.True(t, ok)

	coins, err = db.AddCoins(ctx, u.ID, -500)
	require.NoError(t, err)
	assert.Equal(t, int64(0), coins)
}

func TestXPAndLevel(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Misty")

	xp, err := db.AddXP(ctx, u.ID, 120)
	require.NoError(t, err)
	assert.Equal(t, int64(120), xp)

	_, err = db.AddXP(ctx, u.ID, -5)
	assert.Error(t, err)

	raised, err := db.RaiseLevel(ctx, u.ID, 2)
	require.NoError(t, err)
	assert.True(t, raised)

	raised, err = db.RaiseLevel(ctx, u.ID, 1)
	require.NoError(t, err)
	assert.False(t, raised, "level never goes down")

	got, err := db.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Level)
}

func TestProfileAllowList(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Brock")

	require.NoError(t, db.UpdateProfile(ctx, u.ID, map[string]string{
		"avatar":     "🪨",
		"name_color": "#aa3300",
		"coins":      "99999",
	}))
	require.NoError(t, db.SetTitle(ctx, u.ID, "Legend"))

	got, err := db.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "🪨", got.Avatar)
	assert.Equal(t, "#aa3300", got.NameColor)
	assert.Equal(t, "Legend", got.Title)
	assert.Equal(t, int64(0), got.Coins)
}

func TestBallInventoryNeverNegative(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Gary")

	n, err := db.AdjustBalls(ctx, u.ID, catalog.BallGreat, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	for i := 0; i < 2; i++ {
		ok, err := db.UseBall(ctx, u.ID, catalog.BallGreat)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := db.UseBall(ctx, u.ID, catalog.BallGreat)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err = db.AdjustBalls(ctx, u.ID, catalog.BallUltra, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = db.UseBall(ctx, u.ID, catalog.BallPoke)
	assert.Error(t, err, "the basic ball is not stored")

	balls, err := db.GetBalls(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Balls{}, balls)
}

func TestStoneInventory(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Erika")

	_, err := db.AdjustStone(ctx, u.ID, catalog.StoneLeaf, 1)
	require.NoError(t, err)

	stones, err := db.GetStones(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stones[catalog.StoneLeaf])
	assert.Equal(t, int64(0), stones[catalog.StoneFire])
	assert.Len(t, stones, len(catalog.Stones))

	ok, err := db.UseStone(ctx, u.ID, catalog.StoneLeaf)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = db.UseStone(ctx, u.ID, catalog.StoneLeaf)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = db.AdjustStone(ctx, u.ID, catalog.Stone("dusk_stone"), 1)
	assert.Error(t, err)
}

func TestEffectsExpireOrRunOut(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Sabrina")

	require.NoError(t, db.AddEffect(ctx, u.ID, catalog.EffectLuckyEgg, 30*time.Minute, 0, t0))
	require.NoError(t, db.AddEffect(ctx, u.ID, catalog.EffectLure, 24*time.Hour, 2, t0))

	has, err := db.HasEffect(ctx, u.ID, catalog.EffectLuckyEgg, t0.Add(29*time.Minute))
	require.NoError(t, err)
	assert.True(t, has)
	has, err = db.HasEffect(ctx, u.ID, catalog.EffectLuckyEgg, t0.Add(31*time.Minute))
	require.NoError(t, err)
	assert.False(t, has, "expiry alone retires an effect")

	for i := 0; i < 2; i++ {
		used, err := db.UseEffect(ctx, u.ID, catalog.EffectLure, t0)
		require.NoError(t, err)
		assert.True(t, used)
	}
	has, err = db.HasEffect(ctx, u.ID, catalog.EffectLure, t0)
	require.NoError(t, err)
	assert.False(t, has, "running out of uses alone retires an effect")

	used, err := db.UseEffect(ctx, u.ID, catalog.EffectLure, t0)
	require.NoError(t, err)
	assert.False(t, used)

	purged, err := db.PurgeEffects(ctx, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	effects, err := db.ActiveEffects(ctx, u.ID, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, effects)
}

func TestEffectRepurchaseRefreshes(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Koga")

	require.NoError(t, db.AddEffect(ctx, u.ID, catalog.EffectIncense, 30*time.Minute, 0, t0))
	require.NoError(t, db.AddEffect(ctx, u.ID, catalog.EffectIncense, 30*time.Minute, 0, t0.Add(20*time.Minute)))

	effects, err := db.ActiveEffects(ctx, u.ID, t0.Add(40*time.Minute))
	require.NoError(t, err)
	require.Len(t, effects, 1)
	require.NotNil(t, effects[0].ExpiresAt)
	assert.Equal(t, t0.Add(50*time.Minute), *effects[0].ExpiresAt)
	assert.Nil(t, effects[0].UsesRemaining)
}

func TestCreaturesAppendOnly(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Red")

	firstID, err := db.AddCreature(ctx, models.Creature{UserID: u.ID, SpeciesID: 25, Name: "Pikachu", Zone: "meadow", CaughtAt: t0})
	require.NoError(t, err)
	_, err = db.AddCreature(ctx, models.Creature{UserID: u.ID, SpeciesID: 25, Name: "Pikachu", Shiny: true, Zone: "meadow", CaughtAt: t0.Add(time.Minute)})
	require.NoError(t, err)
	_, err = db.AddCreature(ctx, models.Creature{UserID: u.ID, SpeciesID: 26, Name: "Raichu", Zone: "meadow", EvolvedFrom: &firstID, CaughtAt: t0.Add(2 * time.Minute)})
	require.NoError(t, err)

	counts, err := db.CreatureCounts(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CreatureCounts{Total: 3, Unique: 2, Shiny: 1}, counts)

	list, err := db.ListCreatures(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 26, list[0].SpeciesID)
	require.NotNil(t, list[0].EvolvedFrom)
	assert.Equal(t, firstID, *list[0].EvolvedFrom)

	latest, err := db.LatestCreature(ctx, u.ID, 25)
	require.NoError(t, err)
	assert.True(t, latest.Shiny)

	_, err = db.LatestCreature(ctx, u.ID, 150)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnlockAchievementIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Blue")

	first, err := db.UnlockAchievement(ctx, u.ID, "first_drink", t0)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := db.UnlockAchievement(ctx, u.ID, "first_drink", t0)
	require.NoError(t, err)
	assert.False(t, second)

	has, err := db.HasAchievement(ctx, u.ID, "first_drink")
	require.NoError(t, err)
	assert.True(t, has)

	set, err := db.UnlockedAchievements(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"first_drink": true}, set)
}

func TestSessionStats(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	u := mustUser(t, db, "Lance")

	_, err := db.CurrentPresentation(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	p1, err := db.StartPresentation(ctx, "Q1 review", t0)
	require.NoError(t, err)
	require.NoError(t, db.IncrementStat(ctx, u.ID, p1.ID, StatDrinks, 1))
	require.NoError(t, db.IncrementStat(ctx, u.ID, p1.ID, StatDrinks, 1))
	require.NoError(t, db.IncrementStat(ctx, u.ID, p1.ID, StatReactions, 3))

	cur, err := db.CurrentPresentation(ctx)
	require.NoError(t, err)
	assert.Equal(t, p1.ID, cur.ID)
	require.NoError(t, db.EndPresentation(ctx, p1.ID, t0.Add(time.Hour)))

	p2, err := db.StartPresentation(ctx, "Q2 review", t0.Add(2*time.Hour))
	require.NoError(t, err)
	require.NoError(t, db.IncrementStat(ctx, u.ID, p2.ID, StatDrinks, 1))

	other := mustUser(t, db, "Clair")
	require.NoError(t, db.EnsureStats(ctx, other.ID, p2.ID))
	require.NoError(t, db.IncrementStat(ctx, other.ID, p2.ID, StatDrinks, 4))
	drinks, err := db.TotalDrinks(ctx, p2.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), drinks)

	s1, err := db.SessionStats(ctx, u.ID, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatCounts{Reactions: 3, Drinks: 2}, s1)

	total, err := db.LifetimeStats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatCounts{Reactions: 3, Drinks: 3}, total)

	assert.Error(t, db.IncrementStat(ctx, u.ID, p2.ID, Stat("naps"), 1))
}

func TestUpvoteCountsOncePerUser(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	author := mustUser(t, db, "Zoe")
	voter := mustUser(t, db, "Max")

	q, err := db.CreateQuestion(ctx, author.ID, 0, "When is lunch?", "", t0)
	require.NoError(t, err)
	assert.Equal(t, "Zoe", q.Author)
	assert.Equal(t, int64(0), q.Votes)
	assert.Nil(t, q.PresentationID)

	counted, votes, err := db.UpvoteQuestion(ctx, q.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, counted)
	assert.Equal(t, int64(1), votes)

	counted, votes, err = db.UpvoteQuestion(ctx, q.ID, voter.ID)
	require.NoError(t, err)
	assert.False(t, counted)
	assert.Equal(t, int64(1), votes)

	deleted, err := db.DeleteQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	_, err = db.GetQuestion(ctx, q.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKudos(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	a := mustUser(t, db, "A")
	b := mustUser(t, db, "B")

	_, ok, err := db.LastKudos(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.AddKudos(ctx, a.ID, b.ID, "great talk", t0))
	require.NoError(t, db.AddKudos(ctx, a.ID, b.ID, "again", t0.Add(2*time.Hour)))

	last, ok, err := db.LastKudos(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, t0.Add(2*time.Hour), last)

	counts, err := db.KudosCounts(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.KudosCounts{Sent: 0, Received: 2}, counts)
}

func TestLeaderboards(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	a := mustUser(t, db, "Ann")
	b := mustUser(t, db, "Bob")
	mustUser(t, db, "Cid")

	_, err := db.AddXP(ctx, a.ID, 50)
	require.NoError(t, err)
	_, err = db.AddXP(ctx, b.ID, 80)
	require.NoError(t, err)
	_, err = db.AddCreature(ctx, models.Creature{UserID: a.ID, SpeciesID: 1, Name: "Bulbasaur", Shiny: true, Zone: "meadow", CaughtAt: t0})
	require.NoError(t, err)
	p, err := db.StartPresentation(ctx, "", t0)
	require.NoError(t, err)
	require.NoError(t, db.IncrementStat(ctx, b.ID, p.ID, StatReactions, 4))

	lb, err := db.Rankings().Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, lb.XP, 2)
	assert.Equal(t, "Bob", lb.XP[0].Name)
	assert.Equal(t, 1, lb.XP[0].Rank)
	assert.Equal(t, int64(80), lb.XP[0].Value)
	assert.Equal(t, []models.LeaderboardEntry{{Rank: 1, Name: "Ann", Level: 1, Value: 1}}, lb.Caught)
	assert.Equal(t, lb.Caught, lb.Shiny)
	assert.Equal(t, []models.LeaderboardEntry{{Rank: 1, Name: "Bob", Level: 1, Value: 4}}, lb.Reactions)

	totals, err := db.AllTrainerTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 3)
	assert.Equal(t, models.TrainerTotals{Name: "Ann", XP: 50, Caught: 1, Shiny: 1}, totals[0])

	_, err = db.TopTrainers(ctx, "deaths", 10)
	assert.Error(t, err)
}

func TestTrainerProfiles(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	a := mustUser(t, db, "Ann")
	mustUser(t, db, "Bob")
	require.NoError(t, db.SetTitle(ctx, a.ID, "Artist"))
	_, err := db.RaiseLevel(ctx, a.ID, 3)
	require.NoError(t, err)

	profiles, err := db.TrainerProfiles(ctx, []string{"Ann", "Bob", "Ghost"})
	require.NoError(t, err)
	assert.Equal(t, map[string]models.TrainerProfile{
		"Ann": {Name: "Ann", Title: "Artist", Level: 3},
		"Bob": {Name: "Bob", Level: 1},
	}, profiles)

	empty, err := db.TrainerProfiles(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
