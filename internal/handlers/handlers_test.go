package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otychat/server/internal/achievements"
	"github.com/otychat/server/internal/auth"
	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/database"
	"github.com/otychat/server/internal/game"
	"github.com/otychat/server/internal/models"
)

type fakeGame struct {
	online  []game.OnlineTrainer
	grants  map[string]game.Grant
	spawned []string
}

func (f *fakeGame) Grant(_ context.Context, name string, g game.Grant) error {
	if name == "Nobody" {
		return database.ErrNotFound
	}
	f.grants[name] = g
	return nil
}

func (f *fakeGame) SpawnFor(_ context.Context, name string, _ int, _ bool) error {
	for _, t := range f.online {
		if t.Name == name {
			f.spawned = append(f.spawned, name)
			return nil
		}
	}
	return game.ErrNotOnline
}

func (f *fakeGame) Online() []game.OnlineTrainer { return f.online }

func newAuth(t *testing.T) *auth.Authenticator {
	t.Helper()
	a, err := auth.New(&auth.Config{Secret: "test-secret", AdminCode: "letmein"})
	require.NoError(t, err)
	return a
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestAdminLogin(t *testing.T) {
	a := newAuth(t)
	h := NewAdminHandler(a, &fakeGame{})

	rec := post(h.Login, `{"code":"letmein"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	claims, err := a.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)

	assert.Equal(t, http.StatusUnauthorized, post(h.Login, `{"code":"nope"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h.Login, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h.Login, `{`).Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	h.Login(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAdminGrant(t *testing.T) {
	g := &fakeGame{grants: map[string]game.Grant{}}
	h := NewAdminHandler(newAuth(t), g)

	rec := post(h.Grant, `{"name":" Red ","coins":50,"balls":{"great":3},"creatures":[25]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, game.Grant{
		Coins:     50,
		Balls:     map[catalog.Ball]int64{catalog.BallGreat: 3},
		Creatures: []int{25},
	}, g.grants["Red"])

	assert.Equal(t, http.StatusBadRequest, post(h.Grant, `{"name":"Red","creatures":[9999]}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h.Grant, `{"name":"","coins":1}`).Code)
	assert.Equal(t, http.StatusNotFound, post(h.Grant, `{"name":"Nobody","coins":1}`).Code)
}

func TestAdminSpawn(t *testing.T) {
	g := &fakeGame{online: []game.OnlineTrainer{{Name: "Red", Zone: catalog.ZoneMeadow}}}
	h := NewAdminHandler(newAuth(t), g)

	assert.Equal(t, http.StatusOK, post(h.Spawn, `{"name":"Red","species_id":25}`).Code)
	assert.Equal(t, []string{"Red"}, g.spawned)

	assert.Equal(t, http.StatusNotFound, post(h.Spawn, `{"name":"Blue"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h.Spawn, `{"name":"Red","species_id":9999}`).Code)
}

func TestAdminLogoutWithoutSessionStore(t *testing.T) {
	a := newAuth(t)
	h := NewAdminHandler(a, &fakeGame{})
	token, err := a.GenerateAdminToken("console")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestGetLeaderboardAndFeed(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(":memory:", 16)
	require.NoError(t, err)
	require.NoError(t, db.InitSchema())
	t.Cleanup(func() { db.Close() })

	at := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	for _, name := range []string{"Ann", "Bob"} {
		u, _, err := db.GetOrCreateUser(ctx, name, at)
		require.NoError(t, err)
		_, err = db.AddXP(ctx, u.ID, int64(len(name)*10))
		require.NoError(t, err)
	}

	feed := game.NewMemoryFeed(10)
	require.NoError(t, feed.Push(ctx, models.FeedItem{Kind: models.FeedCatch, Name: "Ann"}))
	require.NoError(t, feed.Push(ctx, models.FeedItem{Kind: models.FeedDrink, Name: "Bob"}))
	h := NewLeaderboardHandler(db.Rankings(), feed, 10)

	rec := httptest.NewRecorder()
	h.GetLeaderboard(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard?limit=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var boards models.Leaderboards
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&boards))
	assert.Len(t, boards.XP, 1)

	rec = httptest.NewRecorder()
	h.GetFeed(rec, httptest.NewRequest(http.MethodGet, "/api/feed", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items []models.FeedItem `json:"items"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Bob", body.Items[0].Name)
}

func TestGetZones(t *testing.T) {
	g := &fakeGame{online: []game.OnlineTrainer{
		{Name: "Ann", Zone: catalog.ZoneMeadow},
		{Name: "Bob", Zone: catalog.ZoneMeadow},
		{Name: "Cy", Zone: catalog.ZoneForest},
	}}
	rec := httptest.NewRecorder()
	NewZoneHandler(g).GetZones(rec, httptest.NewRequest(http.MethodGet, "/api/zones", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Zones []struct {
			ID     string `json:"id"`
			Online int    `json:"online"`
		} `json:"zones"`
		Requirements map[string]int `json:"requirements"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	online := map[string]int{}
	for _, z := range body.Zones {
		online[z.ID] = z.Online
	}
	assert.Equal(t, 2, online[catalog.ZoneMeadow])
	assert.Equal(t, 1, online[catalog.ZoneForest])
	assert.Equal(t, 5, body.Requirements[catalog.ZoneForest])
}

func TestGetTrainer(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(":memory:", 16)
	require.NoError(t, err)
	require.NoError(t, db.InitSchema())
	t.Cleanup(func() { db.Close() })

	at := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	u, _, err := db.GetOrCreateUser(ctx, "Misty", at)
	require.NoError(t, err)
	_, err = db.AddCreature(ctx, models.Creature{UserID: u.ID, SpeciesID: 120, Name: "Staryu", Zone: catalog.ZoneMeadow, CaughtAt: at})
	require.NoError(t, err)
	_, err = db.UnlockAchievement(ctx, u.ID, "first_pokemon", at)
	require.NoError(t, err)

	g := &fakeGame{online: []game.OnlineTrainer{{Name: "Misty"}}}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/trainers/{name}", NewTrainerHandler(db, g, nil).GetTrainer)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trainers/Misty", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var card TrainerCard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&card))
	assert.Equal(t, "Misty", card.Name)
	assert.Equal(t, int64(1), card.Creatures.Total)
	assert.Equal(t, []string{"first_pokemon"}, card.Achievements)
	assert.True(t, card.Online)
	assert.Equal(t, int64(1), card.Progress[achievements.MetricCaught].Current)
	assert.NotEmpty(t, card.Progress[achievements.MetricCaught].Milestones)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trainers/Brock", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
