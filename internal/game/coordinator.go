// Package game owns the live session: who is connected, their spawns and
// catch attempts, and the rules that turn client actions into persisted
// rewards and broadcast events.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/otychat/server/internal/achievements"
	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/database"
	"github.com/otychat/server/internal/models"
)

const (
	MaxNameLength  = 16
	earlyBirdSlots = 5
	waveTimeout    = 30 * time.Second
)

// Options tune a Coordinator. Zero values fall back to defaults.
type Options struct {
	CatchWindow      time.Duration
	MinSpawnInterval time.Duration
	MaxSpawnInterval time.Duration
	LeaderboardSize  int
	FeedSize         int

	Leaderboard  Leaderboard
	Feed         Feed
	Notifier     Notifier
	Admin        AdminVerifier
	Shop         *catalog.Shop
	Achievements *achievements.Set
	Rand         catalog.Rand
	Now          func() time.Time
}

type member struct {
	conn   ConnID
	userID int64
	name   string
	zone   string
	level  int
	title  string
	seq    uint64
}

// Coordinator is the single writer for all session state. Every action and
// timer callback runs under mu.
type Coordinator struct {
	mu sync.Mutex

	db           *database.DB
	out          Broadcaster
	board        Leaderboard
	feed         Feed
	notifier     Notifier
	admin        AdminVerifier
	shop         *catalog.Shop
	achievements *achievements.Set
	rng          catalog.Rand
	now          func() time.Time

	catchWindow     time.Duration
	minSpawn        time.Duration
	maxSpawn        time.Duration
	leaderboardSize int
	feedSize        int

	members   map[ConnID]*member
	watchers  map[ConnID]Role
	joinOrder map[int64]int
	joinSeq   uint64

	spawns map[string]*spawn
	active map[int64]string

	presentation *models.Presentation
	timer        *time.Timer
	timerGen     int
}

// New creates a Coordinator in the Idle state. Call Resume to pick up an
// unfinished presentation.
func New(db *database.DB, out Broadcaster, opts Options) *Coordinator {
	c := &Coordinator{
		db:              db,
		out:             out,
		board:           opts.Leaderboard,
		feed:            opts.Feed,
		notifier:        opts.Notifier,
		admin:           opts.Admin,
		shop:            opts.Shop,
		achievements:    opts.Achievements,
		rng:             opts.Rand,
		now:             opts.Now,
		catchWindow:     opts.CatchWindow,
		minSpawn:        opts.MinSpawnInterval,
		maxSpawn:        opts.MaxSpawnInterval,
		leaderboardSize: opts.LeaderboardSize,
		feedSize:        opts.FeedSize,
		members:         make(map[ConnID]*member),
		watchers:        make(map[ConnID]Role),
		joinOrder:       make(map[int64]int),
		spawns:          make(map[string]*spawn),
		active:          make(map[int64]string),
	}

	if c.board == nil {
		c.board = db.Rankings()
	}
	if c.feedSize <= 0 {
		c.feedSize = 50
	}
	if c.feed == nil {
		c.feed = NewMemoryFeed(c.feedSize)
	}
	if c.notifier == nil {
		c.notifier = LogNotifier{}
	}
	if c.shop == nil {
		c.shop = catalog.DefaultShop()
	}
	if c.achievements == nil {
		c.achievements = achievements.Default()
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6f7479))
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.catchWindow <= 0 {
		c.catchWindow = catalog.DefaultCatchWindow
	}
	if c.minSpawn <= 0 {
		c.minSpawn = catalog.DefaultMinSpawnInterval
	}
	if c.maxSpawn < c.minSpawn {
		c.maxSpawn = max(catalog.DefaultMaxSpawnInterval, c.minSpawn)
	}
	if c.leaderboardSize <= 0 {
		c.leaderboardSize = 10
	}
	return c
}

// NormalizeName trims and NFC-normalizes a display name and checks its length.
func NormalizeName(raw string) (string, bool) {
	name := norm.NFC.String(strings.TrimSpace(raw))
	n := utf8.RuneCountInString(name)
	return name, n > 0 && n <= MaxNameLength
}

// Resume restores an unfinished presentation after a restart.
func (c *Coordinator) Resume(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.db.CurrentPresentation(ctx)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	c.presentation = p
	c.armSpawnTimer()
	log.Printf("[Game] Resumed presentation %d %q", p.ID, p.Title)
	return nil
}

// Close stops the spawn timer.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopSpawnTimer()
}

// Live reports whether a presentation is running.
func (c *Coordinator) Live() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.presentation != nil
}

// Online returns the roster of connected trainers.
func (c *Coordinator) Online() []OnlineTrainer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roster()
}

// Handle applies one inbound action from conn. Domain rejections are sent
// as events; the returned error is a persistence failure that abandoned
// the action.
func (c *Coordinator) Handle(ctx context.Context, conn ConnID, a Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.dispatch(ctx, conn, a); err != nil {
		return fmt.Errorf("%s: %w", a.ActionType(), err)
	}
	return nil
}

func (c *Coordinator) dispatch(ctx context.Context, conn ConnID, a Action) error {
	switch a := a.(type) {
	case Join:
		return c.join(ctx, conn, a)
	case JoinDisplay:
		return c.joinDisplay(ctx, conn)
	case JoinAdmin:
		return c.joinAdmin(ctx, conn, a)
	case GetUserCount:
		c.out.ToConn(conn, UserCount{Count: c.onlineCount()})
		return nil
	case GetLeaderboards:
		c.sendLeaderboards(ctx, conn)
		return nil
	case GetFeed:
		return c.sendFeed(ctx, conn, a.Limit)
	case StartSession, EndSession, ForceSpawn, ShowQuestion, HideQuestion, DismissQuestion, DrawingPrompt:
		if c.watchers[conn] != RoleAdmin {
			return nil
		}
		return c.dispatchAdmin(ctx, conn, a)
	}

	m, ok := c.members[conn]
	if !ok {
		return nil
	}
	switch a := a.(type) {
	case ChangeZone:
		return c.changeZone(ctx, m, a)
	case UpdateProfile:
		return c.updateProfile(ctx, m, a)
	case SendReaction:
		return c.sendReaction(ctx, m, a)
	case SendQuestion:
		return c.sendQuestion(ctx, m, a)
	case UpvoteQuestion:
		return c.upvoteQuestion(ctx, m, a)
	case LogDrink:
		return c.logDrink(ctx, m)
	case SendDM:
		return c.sendDM(ctx, m, a)
	case SendKudos:
		return c.sendKudos(ctx, m, a)
	case CatchAttempt:
		return c.catch(ctx, m, a)
	case RunFromSpawn:
		c.runFromSpawn(m)
		return nil
	case Evolve:
		return c.evolve(ctx, m, a)
	case BuyItem:
		return c.buy(ctx, m, a)
	case GetCollection:
		creatures, err := c.db.ListCreatures(ctx, m.userID)
		if err != nil {
			return err
		}
		c.out.ToConn(conn, CollectionData{Creatures: creatures})
		return nil
	case GetEvolutions:
		return c.sendEvolutions(ctx, m, a.SpeciesID)
	}
	return nil
}

// Disconnect removes a connection. Spawn state goes with the identity's
// last connection; durable data is untouched.
func (c *Coordinator) Disconnect(conn ConnID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leave(conn)
}

func (c *Coordinator) leave(conn ConnID) {
	if _, ok := c.watchers[conn]; ok {
		delete(c.watchers, conn)
		return
	}
	m, ok := c.members[conn]
	if !ok {
		return
	}
	delete(c.members, conn)
	if !c.isOnline(m.userID) {
		c.evictSpawns(m.userID, ReasonSuperseded)
	}
	log.Printf("[Game] %s left (%d online)", m.name, c.onlineCount())
	c.broadcastRoster()
}

func (c *Coordinator) join(ctx context.Context, conn ConnID, a Join) error {
	name, ok := NormalizeName(a.Name)
	if !ok {
		c.out.ToConn(conn, Rejected{Action: a.ActionType(), Reason: ReasonInvalidName, Message: "Invalid username"})
		return nil
	}

	u, created, err := c.db.GetOrCreateUser(ctx, name, c.now())
	if err != nil {
		return err
	}
	if old, ok := c.members[conn]; ok && old.userID != u.ID {
		delete(c.members, conn)
		if !c.isOnline(old.userID) {
			c.evictSpawns(old.userID, ReasonSuperseded)
		}
	}
	delete(c.watchers, conn)

	c.joinSeq++
	c.members[conn] = &member{
		conn:   conn,
		userID: u.ID,
		name:   u.Name,
		zone:   u.CurrentZone,
		level:  u.Level,
		title:  u.Title,
		seq:    c.joinSeq,
	}
	c.out.SetRole(conn, RolePlayer)
	if created {
		log.Printf("[Game] New trainer %s", u.Name)
	}
	log.Printf("[Game] %s joined (%d online)", u.Name, c.onlineCount())

	if c.presentation != nil {
		if err := c.db.EnsureStats(ctx, u.ID, c.presentation.ID); err != nil {
			return err
		}
	}
	if c.earlyBird(u.ID) {
		if err := c.checkAchievements(ctx, u.ID, achievements.Flags{EarlyBird: true}); err != nil {
			return err
		}
	}

	stats, err := c.trainerStats(ctx, u.ID)
	if err != nil {
		return err
	}
	c.out.ToConn(conn, stats)
	c.out.ToConn(conn, c.sessionState())
	if c.presentation != nil {
		questions, err := c.db.ListQuestions(ctx, c.presentation.ID)
		if err != nil {
			return err
		}
		c.out.ToConn(conn, QuestionsSync{Questions: questions})
	}
	c.out.ToConn(conn, ZonesData{Zones: catalog.GetAllZones(), Requirements: catalog.ZoneRequirements()})
	c.out.ToConn(conn, ShopItems{Items: c.shop.Items()})
	c.sendLeaderboards(ctx, conn)
	if err := c.sendFeed(ctx, conn, 0); err != nil {
		return err
	}
	c.broadcastRoster()
	return nil
}

// earlyBird records the first join of an identity and reports whether it
// was among the first few this process has seen.
func (c *Coordinator) earlyBird(userID int64) bool {
	pos, ok := c.joinOrder[userID]
	if !ok {
		pos = len(c.joinOrder)
		c.joinOrder[userID] = pos
	}
	return pos < earlyBirdSlots
}

func (c *Coordinator) joinDisplay(ctx context.Context, conn ConnID) error {
	if _, ok := c.members[conn]; ok {
		c.leave(conn)
	}
	c.watchers[conn] = RoleDisplay
	c.out.SetRole(conn, RoleDisplay)
	log.Printf("[Game] Display connected")

	c.out.ToConn(conn, UserCount{Count: c.onlineCount()})
	c.out.ToConn(conn, c.sessionState())
	c.sendLeaderboards(ctx, conn)
	return c.sendFeed(ctx, conn, 0)
}

func (c *Coordinator) joinAdmin(ctx context.Context, conn ConnID, a JoinAdmin) error {
	if c.admin == nil {
		c.out.ToConn(conn, Rejected{Action: a.ActionType(), Reason: ReasonUnauthorized, Message: "Admin access is disabled"})
		return nil
	}

	var token string
	switch {
	case a.Token != "":
		if _, err := c.admin.ValidateToken(a.Token); err != nil {
			c.out.ToConn(conn, Rejected{Action: a.ActionType(), Reason: ReasonUnauthorized, Message: "Invalid or expired token"})
			return nil
		}
		token = a.Token
	case a.Code != "" && c.admin.VerifyCode(a.Code):
		t, err := c.admin.GenerateAdminToken("console")
		if err != nil {
			return err
		}
		token = t
	default:
		log.Printf("[Admin] Rejected admin join")
		c.out.ToConn(conn, Rejected{Action: a.ActionType(), Reason: ReasonUnauthorized, Message: "Invalid admin code"})
		return nil
	}

	if _, ok := c.members[conn]; ok {
		c.leave(conn)
	}
	c.watchers[conn] = RoleAdmin
	c.out.SetRole(conn, RoleAdmin)
	log.Printf("[Admin] Admin connected")

	c.out.ToConn(conn, AdminAccepted{Token: token})
	c.out.ToConn(conn, UserList{Users: c.roster()})
	c.out.ToConn(conn, c.sessionState())

	stats := StatsSync{Online: c.onlineCount()}
	if c.presentation != nil {
		questions, err := c.db.ListQuestions(ctx, c.presentation.ID)
		if err != nil {
			return err
		}
		drinks, err := c.db.TotalDrinks(ctx, c.presentation.ID)
		if err != nil {
			return err
		}
		c.out.ToConn(conn, QuestionsSync{Questions: questions})
		stats.Questions = len(questions)
		stats.TotalDrinks = drinks
	}
	c.out.ToConn(conn, stats)
	return nil
}

func (c *Coordinator) changeZone(ctx context.Context, m *member, a ChangeZone) error {
	if !catalog.IsValidZone(a.Zone) {
		c.out.ToConn(m.conn, ZoneChangeResult{Zone: a.Zone, Reason: ReasonUnknownZone, Message: "Unknown zone"})
		return nil
	}
	u, err := c.db.GetUserByID(ctx, m.userID)
	if err != nil {
		return err
	}
	if !catalog.IsZoneUnlocked(a.Zone, u.Level) {
		c.out.ToConn(m.conn, ZoneChangeResult{Zone: a.Zone, Reason: ReasonZoneLocked, Message: "Zone not unlocked"})
		return nil
	}
	if err := c.db.SetZone(ctx, m.userID, a.Zone); err != nil {
		return err
	}
	c.forIdentity(m.userID, func(o *member) { o.zone = a.Zone })

	zone := catalog.GetZoneDetails(a.Zone)
	c.toIdentity(m.userID, ZoneChangeResult{OK: true, Zone: zone.ID, ZoneName: zone.Name})
	c.broadcastRoster()
	return nil
}

const maxProfileField = 64

func (c *Coordinator) updateProfile(ctx context.Context, m *member, a UpdateProfile) error {
	fields := map[string]string{}
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = strings.TrimSpace(*v)
		}
	}
	set("avatar", a.Avatar)
	set("status", a.Status)
	set("name_color", a.NameColor)

	valid := len(fields) > 0
	for _, v := range fields {
		if utf8.RuneCountInString(v) > maxProfileField {
			valid = false
		}
	}
	if !valid {
		c.out.ToConn(m.conn, Rejected{Action: a.ActionType(), Reason: ReasonInvalidInput, Message: "Invalid profile update"})
		return nil
	}

	if err := c.db.UpdateProfile(ctx, m.userID, fields); err != nil {
		return err
	}
	c.toIdentity(m.userID, ProfileUpdated{Fields: fields})
	return nil
}

func (c *Coordinator) sessionState() SessionState {
	if c.presentation == nil {
		return SessionState{}
	}
	started := c.presentation.StartedAt
	return SessionState{Live: true, ID: c.presentation.ID, Title: c.presentation.Title, StartedAt: &started}
}

// trainers returns one member per online identity, the most recent join
// winning, ordered by name.
func (c *Coordinator) trainers() []*member {
	byID := make(map[int64]*member)
	for _, m := range c.members {
		if cur, ok := byID[m.userID]; !ok || m.seq > cur.seq {
			byID[m.userID] = m
		}
	}
	out := make([]*member, 0, len(byID))
	for _, m := range byID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (c *Coordinator) roster() []OnlineTrainer {
	trainers := c.trainers()
	out := make([]OnlineTrainer, 0, len(trainers))
	for _, m := range trainers {
		out = append(out, OnlineTrainer{Name: m.name, Zone: m.zone, Level: m.level, Title: m.title})
	}
	return out
}

func (c *Coordinator) onlineCount() int {
	return len(c.trainers())
}

func (c *Coordinator) isOnline(userID int64) bool {
	for _, m := range c.members {
		if m.userID == userID {
			return true
		}
	}
	return false
}

func (c *Coordinator) memberByName(name string) *member {
	for _, m := range c.trainers() {
		if m.name == name {
			return m
		}
	}
	return nil
}

func (c *Coordinator) forIdentity(userID int64, fn func(m *member)) {
	for _, m := range c.members {
		if m.userID == userID {
			fn(m)
		}
	}
}

func (c *Coordinator) toIdentity(userID int64, ev Event) {
	c.forIdentity(userID, func(m *member) { c.out.ToConn(m.conn, ev) })
}

func (c *Coordinator) broadcastRoster() {
	c.out.ToAll(UserCount{Count: c.onlineCount()})
	c.out.ToAll(UserList{Users: c.roster()})
}

func (c *Coordinator) sendLeaderboards(ctx context.Context, conn ConnID) {
	boards, err := c.board.Top(ctx, c.leaderboardSize)
	if err != nil {
		log.Printf("[Game] Failed to load leaderboards: %v", err)
		return
	}
	c.out.ToConn(conn, LeaderboardsEvent{Leaderboards: boards})
}

func (c *Coordinator) broadcastLeaderboards(ctx context.Context) {
	boards, err := c.board.Top(ctx, c.leaderboardSize)
	if err != nil {
		log.Printf("[Game] Failed to load leaderboards: %v", err)
		return
	}
	c.out.ToAll(LeaderboardsEvent{Leaderboards: boards})
}

func (c *Coordinator) sendFeed(ctx context.Context, conn ConnID, limit int) error {
	if limit <= 0 || limit > c.feedSize {
		limit = c.feedSize
	}
	items, err := c.feed.Recent(ctx, limit)
	if err != nil {
		return err
	}
	c.out.ToConn(conn, FeedData{Items: items})
	return nil
}

// armSpawnTimer schedules the next wave at a random point between the
// minimum and maximum interval.
func (c *Coordinator) armSpawnTimer() {
	c.stopSpawnTimer()
	delay := c.minSpawn
	if span := c.maxSpawn - c.minSpawn; span > 0 {
		delay += time.Duration(c.rng.Float64() * float64(span))
	}
	gen := c.timerGen
	c.timer = time.AfterFunc(delay, func() { c.onSpawnTimer(gen) })
}

func (c *Coordinator) stopSpawnTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerGen++
}

func (c *Coordinator) onSpawnTimer(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.timerGen || c.presentation == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), waveTimeout)
	defer cancel()

	if purged, err := c.db.PurgeEffects(ctx, c.now()); err != nil {
		log.Printf("[Game] Failed to purge effects: %v", err)
	} else if purged > 0 {
		log.Printf("[Game] Purged %d spent effects", purged)
	}
	if _, err := c.spawnWave(ctx, spawnRequest{}); err != nil {
		log.Printf("[Game] Spawn wave failed: %v", err)
	}
	c.armSpawnTimer()
}
