package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/otychat/server/internal/auth"
	"github.com/otychat/server/internal/database"
	"github.com/otychat/server/internal/models"
)

const adminCode = "letmein"

type delivery struct {
	conn ConnID
	role Role
	all  bool
	ev   Event
}

// recorder is a Broadcaster that keeps everything it was asked to send.
type recorder struct {
	mu    sync.Mutex
	roles map[ConnID]Role
	sent  []delivery
}

func newRecorder() *recorder {
	return &recorder{roles: make(map[ConnID]Role)}
}

func (r *recorder) ToAll(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, delivery{all: true, ev: ev})
}

func (r *recorder) ToRole(role Role, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, delivery{role: role, ev: ev})
}

func (r *recorder) ToConn(conn ConnID, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, delivery{conn: conn, ev: ev})
}

func (r *recorder) SetRole(conn ConnID, role Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[conn] = role
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}

// received lists what conn would have seen.
func (r *recorder) received(conn ConnID) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for _, d := range r.sent {
		switch {
		case d.all, d.conn == conn, d.role != "" && r.roles[conn] == d.role:
			out = append(out, d.ev)
		}
	}
	return out
}

func eventsOf[T Event](r *recorder, conn ConnID) []T {
	var out []T
	for _, ev := range r.received(conn) {
		if v, ok := ev.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func lastOf[T Event](t *testing.T, r *recorder, conn ConnID) T {
	t.Helper()
	evs := eventsOf[T](r, conn)
	require.NotEmpty(t, evs, "no %T delivered to %s", *new(T), conn)
	return evs[len(evs)-1]
}

// scriptRand hands out queued floats, then fallback. IntN always picks 0.
type scriptRand struct {
	floats   []float64
	fallback float64
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.fallback
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptRand) IntN(int) int { return 0 }

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type harness struct {
	t     *testing.T
	ctx   context.Context
	db    *database.DB
	out   *recorder
	rng   *scriptRand
	clock *clock
	c     *Coordinator
}

func newHarness(t *testing.T, configure ...func(*Options)) *harness {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", 16)
	require.NoError(t, err)
	require.NoError(t, db.InitSchema())
	t.Cleanup(func() { db.Close() })

	verifier, err := auth.New(&auth.Config{Secret: "test-secret", AdminCode: adminCode})
	require.NoError(t, err)

	h := &harness{
		t:     t,
		ctx:   context.Background(),
		db:    db,
		out:   newRecorder(),
		rng:   &scriptRand{fallback: 0.99},
		clock: &clock{now: time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)},
	}
	opts := Options{
		Admin: verifier,
		Rand:  h.rng,
		Now:   h.clock.Now,
	}
	for _, f := range configure {
		f(&opts)
	}
	h.c = New(db, h.out, opts)
	t.Cleanup(h.c.Close)
	return h
}

func (h *harness) do(conn ConnID, a Action) {
	h.t.Helper()
	require.NoError(h.t, h.c.Handle(h.ctx, conn, a))
}

func (h *harness) join(conn ConnID, name string) *models.User {
	h.t.Helper()
	h.do(conn, Join{Name: name})
	u, err := h.db.GetUserByName(h.ctx, name)
	require.NoError(h.t, err)
	return u
}

func (h *harness) admin(conn ConnID) {
	h.t.Helper()
	h.do(conn, JoinAdmin{Code: adminCode})
	require.Equal(h.t, RoleAdmin, h.c.watchers[conn])
}

// goLive starts a presentation from a fresh admin connection.
func (h *harness) goLive() {
	h.t.Helper()
	h.admin("admin")
	h.do("admin", StartSession{Title: "Demo day"})
	require.True(h.t, h.c.Live())
}

func (h *harness) user(id int64) *models.User {
	h.t.Helper()
	u, err := h.db.GetUserByID(h.ctx, id)
	require.NoError(h.t, err)
	return u
}

// spawn pins a species for a user, bypassing the weighted roll.
func (h *harness) spawn(userID int64, speciesID int) *spawn {
	h.t.Helper()
	s, err := h.c.spawnFor(h.ctx, userID, "meadow", speciesID, false)
	require.NoError(h.t, err)
	return s
}
