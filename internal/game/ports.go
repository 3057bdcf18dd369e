package game

import (
	"context"
	"log"
	"sync"

	"github.com/otychat/server/internal/auth"
	"github.com/otychat/server/internal/models"
)

// ConnID identifies one live transport connection.
type ConnID string

// Role groups connections for targeted broadcasts.
type Role string

const (
	RolePlayer  Role = "player"
	RoleDisplay Role = "display"
	RoleAdmin   Role = "admin"
)

// Broadcaster delivers events to connections. Sends are fire-and-forget;
// delivery failures to a gone peer are the transport's concern.
type Broadcaster interface {
	ToAll(ev Event)
	ToRole(role Role, ev Event)
	ToConn(conn ConnID, ev Event)
	SetRole(conn ConnID, role Role)
}

// Leaderboard keeps the ranked views. Increment is called on every scored
// change; implementations that rank straight from the store may ignore it.
type Leaderboard interface {
	Increment(ctx context.Context, name, metric string, delta int64) error
	Top(ctx context.Context, limit int) (models.Leaderboards, error)
}

// Feed stores recent activity.
type Feed interface {
	Push(ctx context.Context, item models.FeedItem) error
	Recent(ctx context.Context, n int) ([]models.FeedItem, error)
}

// Notifier reaches a trainer that is not connected.
type Notifier interface {
	Notify(ctx context.Context, name, title, body string) error
}

// AdminVerifier authenticates admin connections.
type AdminVerifier interface {
	VerifyCode(code string) bool
	GenerateAdminToken(subject string) (string, error)
	ValidateToken(token string) (*auth.AdminClaims, error)
}

// MemoryFeed is a capped in-process feed, newest first.
type MemoryFeed struct {
	mu    sync.Mutex
	size  int
	items []models.FeedItem
}

func NewMemoryFeed(size int) *MemoryFeed {
	if size <= 0 {
		size = 50
	}
	return &MemoryFeed{size: size}
}

func (f *MemoryFeed) Push(_ context.Context, item models.FeedItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append([]models.FeedItem{item}, f.items...)
	if len(f.items) > f.size {
		f.items = f.items[:f.size]
	}
	return nil
}

func (f *MemoryFeed) Recent(_ context.Context, n int) ([]models.FeedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if n <= 0 || n > len(f.items) {
		n = len(f.items)
	}
	out := make([]models.FeedItem, n)
	copy(out, f.items[:n])
	return out, nil
}

// LogNotifier writes notifications to the log.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, name, title, body string) error {
	log.Printf("[Notify] %s: %s - %s", name, title, body)
	return nil
}
