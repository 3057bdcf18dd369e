package models

import "time"

// User represents a trainer identity
type User struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Coins       int64     `json:"coins"`
	Title       string    `json:"title"`
	Level       int       `json:"level"`
	XP          int64     `json:"xp"`
	CurrentZone string    `json:"current_zone"`
	ShinyCharm  bool      `json:"shiny_charm"`
	Avatar      string    `json:"avatar"`
	Status      string    `json:"status"`
	NameColor   string    `json:"name_color"`
	CreatedAt   time.Time `json:"created_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

// Balls holds the stored capture items. The basic ball is unlimited and
// never stored.
type Balls struct {
	Great  int64 `json:"great"`
	Ultra  int64 `json:"ultra"`
	Master int64 `json:"master"`
}

// Effect is an active timed or use-limited modifier
type Effect struct {
	Type          string     `json:"type"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	UsesRemaining *int       `json:"uses_remaining,omitempty"`
}

// Creature is one caught-creature record
type Creature struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	SpeciesID   int       `json:"species_id"`
	Name        string    `json:"name"`
	Shiny       bool      `json:"shiny"`
	Zone        string    `json:"zone"`
	EvolvedFrom *int64    `json:"evolved_from,omitempty"`
	CaughtAt    time.Time `json:"caught_at"`
}

// CreatureCounts summarises a trainer's collection
type CreatureCounts struct {
	Total  int64 `json:"total"`
	Unique int64 `json:"unique"`
	Shiny  int64 `json:"shiny"`
}

// Presentation represents a live session
type Presentation struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

// StatCounts are reaction, question and drink counters, either for one
// presentation or summed over all of them.
type StatCounts struct {
	Reactions int64 `json:"reactions"`
	Questions int64 `json:"questions"`
	Drinks    int64 `json:"drinks"`
}

// Question is an audience question, optionally a drawing
type Question struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Author         string    `json:"author"`
	PresentationID *int64    `json:"presentation_id,omitempty"`
	Text           string    `json:"text,omitempty"`
	Image          string    `json:"image,omitempty"`
	Votes          int64     `json:"votes"`
	CreatedAt      time.Time `json:"created_at"`
}

// KudosCounts are kudos sent and received by one trainer
type KudosCounts struct {
	Sent     int64 `json:"sent"`
	Received int64 `json:"received"`
}

// Leaderboard metrics
const (
	MetricXP        = "xp"
	MetricCaught    = "caught"
	MetricShiny     = "shiny"
	MetricReactions = "reactions"
)

// LeaderboardMetrics lists every ranked metric
var LeaderboardMetrics = []string{MetricXP, MetricCaught, MetricShiny, MetricReactions}

// LeaderboardEntry represents one ranked row
type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Level int    `json:"level,omitempty"`
	Value int64  `json:"value"`
}

// TrainerProfile is the display part of a trainer shown next to a ranking
type TrainerProfile struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Level int    `json:"level"`
}

// Leaderboards groups the top lists for every metric
type Leaderboards struct {
	XP        []LeaderboardEntry `json:"xp"`
	Caught    []LeaderboardEntry `json:"caught"`
	Shiny     []LeaderboardEntry `json:"shiny"`
	Reactions []LeaderboardEntry `json:"reactions"`
}

// TrainerTotals is one user's value for every ranked metric
type TrainerTotals struct {
	Name      string
	XP        int64
	Caught    int64
	Shiny     int64
	Reactions int64
}

// Feed item kinds
const (
	FeedReaction    = "reaction"
	FeedQuestion    = "question"
	FeedDrawing     = "drawing"
	FeedDrink       = "drink"
	FeedCatch       = "catch"
	FeedEvolution   = "evolution"
	FeedAchievement = "achievement"
	FeedLevelUp     = "level_up"
	FeedKudos       = "kudos"
)

// FeedItem is one entry of the recent-activity feed
type FeedItem struct {
	Kind   string    `json:"kind"`
	Name   string    `json:"name"`
	Detail string    `json:"detail,omitempty"`
	Icon   string    `json:"icon,omitempty"`
	Target string    `json:"target,omitempty"`
	Shiny  bool      `json:"shiny,omitempty"`
	At     time.Time `json:"at"`
}
