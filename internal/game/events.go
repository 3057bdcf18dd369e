package game

import (
	"encoding/json"
	"time"

	"github.com/otychat/server/internal/catalog"
	"github.com/otychat/server/internal/models"
)

// Event is an outbound message. The set is closed: only types in this
// file implement it.
type Event interface {
	EventType() string
	event()
}

// Envelope is the wire shape of every message in both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Encode wraps an event in its envelope.
func Encode(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: ev.EventType(), Data: data})
}

// Rejection reasons
const (
	ReasonInvalidName       = "invalid_name"
	ReasonInvalidInput      = "invalid_input"
	ReasonNotLive           = "not_live"
	ReasonUnauthorized      = "unauthorized"
	ReasonUnknownZone       = "unknown_zone"
	ReasonZoneLocked        = "zone_locked"
	ReasonUnknownItem       = "unknown_item"
	ReasonUnknownBall       = "unknown_ball"
	ReasonUnknownSpecies    = "unknown_species"
	ReasonInsufficientCoins = "insufficient_coins"
	ReasonInsufficientBalls = "insufficient_balls"
	ReasonAlreadyOwned      = "already_owned"
	ReasonNotOwned          = "not_owned"
	ReasonCannotEvolve      = "cannot_evolve"
	ReasonNoStone           = "no_stone"
	ReasonSelfKudos         = "self_kudos"
	ReasonUnknownUser       = "unknown_user"
	ReasonCooldown          = "cooldown"
	ReasonFled              = "fled"
	ReasonBrokeFree         = "broke_free"
	ReasonRan               = "ran"
	ReasonSuperseded        = "superseded"
)

// OnlineTrainer is one roster row.
type OnlineTrainer struct {
	Name  string `json:"name"`
	Zone  string `json:"zone"`
	Level int    `json:"level"`
	Title string `json:"title,omitempty"`
}

// Rejected reports a validation failure for an action with no result event of its own.
type Rejected struct {
	Action  string `json:"action"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type UserCount struct {
	Count int `json:"count"`
}

type UserList struct {
	Users []OnlineTrainer `json:"users"`
}

type SessionState struct {
	Live      bool       `json:"live"`
	ID        int64      `json:"id,omitempty"`
	Title     string     `json:"title,omitempty"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// TrainerStats is the full state snapshot of one identity.
type TrainerStats struct {
	Name          string                  `json:"name"`
	Title         string                  `json:"title"`
	Coins         int64                   `json:"coins"`
	Level         int                     `json:"level"`
	XP            int64                   `json:"xp"`
	NextLevelXP   *int64                  `json:"next_level_xp"`
	CurrentZone   string                  `json:"current_zone"`
	UnlockedZones []string                `json:"unlocked_zones"`
	ShinyCharm    bool                    `json:"shiny_charm"`
	Avatar        string                  `json:"avatar,omitempty"`
	Status        string                  `json:"status,omitempty"`
	NameColor     string                  `json:"name_color,omitempty"`
	Stats         models.StatCounts       `json:"stats"`
	Creatures     models.CreatureCounts   `json:"creatures"`
	Balls         models.Balls            `json:"balls"`
	Stones        map[catalog.Stone]int64 `json:"stones"`
	Effects       []models.Effect         `json:"effects"`
	Achievements  []string                `json:"achievements"`
	Kudos         models.KudosCounts      `json:"kudos"`
	SessionStats  *models.StatCounts      `json:"session_stats,omitempty"`
}

type XPGained struct {
	Amount      int64  `json:"amount"`
	XP          int64  `json:"xp"`
	Level       int    `json:"level"`
	NextLevelXP *int64 `json:"next_level_xp"`
}

type LevelUp struct {
	Name     string   `json:"name"`
	OldLevel int      `json:"old_level"`
	NewLevel int      `json:"new_level"`
	NewZones []string `json:"new_zones"`
}

type AchievementUnlocked struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Achievement string `json:"achievement"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Reward      int64  `json:"reward"`
	Title       string `json:"title,omitempty"`
}

type FeedEvent struct {
	models.FeedItem
}

type FeedData struct {
	Items []models.FeedItem `json:"items"`
}

type LeaderboardsEvent struct {
	models.Leaderboards
}

type ZonesData struct {
	Zones        []*catalog.Zone `json:"zones"`
	Requirements map[string]int  `json:"requirements"`
}

type ShopItems struct {
	Items []catalog.ShopItem `json:"items"`
}

type QuestionsSync struct {
	Questions []models.Question `json:"questions"`
}

type StatsSync struct {
	Online      int   `json:"online"`
	Questions   int   `json:"questions"`
	TotalDrinks int64 `json:"total_drinks"`
}

type AdminAccepted struct {
	Token string `json:"token,omitempty"`
}

type ZoneChangeResult struct {
	OK       bool   `json:"ok"`
	Zone     string `json:"zone"`
	ZoneName string `json:"zone_name,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Message  string `json:"message,omitempty"`
}

type ProfileUpdated struct {
	Fields map[string]string `json:"fields"`
}

type EmojiBlast struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

type QuestionAdded struct {
	models.Question
}

type DrawingBlast struct {
	Name    string `json:"name"`
	Text    string `json:"text,omitempty"`
	Drawing string `json:"drawing"`
}

type QuestionUpvoted struct {
	QuestionID int64 `json:"question_id"`
	Votes      int64 `json:"votes"`
}

type DMReceived struct {
	From    string    `json:"from"`
	Text    string    `json:"text,omitempty"`
	Drawing string    `json:"drawing,omitempty"`
	At      time.Time `json:"at"`
}

type DrinkLogged struct {
	Name        string `json:"name"`
	Count       int64  `json:"count"`
	TotalDrinks int64  `json:"total_drinks"`
}

type KudosResult struct {
	OK          bool     `json:"ok"`
	To          string   `json:"to"`
	Reason      string   `json:"reason,omitempty"`
	Message     string   `json:"message,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	RetryAfter  int64    `json:"retry_after_seconds,omitempty"`
}

type KudosSent struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// SpawnAppeared is sent privately to the spawn's owner.
type SpawnAppeared struct {
	Handle           string         `json:"handle"`
	SpeciesID        int            `json:"species_id"`
	Name             string         `json:"name"`
	Rarity           catalog.Rarity `json:"rarity"`
	Shiny            bool           `json:"shiny"`
	Zone             string         `json:"zone"`
	ExpiresAt        time.Time      `json:"expires_at"`
	CatchWindow      int64          `json:"catch_window_ms"`
	QuickCatchWindow int64          `json:"quick_catch_window_ms"`
}

type SpawnWave struct {
	Count int `json:"count"`
}

type SpawnCleared struct {
	Handle string `json:"handle"`
	Reason string `json:"reason"`
}

// CatchResult distinguishes a retryable miss (Reason broke_free) from the
// terminal fled outcome.
type CatchResult struct {
	Handle            string               `json:"handle"`
	Success           bool                 `json:"success"`
	SpeciesID         int                  `json:"species_id"`
	Name              string               `json:"name"`
	Rarity            catalog.Rarity       `json:"rarity"`
	Shiny             bool                 `json:"shiny"`
	Zone              string               `json:"zone"`
	Ball              catalog.Ball         `json:"ball"`
	QuickCatch        bool                 `json:"quick_catch,omitempty"`
	Reward            *catalog.CatchReward `json:"reward,omitempty"`
	CatchChance       float64              `json:"catch_chance"`
	AttemptsRemaining int                  `json:"attempts_remaining"`
	Fled              bool                 `json:"fled,omitempty"`
	Reason            string               `json:"reason,omitempty"`
	Message           string               `json:"message,omitempty"`
}

type BallsUpdated struct {
	models.Balls
}

type CollectionData struct {
	Creatures []models.Creature `json:"creatures"`
}

type EvolutionsData struct {
	SpeciesID int                       `json:"species_id"`
	Options   []catalog.EvolutionOption `json:"options"`
}

type EvolveResult struct {
	OK      bool                    `json:"ok"`
	FromID  int                     `json:"from_id"`
	ToID    int                     `json:"to_id,omitempty"`
	ToName  string                  `json:"to_name,omitempty"`
	Method  catalog.EvolutionMethod `json:"method"`
	Stone   catalog.Stone           `json:"stone,omitempty"`
	Reason  string                  `json:"reason,omitempty"`
	Message string                  `json:"message,omitempty"`
}

type ShopResult struct {
	OK         bool   `json:"ok"`
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name,omitempty"`
	NewBalance int64  `json:"new_balance"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message,omitempty"`
}

type QuestionShown struct {
	models.Question
}

type QuestionHidden struct{}

type QuestionDismissed struct {
	QuestionID int64 `json:"question_id"`
}

type DrawingPromptEvent struct {
	Prompt string `json:"prompt"`
}

func (Rejected) EventType() string            { return "error" }
func (UserCount) EventType() string           { return "user-count" }
func (UserList) EventType() string            { return "user-list" }
func (SessionState) EventType() string        { return "session-state" }
func (TrainerStats) EventType() string        { return "trainer-stats" }
func (XPGained) EventType() string            { return "xp-gained" }
func (LevelUp) EventType() string             { return "level-up" }
func (AchievementUnlocked) EventType() string { return "achievement-unlocked" }
func (FeedEvent) EventType() string           { return "feed-event" }
func (FeedData) EventType() string            { return "feed-data" }
func (LeaderboardsEvent) EventType() string   { return "leaderboards" }
func (ZonesData) EventType() string           { return "zones-data" }
func (ShopItems) EventType() string           { return "shop-items" }
func (QuestionsSync) EventType() string       { return "questions-sync" }
func (StatsSync) EventType() string           { return "stats-sync" }
func (AdminAccepted) EventType() string       { return "admin-accepted" }
func (ZoneChangeResult) EventType() string    { return "zone-change-result" }
func (ProfileUpdated) EventType() string      { return "profile-updated" }
func (EmojiBlast) EventType() string          { return "emoji-blast" }
func (QuestionAdded) EventType() string       { return "question-added" }
func (DrawingBlast) EventType() string        { return "drawing-blast" }
func (QuestionUpvoted) EventType() string     { return "question-upvoted" }
func (DMReceived) EventType() string          { return "dm-received" }
func (DrinkLogged) EventType() string         { return "drink-logged" }
func (KudosResult) EventType() string         { return "kudos-result" }
func (KudosSent) EventType() string           { return "kudos" }
func (SpawnAppeared) EventType() string       { return "spawn" }
func (SpawnWave) EventType() string           { return "spawn-wave" }
func (SpawnCleared) EventType() string        { return "spawn-cleared" }
func (CatchResult) EventType() string         { return "catch-result" }
func (BallsUpdated) EventType() string        { return "balls-updated" }
func (CollectionData) EventType() string      { return "collection-data" }
func (EvolutionsData) EventType() string      { return "evolutions-data" }
func (EvolveResult) EventType() string        { return "evolve-result" }
func (ShopResult) EventType() string          { return "shop-result" }
func (QuestionShown) EventType() string       { return "show-question" }
func (QuestionHidden) EventType() string      { return "hide-question" }
func (QuestionDismissed) EventType() string   { return "question-dismissed" }
func (DrawingPromptEvent) EventType() string  { return "drawing-prompt" }

func (Rejected) event()            {}
func (UserCount) event()           {}
func (UserList) event()            {}
func (SessionState) event()        {}
func (TrainerStats) event()        {}
func (XPGained) event()            {}
func (LevelUp) event()             {}
func (AchievementUnlocked) event() {}
func (FeedEvent) event()           {}
func (FeedData) event()            {}
func (LeaderboardsEvent) event()   {}
func (ZonesData) event()           {}
func (ShopItems) event()           {}
func (QuestionsSync) event()       {}
func (StatsSync) event()           {}
func (AdminAccepted) event()       {}
func (ZoneChangeResult) event()    {}
func (ProfileUpdated) event()      {}
func (EmojiBlast) event()          {}
func (QuestionAdded) event()       {}
func (DrawingBlast) event()        {}
func (QuestionUpvoted) event()     {}
func (DMReceived) event()          {}
func (DrinkLogged) event()         {}
func (KudosResult) event()         {}
func (KudosSent) event()           {}
func (SpawnAppeared) event()       {}
func (SpawnWave) event()           {}
func (SpawnCleared) event()        {}
func (CatchResult) event()         {}
func (BallsUpdated) event()        {}
func (CollectionData) event()      {}
func (EvolutionsData) event()      {}
func (EvolveResult) event()        {}
func (ShopResult) event()          {}
func (QuestionShown) event()       {}
func (QuestionHidden) event()      {}
func (QuestionDismissed) event()   {}
func (DrawingPromptEvent) event()  {}
