package game

import (
	"encoding/json"
	"fmt"

	"github.com/otychat/server/internal/catalog"
)

// Action is an inbound client message. The set is closed: only types in
// this file implement it.
type Action interface {
	ActionType() string
	action()
}

type Join struct {
	Name string `json:"name"`
}

type JoinDisplay struct{}

// JoinAdmin authenticates with either the admin code or a previously issued token.
type JoinAdmin struct {
	Code  string `json:"code,omitempty"`
	Token string `json:"token,omitempty"`
}

type ChangeZone struct {
	Zone string `json:"zone"`
}

// UpdateProfile sets the non-nil fields.
type UpdateProfile struct {
	Avatar    *string `json:"avatar,omitempty"`
	Status    *string `json:"status,omitempty"`
	NameColor *string `json:"name_color,omitempty"`
}

type SendReaction struct {
	Emoji string `json:"emoji"`
}

type SendQuestion struct {
	Text    string `json:"text,omitempty"`
	Drawing string `json:"drawing,omitempty"`
}

type UpvoteQuestion struct {
	QuestionID int64 `json:"question_id"`
}

type LogDrink struct{}

type CatchAttempt struct {
	Handle string       `json:"handle"`
	Ball   catalog.Ball `json:"ball"`
}

type RunFromSpawn struct{}

type Evolve struct {
	SpeciesID int                     `json:"species_id"`
	Method    catalog.EvolutionMethod `json:"method"`
	Stone     catalog.Stone           `json:"stone,omitempty"`
}

type BuyItem struct {
	ItemID string `json:"item_id"`
}

type SendDM struct {
	To      string `json:"to"`
	Text    string `json:"text,omitempty"`
	Drawing string `json:"drawing,omitempty"`
}

type SendKudos struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type GetUserCount struct{}

type GetLeaderboards struct{}

type GetCollection struct{}

type GetEvolutions struct {
	SpeciesID int `json:"species_id"`
}

type GetFeed struct {
	Limit int `json:"limit,omitempty"`
}

// Admin actions

type StartSession struct {
	Title string `json:"title"`
}

type EndSession struct{}

// ForceSpawn spawns immediately for every connected trainer, or only for
// Target when set. Zero values mean "roll as usual".
type ForceSpawn struct {
	Zone      string `json:"zone,omitempty"`
	SpeciesID int    `json:"species_id,omitempty"`
	Shiny     bool   `json:"shiny,omitempty"`
	Target    string `json:"target,omitempty"`
}

type ShowQuestion struct {
	QuestionID int64 `json:"question_id"`
}

type HideQuestion struct{}

type DismissQuestion struct {
	QuestionID int64 `json:"question_id"`
}

type DrawingPrompt struct {
	Prompt string `json:"prompt"`
}

func (Join) ActionType() string            { return "join" }
func (JoinDisplay) ActionType() string     { return "join-display" }
func (JoinAdmin) ActionType() string       { return "join-admin" }
func (ChangeZone) ActionType() string      { return "change-zone" }
func (UpdateProfile) ActionType() string   { return "update-profile" }
func (SendReaction) ActionType() string    { return "send-reaction" }
func (SendQuestion) ActionType() string    { return "send-question" }
func (UpvoteQuestion) ActionType() string  { return "upvote-question" }
func (LogDrink) ActionType() string        { return "log-drink" }
func (CatchAttempt) ActionType() string    { return "catch-attempt" }
func (RunFromSpawn) ActionType() string    { return "run-from-spawn" }
func (Evolve) ActionType() string          { return "evolve" }
func (BuyItem) ActionType() string         { return "buy-item" }
func (SendDM) ActionType() string          { return "send-dm" }
func (SendKudos) ActionType() string       { return "send-kudos" }
func (GetUserCount) ActionType() string    { return "get-user-count" }
func (GetLeaderboards) ActionType() string { return "get-leaderboards" }
func (GetCollection) ActionType() string   { return "get-collection" }
func (GetEvolutions) ActionType() string   { return "get-evolutions" }
func (GetFeed) ActionType() string         { return "get-feed" }
func (StartSession) ActionType() string    { return "admin:start-session" }
func (EndSession) ActionType() string      { return "admin:end-session" }
func (ForceSpawn) ActionType() string      { return "admin:force-spawn" }
func (ShowQuestion) ActionType() string    { return "admin:show-question" }
func (HideQuestion) ActionType() string    { return "admin:hide-question" }
func (DismissQuestion) ActionType() string { return "admin:dismiss-question" }
func (DrawingPrompt) ActionType() string   { return "admin:drawing-prompt" }

func (Join) action()            {}
func (JoinDisplay) action()     {}
func (JoinAdmin) action()       {}
func (ChangeZone) action()      {}
func (UpdateProfile) action()   {}
func (SendReaction) action()    {}
func (SendQuestion) action()    {}
func (UpvoteQuestion) action()  {}
func (LogDrink) action()        {}
func (CatchAttempt) action()    {}
func (RunFromSpawn) action()    {}
func (Evolve) action()          {}
func (BuyItem) action()         {}
func (SendDM) action()          {}
func (SendKudos) action()       {}
func (GetUserCount) action()    {}
func (GetLeaderboards) action() {}
func (GetCollection) action()   {}
func (GetEvolutions) action()   {}
func (GetFeed) action()         {}
func (StartSession) action()    {}
func (EndSession) action()      {}
func (ForceSpawn) action()      {}
func (ShowQuestion) action()    {}
func (HideQuestion) action()    {}
func (DismissQuestion) action() {}
func (DrawingPrompt) action()   {}

var actionDecoders = map[string]func(json.RawMessage) (Action, error){}

func register[T Action]() {
	var zero T
	actionDecoders[zero.ActionType()] = func(data json.RawMessage) (Action, error) {
		var v T
		if len(data) > 0 && string(data) != "null" {
			if err := json.Unmarshal(data, &v); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
}

func init() {
	register[Join]()
	register[JoinDisplay]()
	register[JoinAdmin]()
	register[ChangeZone]()
	register[UpdateProfile]()
	register[SendReaction]()
	register[SendQuestion]()
	register[UpvoteQuestion]()
	register[LogDrink]()
	register[CatchAttempt]()
	register[RunFromSpawn]()
	register[Evolve]()
	register[BuyItem]()
	register[SendDM]()
	register[SendKudos]()
	register[GetUserCount]()
	register[GetLeaderboards]()
	register[GetCollection]()
	register[GetEvolutions]()
	register[GetFeed]()
	register[StartSession]()
	register[EndSession]()
	register[ForceSpawn]()
	register[ShowQuestion]()
	register[HideQuestion]()
	register[DismissQuestion]()
	register[DrawingPrompt]()
}

// DecodeAction parses an envelope into its typed action.
func DecodeAction(raw []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("invalid envelope: %w", err)
	}
	decode, ok := actionDecoders[env.Type]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", env.Type)
	}
	a, err := decode(env.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", env.Type, err)
	}
	return a, nil
}
