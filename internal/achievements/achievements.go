// Package achievements decides which achievements a trainer has newly earned.
package achievements

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed achievements.toml
var achievementsTOML []byte

// Metric names the counter or flag an achievement is measured against.
type Metric string

const (
	MetricReactions     Metric = "reactions"
	MetricQuestions     Metric = "questions"
	MetricDrinks        Metric = "drinks"
	MetricCaught        Metric = "caught"
	MetricDrawing       Metric = "drawing"
	MetricDM            Metric = "dm"
	MetricShiny         Metric = "shiny"
	MetricLegendary     Metric = "legendary"
	MetricEarlyBird     Metric = "early_bird"
	MetricQuestionVotes Metric = "question_votes"
	MetricShopPurchase  Metric = "shop_purchase"
)

// Achievement is one unlockable definition.
type Achievement struct {
	ID          string `toml:"id" json:"id"`
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description"`
	Icon        string `toml:"icon" json:"icon"`
	Reward      int64  `toml:"reward" json:"reward"`
	Title       string `toml:"title" json:"title,omitempty"`
	Metric      Metric `toml:"metric" json:"-"`
	Threshold   int64  `toml:"threshold" json:"-"`
}

// Stats are lifetime totals for a trainer.
type Stats struct {
	Reactions int64
	Questions int64
	Drinks    int64
	Caught    int64
}

// Flags describe the action that triggered an evaluation. They only hold
// for that one call.
type Flags struct {
	Drawing       bool
	DM            bool
	Shiny         bool
	Legendary     bool
	EarlyBird     bool
	ShopPurchase  bool
	QuestionVotes int64
}

func (s Stats) value(m Metric, f Flags) int64 {
	switch m {
	case MetricReactions:
		return s.Reactions
	case MetricQuestions:
		return s.Questions
	case MetricDrinks:
		return s.Drinks
	case MetricCaught:
		return s.Caught
	case MetricDrawing:
		return boolMetric(f.Drawing)
	case MetricDM:
		return boolMetric(f.DM)
	case MetricShiny:
		return boolMetric(f.Shiny)
	case MetricLegendary:
		return boolMetric(f.Legendary)
	case MetricEarlyBird:
		return boolMetric(f.EarlyBird)
	case MetricShopPurchase:
		return boolMetric(f.ShopPurchase)
	case MetricQuestionVotes:
		return f.QuestionVotes
	}
	return 0
}

func boolMetric(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

var knownMetrics = map[Metric]bool{
	MetricReactions: true, MetricQuestions: true, MetricDrinks: true, MetricCaught: true,
	MetricDrawing: true, MetricDM: true, MetricShiny: true, MetricLegendary: true,
	MetricEarlyBird: true, MetricQuestionVotes: true, MetricShopPurchase: true,
}

// Set is a loaded, ordered collection of definitions.
type Set struct {
	defs []Achievement
	byID map[string]Achievement
}

type achievementsFile struct {
	Achievements []Achievement `toml:"achievement"`
}

// Load parses TOML definitions.
func Load(data []byte) (*Set, error) {
	var f achievementsFile
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode achievements: %w", err)
	}

	set := &Set{byID: make(map[string]Achievement, len(f.Achievements))}
	for _, a := range f.Achievements {
		if a.ID == "" {
			return nil, fmt.Errorf("achievement without id")
		}
		if _, dup := set.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate achievement %q", a.ID)
		}
		if !knownMetrics[a.Metric] {
			return nil, fmt.Errorf("achievement %q: unknown metric %q", a.ID, a.Metric)
		}
		if a.Threshold < 1 {
			return nil, fmt.Errorf("achievement %q: threshold must be positive", a.ID)
		}
		if a.Reward < 0 {
			return nil, fmt.Errorf("achievement %q: negative reward", a.ID)
		}
		set.byID[a.ID] = a
		set.defs = append(set.defs, a)
	}
	return set, nil
}

// Default returns the embedded definitions.
func Default() *Set {
	set, err := Load(achievementsTOML)
	if err != nil {
		panic(err)
	}
	return set
}

// Get looks up a definition.
func (s *Set) Get(id string) (Achievement, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// All returns every definition in file order.
func (s *Set) All() []Achievement {
	out := make([]Achievement, len(s.defs))
	copy(out, s.defs)
	return out
}

// Evaluate returns, in definition order, the achievements whose condition
// holds for stats and flags and whose id is not in unlocked. It has no side
// effects; callers record each result with an insert-if-absent write.
func (s *Set) Evaluate(stats Stats, flags Flags, unlocked map[string]bool) []Achievement {
	var out []Achievement
	for _, a := range s.defs {
		if unlocked[a.ID] {
			continue
		}
		if stats.value(a.Metric, flags) >= a.Threshold {
			out = append(out, a)
		}
	}
	return out
}

// Milestone is progress toward the thresholds of one counter.
type Milestone struct {
	Current    int64   `json:"current"`
	Milestones []int64 `json:"milestones"`
}

// Progress reports the counter milestones defined for reactions, questions,
// drinks and catches.
func (s *Set) Progress(stats Stats) map[Metric]Milestone {
	out := map[Metric]Milestone{
		MetricReactions: {Current: stats.Reactions},
		MetricQuestions: {Current: stats.Questions},
		MetricDrinks:    {Current: stats.Drinks},
		MetricCaught:    {Current: stats.Caught},
	}
	for _, a := range s.defs {
		m, ok := out[a.Metric]
		if !ok {
			continue
		}
		m.Milestones = append(m.Milestones, a.Threshold)
		out[a.Metric] = m
	}
	return out
}
