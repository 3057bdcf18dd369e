package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(list []Achievement) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestDefaultDefinitions(t *testing.T) {
	set := Default()
	assert.Len(t, set.All(), 21)

	a, ok := set.Get("reactions_50")
	require.True(t, ok)
	assert.Equal(t, int64(50), a.Reward)
	assert.Equal(t, "Hype Beast", a.Title)

	a, ok = set.Get("first_reaction")
	require.True(t, ok)
	assert.Empty(t, a.Title)
}

func TestEvaluateThresholds(t *testing.T) {
	set := Default()

	got := set.Evaluate(Stats{Reactions: 10}, Flags{}, nil)
	assert.Equal(t, []string{"first_reaction", "reactions_10"}, ids(got))

	got = set.Evaluate(Stats{Drinks: 5, Caught: 1}, Flags{}, nil)
	assert.Equal(t, []string{"first_pokemon", "first_drink", "drinks_3", "drinks_5"}, ids(got))
}

func TestEvaluateSkipsUnlocked(t *testing.T) {
	set := Default()
	stats := Stats{Reactions: 10}

	first := set.Evaluate(stats, Flags{}, nil)
	unlocked := map[string]bool{}
	for _, a := range first {
		unlocked[a.ID] = true
	}

	assert.Empty(t, set.Evaluate(stats, Flags{}, unlocked))
}

func TestEvaluateFlags(t *testing.T) {
	set := Default()

	got := set.Evaluate(Stats{}, Flags{Shiny: true, Legendary: true}, nil)
	assert.Equal(t, []string{"first_shiny", "legendary_catch"}, ids(got))

	got = set.Evaluate(Stats{}, Flags{QuestionVotes: 9}, nil)
	assert.Empty(t, got)

	got = set.Evaluate(Stats{}, Flags{QuestionVotes: 10, ShopPurchase: true, EarlyBird: true}, nil)
	assert.Equal(t, []string{"early_bird", "popular_question", "shop_purchase"}, ids(got))
}

func TestLoadRejectsBadDefinitions(t *testing.T) {
	_, err := Load([]byte(`
[[achievement]]
id = "x"
metric = "naps"
threshold = 1
`))
	assert.Error(t, err)

	_, err = Load([]byte(`
[[achievement]]
id = "x"
metric = "drinks"
threshold = 0
`))
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	p := Default().Progress(Stats{Reactions: 12})
	assert.Equal(t, int64(12), p[MetricReactions].Current)
	assert.Equal(t, []int64{1, 10, 50, 100}, p[MetricReactions].Milestones)
	assert.Equal(t, []int64{1, 5, 20}, p[MetricCaught].Milestones)
}
