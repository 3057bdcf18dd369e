// Package catalog holds the static creature, zone, level and shop tables
// together with the pure spawn, catch and evolution rules built on them.
package catalog

import "fmt"

// Rarity is the spawn tier of a creature within a zone.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// rarityOrder fixes iteration order so seeded draws are reproducible.
var rarityOrder = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary}

// Species is one entry of the creature dex.
type Species struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

// Rand is the subset of *rand.Rand (math/rand/v2) the rules draw from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// GetSpecies returns the species with the given dex number.
func GetSpecies(id int) (Species, bool) {
	s, ok := species[id]
	if !ok {
		return Species{}, false
	}
	s.ID = id
	return s, true
}

// SpeciesName returns the display name for id, or a placeholder when unknown.
func SpeciesName(id int) string {
	if s, ok := species[id]; ok {
		return s.Name
	}
	return fmt.Sprintf("#%d", id)
}
