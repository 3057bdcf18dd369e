package catalog

// Stone is an evolution item.
type Stone string

const (
	StoneFire    Stone = "fire_stone"
	StoneWater   Stone = "water_stone"
	StoneThunder Stone = "thunder_stone"
	StoneLeaf    Stone = "leaf_stone"
	StoneMoon    Stone = "moon_stone"
	StoneSun     Stone = "sun_stone"
	StoneDragon  Stone = "dragon_scale"
)

// Stones lists every stone in display order.
var Stones = []Stone{StoneFire, StoneWater, StoneThunder, StoneLeaf, StoneMoon, StoneSun, StoneDragon}

// EvolutionMethod selects which evolution map applies.
type EvolutionMethod string

const (
	MethodLevel EvolutionMethod = "level"
	MethodStone EvolutionMethod = "stone"
)

// Evolution is one edge of an evolution map.
type Evolution struct {
	To           int    `json:"to"`
	Name         string `json:"name"`
	TrainerLevel int    `json:"trainer_level,omitempty"`
}

var stoneEvolutions = map[Stone]map[int]Evolution{
	StoneFire: {
		37:  {To: 38, Name: "Ninetales"},
		58:  {To: 59, Name: "Arcanine"},
		133: {To: 136, Name: "Flareon"},
		240: {To: 126, Name: "Magmar"},
	},
	StoneWater: {
		61:  {To: 62, Name: "Poliwrath"},
		90:  {To: 91, Name: "Cloyster"},
		120: {To: 121, Name: "Starmie"},
		133: {To: 134, Name: "Vaporeon"},
		349: {To: 350, Name: "Milotic"},
	},
	StoneThunder: {
		25:  {To: 26, Name: "Raichu"},
		133: {To: 135, Name: "Jolteon"},
		239: {To: 125, Name: "Electabuzz"},
	},
	StoneLeaf: {
		44:  {To: 45, Name: "Vileplume"},
		70:  {To: 71, Name: "Victreebel"},
		102: {To: 103, Name: "Exeggutor"},
	},
	StoneMoon: {
		30: {To: 31, Name: "Nidoqueen"},
		33: {To: 34, Name: "Nidoking"},
		35: {To: 36, Name: "Clefable"},
		39: {To: 40, Name: "Wigglytuff"},
	},
	StoneSun: {
		44:  {To: 182, Name: "Bellossom"},
		191: {To: 192, Name: "Sunflora"},
	},
	StoneDragon: {
		117: {To: 230, Name: "Kingdra"},
	},
}

var levelEvolutions = map[int]Evolution{
	129: {To: 130, TrainerLevel: 10, Name: "Gyarados"},
	147: {To: 148, TrainerLevel: 8, Name: "Dragonair"},
	148: {To: 149, TrainerLevel: 15, Name: "Dragonite"},
	246: {To: 247, TrainerLevel: 10, Name: "Pupitar"},
	247: {To: 248, TrainerLevel: 18, Name: "Tyranitar"},
	371: {To: 372, TrainerLevel: 12, Name: "Shelgon"},
	372: {To: 373, TrainerLevel: 20, Name: "Salamence"},
	374: {To: 375, TrainerLevel: 10, Name: "Metang"},
	375: {To: 376, TrainerLevel: 18, Name: "Metagross"},
}

// IsValidStone reports whether s is a known stone.
func IsValidStone(s Stone) bool {
	_, ok := stoneEvolutions[s]
	return ok
}

// StoneEvolution returns the evolution speciesID takes with stone, if any.
func StoneEvolution(speciesID int, stone Stone) (Evolution, bool) {
	evo, ok := stoneEvolutions[stone][speciesID]
	return evo, ok
}

// LevelEvolution returns the trainer-level evolution of speciesID, if any.
func LevelEvolution(speciesID int) (Evolution, bool) {
	evo, ok := levelEvolutions[speciesID]
	return evo, ok
}

// CanEvolveWithStone requires a map entry and at least one held stone.
func CanEvolveWithStone(speciesID int, stone Stone, held int64) bool {
	_, ok := StoneEvolution(speciesID, stone)
	return ok && held >= 1
}

// CanEvolveWithLevel requires a map entry whose threshold level is met.
func CanEvolveWithLevel(speciesID, trainerLevel int) bool {
	evo, ok := LevelEvolution(speciesID)
	return ok && trainerLevel >= evo.TrainerLevel
}

// EvolutionOption is an evolution the trainer can perform right now.
type EvolutionOption struct {
	Method EvolutionMethod `json:"method"`
	Stone  Stone           `json:"stone,omitempty"`
	To     int             `json:"to"`
	Name   string          `json:"name"`
}

// AvailableEvolutions lists every evolution of speciesID the trainer qualifies for.
func AvailableEvolutions(speciesID, trainerLevel int, stones map[Stone]int64) []EvolutionOption {
	var out []EvolutionOption
	if CanEvolveWithLevel(speciesID, trainerLevel) {
		evo := levelEvolutions[speciesID]
		out = append(out, EvolutionOption{Method: MethodLevel, To: evo.To, Name: evo.Name})
	}
	for _, s := range Stones {
		if CanEvolveWithStone(speciesID, s, stones[s]) {
			evo := stoneEvolutions[s][speciesID]
			out = append(out, EvolutionOption{Method: MethodStone, Stone: s, To: evo.To, Name: evo.Name})
		}
	}
	return out
}
