package catalog

// Zone is a themed area gating which creatures can spawn.
type Zone struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	LevelRequired int              `json:"level_required"`
	Pool          map[Rarity][]int `json:"pool"`
	Weights       map[Rarity]int   `json:"weights"`
}

// Zone ID constants
const (
	ZoneMeadow   = "meadow"
	ZoneForest   = "forest"
	ZoneMountain = "mountain"
	ZoneOcean    = "ocean"
	ZoneSky      = "sky"
	ZoneMystery  = "mystery"
)

// DefaultZone is where every new trainer starts.
const DefaultZone = ZoneMeadow

var zoneOrder = []string{ZoneMeadow, ZoneForest, ZoneMountain, ZoneOcean, ZoneSky, ZoneMystery}

var zones = map[string]*Zone{
	ZoneMeadow: {
		ID:            ZoneMeadow,
		Name:          "Starter Meadow",
		Description:   "A peaceful meadow perfect for beginners",
		LevelRequired: 1,
		Pool: map[Rarity][]int{
			RarityCommon:   {1, 4, 7, 10, 13, 16, 19, 21, 23, 29, 32, 35, 39, 41, 43, 46, 48, 52, 54, 56, 60, 63, 69, 74, 77, 84, 92, 96, 98, 100, 109, 114, 116, 118, 120, 129, 152, 155, 158, 161, 163, 165, 167, 172, 173, 174, 175, 177, 179, 183, 187, 191, 194, 198, 209, 216, 220, 231, 234, 252, 255, 258, 261, 263, 265, 270, 273, 276, 278, 283, 285, 287, 290, 293, 298, 300, 304, 309, 311, 312, 316, 322, 325, 327, 331, 333, 339, 341, 352, 353, 355, 363},
			RarityUncommon: {2, 5, 8, 25, 37, 58, 66, 79, 81, 83, 104, 108, 111, 122, 124, 125, 126, 128, 133, 137, 147, 190, 193, 203, 206, 213, 215, 218, 223, 225, 228, 238, 239, 240, 280, 296, 318, 328, 337, 338, 343, 345, 347, 349, 351, 361},
			RarityRare:     {3, 6, 9, 26, 113, 115, 123, 127, 131, 132, 142, 143, 149, 201, 212, 214, 222, 226, 227, 230, 241, 242, 248, 282, 288, 289, 291, 292, 306, 319, 334, 344, 346, 348, 350, 354, 356, 357, 358, 359, 362, 365},
		},
		Weights: map[Rarity]int{RarityCommon: 70, RarityUncommon: 25, RarityRare: 5},
	},
	ZoneForest: {
		ID:            ZoneForest,
		Name:          "Verdant Forest",
		Description:   "A dense forest teeming with Bug and Grass types",
		LevelRequired: 5,
		Pool: map[Rarity][]int{
			RarityCommon:   {1, 2, 10, 11, 13, 14, 43, 44, 46, 47, 69, 70, 102, 114, 152, 153, 165, 166, 167, 168, 182, 187, 188, 191, 192, 204, 252, 253, 265, 266, 268, 270, 271, 273, 274, 283, 285, 286, 290, 313, 314, 315, 331, 332},
			RarityUncommon: {3, 12, 15, 45, 71, 103, 123, 127, 154, 189, 193, 205, 212, 214, 254, 267, 269, 272, 275, 284, 291, 292, 301, 357},
			RarityRare:     {251},
		},
		Weights: map[Rarity]int{RarityCommon: 60, RarityUncommon: 30, RarityRare: 10},
	},
	ZoneMountain: {
		ID:            ZoneMountain,
		Name:          "Volcanic Mountain",
		Description:   "A fiery mountain home to Fire and Rock types",
		LevelRequired: 10,
		Pool: map[Rarity][]int{
			RarityCommon:    {4, 5, 27, 28, 50, 51, 66, 67, 74, 75, 95, 104, 105, 155, 156, 194, 195, 218, 219, 231, 232, 246, 255, 256, 296, 322, 323, 324, 328, 343},
			RarityUncommon:  {6, 37, 38, 58, 59, 68, 76, 77, 78, 106, 107, 111, 112, 126, 157, 207, 208, 217, 229, 240, 247, 257, 297, 303, 304, 305, 306, 310, 329, 330, 338, 340, 344},
			RarityRare:      {142, 248, 324, 377},
			RarityLegendary: {146, 244, 383},
		},
		Weights: map[Rarity]int{RarityCommon: 55, RarityUncommon: 30, RarityRare: 12, RarityLegendary: 3},
	},
	ZoneOcean: {
		ID:            ZoneOcean,
		Name:          "Deep Ocean",
		Description:   "The vast ocean filled with Water and Ice types",
		LevelRequired: 15,
		Pool: map[Rarity][]int{
			RarityCommon:    {7, 8, 54, 55, 60, 61, 72, 79, 86, 90, 98, 99, 116, 118, 119, 120, 129, 158, 159, 170, 194, 195, 211, 222, 223, 258, 259, 270, 271, 278, 279, 283, 318, 320, 339, 341, 363, 364, 366, 367, 368, 369, 370},
			RarityUncommon:  {9, 62, 73, 80, 87, 91, 117, 121, 130, 131, 134, 160, 171, 186, 199, 224, 226, 230, 260, 272, 284, 319, 321, 340, 342, 349, 365},
			RarityRare:      {131, 350, 369},
			RarityLegendary: {144, 245, 382},
		},
		Weights: map[Rarity]int{RarityCommon: 50, RarityUncommon: 30, RarityRare: 15, RarityLegendary: 5},
	},
	ZoneSky: {
		ID:            ZoneSky,
		Name:          "Sky Temple",
		Description:   "A mystical temple in the clouds for Psychic and Dragon types",
		LevelRequired: 20,
		Pool: map[Rarity][]int{
			RarityCommon:    {63, 64, 92, 93, 147, 148, 177, 178, 196, 197, 201, 280, 281, 325, 326, 329, 337, 355, 360, 371, 372, 374, 375},
			RarityUncommon:  {65, 94, 122, 149, 178, 199, 200, 202, 203, 282, 302, 326, 334, 337, 338, 344, 353, 354, 356, 358, 376},
			RarityRare:      {149, 248, 282, 289, 306, 330, 334, 348, 359, 362, 373, 376},
			RarityLegendary: {150, 249, 250, 377, 378, 379, 380, 381, 384},
		},
		Weights: map[Rarity]int{RarityCommon: 40, RarityUncommon: 30, RarityRare: 20, RarityLegendary: 10},
	},
	ZoneMystery: {
		ID:            ZoneMystery,
		Name:          "???",
		Description:   "A mysterious realm where only mythical creatures dwell",
		LevelRequired: 25,
		Pool: map[Rarity][]int{
			RarityLegendary: {151, 251, 385, 386},
		},
		Weights: map[Rarity]int{RarityLegendary: 100},
	},
}

// IsValidZone checks if a zone ID is known
func IsValidZone(zoneID string) bool {
	_, ok := zones[zoneID]
	return ok
}

// GetZoneDetails returns the static details for a zone, falling back to the
// default zone for unknown IDs.
func GetZoneDetails(zoneID string) *Zone {
	if z, ok := zones[zoneID]; ok {
		return z
	}
	return zones[DefaultZone]
}

// GetAllZones returns every zone in unlock order
func GetAllZones() []*Zone {
	all := make([]*Zone, 0, len(zoneOrder))
	for _, id := range zoneOrder {
		all = append(all, zones[id])
	}
	return all
}

// ZoneRequirements maps zone ID to the minimum trainer level.
func ZoneRequirements() map[string]int {
	req := make(map[string]int, len(zones))
	for id, z := range zones {
		req[id] = z.LevelRequired
	}
	return req
}

// UnlockedZones lists the zones open at the given level, in unlock order.
func UnlockedZones(level int) []string {
	var out []string
	for _, id := range zoneOrder {
		if level >= zones[id].LevelRequired {
			out = append(out, id)
		}
	}
	return out
}

// IsZoneUnlocked reports whether zoneID is known and open at level.
func IsZoneUnlocked(zoneID string, level int) bool {
	z, ok := zones[zoneID]
	return ok && level >= z.LevelRequired
}

// NewlyUnlockedZones lists zones open at newLevel but not at oldLevel.
func NewlyUnlockedZones(oldLevel, newLevel int) []string {
	var out []string
	for _, id := range zoneOrder {
		req := zones[id].LevelRequired
		if req > oldLevel && req <= newLevel {
			out = append(out, id)
		}
	}
	return out
}

// RarityFor returns the tier a species holds in a zone; species outside the
// zone's pool count as common.
func RarityFor(speciesID int, zoneID string) Rarity {
	z := GetZoneDetails(zoneID)
	for _, r := range rarityOrder {
		for _, id := range z.Pool[r] {
			if id == speciesID {
				return r
			}
		}
	}
	return RarityCommon
}
