package catalog

// levelThresholds[i] is the XP needed for level i+1.
var levelThresholds = []int64{
	0, 100, 250, 450, 700,
	1000, 1350, 1750, 2200, 2700,
	3250, 3850, 4500, 5200, 5950,
	6750, 7600, 8500, 9450, 10450,
	11500, 12600, 13750, 14950, 16200,
}

// MaxLevel is the highest trainer level.
var MaxLevel = len(levelThresholds)

// LevelForXP returns the highest level whose threshold does not exceed xp.
func LevelForXP(xp int64) int {
	for i := len(levelThresholds) - 1; i >= 0; i-- {
		if xp >= levelThresholds[i] {
			return i + 1
		}
	}
	return 1
}

// XPForNextLevel returns the threshold of the level after level, or false at max level.
func XPForNextLevel(level int) (int64, bool) {
	if level < 1 {
		level = 1
	}
	if level >= MaxLevel {
		return 0, false
	}
	return levelThresholds[level], true
}
