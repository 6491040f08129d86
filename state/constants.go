package state

import "time"

var (
	// CountStreakThreshold is how many consecutive rounds a destination's
	// finite cost must strictly rise before the driver logs a possible
	// count-to-infinity. Detection only, never suppression.
	CountStreakThreshold = 3
	// CountWarnTTL dedups repeated warnings for the same (node, dest) pair.
	CountWarnTTL = time.Second * 30
)
