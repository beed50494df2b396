package core

import "math"

// AgingDisabled turns aging off.
const AgingDisabled = math.MaxInt

// MinPriority is the floor aging can decay a priority to.
const MinPriority = 1

// NormalizeThreshold clamps non-positive thresholds to 1.
func NormalizeThreshold(threshold int) int {
	if threshold < 1 {
		return 1
	}
	return threshold
}

// Age lowers priority by one level for every threshold units in waited and
// returns the new priority with the wait units left over. Each step respects
// MinPriority on its own, so crossings past the floor still consume wait.
// A priority already below the floor is left alone, and AgingDisabled never
// decays. threshold must be positive.
func Age(priority, waited, threshold int) (int, int) {
	if threshold == AgingDisabled {
		return priority, waited
	}
	for waited >= threshold {
		if priority <= MinPriority {
			// remaining crossings only consume wait
			return priority, waited % threshold
		}
		priority--
		waited -= threshold
	}
	return priority, waited
}
