package carousel

import "math"

// Resolve computes the index a drag release should snap to.
//
// dx is the horizontal displacement of the drag (positive when the pointer
// moved right, which reveals earlier items) and vx its exit velocity in
// units per millisecond. dragThreshold is added to the displacement before
// rounding, so the release needs that much less travel to reach a neighbour.
// Every whole unit of speed above the first carries the release one more
// page in the direction of the swipe.
func Resolve(currentIndex int, itemWidth, dragThreshold, dx, vx float64, itemCount int) int {
	if itemCount <= 1 {
		return 0
	}

	resolvedOffset := float64(currentIndex)*itemWidth - dx
	bias := dragThreshold
	if dx > 0 {
		bias = -dragThreshold
	}
	resolvedIndex := int(jsRound((resolvedOffset + bias) / itemWidth))

	speed := int(jsRound(math.Abs(vx)))
	extra := 0
	if speed > 1 {
		extra = speed - 1
	}

	var target int
	if dx > 0 {
		target = max(resolvedIndex-extra, 0)
	} else {
		target = min(resolvedIndex+extra, itemCount-1)
	}

	return clampIndex(target, itemCount)
}

// clampIndex keeps index inside [0, count-1]. An empty list clamps to 0.
func clampIndex(index, count int) int {
	if index >= count {
		index = count - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}
