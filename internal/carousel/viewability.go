package carousel

import "time"

// ViewabilityConfig tells the host when an item counts as viewable.
type ViewabilityConfig struct {
	// MinimumViewTime is how long an item must stay viewable before it is reported.
	MinimumViewTime time.Duration
	// ViewAreaCoveragePercentThreshold is the share of the viewport, in
	// percent, a partially visible item must cover.
	ViewAreaCoveragePercentThreshold float64
}

// DefaultViewabilityConfig returns the 95% coverage, 100ms dwell defaults.
func DefaultViewabilityConfig() ViewabilityConfig {
	return ViewabilityConfig{
		MinimumViewTime:                  100 * time.Millisecond,
		ViewAreaCoveragePercentThreshold: 95,
	}
}

// ViewToken identifies one viewable item.
type ViewToken struct {
	Index int
	Key   string
}

// ViewabilityEvent is raised by the host when the viewable set changes.
type ViewabilityEvent struct {
	ViewableItems []ViewToken
	Changed       []ViewToken
}

// SingleViewable returns the index of the only viewable item. Nil, empty and
// multi-item events are ambiguous and report false.
func SingleViewable(ev *ViewabilityEvent) (int, bool) {
	if ev == nil || len(ev.ViewableItems) != 1 {
		return 0, false
	}
	return ev.ViewableItems[0].Index, true
}
