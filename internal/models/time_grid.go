package models

import "time"

// TimeGrid is the ordered, strictly increasing set of sample instants a report window
// is evaluated over. Entries are evenly spaced.
type TimeGrid []time.Time

func (g TimeGrid) Len() int {
	return len(g)
}

// Start returns the first instant, or the zero time for an empty grid.
func (g TimeGrid) Start() time.Time {
	if len(g) == 0 {
		return time.Time{}
	}
	return g[0]
}

// End returns the last instant, or the zero time for an empty grid.
func (g TimeGrid) End() time.Time {
	if len(g) == 0 {
		return time.Time{}
	}
	return g[len(g)-1]
}
