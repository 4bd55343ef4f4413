// Package streak computes consecutive-day activity counters.
//
// The engine is pure: callers load the previous State, call Advance, and
// persist the result when it reports a change.
package streak

import "riseup/internal/models"

// State is the persisted counter of one user.
type State struct {
	Current    int
	Longest    int
	LastActive models.Date
}

// Policy selects how repeated and out-of-order activity is counted.
type Policy int

const (
	// Strict ignores a second activity on the same day and activity dated
	// before the last active day.
	Strict Policy = iota
	// Legacy increments on every activity within one day of the last active
	// day in either direction and always moves the last active day.
	Legacy
)

// Milestones are the streak lengths that deserve a notification.
var Milestones = []int{7, 30, 100}

// Advance applies activity on day to prev. prev is nil for a user that has
// never been active. The returned bool is false when nothing changed and the
// state does not need to be written.
func Advance(prev *State, day models.Date, policy Policy) (State, bool) {
	if prev == nil || prev.LastActive.IsZero() {
		return State{Current: 1, Longest: max(1, longest(prev)), LastActive: day}, true
	}

	diff := day.DaysSince(prev.LastActive)
	next := *prev

	if policy == Legacy {
		if diff < 0 {
			diff = -diff
		}
		if diff <= 1 {
			next.Current++
		} else {
			next.Current = 1
		}
		next.Longest = max(next.Longest, next.Current)
		next.LastActive = day
		return next, true
	}

	switch {
	case diff <= 0:
		return *prev, false
	case diff == 1:
		next.Current++
	default:
		next.Current = 1
	}
	next.Longest = max(next.Longest, next.Current)
	next.LastActive = day
	return next, true
}

// ReachedMilestone returns the milestone hit by moving from prev to next, or 0.
func ReachedMilestone(prev, next int) int {
	for _, m := range Milestones {
		if prev < m && next >= m {
			return m
		}
	}
	return 0
}

func longest(st *State) int {
	if st == nil {
		return 0
	}
	return st.Longest
}
