// Package streak derives day-by-day activity state from the action event
// log. It is a pure calculator: callers fetch events and inject the local
// time zone; nothing here touches the store or the wall clock.
package streak

import (
	"time"

	"github.com/selah-app/selah/internal/action"
)

// WindowDays is the length of the recent-activity window shown on the
// dashboard: today and the six preceding days.
const WindowDays = 7

// Event is the slice of an action event the calculator needs.
type Event struct {
	Type action.Type
	At   time.Time
}

// DayStatus flags a single window day as active or not.
type DayStatus struct {
	Date   Date
	Active bool
}

// State is the derived streak state. It is never persisted; it is
// recomputed from the event log on each load.
type State struct {
	// Current is the number of consecutive active days ending today.
	// Zero if today has no qualifying activity.
	Current int
	// Window covers the last WindowDays days, oldest first, today last.
	Window []DayStatus
}

// Compute builds the streak state for today from an event log. Events may
// be unsorted and may repeat within a day; one qualifying event on a local
// calendar day is sufficient to mark that day active. A single missing day
// ends the backward walk, so a one-day gap resets the streak.
func Compute(events []Event, today Date, loc *time.Location, qualifying map[action.Type]bool) State {
	active := make(map[Date]bool)
	for _, e := range events {
		if !qualifying[e.Type] {
			continue
		}
		active[DateOf(e.At, loc)] = true
	}

	current := 0
	for d := today; active[d]; d = d.Prev() {
		current++
	}

	window := make([]DayStatus, 0, WindowDays)
	for i := WindowDays - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		window = append(window, DayStatus{Date: d, Active: active[d]})
	}

	return State{Current: current, Window: window}
}
