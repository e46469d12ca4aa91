package streak

import (
	"testing"
	"time"

	"github.com/selah-app/selah/internal/action"
)

var qualifying = action.QualifyingTypes()

// at builds an event at noon UTC on the given date.
func at(year int, month time.Month, day int, typ action.Type) Event {
	return Event{Type: typ, At: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

func TestComputeConsecutiveDays(t *testing.T) {
	today := Date{2026, time.March, 10}
	events := []Event{
		at(2026, time.March, 10, action.PersonLearned),
		at(2026, time.March, 9, action.ChapterCompleted),
		at(2026, time.March, 8, action.NoteCreated),
		// Gap on March 7.
		at(2026, time.March, 6, action.PersonLearned),
	}

	st := Compute(events, today, time.UTC, qualifying)
	if st.Current != 3 {
		t.Errorf("Current = %d, want 3", st.Current)
	}
}

func TestComputeNoEvents(t *testing.T) {
	today := Date{2026, time.March, 10}
	st := Compute(nil, today, time.UTC, qualifying)

	if st.Current != 0 {
		t.Errorf("Current = %d, want 0", st.Current)
	}
	if len(st.Window) != WindowDays {
		t.Fatalf("window length = %d, want %d", len(st.Window), WindowDays)
	}
	for _, day := range st.Window {
		if day.Active {
			t.Errorf("day %s marked active with no events", day.Date)
		}
	}
}

func TestComputeTodayOnly(t *testing.T) {
	today := Date{2026, time.March, 10}
	events := []Event{at(2026, time.March, 10, action.KeywordMastered)}

	st := Compute(events, today, time.UTC, qualifying)
	if st.Current != 1 {
		t.Errorf("Current = %d, want 1 (today counts as day 1)", st.Current)
	}
}

func TestComputeTodayMissing(t *testing.T) {
	// Activity yesterday and before, but nothing today: streak is 0.
	today := Date{2026, time.March, 10}
	events := []Event{
		at(2026, time.March, 9, action.PersonLearned),
		at(2026, time.March, 8, action.PersonLearned),
	}

	st := Compute(events, today, time.UTC, qualifying)
	if st.Current != 0 {
		t.Errorf("Current = %d, want 0", st.Current)
	}
	if !st.Window[len(st.Window)-2].Active {
		t.Error("yesterday should still show active in the window")
	}
}

func TestComputeDuplicateEventsCollapse(t *testing.T) {
	today := Date{2026, time.March, 10}
	events := []Event{
		at(2026, time.March, 10, action.PersonLearned),
		at(2026, time.March, 10, action.PersonLearned),
		{Type: action.NoteCreated, At: time.Date(2026, time.March, 10, 23, 1, 0, 0, time.UTC)},
	}

	st := Compute(events, today, time.UTC, qualifying)
	if st.Current != 1 {
		t.Errorf("Current = %d, want 1 (same-day events collapse)", st.Current)
	}
}

func TestComputeIgnoresNonQualifying(t *testing.T) {
	today := Date{2026, time.March, 10}
	events := []Event{
		at(2026, time.March, 10, action.TriviaStarted),
	}

	st := Compute(events, today, time.UTC, qualifying)
	if st.Current != 0 {
		t.Errorf("Current = %d, want 0 (trivia_started does not qualify)", st.Current)
	}
}

func TestComputeUnsortedInput(t *testing.T) {
	today := Date{2026, time.March, 10}
	events := []Event{
		at(2026, time.March, 8, action.PersonLearned),
		at(2026, time.March, 10, action.PersonLearned),
		at(2026, time.March, 9, action.PersonLearned),
	}

	st := Compute(events, today, time.UTC, qualifying)
	if st.Current != 3 {
		t.Errorf("Current = %d, want 3 with unsorted input", st.Current)
	}
}

func TestComputeLocalDateNotUTCDate(t *testing.T) {
	// Two instants on different UTC dates that are the same local day in
	// New York (UTC-5 in winter): Mar 10 23:30 UTC is Mar 10 18:30 local,
	// Mar 11 02:00 UTC is Mar 10 21:00 local.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	today := Date{2026, time.January, 10}
	events := []Event{
		{Type: action.PersonLearned, At: time.Date(2026, time.January, 10, 23, 30, 0, 0, time.UTC)},
		{Type: action.PersonLearned, At: time.Date(2026, time.January, 11, 2, 0, 0, 0, time.UTC)},
	}

	st := Compute(events, today, ny, qualifying)
	if st.Current != 1 {
		t.Errorf("Current = %d, want 1 (both instants are the same local day)", st.Current)
	}

	// In UTC the same two events would span Jan 10 and Jan 11, and
	// "today" Jan 10 would still start a streak of 1 — but Jan 11 would
	// wrongly be active. Verify the local window has no Jan 11 activity.
	for _, day := range st.Window {
		if day.Date == (Date{2026, time.January, 11}) && day.Active {
			t.Error("Jan 11 must not be active in local time")
		}
	}
}

func TestWindowOrderOldestFirst(t *testing.T) {
	today := Date{2026, time.March, 10}
	st := Compute(nil, today, time.UTC, qualifying)

	want := Date{2026, time.March, 4}
	if st.Window[0].Date != want {
		t.Errorf("window[0] = %s, want %s", st.Window[0].Date, want)
	}
	if st.Window[WindowDays-1].Date != today {
		t.Errorf("window[last] = %s, want today %s", st.Window[WindowDays-1].Date, today)
	}
}
