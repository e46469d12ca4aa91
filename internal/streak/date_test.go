package streak

import (
	"testing"
	"time"
)

func TestDateOfCrossesMidnightLocally(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 02:00 UTC on Jan 11 is 21:00 on Jan 10 in New York.
	instant := time.Date(2026, time.January, 11, 2, 0, 0, 0, time.UTC)

	if got := DateOf(instant, time.UTC); got != (Date{2026, time.January, 11}) {
		t.Errorf("UTC date = %s", got)
	}
	if got := DateOf(instant, ny); got != (Date{2026, time.January, 10}) {
		t.Errorf("NY date = %s, want 2026-01-10", got)
	}
}

func TestPrevNextAcrossMonthBoundary(t *testing.T) {
	d := Date{2026, time.March, 1}
	if got := d.Prev(); got != (Date{2026, time.February, 28}) {
		t.Errorf("Prev = %s", got)
	}
	if got := (Date{2026, time.February, 28}).Next(); got != d {
		t.Errorf("Next = %s", got)
	}
}

func TestPrevAcrossLeapDay(t *testing.T) {
	d := Date{2028, time.March, 1}
	if got := d.Prev(); got != (Date{2028, time.February, 29}) {
		t.Errorf("Prev = %s, want leap day", got)
	}
}

func TestAddDays(t *testing.T) {
	d := Date{2026, time.March, 10}
	if got := d.AddDays(-6); got != (Date{2026, time.March, 4}) {
		t.Errorf("AddDays(-6) = %s", got)
	}
	if got := d.AddDays(0); got != d {
		t.Errorf("AddDays(0) = %s", got)
	}
}

func TestString(t *testing.T) {
	d := Date{2026, time.March, 4}
	if got := d.String(); got != "2026-03-04" {
		t.Errorf("String = %q", got)
	}
}
