package streak

import "time"

// Date is a calendar date with no time-of-day or zone component. Streak
// logic operates only on Dates; raw instants never cross into the walk.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf normalizes an instant to the calendar date the user experienced
// in loc. Events are stored as UTC instants, so an action near midnight
// must be attributed to the local day, not the UTC day.
func DateOf(instant time.Time, loc *time.Location) Date {
	y, m, d := instant.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current date in loc.
func Today(loc *time.Location) Date {
	return DateOf(time.Now(), loc)
}

// Prev returns the preceding calendar day.
func (d Date) Prev() Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	y, m, day := t.Date()
	return Date{Year: y, Month: m, Day: day}
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	y, m, day := t.Date()
	return Date{Year: y, Month: m, Day: day}
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	y, m, day := t.Date()
	return Date{Year: y, Month: m, Day: day}
}

// String formats the date as ISO yyyy-mm-dd.
func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
