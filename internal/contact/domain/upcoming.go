package domain

import "time"

// UpcomingDays is how many days ahead of the reference date birthdays are reported.
const UpcomingDays = 7

// UpcomingBirthday is one contact whose birthday falls in the upcoming window.
type UpcomingBirthday struct {
	Name string
	// Occurrence is the birthday projected onto the current or next year.
	Occurrence time.Time
	// Effective is Occurrence moved off a weekend to the following Monday.
	Effective time.Time
	// Shifted reports whether Effective differs from Occurrence.
	Shifted bool
}

// UpcomingBirthdays returns the contacts to congratulate within UpcomingDays of today,
// in book order. Only the calendar date of today is used.
//
// The window check applies to the effective (weekend-shifted) date, not the occurrence:
// a birthday on the last Saturday of the window is excluded. A 29 February birthday
// projected onto a non-leap year lands on 1 March.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []UpcomingBirthday {
	start := calendarDate(today)
	end := start.AddDate(0, 0, UpcomingDays)

	var out []UpcomingBirthday
	for _, r := range b.Records() {
		if r.birthday == nil {
			continue
		}
		occurrence := nextOccurrence(*r.birthday, start)
		effective := nextWorkingDay(occurrence)
		if effective.Before(start) || effective.After(end) {
			continue
		}
		out = append(out, UpcomingBirthday{
			Name:       r.name,
			Occurrence: occurrence,
			Effective:  effective,
			Shifted:    !effective.Equal(occurrence),
		})
	}
	return out
}

// nextOccurrence projects bd onto the year of today, or the following year if that date has passed.
func nextOccurrence(bd Birthday, today time.Time) time.Time {
	occurrence := time.Date(today.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	if occurrence.Before(today) {
		occurrence = time.Date(today.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occurrence
}

func nextWorkingDay(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

// calendarDate drops the clock and zone of t, keeping its local year, month and day.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
