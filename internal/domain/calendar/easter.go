// Package calendar computes positions in the post-Vatican-II Roman
// liturgical calendar: Easter and the feasts anchored to it, the mapping of
// every Sunday of a liturgical year to its season and ordinal, and the
// three-year A/B/C lectionary cycle.
package calendar

import "time"

// Easter returns the date of Easter Sunday for the given year using the
// anonymous Gregorian computus (modular arithmetic on the year, century and
// lunar correction terms). Behavior for years before 1583, when the
// Gregorian calendar did not exist, is undefined.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// AshWednesday is 46 days before Easter (40 days of Lent plus the Sundays).
func AshWednesday(year int) time.Time {
	return Easter(year).AddDate(0, 0, -46)
}

// PalmSunday is the Sunday before Easter.
func PalmSunday(year int) time.Time {
	return Easter(year).AddDate(0, 0, -7)
}

// Pentecost is the seventh Sunday after Easter.
func Pentecost(year int) time.Time {
	return Easter(year).AddDate(0, 0, 49)
}
