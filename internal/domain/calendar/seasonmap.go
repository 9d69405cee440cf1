package calendar

import "time"

// Entry is the position of one Sunday within the liturgical year: its season
// and either an ordinal number or a proper name. Named Sundays (Palm Sunday,
// Easter, Christ the King) carry a Label and Number 0.
type Entry struct {
	Season Season
	Number int
	Label  string
}

// SeasonMap maps each Sunday of one liturgical year to its Entry. Keys are
// pure calendar dates (midnight UTC, see DateKey); using anything else as a
// key would silently split logically equal dates into distinct entries.
//
// BuildSeasonMap(y) covers the liturgical year that ends in civil year y: it
// runs from the First Sunday of Advent of y-1 through the Saturday before the
// First Sunday of Advent of y. Christmas-time Sundays inside that span have
// no entry; lookups for them go through the resolver's fallback.
type SeasonMap map[time.Time]Entry

// DateKey strips the time-of-day and location from t, leaving the calendar
// date at midnight UTC. All SeasonMap keys pass through here.
func DateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SundayOnOrBefore returns the most recent Sunday on or before t.
func SundayOnOrBefore(t time.Time) time.Time {
	d := DateKey(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// FirstAdventSunday returns the First Sunday of Advent for the liturgical
// year that begins in civil year y. It is the fourth Sunday before Christmas,
// where the fourth Sunday of Advent is the Sunday before December 25 — the
// 25th itself when Christmas falls on a Monday, December 18 when Christmas
// falls on a Sunday.
func FirstAdventSunday(year int) time.Time {
	christmas := time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)
	offset := int(christmas.Weekday())
	if offset == 0 {
		offset = 7
	}
	fourth := christmas.AddDate(0, 0, -offset)
	return fourth.AddDate(0, 0, -21)
}

// BaptismSunday returns the Sunday of the Baptism of the Lord, taken here as
// the Sunday on or before January 13. Ordinary Time resumes the week after.
func BaptismSunday(year int) time.Time {
	return SundayOnOrBefore(time.Date(year, time.January, 13, 0, 0, 0, 0, time.UTC))
}

// BuildSeasonMap builds the Sunday map for the liturgical year ending in
// civil year y. Pure arithmetic, no failure path; callers cache results.
func BuildSeasonMap(year int) SeasonMap {
	easter := Easter(year)
	ash := AshWednesday(year)
	palm := PalmSunday(year)
	pentecost := Pentecost(year)

	m := make(SeasonMap)

	// Advent of the previous civil year opens the liturgical year.
	advent := FirstAdventSunday(year - 1)
	for i := 0; i < 4; i++ {
		m[advent.AddDate(0, 0, 7*i)] = Entry{Season: SeasonAdvent, Number: i + 1}
	}

	// Ordinary Time I: from the week after the Baptism of the Lord up to Ash
	// Wednesday, numbered from 2. In years with a very early Easter this
	// range can be empty.
	counter := 2
	cur := BaptismSunday(year).AddDate(0, 0, 7)
	for cur.Before(ash) {
		m[cur] = Entry{Season: SeasonOrdinary, Number: counter}
		counter++
		cur = cur.AddDate(0, 0, 7)
	}

	// Lent: five numbered Sundays from the Sunday after Ash Wednesday, then
	// Palm Sunday by name.
	cur = ash.AddDate(0, 0, (7-int(ash.Weekday()))%7)
	for i := 1; i <= 5; i++ {
		m[cur] = Entry{Season: SeasonLent, Number: i}
		cur = cur.AddDate(0, 0, 7)
	}
	m[palm] = Entry{Season: SeasonLent, Label: "Domenica delle Palme"}

	// Easter season: Easter by name, following Sundays numbered from 2 up to
	// and including Pentecost.
	m[easter] = Entry{Season: SeasonEaster, Label: "Pasqua"}
	cur = easter.AddDate(0, 0, 7)
	for n := 2; !cur.After(pentecost); n++ {
		m[cur] = Entry{Season: SeasonEaster, Number: n}
		cur = cur.AddDate(0, 0, 7)
	}

	// Ordinary Time II resumes the week after Pentecost. The counter skips
	// two numbers at the restart: the weeks swallowed by Lent and Easter do
	// not line up with the Sunday count, and the convention resumes the
	// per-week numbering, not the per-Sunday one.
	counter += 2
	christKing := FirstAdventSunday(year).AddDate(0, 0, -7)
	cur = pentecost.AddDate(0, 0, 7)
	for cur.Before(christKing) {
		m[cur] = Entry{Season: SeasonOrdinary, Number: counter}
		counter++
		cur = cur.AddDate(0, 0, 7)
	}
	m[christKing] = Entry{Season: SeasonOrdinary, Label: "Cristo Re"}

	return m
}
