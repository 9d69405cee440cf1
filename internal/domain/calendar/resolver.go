package calendar

import (
	"sync"
	"time"
)

// cycleLetters is the three-year lectionary rotation, keyed by the reference
// year modulo 3.
var cycleLetters = [3]string{"A", "B", "C"}

// CycleLetter returns the A/B/C lectionary cycle letter for a date. The
// reference year is the civil year in which the current liturgical year
// began: the date's own year from the First Sunday of Advent onward, the
// previous one before it.
func CycleLetter(date time.Time) string {
	year := date.Year()
	ref := year
	if DateKey(date).Before(FirstAdventSunday(year)) {
		ref = year - 1
	}
	return cycleLetters[ref%3]
}

// LiturgicalDate is the resolved position of a calendar date: the Sunday
// governing it and that Sunday's season, ordinal or name, and cycle letter.
// Values are derived on demand and never persisted.
type LiturgicalDate struct {
	Date   time.Time
	Sunday time.Time
	Entry
	Letter string
}

// Resolver resolves arbitrary dates against season maps, caching one map per
// liturgical year. Safe for concurrent use.
type Resolver struct {
	mu   sync.Mutex
	maps map[int]SeasonMap
}

func NewResolver() *Resolver {
	return &Resolver{maps: make(map[int]SeasonMap)}
}

// Resolve returns the liturgical position of date.
//
// The governing Sunday is the most recent Sunday on or before date. Its
// entry is looked up in the season map of the Sunday's own civil year first;
// dates in the boundary weeks of a liturgical year can fall outside that
// map, so the maps of the adjacent years are consulted next. A date with no
// entry anywhere — Christmas-time Sundays are the normal case — resolves to
// Ordinary Time with ordinal 0. That soft fallback is deliberate: resolution
// never fails, and callers that care can recognize the zero ordinal.
func (r *Resolver) Resolve(date time.Time) LiturgicalDate {
	sunday := SundayOnOrBefore(date)

	entry, ok := r.seasonMap(sunday.Year())[sunday]
	if !ok {
		for _, y := range []int{sunday.Year() - 1, sunday.Year() + 1} {
			if e, found := r.seasonMap(y)[sunday]; found {
				entry, ok = e, true
				break
			}
		}
	}
	if !ok {
		entry = Entry{Season: SeasonOrdinary, Number: 0}
	}

	return LiturgicalDate{
		Date:   DateKey(date),
		Sunday: sunday,
		Entry:  entry,
		Letter: CycleLetter(date),
	}
}

// seasonMap returns the cached map for a year, building it on first use.
func (r *Resolver) seasonMap(year int) SeasonMap {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.maps[year]
	if !ok {
		m = BuildSeasonMap(year)
		r.maps[year] = m
	}
	return m
}
