package calendar

import "strings"

// Season is one of the four liturgical seasons this calendar distinguishes.
// Christmas-time Sundays fall between Advent 4 and the restart of Ordinary
// Time and are deliberately unmapped; the resolver's fallback reports them as
// Ordinary Time (see Resolver.Resolve).
//
// The zero value is Ordinary Time so that fallback entries need no special
// construction.
type Season int

const (
	SeasonOrdinary Season = iota
	SeasonAdvent
	SeasonLent
	SeasonEaster
)

// seasonLabels is the display-label table. Labels are the Italian names the
// output record and the hymn repertoire use.
var seasonLabels = map[Season]string{
	SeasonOrdinary: "Tempo Ordinario",
	SeasonAdvent:   "Avvento",
	SeasonLent:     "Quaresima",
	SeasonEaster:   "Tempo di Pasqua",
}

// seasonSlugs name the per-season directories in psalm link paths.
var seasonSlugs = map[Season]string{
	SeasonOrdinary: "ordinario",
	SeasonAdvent:   "avvento",
	SeasonLent:     "quaresima",
	SeasonEaster:   "pasqua",
}

// Label returns the Italian display name, e.g. "Tempo di Pasqua".
func (s Season) Label() string {
	return seasonLabels[s]
}

// Slug returns the short lowercase form used in link paths, e.g. "pasqua".
func (s Season) Slug() string {
	return seasonSlugs[s]
}

// TagKey returns the lowercased label used to match repertoire season tags.
func (s Season) TagKey() string {
	return strings.ToLower(s.Label())
}

func (s Season) String() string {
	return s.Label()
}
