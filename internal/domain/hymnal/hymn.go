// Package hymnal indexes a hymn repertoire and recommends hymns for the
// four moments of a Mass by semantic similarity against the day's readings.
package hymnal

// Moment is a point in the service for which a hymn is chosen. Values are
// the lowercase Italian tags used in the repertoire; rows may carry tags
// outside the four canonical ones, which simply never match a slot.
type Moment string

const (
	MomentIngresso   Moment = "ingresso"
	MomentOffertorio Moment = "offertorio"
	MomentComunione  Moment = "comunione"
	MomentFinale     Moment = "finale"
)

// MomentOrder is the fixed order in which moments are filled. Title dedup
// across moments depends on it.
var MomentOrder = []Moment{MomentIngresso, MomentOffertorio, MomentComunione, MomentFinale}

// SeasonAny is the season tag of hymns usable in every season, and the
// default for entries without a tag.
const SeasonAny = "qualsiasi"

// RawEntry is one hymn as it appears in the repertoire file. Tipologia is a
// comma-separated list of moment tags; Tempo is an optional season tag.
type RawEntry struct {
	Titolo    string `json:"titolo"`
	Testo     string `json:"testo"`
	Tipologia string `json:"tipologia"`
	Tempo     string `json:"tempo"`
}

// Hymn is one indexed (hymn, moment) row. A hymn tagged for several moments
// yields several rows sharing the same title, lyrics and embedding.
type Hymn struct {
	Title     string
	Lyrics    string // markup stripped
	Moment    Moment
	Season    string // normalized season tag, SeasonAny when absent
	Embedding []float32
}
