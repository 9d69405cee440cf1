// Package mass assembles the final Mass record for a date: title, readings,
// psalm link and the selected hymns as display-ready links.
package mass

import "github.com/mrparsing/suggerimento-canti/internal/domain/hymnal"

// Readings are the day's scriptural texts, as delivered by the readings
// provider. Any field may be empty; consumers must cope.
type Readings struct {
	EntranceAntiphon  string
	CommunionAntiphon string
	GospelVerse       string
	FirstReading      string
	Psalm             string
	SecondReading     string
	Gospel            string
}

// Reference converts the bundle into the engine's similarity target.
func (r Readings) Reference() hymnal.Reference {
	return hymnal.Reference{
		EntranceAntiphon:  r.EntranceAntiphon,
		CommunionAntiphon: r.CommunionAntiphon,
		FirstReading:      r.FirstReading,
		Psalm:             r.Psalm,
		SecondReading:     r.SecondReading,
		Gospel:            r.Gospel,
	}
}
