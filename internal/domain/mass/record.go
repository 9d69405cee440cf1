package mass

import (
	"fmt"
	"strings"

	"github.com/mrparsing/suggerimento-canti/internal/domain/calendar"
	"github.com/mrparsing/suggerimento-canti/internal/domain/hymnal"
)

// DefaultColor is the default liturgical accent color of the record.
const DefaultColor = "#2a9a5c"

// PenitentialAct is the fixed Confesso text included in every record.
const PenitentialAct = "Confesso a Dio onnipotente e a voi, fratelli e sorelle, " +
	"che ho molto peccato in pensieri, parole, opere e omissioni, per mia colpa, " +
	"mia colpa, mia grandissima colpa. E supplico la beata sempre Vergine Maria, " +
	"gli angeli, i santi e voi, fratelli e sorelle, di pregare per me il Signore Dio nostro."

// Record is the serializable Mass document. Field names and order follow the
// downstream consumer's schema; the serialization mechanism itself is the
// writer adapter's concern.
type Record struct {
	Title               string `json:"title"`
	Numero              any    `json:"numero"` // ordinal int, or proper name for named Sundays
	Anno                string `json:"anno"`
	Colore              string `json:"colore"`
	AntifonaIngresso    string `json:"antifona_ingresso"`
	CantoIngresso       string `json:"canto_ingresso"`
	AttoPenitenziale    string `json:"atto_penitenziale"`
	PrimaLetturaTesto   string `json:"prima_lettura_testo"`
	SalmoLink           string `json:"salmo_link"`
	SalmoTesto          string `json:"salmo_testo"`
	SecondaLetturaTesto string `json:"seconda_lettura_testo"`
	VersettoVangelo     string `json:"versetto_vangelo"`
	Vangelo             string `json:"vangelo"`
	CantoOffertorio     string `json:"canto_offertorio"`
	CantoComunione      string `json:"canto_comunione"`
	AntifonaComunione   string `json:"antifona_alla_comunione"`
	CantoFinale         string `json:"canto_finale"`
}

// Build assembles the record from the resolved date, the day's readings and
// the engine's picks. Moments without a pick leave their canto field empty.
func Build(lit calendar.LiturgicalDate, r Readings, picks map[hymnal.Moment]string, color string) *Record {
	if color == "" {
		color = DefaultColor
	}
	return &Record{
		Title:               Title(lit),
		Numero:              numero(lit),
		Anno:                lit.Letter,
		Colore:              color,
		AntifonaIngresso:    r.EntranceAntiphon,
		CantoIngresso:       anchor(picks, hymnal.MomentIngresso),
		AttoPenitenziale:    PenitentialAct,
		PrimaLetturaTesto:   r.FirstReading,
		SalmoLink:           PsalmLink(lit),
		SalmoTesto:          r.Psalm,
		SecondaLetturaTesto: r.SecondReading,
		VersettoVangelo:     r.GospelVerse,
		Vangelo:             r.Gospel,
		CantoOffertorio:     anchor(picks, hymnal.MomentOffertorio),
		CantoComunione:      anchor(picks, hymnal.MomentComunione),
		AntifonaComunione:   r.CommunionAntiphon,
		CantoFinale:         anchor(picks, hymnal.MomentFinale),
	}
}

// Title renders the record heading: "II Domenica del Tempo di Pasqua - Anno C"
// for numbered Sundays, the proper name for named ones.
func Title(lit calendar.LiturgicalDate) string {
	if lit.Label != "" {
		return fmt.Sprintf("%s - Anno %s", lit.Label, lit.Letter)
	}
	if lit.Number <= 0 {
		return fmt.Sprintf("Domenica del %s - Anno %s", lit.Season.Label(), lit.Letter)
	}
	return fmt.Sprintf("%s Domenica del %s - Anno %s", Roman(lit.Number), lit.Season.Label(), lit.Letter)
}

// PsalmLink is the relative path of the responsorial psalm sheet for this
// Sunday within the per-season PDF archive.
func PsalmLink(lit calendar.LiturgicalDate) string {
	return fmt.Sprintf("../../db/tempi_liturgici/%s/salmi_anno_%s/%s %v Visconti.pdf",
		lit.Season.Slug(), lit.Letter, strings.ToLower(lit.Letter), numero(lit))
}

// anchor renders a selected hymn as its display link, or "" when the moment
// has no pick.
func anchor(picks map[hymnal.Moment]string, m hymnal.Moment) string {
	title, ok := picks[m]
	if !ok {
		return ""
	}
	return fmt.Sprintf("<a href='%s' target='_blank'>%s</a>", hymnal.LinkPath(title), title)
}

func numero(lit calendar.LiturgicalDate) any {
	if lit.Label != "" {
		return lit.Label
	}
	return lit.Number
}
