package mass

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrparsing/suggerimento-canti/internal/domain/calendar"
	"github.com/mrparsing/suggerimento-canti/internal/domain/hymnal"
)

func litDate(season calendar.Season, number int, label, letter string) calendar.LiturgicalDate {
	return calendar.LiturgicalDate{
		Date:   time.Date(2025, time.April, 27, 0, 0, 0, 0, time.UTC),
		Sunday: time.Date(2025, time.April, 27, 0, 0, 0, 0, time.UTC),
		Entry:  calendar.Entry{Season: season, Number: number, Label: label},
		Letter: letter,
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "II Domenica del Tempo di Pasqua - Anno C",
		Title(litDate(calendar.SeasonEaster, 2, "", "C")))
	assert.Equal(t, "XXXIII Domenica del Tempo Ordinario - Anno A",
		Title(litDate(calendar.SeasonOrdinary, 33, "", "A")))
	assert.Equal(t, "Domenica delle Palme - Anno B",
		Title(litDate(calendar.SeasonLent, 0, "Domenica delle Palme", "B")))
	// Fallback positions have ordinal 0 and no name.
	assert.Equal(t, "Domenica del Tempo Ordinario - Anno A",
		Title(litDate(calendar.SeasonOrdinary, 0, "", "A")))
}

func TestPsalmLink(t *testing.T) {
	assert.Equal(t, "../../db/tempi_liturgici/pasqua/salmi_anno_C/c 2 Visconti.pdf",
		PsalmLink(litDate(calendar.SeasonEaster, 2, "", "C")))
	assert.Equal(t, "../../db/tempi_liturgici/quaresima/salmi_anno_B/b Domenica delle Palme Visconti.pdf",
		PsalmLink(litDate(calendar.SeasonLent, 0, "Domenica delle Palme", "B")))
}

func TestBuild(t *testing.T) {
	lit := litDate(calendar.SeasonEaster, 2, "", "C")
	readings := Readings{
		EntranceAntiphon:  "antifona",
		CommunionAntiphon: "antifona comunione",
		GospelVerse:       "alleluia",
		FirstReading:      "prima",
		Psalm:             "salmo",
		Gospel:            "vangelo",
	}
	picks := map[hymnal.Moment]string{
		hymnal.MomentIngresso:  "Alleluia, Cristo è risorto!",
		hymnal.MomentComunione: "Pane del cielo",
	}

	rec := Build(lit, readings, picks, "")

	assert.Equal(t, "II Domenica del Tempo di Pasqua - Anno C", rec.Title)
	assert.Equal(t, 2, rec.Numero)
	assert.Equal(t, "C", rec.Anno)
	assert.Equal(t, DefaultColor, rec.Colore)
	assert.Equal(t, PenitentialAct, rec.AttoPenitenziale)
	assert.Equal(t, "antifona", rec.AntifonaIngresso)
	assert.Equal(t, "antifona comunione", rec.AntifonaComunione)
	assert.Equal(t, "", rec.SecondaLetturaTesto, "absent readings stay empty")

	assert.Equal(t,
		"<a href='/../../canti/testo/alleluia-cristo-è-risorto!' target='_blank'>Alleluia, Cristo è risorto!</a>",
		rec.CantoIngresso)
	assert.Equal(t, "", rec.CantoOffertorio, "moment without a pick stays empty")
	assert.Equal(t, "", rec.CantoFinale)
}

func TestRecordJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Build(litDate(calendar.SeasonEaster, 2, "", "C"), Readings{}, nil, ""))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{
		"title", "numero", "anno", "colore",
		"antifona_ingresso", "canto_ingresso", "atto_penitenziale",
		"prima_lettura_testo", "salmo_link", "salmo_testo",
		"seconda_lettura_testo", "versetto_vangelo", "vangelo",
		"canto_offertorio", "canto_comunione", "antifona_alla_comunione", "canto_finale",
	} {
		_, ok := m[key]
		assert.True(t, ok, "missing field %q", key)
	}
}

func TestRoman(t *testing.T) {
	cases := map[int]string{
		0: "", 1: "I", 2: "II", 4: "IV", 9: "IX",
		14: "XIV", 21: "XXI", 33: "XXXIII", 40: "XL", 1994: "MCMXCIV",
	}
	for n, want := range cases {
		assert.Equal(t, want, Roman(n), "n=%d", n)
	}
}
