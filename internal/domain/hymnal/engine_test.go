package hymnal

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrparsing/suggerimento-canti/internal/domain/calendar"
)

func row(title string, m Moment, season string, vec ...float32) Hymn {
	return Hymn{Title: title, Moment: m, Season: season, Embedding: vec}
}

func TestRecommend_RanksByCosine(t *testing.T) {
	// Reference embeds to the x axis; "Vicino" points along it, "Lontano"
	// is orthogonal.
	emb := &stubEmbedder{fallback: []float32{1, 0}}
	e := &Engine{Embedder: emb}

	corpus := []Hymn{
		row("Lontano", MomentIngresso, SeasonAny, 0, 1),
		row("Vicino", MomentIngresso, SeasonAny, 1, 0.1),
	}
	picks, err := e.Recommend(context.Background(), corpus, Reference{Gospel: "vangelo"}, calendar.SeasonOrdinary)
	require.NoError(t, err)
	assert.Equal(t, "Vicino", picks[MomentIngresso])
}

func TestRecommend_SeasonFilterThenFallback(t *testing.T) {
	emb := &stubEmbedder{fallback: []float32{1, 0}}
	e := &Engine{Embedder: emb}

	// Season-tagged candidate wins over a better-scoring "any" candidate:
	// the fallback pool is only consulted when the season pool is empty.
	corpus := []Hymn{
		row("Generico", MomentIngresso, SeasonAny, 1, 0),
		row("Quaresimale", MomentIngresso, "quaresima", 0.2, 1),
	}
	picks, err := e.Recommend(context.Background(), corpus, Reference{Gospel: "v"}, calendar.SeasonLent)
	require.NoError(t, err)
	assert.Equal(t, "Quaresimale", picks[MomentIngresso])

	// With no hymn for the season, the "any" pool serves.
	picks, err = e.Recommend(context.Background(), corpus, Reference{Gospel: "v"}, calendar.SeasonAdvent)
	require.NoError(t, err)
	assert.Equal(t, "Generico", picks[MomentIngresso])
}

func TestRecommend_DedupAcrossMoments(t *testing.T) {
	emb := &stubEmbedder{fallback: []float32{1, 0}}
	e := &Engine{Embedder: emb}

	// "Doppio" is tagged for all four moments and scores highest everywhere,
	// but may be picked only once; "Riserva" covers the rest.
	var corpus []Hymn
	for _, m := range MomentOrder {
		corpus = append(corpus, row("Doppio", m, SeasonAny, 1, 0))
		corpus = append(corpus, row("Riserva "+string(m), m, SeasonAny, 0.5, 0.5))
	}
	picks, err := e.Recommend(context.Background(), corpus, Reference{Gospel: "v"}, calendar.SeasonOrdinary)
	require.NoError(t, err)
	require.Len(t, picks, 4)

	seen := make(map[string]bool)
	for _, title := range picks {
		assert.False(t, seen[title], "title %q picked twice", title)
		seen[title] = true
	}
	assert.Equal(t, "Doppio", picks[MomentIngresso], "first moment takes the shared hymn")
}

func TestRecommend_EmptyReferenceSkipsMoment(t *testing.T) {
	emb := &stubEmbedder{fallback: []float32{1, 0}}
	e := &Engine{Embedder: emb}

	corpus := []Hymn{
		row("Ingresso", MomentIngresso, SeasonAny, 1, 0),
		row("Comunione", MomentComunione, SeasonAny, 1, 0),
	}
	// Only the communion antiphon is present: offertory and closing have no
	// reference text at all, entrance has no antiphon and no readings.
	ref := Reference{CommunionAntiphon: "antifona"}
	picks, err := e.Recommend(context.Background(), corpus, ref, calendar.SeasonOrdinary)
	require.NoError(t, err)

	assert.Equal(t, map[Moment]string{MomentComunione: "Comunione"}, picks)
}

func TestRecommend_NoCandidatesIsNotAnError(t *testing.T) {
	e := &Engine{Embedder: &stubEmbedder{fallback: []float32{1}}}
	picks, err := e.Recommend(context.Background(), nil, Reference{Gospel: "v"}, calendar.SeasonOrdinary)
	require.NoError(t, err)
	assert.Empty(t, picks)
}

func TestRecommend_AntiphonWeighting(t *testing.T) {
	emb := &stubEmbedder{fallback: []float32{1, 0}}
	e := &Engine{Embedder: emb}
	corpus := []Hymn{
		row("X", MomentIngresso, SeasonAny, 1, 0),
		row("X", MomentComunione, SeasonAny, 1, 0),
		row("Y", MomentOffertorio, SeasonAny, 1, 0),
	}
	ref := Reference{
		EntranceAntiphon:  "ENTRATA",
		CommunionAntiphon: "COMUNIONE",
		FirstReading:      "lettura",
		Gospel:            "vangelo",
	}
	_, err := e.Recommend(context.Background(), corpus, ref, calendar.SeasonOrdinary)
	require.NoError(t, err)

	require.Len(t, emb.calls, 3) // ingresso, offertorio, comunione references
	assert.Equal(t, 3, strings.Count(emb.calls[0], "ENTRATA"), "entrance antiphon weighted 3x")
	assert.Equal(t, "lettura vangelo", emb.calls[1], "offertory uses readings only")
	assert.Equal(t, 3, strings.Count(emb.calls[2], "COMUNIONE"), "communion antiphon weighted 3x")
}

func TestRecommend_StableTieBreak(t *testing.T) {
	emb := &stubEmbedder{fallback: []float32{1, 0}}
	e := &Engine{Embedder: emb}

	// Identical scores: repertoire order decides.
	corpus := []Hymn{
		row("Primo", MomentFinale, SeasonAny, 1, 0),
		row("Secondo", MomentFinale, SeasonAny, 1, 0),
	}
	picks, err := e.Recommend(context.Background(), corpus, Reference{Psalm: "salmo"}, calendar.SeasonOrdinary)
	require.NoError(t, err)
	assert.Equal(t, "Primo", picks[MomentFinale])
}

func TestRecommend_UsedTitlesDoNotTriggerFallback(t *testing.T) {
	emb := &stubEmbedder{fallback: []float32{1, 0}}
	e := &Engine{Embedder: emb}

	// "Unico" matches the season for both moments; once it is spent on the
	// entrance, the closing moment has an empty season pool after dedup and
	// is skipped — dedup happens after the season/any choice, not before.
	corpus := []Hymn{
		row("Unico", MomentIngresso, "avvento", 1, 0),
		row("Unico", MomentFinale, "avvento", 1, 0),
		row("Generico", MomentFinale, SeasonAny, 1, 0),
	}
	picks, err := e.Recommend(context.Background(), corpus, Reference{Gospel: "v"}, calendar.SeasonAdvent)
	require.NoError(t, err)

	assert.Equal(t, "Unico", picks[MomentIngresso])
	_, ok := picks[MomentFinale]
	assert.False(t, ok, "closing must be skipped, not served from the any-pool")
}
