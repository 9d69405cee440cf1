package hymnal

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mrparsing/suggerimento-canti/internal/domain/calendar"
	"github.com/mrparsing/suggerimento-canti/internal/ports"
)

// Reference holds the day's texts the engine ranks hymns against. Empty
// fields are simply left out of the reference text.
type Reference struct {
	EntranceAntiphon  string
	CommunionAntiphon string
	FirstReading      string
	Psalm             string
	SecondReading     string
	Gospel            string
}

// textFor builds the weighted reference text for one moment: the matching
// antiphon three times for entrance and communion, then the readings once
// each. Returns "" when every relevant field is empty.
func (r Reference) textFor(m Moment) string {
	var parts []string
	if m == MomentIngresso && r.EntranceAntiphon != "" {
		parts = append(parts, r.EntranceAntiphon, r.EntranceAntiphon, r.EntranceAntiphon)
	}
	if m == MomentComunione && r.CommunionAntiphon != "" {
		parts = append(parts, r.CommunionAntiphon, r.CommunionAntiphon, r.CommunionAntiphon)
	}
	for _, t := range []string{r.FirstReading, r.Psalm, r.SecondReading, r.Gospel} {
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// Engine selects hymns for the four moments of a service.
type Engine struct {
	Embedder ports.Embedder

	// TopN bounds the ranked shortlist per moment before the winner is taken.
	// Zero means 1.
	TopN int
}

// Recommend picks at most one hymn title per moment, in MomentOrder.
//
// Per moment: the weighted reference text is embedded (a moment with no
// reference text is skipped); candidate rows are those tagged with the
// moment, narrowed to the current season's tag or — only when that yields
// nothing — to SeasonAny rows; titles already picked for an earlier moment
// are dropped; survivors are ranked by cosine similarity, descending, with
// ties keeping repertoire order. A moment with no surviving candidate is
// absent from the result; that is a normal outcome, not an error.
func (e *Engine) Recommend(ctx context.Context, corpus []Hymn, ref Reference, season calendar.Season) (map[Moment]string, error) {
	topN := e.TopN
	if topN <= 0 {
		topN = 1
	}
	seasonKey := season.TagKey()

	picks := make(map[Moment]string)
	used := make(map[string]bool)

	for _, m := range MomentOrder {
		text := ref.textFor(m)
		if text == "" {
			continue
		}
		refVec, err := e.Embedder.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed reference for %s: %w", m, err)
		}

		byMoment := filter(corpus, func(h Hymn) bool { return h.Moment == m })
		sel := filter(byMoment, func(h Hymn) bool { return h.Season == seasonKey })
		if len(sel) == 0 {
			sel = filter(byMoment, func(h Hymn) bool { return h.Season == SeasonAny })
		}
		sel = filter(sel, func(h Hymn) bool { return !used[h.Title] })
		if len(sel) == 0 {
			continue
		}

		sort.SliceStable(sel, func(i, j int) bool {
			return Cosine(sel[i].Embedding, refVec) > Cosine(sel[j].Embedding, refVec)
		})
		if len(sel) > topN {
			sel = sel[:topN]
		}

		picks[m] = sel[0].Title
		used[sel[0].Title] = true
	}
	return picks, nil
}

func filter(rows []Hymn, keep func(Hymn) bool) []Hymn {
	var out []Hymn
	for _, h := range rows {
		if keep(h) {
			out = append(out, h)
		}
	}
	return out
}
