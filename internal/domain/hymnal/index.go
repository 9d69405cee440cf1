package hymnal

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrparsing/suggerimento-canti/internal/ports"
)

// Indexer builds the searchable hymn index from raw repertoire entries.
// Build is called once per repertoire version; the composition root caches
// the result and decides when to invalidate it.
type Indexer struct {
	Embedder ports.Embedder

	// Strip removes markup from lyrics before embedding. Nil leaves lyrics
	// untouched.
	Strip func(string) string
}

// Build expands each entry into one row per moment tag, normalizes its
// season tag, and embeds its stripped lyrics. The embedding is computed once
// per hymn and shared by all of its rows.
//
// Malformed entries are defaulted, not rejected: a missing season tag
// becomes SeasonAny, empty lyrics produce a row with no embedding (which can
// never win a similarity ranking). Only embedder failures abort the build.
func (ix *Indexer) Build(ctx context.Context, entries []RawEntry) ([]Hymn, error) {
	var rows []Hymn
	for _, entry := range entries {
		moments := splitMoments(entry.Tipologia)
		if len(moments) == 0 {
			continue
		}

		season := strings.ToLower(strings.TrimSpace(entry.Tempo))
		if season == "" {
			season = SeasonAny
		}

		lyrics := entry.Testo
		if ix.Strip != nil {
			lyrics = ix.Strip(lyrics)
		}

		var vec []float32
		if lyrics != "" {
			var err error
			vec, err = ix.Embedder.Embed(ctx, lyrics)
			if err != nil {
				return nil, fmt.Errorf("embed lyrics of %q: %w", entry.Titolo, err)
			}
		}

		for _, m := range moments {
			rows = append(rows, Hymn{
				Title:     entry.Titolo,
				Lyrics:    lyrics,
				Moment:    m,
				Season:    season,
				Embedding: vec,
			})
		}
	}
	return rows, nil
}

// splitMoments splits a comma-separated moment tag into lowercase moments,
// dropping empty fragments.
func splitMoments(tag string) []Moment {
	var out []Moment
	for _, part := range strings.Split(tag, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, Moment(part))
		}
	}
	return out
}
