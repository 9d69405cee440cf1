// Package ports defines the interfaces the domain logic depends on. Adapters
// implement them; the domain never imports an adapter.
package ports

import "context"

// Embedder turns a text into a fixed-dimension semantic vector. The hymn
// index and the recommendation engine only ever see this interface, so
// ranking, fallback and dedup logic stay testable with stub embedders.
type Embedder interface {
	// Embed returns the embedding vector for text. Implementations must be
	// deterministic for equal inputs within one process.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorCache stores computed embedding vectors keyed by model and source
// text, so repertoire rebuilds skip re-embedding unchanged lyrics.
type VectorCache interface {
	// GetVector returns the cached vector for (model, text). The second
	// return is false on a miss; a miss is not an error.
	GetVector(model, text string) ([]float32, bool, error)

	// PutVector stores a vector for (model, text), overwriting any prior one.
	PutVector(model, text string, vec []float32) error
}

// Watcher observes a single file and reports changes, used to invalidate the
// in-memory hymn index when the repertoire file is rewritten.
type Watcher interface {
	// WatchFile starts watching path and calls onChange after each write.
	// Events are debounced; onChange runs on the watcher's goroutine.
	WatchFile(path string, onChange func()) error

	// Stop ends watching and releases resources. Idempotent.
	Stop()
}
