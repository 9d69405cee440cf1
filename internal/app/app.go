// Package app is the composition root: it wires configuration, the readings
// scraper, the embedder with its vector cache, the calendar resolver and the
// recommendation engine into the operations the CLI exposes.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	bboltstore "github.com/mrparsing/suggerimento-canti/internal/adapters/bbolt"
	"github.com/mrparsing/suggerimento-canti/internal/adapters/cei"
	fsw "github.com/mrparsing/suggerimento-canti/internal/adapters/fsnotify"
	"github.com/mrparsing/suggerimento-canti/internal/adapters/htmltext"
	"github.com/mrparsing/suggerimento-canti/internal/adapters/openai"
	"github.com/mrparsing/suggerimento-canti/internal/adapters/repertoire"
	"github.com/mrparsing/suggerimento-canti/internal/domain/calendar"
	"github.com/mrparsing/suggerimento-canti/internal/domain/hymnal"
	"github.com/mrparsing/suggerimento-canti/internal/domain/mass"
	"github.com/mrparsing/suggerimento-canti/internal/ports"
)

// ReadingsProvider fetches the day's readings. Satisfied by the CEI scraper;
// defined here so tests can substitute a stub.
type ReadingsProvider interface {
	Fetch(ctx context.Context, date time.Time) (mass.Readings, error)
}

// App holds the wired collaborators. Fields are exported so tests can inject
// stubs; production code builds it with New.
type App struct {
	Config Config
	Log    *slog.Logger

	Store    *bboltstore.Store
	Embedder ports.Embedder
	Resolver *calendar.Resolver
	Indexer  *hymnal.Indexer
	Engine   *hymnal.Engine
	Readings ReadingsProvider

	// LoadRepertoire reads the raw repertoire entries. Defaults to the JSON
	// loader on Config.Repertoire.
	LoadRepertoire func() ([]hymnal.RawEntry, error)

	watcher ports.Watcher

	mu          sync.Mutex
	corpus      []hymnal.Hymn
	corpusReady bool
}

// New wires an App from configuration. The vector cache is optional: if the
// database cannot be opened the app runs without caching and logs why.
func New(cfg Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}

	emb := openai.NewEmbedder(cfg.Embedding.BaseURL, cfg.Embedding.APIKey, cfg.Embedding.Model)

	a := &App{
		Config:   cfg,
		Log:      log,
		Embedder: emb,
		Resolver: calendar.NewResolver(),
		Readings: cei.New(cfg.Readings.BaseURL, time.Duration(cfg.Readings.TimeoutSeconds)*time.Second, log),
	}
	a.LoadRepertoire = func() ([]hymnal.RawEntry, error) {
		return repertoire.Load(cfg.Repertoire)
	}

	if cfg.CacheDB != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.CacheDB), 0755); err != nil {
			log.Warn("vector cache disabled", "path", cfg.CacheDB, "error", err)
		} else if store, err := bboltstore.NewStore(cfg.CacheDB); err != nil {
			log.Warn("vector cache disabled", "path", cfg.CacheDB, "error", err)
		} else {
			a.Store = store
			a.Embedder = &cachedEmbedder{inner: emb, cache: store, model: emb.Model(), log: log}
		}
	}

	a.Indexer = &hymnal.Indexer{Embedder: a.Embedder, Strip: htmltext.Flatten}
	a.Engine = &hymnal.Engine{Embedder: a.Embedder, TopN: 5}
	return a
}

// Close releases the watcher and the cache database.
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// Resolve returns the liturgical position of a date.
func (a *App) Resolve(date time.Time) calendar.LiturgicalDate {
	return a.Resolver.Resolve(date)
}

// Corpus returns the indexed repertoire, building it on first use and after
// each invalidation.
func (a *App) Corpus(ctx context.Context) ([]hymnal.Hymn, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.corpusReady {
		return a.corpus, nil
	}

	entries, err := a.LoadRepertoire()
	if err != nil {
		return nil, fmt.Errorf("load repertoire: %w", err)
	}
	corpus, err := a.Indexer.Build(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("index repertoire: %w", err)
	}

	a.corpus = corpus
	a.corpusReady = true
	a.Log.Info("repertoire indexed", "entries", len(entries), "rows", len(corpus))
	return corpus, nil
}

// InvalidateCorpus drops the cached index; the next Corpus call rebuilds it.
func (a *App) InvalidateCorpus() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.corpus = nil
	a.corpusReady = false
}

// WatchRepertoire starts watching the repertoire file and invalidates the
// index on each change. A non-nil afterInvalidate runs after each
// invalidation, on the watcher's goroutine. Stopped by Close.
func (a *App) WatchRepertoire(afterInvalidate func()) error {
	w, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.WatchFile(a.Config.Repertoire, func() {
		a.Log.Info("repertoire changed, index invalidated", "path", a.Config.Repertoire)
		a.InvalidateCorpus()
		if afterInvalidate != nil {
			afterInvalidate()
		}
	}); err != nil {
		w.Stop()
		return err
	}
	a.watcher = w
	return nil
}

// BuildMass assembles the full Mass record for a date: position, readings,
// hymn picks.
func (a *App) BuildMass(ctx context.Context, date time.Time) (*mass.Record, calendar.LiturgicalDate, error) {
	lit := a.Resolve(date)

	readings, err := a.Readings.Fetch(ctx, date)
	if err != nil {
		return nil, lit, fmt.Errorf("fetch readings: %w", err)
	}

	corpus, err := a.Corpus(ctx)
	if err != nil {
		return nil, lit, err
	}

	picks, err := a.Engine.Recommend(ctx, corpus, readings.Reference(), lit.Season)
	if err != nil {
		return nil, lit, fmt.Errorf("recommend hymns: %w", err)
	}

	return mass.Build(lit, readings, picks, a.Config.Color), lit, nil
}
