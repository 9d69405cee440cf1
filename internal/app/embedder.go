package app

import (
	"context"
	"log/slog"

	"github.com/mrparsing/suggerimento-canti/internal/ports"
)

// cachedEmbedder decorates an Embedder with a persistent vector cache, keyed
// by model and text. Cache failures degrade to plain embedding: a broken
// cache must never break a build.
type cachedEmbedder struct {
	inner ports.Embedder
	cache ports.VectorCache
	model string
	log   *slog.Logger
}

func (c *cachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if vec, found, err := c.cache.GetVector(c.model, text); err != nil {
		c.log.Warn("vector cache read failed", "error", err)
	} else if found {
		return vec, nil
	}

	vec, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := c.cache.PutVector(c.model, text, vec); err != nil {
		c.log.Warn("vector cache write failed", "error", err)
	}
	return vec, nil
}
