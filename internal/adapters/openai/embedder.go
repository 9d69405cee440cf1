// Package openai implements ports.Embedder against an OpenAI-compatible
// embeddings endpoint using github.com/sashabaranov/go-openai. A custom base
// URL allows pointing at a locally hosted embedding server.
package openai

import (
	"context"
	"fmt"

	gopenai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when the configuration names no embedding model.
const DefaultModel = "text-embedding-3-small"

// Embedder calls the embeddings API. Safe for concurrent use.
type Embedder struct {
	client *gopenai.Client
	model  string
}

// NewEmbedder builds an embedder. Empty baseURL keeps the library default;
// empty model falls back to DefaultModel.
func NewEmbedder(baseURL, apiKey, model string) *Embedder {
	cfg := gopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Embedder{client: gopenai.NewClientWithConfig(cfg), model: model}
}

// Model returns the configured model name, used as the vector cache bucket.
func (e *Embedder) Model() string {
	return e.model
}

// Embed returns the embedding vector for text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, gopenai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: gopenai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("create embedding: empty response")
	}
	return resp.Data[0].Embedding, nil
}
