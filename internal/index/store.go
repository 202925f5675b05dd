package index

import (
	"context"
	"fmt"
	"strings"

	"aethernet/internal/config"
	"aethernet/internal/models"
	"aethernet/internal/providers"
)

// DefaultTopK matches the retriever configuration of the answering agent.
const DefaultTopK = 5

// Store is the similarity-searchable home of (chunk, embedding) pairs.
// Insert embeds each chunk exactly once. Search applies no relevance
// threshold: callers always get min(k, corpus size) candidates and must treat
// them as candidate context, not guaranteed-relevant context.
type Store interface {
	Insert(ctx context.Context, chunks []models.Chunk) (int, error)
	Search(ctx context.Context, query string, k int) ([]models.RetrievedChunk, error)
	Ping(ctx context.Context) error
}

// New builds the configured adapter. The choice is fixed at startup; there is
// no fallback between stores at runtime.
func New(ctx context.Context, cfg config.Config, embedder providers.EmbeddingProvider) (Store, error) {
	switch strings.ToLower(cfg.VectorStore) {
	case "pgvector":
		return NewPg(ctx, cfg.PostgresURL, embedder, cfg.EmbedDim)
	case "memory":
		return NewMemory(embedder, cfg.EmbedDim), nil
	default:
		return nil, fmt.Errorf("unsupported vector store: %s", cfg.VectorStore)
	}
}
