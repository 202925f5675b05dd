package index

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"aethernet/internal/models"
	"aethernet/internal/providers"
)

// Memory is a brute-force cosine-distance store for tests and keyless local
// runs. Semantics mirror the pgvector adapter: per-source replace on insert,
// exact min(k, corpus) results ordered by non-decreasing distance.
type Memory struct {
	mu       sync.RWMutex
	embedder providers.EmbeddingProvider
	dim      int
	chunks   []models.Chunk
	vectors  [][]float32
}

func NewMemory(embedder providers.EmbeddingProvider, dim int) *Memory {
	return &Memory{embedder: embedder, dim: dim}
}

func (m *Memory) Insert(ctx context.Context, chunks []models.Chunk) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}
	inputs := make([]string, 0, len(chunks))
	for _, c := range chunks {
		inputs = append(inputs, c.Content)
	}
	vectors, err := m.embedder.Embed(ctx, providers.EmbedRequest{Inputs: inputs, Dimension: m.dim})
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeSourcesLocked(chunks)
	m.chunks = append(m.chunks, chunks...)
	m.vectors = append(m.vectors, vectors...)
	return len(chunks), nil
}

func (m *Memory) Search(ctx context.Context, query string, k int) ([]models.RetrievedChunk, error) {
	if k <= 0 {
		k = DefaultTopK
	}
	vectors, err := m.embedder.Embed(ctx, providers.EmbedRequest{Inputs: []string{query}, Dimension: m.dim})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	qv := vectors[0]

	m.mu.RLock()
	defer m.mu.RUnlock()
	results := make([]models.RetrievedChunk, 0, len(m.chunks))
	for i := range m.chunks {
		results = append(results, models.RetrievedChunk{
			Chunk:    m.chunks[i],
			Distance: cosineDistance(qv, m.vectors[i]),
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

func (m *Memory) Ping(ctx context.Context) error {
	_ = ctx
	return nil
}

// Len reports corpus size; used by tests.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.chunks)
}

// Re-ingesting a source replaces its chunks rather than appending duplicates.
func (m *Memory) purgeSourcesLocked(incoming []models.Chunk) {
	sources := make(map[string]struct{}, len(incoming))
	for _, c := range incoming {
		sources[c.Source] = struct{}{}
	}
	chunks := m.chunks[:0]
	vectors := m.vectors[:0]
	for i, c := range m.chunks {
		if _, drop := sources[c.Source]; drop {
			continue
		}
		chunks = append(chunks, c)
		vectors = append(vectors, m.vectors[i])
	}
	m.chunks = chunks
	m.vectors = vectors
}

func cosineDistance(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}
