package index

import (
	"context"
	"fmt"
	"strings"

	"aethernet/internal/models"
	"aethernet/internal/providers"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pg stores chunks and embeddings in Postgres with the pgvector extension.
// Similarity search orders by the cosine distance operator, so results arrive
// in non-decreasing distance without any post-processing.
type Pg struct {
	pool     *pgxpool.Pool
	embedder providers.EmbeddingProvider
	dim      int
}

func NewPg(ctx context.Context, dsn string, embedder providers.EmbeddingProvider, dim int) (*Pg, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	p := &Pg{pool: pool, embedder: embedder, dim: dim}
	if err := p.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *Pg) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS chunks (
  chunk_id    text PRIMARY KEY,
  source      text NOT NULL,
  type        text NOT NULL,
  filename    text NOT NULL,
  location    text NOT NULL DEFAULT '',
  chunk_index int  NOT NULL,
  content     text NOT NULL,
  embedding   vector(%d),
  created_at  timestamptz NOT NULL DEFAULT now()
)`, p.dim),
		`CREATE INDEX IF NOT EXISTS chunks_source_idx ON chunks (source)`,
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (p *Pg) Insert(ctx context.Context, chunks []models.Chunk) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}
	inputs := make([]string, 0, len(chunks))
	sources := make([]string, 0, len(chunks))
	seen := make(map[string]struct{}, len(chunks))
	for _, c := range chunks {
		inputs = append(inputs, c.Content)
		if _, ok := seen[c.Source]; !ok {
			seen[c.Source] = struct{}{}
			sources = append(sources, c.Source)
		}
	}
	vectors, err := p.embedder.Embed(ctx, providers.EmbedRequest{Inputs: inputs, Dimension: p.dim})
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin insert tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Re-ingesting a source replaces its chunks rather than appending duplicates.
	if _, err := tx.Exec(ctx, `DELETE FROM chunks WHERE source = ANY($1)`, sources); err != nil {
		return 0, fmt.Errorf("purge stale chunks: %w", err)
	}
	for i, c := range chunks {
		_, err := tx.Exec(ctx, `
INSERT INTO chunks (chunk_id, source, type, filename, location, chunk_index, content, embedding)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::vector)
ON CONFLICT (chunk_id)
DO UPDATE SET
  content = EXCLUDED.content,
  embedding = EXCLUDED.embedding`,
			c.ChunkID, c.Source, string(c.Type), c.Filename, c.Location, c.Index, c.Content, toLiteral(vectors[i]),
		)
		if err != nil {
			return 0, fmt.Errorf("insert chunk %s: %w", c.ChunkID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit insert tx: %w", err)
	}
	return len(chunks), nil
}

func (p *Pg) Search(ctx context.Context, query string, k int) ([]models.RetrievedChunk, error) {
	if k <= 0 {
		k = DefaultTopK
	}
	vectors, err := p.embedder.Embed(ctx, providers.EmbedRequest{Inputs: []string{query}, Dimension: p.dim})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	vec := toLiteral(vectors[0])

	rows, err := p.pool.Query(ctx, `
SELECT chunk_id, source, type, filename, location, chunk_index, content,
       embedding <=> $1::vector AS distance
FROM chunks
WHERE embedding IS NOT NULL
ORDER BY embedding <=> $1::vector
LIMIT $2`, vec, k)
	if err != nil {
		return nil, fmt.Errorf("query vector search: %w", err)
	}
	defer rows.Close()

	results := make([]models.RetrievedChunk, 0, k)
	for rows.Next() {
		var r models.RetrievedChunk
		var typ string
		if err := rows.Scan(&r.Chunk.ChunkID, &r.Chunk.Source, &typ, &r.Chunk.Filename, &r.Chunk.Location, &r.Chunk.Index, &r.Chunk.Content, &r.Distance); err != nil {
			return nil, fmt.Errorf("scan search row: %w", err)
		}
		r.Chunk.Type = models.UnitType(typ)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search rows: %w", err)
	}
	return results, nil
}

func (p *Pg) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping vector index: %w", err)
	}
	return nil
}

func (p *Pg) Close() {
	if p != nil && p.pool != nil {
		p.pool.Close()
	}
}

func toLiteral(v []float32) string {
	parts := make([]string, 0, len(v))
	for _, x := range v {
		parts = append(parts, fmt.Sprintf("%f", x))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
