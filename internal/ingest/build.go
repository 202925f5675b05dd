package ingest

import (
	"context"
	"fmt"
	"log"

	"aethernet/internal/chunker"
	"aethernet/internal/index"
)

// BuildIndex is the offline ingestion entry point: walk the directory, chunk
// every extracted unit, embed and persist the chunks. Runs single-threaded;
// the index is not served concurrently with a build.
func BuildIndex(ctx context.Context, root string, in *Ingestor, ch *chunker.Chunker, store index.Store) (chunkCount, filesProcessed int, err error) {
	units, stats, err := in.ProcessDirectory(root)
	if err != nil {
		return 0, 0, fmt.Errorf("process directory: %w", err)
	}
	if len(units) == 0 {
		log.Printf("ingest: no processable documents found under %s", root)
		return 0, stats.Processed, nil
	}

	chunks := ch.SplitAll(units)
	n, err := store.Insert(ctx, chunks)
	if err != nil {
		return 0, stats.Processed, fmt.Errorf("insert chunks: %w", err)
	}
	log.Printf("ingest: indexed %d chunks from %d files (%d skipped)", n, stats.Processed, stats.Skipped)
	return n, stats.Processed, nil
}
