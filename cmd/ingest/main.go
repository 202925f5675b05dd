package main

import (
	"context"
	"flag"
	"log"

	"aethernet/internal/chunker"
	"aethernet/internal/config"
	"aethernet/internal/index"
	"aethernet/internal/ingest"
	"aethernet/internal/providers"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	dir := flag.String("dir", cfg.DataRoot, "directory of company documents to index")
	flag.Parse()

	embedder, err := providers.NewEmbedder(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()
	store, err := index.New(ctx, cfg, embedder)
	if err != nil {
		log.Fatal(err)
	}

	chunks, files, err := ingest.BuildIndex(ctx, *dir, ingest.New(), chunker.New(cfg.ChunkSize, cfg.ChunkOverlap), store)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("aethernet ingest complete: %d files processed, %d chunks indexed", files, chunks)
}
