package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"aethernet/internal/agents"
	"aethernet/internal/api"
	"aethernet/internal/config"
	"aethernet/internal/index"
	"aethernet/internal/orchestrator"
	"aethernet/internal/profile"
	"aethernet/internal/providers"
	"aethernet/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	llm, err := providers.NewLLM(cfg)
	if err != nil {
		log.Fatal(err)
	}
	embedder, err := providers.NewEmbedder(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	store, err := index.New(ctx, cfg, embedder)
	if err != nil {
		log.Fatal(err)
	}
	// Serving with no reachable index is the one unrecoverable condition.
	if err := store.Ping(ctx); err != nil {
		log.Fatal(err)
	}

	orch := orchestrator.New(
		router.New(llm),
		agents.NewOnboardingAgent(llm, store, cfg.RetrievalK),
		agents.NewLearningAgent(llm),
		agents.NewCareerAgent(llm),
	)
	srv := api.NewServer(cfg, orch, profile.NewStore())

	log.Printf("aethernet api listening on %s llm=%q embedder=%q store=%q", cfg.APIAddr, cfg.LLMProvider, cfg.EmbedProvider, cfg.VectorStore)
	if err := http.ListenAndServe(cfg.APIAddr, srv.Routes()); err != nil {
		log.Fatal(err)
	}
}
