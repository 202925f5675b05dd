package providers

import (
	"fmt"
	"strings"

	"aethernet/internal/config"
)

// NewLLM builds the single configured completion adapter. There is no runtime
// fallback between implementations; the choice is fixed at startup.
func NewLLM(cfg config.Config) (LLMProvider, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case "ollama":
		return NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.OllamaEmbedModel), nil
	case "openai":
		return NewOpenAIProvider(), nil
	case "mock":
		return NewMockProvider(cfg.EmbedDim), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.LLMProvider)
	}
}

// NewEmbedder builds the single configured vectorization adapter.
func NewEmbedder(cfg config.Config) (EmbeddingProvider, error) {
	switch strings.ToLower(cfg.EmbedProvider) {
	case "ollama":
		return NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.OllamaEmbedModel), nil
	case "openai":
		return NewOpenAIProvider(), nil
	case "mock":
		return NewMockProvider(cfg.EmbedDim), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.EmbedProvider)
	}
}
