package agents

import (
	"context"
	"fmt"
	"log"
	"strings"

	"aethernet/internal/index"
	"aethernet/internal/models"
	"aethernet/internal/providers"
)

// OnboardingAgent is the retrieval-grounded responder: it pulls candidate
// chunks from the vector index and instructs the model to answer only from
// that context, returning the supporting filenames as provenance.
type OnboardingAgent struct {
	llm   providers.LLMProvider
	store index.Store
	topK  int
}

func NewOnboardingAgent(llm providers.LLMProvider, store index.Store, topK int) *OnboardingAgent {
	if topK <= 0 {
		topK = index.DefaultTopK
	}
	return &OnboardingAgent{llm: llm, store: store, topK: topK}
}

func (a *OnboardingAgent) Name() string { return OnboardingAgentName }

func (a *OnboardingAgent) Respond(ctx context.Context, query string, _ models.Profile) models.Answer {
	retrieved, err := a.store.Search(ctx, query, a.topK)
	if err != nil {
		log.Printf("agents: onboarding retrieval failed: %v", err)
		return apology(a.Name(), "I encountered an error while searching our documents. Please try again or ask a different question.")
	}

	contexts := make([]string, 0, len(retrieved))
	for _, r := range retrieved {
		contexts = append(contexts, r.Chunk.Content)
	}
	prompt := fmt.Sprintf(onboardingPrompt, strings.Join(contexts, "\n\n"), query)

	resp, err := a.llm.Generate(ctx, providers.GenerateRequest{Operation: "onboarding", Prompt: prompt})
	if err != nil {
		log.Printf("agents: onboarding generation failed: %v", err)
		return apology(a.Name(), "I encountered an error while searching our documents. Please try again or ask a different question.")
	}

	return models.Answer{
		Text:      resp.Text,
		AgentName: a.Name(),
		Sources:   dedupeSources(retrieved),
	}
}

// dedupeSources keeps retrieval rank order while dropping repeated filenames.
func dedupeSources(retrieved []models.RetrievedChunk) []string {
	seen := make(map[string]struct{}, len(retrieved))
	out := make([]string, 0, len(retrieved))
	for _, r := range retrieved {
		name := r.Chunk.Filename
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
