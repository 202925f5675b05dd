package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aethernet/internal/models"
	"aethernet/internal/providers"

	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	text       string
	err        error
	lastPrompt string
}

func (s *scriptedLLM) Generate(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, error) {
	s.lastPrompt = req.Prompt
	if s.err != nil {
		return providers.GenerateResponse{}, s.err
	}
	return providers.GenerateResponse{Text: s.text}, nil
}

type fixedStore struct {
	results []models.RetrievedChunk
	err     error
}

func (f *fixedStore) Insert(ctx context.Context, chunks []models.Chunk) (int, error) {
	return len(chunks), nil
}

func (f *fixedStore) Search(ctx context.Context, query string, k int) ([]models.RetrievedChunk, error) {
	if f.err != nil {
		return nil, f.err
	}
	if k < len(f.results) {
		return f.results[:k], nil
	}
	return f.results, nil
}

func (f *fixedStore) Ping(ctx context.Context) error { return nil }

func hits(filenames ...string) []models.RetrievedChunk {
	out := make([]models.RetrievedChunk, 0, len(filenames))
	for i, name := range filenames {
		out = append(out, models.RetrievedChunk{
			Chunk:    models.Chunk{Filename: name, Content: "content of " + name, Index: i},
			Distance: float64(i) / 10,
		})
	}
	return out
}

func TestOnboardingGroundedAnswer(t *testing.T) {
	llm := &scriptedLLM{text: "Expenses are reimbursed within 30 days."}
	store := &fixedStore{results: hits("policy.txt", "policy.txt", "handbook.pdf")}
	a := NewOnboardingAgent(llm, store, 5)

	got := a.Respond(context.Background(), "What is our expense reimbursement policy?", models.Profile{})
	require.Equal(t, OnboardingAgentName, got.AgentName)
	require.Equal(t, []string{"policy.txt", "handbook.pdf"}, got.Sources, "sources must be deduplicated in rank order")
	require.Contains(t, llm.lastPrompt, "content of policy.txt")
	require.Contains(t, llm.lastPrompt, "What is our expense reimbursement policy?")
	require.True(t, strings.Index(llm.lastPrompt, "content of policy.txt") < strings.Index(llm.lastPrompt, "content of handbook.pdf"),
		"context must follow retrieval rank order")
}

func TestOnboardingGenerationFailureApology(t *testing.T) {
	llm := &scriptedLLM{err: errors.New("timeout")}
	a := NewOnboardingAgent(llm, &fixedStore{results: hits("policy.txt")}, 5)
	got := a.Respond(context.Background(), "policy?", models.Profile{})
	require.Equal(t, OnboardingAgentName, got.AgentName)
	require.Contains(t, got.Text, "error while searching our documents")
	require.Empty(t, got.Sources)
}

func TestOnboardingRetrievalFailureApology(t *testing.T) {
	a := NewOnboardingAgent(&scriptedLLM{text: "x"}, &fixedStore{err: errors.New("index down")}, 5)
	got := a.Respond(context.Background(), "policy?", models.Profile{})
	require.Equal(t, OnboardingAgentName, got.AgentName)
	require.Contains(t, got.Text, "error while searching our documents")
}

func TestLearningUsesProfileAndHasNoSources(t *testing.T) {
	llm := &scriptedLLM{text: "Try the data science track."}
	a := NewLearningAgent(llm)
	got := a.Respond(context.Background(), "What courses should I take?", models.Profile{Role: "Analyst", Interests: "data science"})
	require.Equal(t, LearningAgentName, got.AgentName)
	require.NotNil(t, got.Sources)
	require.Empty(t, got.Sources)
	require.Contains(t, llm.lastPrompt, "Role: Analyst")
	require.Contains(t, llm.lastPrompt, "Interests: data science")
}

func TestCareerFailureApology(t *testing.T) {
	a := NewCareerAgent(&scriptedLLM{err: errors.New("boom")})
	got := a.Respond(context.Background(), "How do I get promoted?", models.Profile{})
	require.Equal(t, CareerAgentName, got.AgentName)
	require.Contains(t, got.Text, "career guidance")
}
