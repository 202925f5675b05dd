package agents

import (
	"context"
	"fmt"
	"log"

	"aethernet/internal/models"
	"aethernet/internal/providers"
)

// LearningAgent suggests resources from the user's role and interests. It
// never consults the vector index, so its provenance list stays empty.
type LearningAgent struct {
	llm providers.LLMProvider
}

func NewLearningAgent(llm providers.LLMProvider) *LearningAgent {
	return &LearningAgent{llm: llm}
}

func (a *LearningAgent) Name() string { return LearningAgentName }

func (a *LearningAgent) Respond(ctx context.Context, query string, profile models.Profile) models.Answer {
	prompt := fmt.Sprintf(learningPrompt, profile.Role, profile.Interests, query)
	resp, err := a.llm.Generate(ctx, providers.GenerateRequest{Operation: "learning", Prompt: prompt})
	if err != nil {
		log.Printf("agents: learning generation failed: %v", err)
		return apology(a.Name(), "I had trouble processing your learning request. Please try again.")
	}
	return models.Answer{Text: resp.Text, AgentName: a.Name(), Sources: []string{}}
}

// CareerAgent gives goal-setting and advancement guidance from the query alone.
type CareerAgent struct {
	llm providers.LLMProvider
}

func NewCareerAgent(llm providers.LLMProvider) *CareerAgent {
	return &CareerAgent{llm: llm}
}

func (a *CareerAgent) Name() string { return CareerAgentName }

func (a *CareerAgent) Respond(ctx context.Context, query string, _ models.Profile) models.Answer {
	prompt := fmt.Sprintf(careerPrompt, query)
	resp, err := a.llm.Generate(ctx, providers.GenerateRequest{Operation: "career", Prompt: prompt})
	if err != nil {
		log.Printf("agents: career generation failed: %v", err)
		return apology(a.Name(), "I encountered an issue with career guidance. Please try again.")
	}
	return models.Answer{Text: resp.Text, AgentName: a.Name(), Sources: []string{}}
}
