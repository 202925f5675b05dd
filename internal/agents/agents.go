package agents

import (
	"context"

	"aethernet/internal/models"
)

// Agent answers a routed query. Respond never returns an error: generation
// and retrieval failures degrade to a fixed apology under the agent's own
// display name.
type Agent interface {
	Name() string
	Respond(ctx context.Context, query string, profile models.Profile) models.Answer
}

const (
	OnboardingAgentName = "🎯 Company Document Assistant"
	LearningAgentName   = "📚 Learning Companion"
	CareerAgentName     = "🚀 Career Coach"
)

func apology(name, text string) models.Answer {
	return models.Answer{Text: text, AgentName: name, Sources: []string{}}
}
