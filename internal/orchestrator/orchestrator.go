package orchestrator

import (
	"context"
	"log"

	"aethernet/internal/agents"
	"aethernet/internal/models"
	"aethernet/internal/router"
)

const (
	assistantName = "🤖 Assistant"

	clarificationText = "I'm not sure how to answer this question. Please try rephrasing your question or specify whether you need help with onboarding, learning, or career development."
)

// Orchestrator sequences routing and responding, producing one answer
// envelope per query. It holds no per-request state.
type Orchestrator struct {
	router *router.Router
	agents map[router.Route]agents.Agent
}

func New(rt *router.Router, onboarding, learning, career agents.Agent) *Orchestrator {
	return &Orchestrator{
		router: rt,
		agents: map[router.Route]agents.Agent{
			router.RouteOnboarding: onboarding,
			router.RouteLearning:   learning,
			router.RouteCareer:     career,
		},
	}
}

// ProcessQuery always returns a well-formed envelope, for any input. Routing
// failures degrade inside the router, responder failures degrade inside each
// agent, and an unresolved route becomes a clarification request.
func (o *Orchestrator) ProcessQuery(ctx context.Context, query string, profile models.Profile) (answer models.Answer) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("orchestrator: recovered from panic: %v", r)
			answer = models.Answer{
				Text:      "Sorry, I encountered an error. Please try again.",
				AgentName: assistantName,
				Sources:   []string{},
			}
		}
	}()

	route := o.router.Route(ctx, query)
	agent, ok := o.agents[route]
	if !ok {
		return models.Answer{
			Text:      clarificationText,
			AgentName: assistantName,
			Sources:   []string{},
		}
	}
	return agent.Respond(ctx, query, profile)
}
