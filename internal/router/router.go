package router

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"aethernet/internal/providers"
)

// Route is the responder category selected for a query.
type Route string

const (
	RouteOnboarding Route = "onboarding"
	RouteLearning   Route = "learning"
	RouteCareer     Route = "career_coach"

	// RouteUnresolved marks a classification that parsed cleanly but named a
	// category outside the fixed set. The orchestrator turns it into a
	// clarification request, not an error.
	RouteUnresolved Route = "unresolved"
)

// Fallback is where a query goes when classification itself fails: the most
// general responder, so a routing outage degrades silently instead of
// surfacing to the user.
const Fallback = RouteOnboarding

const routePrompt = `You are a concierge that routes employee questions to the best assistant.

Destinations:
onboarding: Good for questions about company policies, HR, IT setup, team structures, onboarding procedures, office processes.
learning: Good for questions about learning, skill development, course recommendations, training resources, professional knowledge enhancement.
career_coach: Good for questions about career growth, goal setting, performance reviews, long-term development, promotion paths.

Reply with only the destination name for the question below.

Question: %s

Destination:`

// Router classifies a query with a single generation call.
type Router struct {
	llm providers.LLMProvider
}

func New(llm providers.LLMProvider) *Router {
	return &Router{llm: llm}
}

// Route never returns an error: a failed generation call falls back to the
// onboarding destination, and an answer naming an unknown destination is
// reported as unresolved.
func (r *Router) Route(ctx context.Context, query string) Route {
	resp, err := r.llm.Generate(ctx, providers.GenerateRequest{
		Operation: "route",
		Prompt:    fmt.Sprintf(routePrompt, query),
	})
	if err != nil {
		log.Printf("router: classification failed, falling back to %s: %v", Fallback, err)
		return Fallback
	}
	return parseDestination(resp.Text)
}

// parseDestination accepts a bare destination name or a JSON object with a
// "destination" field, which some models produce for routing prompts.
func parseDestination(raw string) Route {
	name := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(name, "{") {
		var parsed struct {
			Destination string `json:"destination"`
		}
		start := strings.Index(name, "{")
		end := strings.LastIndex(name, "}")
		if end > start {
			if err := json.Unmarshal([]byte(name[start:end+1]), &parsed); err == nil && parsed.Destination != "" {
				name = strings.ToLower(strings.TrimSpace(parsed.Destination))
			}
		}
	}
	name = strings.Trim(name, `"'.`)
	switch Route(name) {
	case RouteOnboarding, RouteLearning, RouteCareer:
		return Route(name)
	}
	return RouteUnresolved
}
