package router

import (
	"context"
	"errors"
	"testing"

	"aethernet/internal/providers"

	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	text string
	err  error
}

func (s *scriptedLLM) Generate(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, error) {
	if s.err != nil {
		return providers.GenerateResponse{}, s.err
	}
	return providers.GenerateResponse{Text: s.text}, nil
}

func TestRouteParsesBareName(t *testing.T) {
	r := New(&scriptedLLM{text: "learning"})
	require.Equal(t, RouteLearning, r.Route(context.Background(), "what courses should I take?"))
}

func TestRouteParsesNoisyOutput(t *testing.T) {
	r := New(&scriptedLLM{text: "  Career_Coach.\n"})
	require.Equal(t, RouteCareer, r.Route(context.Background(), "how do I get promoted?"))
}

func TestRouteParsesJSONShape(t *testing.T) {
	r := New(&scriptedLLM{text: "```json\n{\"destination\": \"onboarding\", \"next_inputs\": \"x\"}\n```"})
	require.Equal(t, RouteOnboarding, r.Route(context.Background(), "what is the leave policy?"))
}

func TestRouteUnknownDestinationIsUnresolved(t *testing.T) {
	r := New(&scriptedLLM{text: "payroll"})
	require.Equal(t, RouteUnresolved, r.Route(context.Background(), "???"))
}

func TestRouteGenerationFailureFallsBack(t *testing.T) {
	r := New(&scriptedLLM{err: errors.New("connection refused")})
	require.Equal(t, Fallback, r.Route(context.Background(), "anything"))
}
