package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"aethernet/internal/config"
	"aethernet/internal/models"
	"aethernet/internal/orchestrator"
	"aethernet/internal/profile"

	"github.com/google/uuid"
)

// Server is the thin HTTP boundary in front of the orchestrator. Front-ends
// only forward user text and render the returned envelope.
type Server struct {
	cfg      config.Config
	orch     *orchestrator.Orchestrator
	profiles *profile.Store
}

func NewServer(cfg config.Config, orch *orchestrator.Orchestrator, profiles *profile.Store) *Server {
	return &Server{cfg: cfg, orch: orch, profiles: profiles}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/chat", s.handleChat)
	return withCORS(mux)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	var req struct {
		Message   string `json:"message"`
		UserID    string `json:"user_id"`
		Role      string `json:"role"`
		Interests string `json:"interests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("message is required"))
		return
	}
	if req.UserID == "" {
		req.UserID = uuid.NewString()
	}

	userProfile := s.profiles.Update(req.UserID, func(p *models.Profile) {
		if v := strings.TrimSpace(req.Role); v != "" {
			p.Role = v
		}
		if v := strings.TrimSpace(req.Interests); v != "" {
			p.Interests = v
		}
	})

	started := time.Now()
	answer := s.orch.ProcessQuery(r.Context(), req.Message, userProfile)
	log.Printf("api: chat user=%s agent=%q took=%s", req.UserID, answer.AgentName, time.Since(started).Round(time.Millisecond))

	writeJSON(w, http.StatusOK, map[string]any{
		"answer":     answer.Text,
		"agent_name": answer.AgentName,
		"sources":    answer.Sources,
		"user_id":    req.UserID,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"message": err.Error(),
		},
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
