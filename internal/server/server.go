// Package server exposes the agent over HTTP: the caller posts a transcript
// and renders the returned content. The transcript stays caller-owned; the
// server holds no session state.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goodfoods/goodfoods/internal/agent"
	"github.com/goodfoods/goodfoods/internal/core"
)

// Server serves the chat and health endpoints.
type Server struct {
	Addr string
	Loop *agent.Loop
}

type chatRequest struct {
	Messages []core.Message `json:"messages"`
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Post("/chat", s.handleChat)
	return r
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "messages must not be empty"})
		return
	}
	result := s.Loop.Run(r.Context(), req.Messages)
	writeJSON(w, http.StatusOK, result)
}

// ListenAndServe blocks serving the API on s.Addr.
func (s *Server) ListenAndServe() error {
	log.Printf("[SERVER] listening on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Handler())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[SERVER] encode response: %v", err)
	}
}
