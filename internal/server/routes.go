package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/orgbrain/kag/internal/history"
	"github.com/orgbrain/kag/internal/kag"
)

// registerRoutes mounts the KAG API routes.
func (s *Server) registerRoutes(r chi.Router) {
	r.Route("/api/kag", func(r chi.Router) {
		r.Post("/query", s.handleQuery)
		r.Get("/query", s.handleQueryGet)
		r.Get("/examples", s.handleExamples)
		r.Get("/history", s.handleHistory)
	})
}

type queryRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	s.runQuery(w, r, req.Query)
}

func (s *Server) handleQueryGet(w http.ResponseWriter, r *http.Request) {
	s.runQuery(w, r, r.URL.Query().Get("q"))
}

func (s *Server) runQuery(w http.ResponseWriter, r *http.Request, query string) {
	if query == "" {
		http.Error(w, `{"error":"query is required"}`, http.StatusBadRequest)
		return
	}

	start := time.Now()
	resp := s.pipeline.ProcessQuery(r.Context(), query)
	s.record(r, resp, time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	if resp.HasError() {
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(resp)
}

// record writes the query to the history store when one is configured.
func (s *Server) record(r *http.Request, resp *kag.Response, elapsed time.Duration) {
	if s.hist == nil {
		return
	}

	entry := history.Entry{
		Query:         resp.UserQuery,
		EntityCount:   resp.EntityCount(),
		CitationCount: len(resp.Citations),
		Error:         resp.Error,
		DurationMS:    elapsed.Milliseconds(),
	}
	if resp.ExtractedEntities != nil {
		entry.Intent = string(resp.ExtractedEntities.Intent)
	}

	// History is an audit trail, not part of the response contract.
	if _, err := s.hist.Record(r.Context(), entry); err != nil {
		log.Printf("server: recording history: %v", err)
	}
}

// exampleQueries are sample questions the seeded graph can answer.
var exampleQueries = []string{
	"Who worked on AI safety projects?",
	"What outcomes were achieved in bias reduction?",
	"What projects focus on ethics?",
	"Which reports document the AI Safety work?",
	"Tell me about Sarah Chen's projects",
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"examples": exampleQueries})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.hist == nil {
		http.Error(w, `{"error":"history is not enabled"}`, http.StatusNotFound)
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := s.hist.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
