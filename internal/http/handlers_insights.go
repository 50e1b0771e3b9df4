package http

import (
	"context"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/insight"
)

type suggestRequest struct {
	Title  string     `json:"title"`
	Amount core.Money `json:"amount"`
}

type suggestResponse struct {
	Category string `json:"category"`
}

// handleAnalyze runs the gateway over the current transaction set. Concurrent
// requests collapse into a single gateway call; a failed call degrades to the
// documented fallback insight instead of an error status.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ts, err := s.transactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Analyze read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not read transactions")
		return
	}
	if len(ts) == 0 {
		writeError(w, http.StatusBadRequest, "no transactions to analyze")
		return
	}

	v, err, _ := s.analyzeGroup.Do("analyze", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), s.opts.InsightTimeout)
		defer cancel()
		return s.gateway.Analyze(ctx, ts)
	})
	if err != nil {
		slog.WarnContext(r.Context(), "Insight analysis unavailable", "error", err)
		writeJSON(w, http.StatusOK, insight.Unavailable())
		return
	}

	writeJSON(w, http.StatusOK, v.(insight.Insight))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	title := sanitizeInput(req.Title)
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.opts.InsightTimeout)
	defer cancel()

	category, err := s.gateway.SuggestCategory(ctx, title, req.Amount)
	if err != nil {
		slog.WarnContext(r.Context(), "Category suggestion failed", "error", err)
		category = core.DefaultCategory
	}

	writeJSON(w, http.StatusOK, suggestResponse{Category: category})
}
