package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/store"
)

type createTransactionRequest struct {
	Title       string     `json:"title"`
	Amount      core.Money `json:"amount"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	Date        core.Date  `json:"date"`
	Description string     `json:"description"`
}

type transactionListResponse struct {
	Transactions []core.Transaction `json:"transactions"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	typ, filtered, err := parseTypeFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ts, err := s.transactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list transactions")
		return
	}

	out := make([]core.Transaction, 0, len(ts))
	for _, t := range ts {
		if filtered && t.Type != typ {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	writeJSON(w, http.StatusOK, transactionListResponse{Transactions: out})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	typ := core.TransactionType(req.Type)
	t := core.Transaction{
		ID:          core.NewID(),
		Title:       sanitizeInput(req.Title),
		Amount:      req.Amount,
		Type:        typ,
		Category:    core.NormalizeCategory(typ, sanitizeInput(req.Category)),
		Date:        req.Date,
		Description: sanitizeInput(req.Description),
	}
	if t.Date.IsZero() {
		t.Date = core.DateOf(time.Now())
	}

	if err := t.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Add(r.Context(), t); err != nil {
		slog.ErrorContext(r.Context(), "Create transaction failed", "error", err,
			"title", t.Title, "amount_cents", t.Amount.Cents)
		writeError(w, http.StatusInternalServerError, "could not save transaction")
		return
	}

	s.invalidateTransactions()
	log.NewStructuredLogger(log.FromContext(r.Context())).
		LogTransactionCreated(r.Context(), t.ID, t.Title, t.Amount.Cents, string(t.Type), t.Category)
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "transaction id is required")
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		slog.ErrorContext(r.Context(), "Delete transaction failed", "error", err, "transaction_id", id)
		writeError(w, http.StatusInternalServerError, "could not delete transaction")
		return
	}

	s.invalidateTransactions()
	slog.InfoContext(r.Context(), "Transaction deleted", "transaction_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ts, err := s.transactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Stats read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not compute stats")
		return
	}
	writeJSON(w, http.StatusOK, analytics.ComputeStats(ts))
}
