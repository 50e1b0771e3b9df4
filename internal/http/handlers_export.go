package http

import (
	"log/slog"
	"net/http"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/export"
)

// handleExport streams the transaction list as a CSV attachment, filtered by
// the active view: dashboard exports everything, income and expenses export
// one type.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	view := strings.TrimSpace(r.URL.Query().Get("view"))
	if view == "" {
		view = "dashboard"
	}

	var typ core.TransactionType
	switch view {
	case "dashboard":
	case "income":
		typ = core.Income
	case "expenses":
		typ = core.Expense
	default:
		writeError(w, http.StatusBadRequest, "unknown view "+view)
		return
	}

	ts, err := s.transactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Export read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not read transactions")
		return
	}

	if typ != "" {
		filtered := make([]core.Transaction, 0, len(ts))
		for _, t := range ts {
			if t.Type == typ {
				filtered = append(filtered, t)
			}
		}
		ts = filtered
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(view)+`"`)
	if err := export.WriteCSV(w, ts); err != nil {
		slog.ErrorContext(r.Context(), "Export write failed", "error", err, "view", view)
	}
}
