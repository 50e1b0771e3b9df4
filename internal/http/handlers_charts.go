package http

import (
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/chart"
	"fintrack/internal/core"
)

// Chart responses carry the derived series and its rendered geometry. HasData
// is false when every value is zero; the client renders an empty state
// instead of a degenerate shape.
type circularChartResponse struct {
	Series  analytics.Series    `json:"series"`
	Chart   chart.CircularChart `json:"chart"`
	HasData bool                `json:"hasData"`
}

type barChartResponse struct {
	Series analytics.Series `json:"series"`
	Chart  chart.BarChart   `json:"chart"`
}

func (s *Server) handleExpenseBreakdown(w http.ResponseWriter, r *http.Request) {
	ts, err := s.transactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Chart read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not read transactions")
		return
	}

	series := analytics.CategoryBreakdown(ts, core.Expense, s.opts.ExpenseTopCategories, analytics.ExpensePalette)
	rendered, hasData := chart.Donut(series)
	writeJSON(w, http.StatusOK, circularChartResponse{Series: series, Chart: rendered, HasData: hasData})
}

func (s *Server) handleIncomeBreakdown(w http.ResponseWriter, r *http.Request) {
	ts, err := s.transactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Chart read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not read transactions")
		return
	}

	today := core.DateOf(time.Now())
	series := analytics.WindowedCategoryBreakdown(ts, today, s.opts.IncomeWindowDays, core.Income, analytics.IncomePalette)
	rendered, hasData := chart.Circular(series)
	writeJSON(w, http.StatusOK, circularChartResponse{Series: series, Chart: rendered, HasData: hasData})
}

func (s *Server) handleDailyChart(w http.ResponseWriter, r *http.Request) {
	ts, err := s.transactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Chart read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not read transactions")
		return
	}

	today := core.DateOf(time.Now())
	series := analytics.DailySeries(ts, today, s.opts.ExpenseWindowDays, core.Expense)
	writeJSON(w, http.StatusOK, barChartResponse{Series: series, Chart: chart.Bars(series, chart.BarOptions{})})
}

func (s *Server) handleOverviewChart(w http.ResponseWriter, r *http.Request) {
	ts, err := s.transactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Chart read failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not read transactions")
		return
	}

	series := analytics.OverviewSeries(analytics.ComputeStats(ts))
	rendered, hasData := chart.Donut(series)
	writeJSON(w, http.StatusOK, circularChartResponse{Series: series, Chart: rendered, HasData: hasData})
}
