// Package analytics derives summary statistics and chart series from a
// snapshot of the transaction store. Every function here is pure: no state,
// no side effects, recomputed in full on every call.
package analytics

import (
	"sort"

	"fintrack/internal/core"
)

// Point is one labeled, colored value of a derived series.
type Point struct {
	Label string     `json:"label"`
	Value core.Money `json:"value"`
	Color string     `json:"color"`
}

// Series is an ordered chart series. It is always derived, never persisted.
type Series []Point

// Stats are the aggregate totals over the full transaction set.
type Stats struct {
	Income  core.Money `json:"income"`
	Expense core.Money `json:"expense"`
	Balance core.Money `json:"balance"`
}

// Color palettes, cycled by rank when a breakdown has more groups than
// palette entries.
var (
	ExpensePalette = []string{"#EF4444", "#F87171", "#FCA5A5", "#FECACA", "#FEE2E2"}
	IncomePalette  = []string{"#10B981", "#34D399", "#6EE7B7", "#A7F3D0", "#D1FAE5"}

	// DailyBarColor is the single color used for date-bucketed bar series.
	DailyBarColor = "#6366F1"

	IncomeColor  = "#10B981"
	ExpenseColor = "#EF4444"
)

// ComputeStats sums amounts by type. Balance is income minus expense. An
// empty input yields zero stats.
func ComputeStats(ts []core.Transaction) Stats {
	var s Stats
	for _, t := range ts {
		switch t.Type {
		case core.Income:
			s.Income = s.Income.Add(t.Amount)
		case core.Expense:
			s.Expense = s.Expense.Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// CategoryBreakdown groups transactions of the given type by category, sums
// each group, and sorts descending by summed value. Ties keep first-encounter
// order. A positive limit truncates to the top groups. Colors cycle through
// the palette by rank.
func CategoryBreakdown(ts []core.Transaction, typ core.TransactionType, limit int, palette []string) Series {
	sums := make(map[string]int64)
	var order []string
	for _, t := range ts {
		if t.Type != typ {
			continue
		}
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] += t.Amount.Cents
	}

	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]] > sums[order[j]]
	})
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	series := make(Series, 0, len(order))
	for i, name := range order {
		series = append(series, Point{
			Label: name,
			Value: core.Money{Cents: sums[name]},
			Color: paletteColor(palette, i),
		})
	}
	return series
}

// DailySeries emits one point per calendar day in the window
// [today-windowDays+1, today], oldest first. Days with no matching
// transaction carry a zero value, so the result is always exactly windowDays
// points long.
func DailySeries(ts []core.Transaction, today core.Date, windowDays int, typ core.TransactionType) Series {
	if windowDays <= 0 {
		return Series{}
	}

	byDate := make(map[string]int64)
	for _, t := range ts {
		if t.Type != typ {
			continue
		}
		byDate[t.Date.String()] += t.Amount.Cents
	}

	series := make(Series, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		series = append(series, Point{
			Label: day.Label(),
			Value: core.Money{Cents: byDate[day.String()]},
			Color: DailyBarColor,
		})
	}
	return series
}

// WindowedCategoryBreakdown is CategoryBreakdown restricted to transactions
// dated within [today-windowDays, today]. It never truncates.
func WindowedCategoryBreakdown(ts []core.Transaction, today core.Date, windowDays int, typ core.TransactionType, palette []string) Series {
	cutoff := today.AddDays(-windowDays)
	var windowed []core.Transaction
	for _, t := range ts {
		if t.Date.Before(cutoff.Time) || t.Date.After(today.Time) {
			continue
		}
		windowed = append(windowed, t)
	}
	return CategoryBreakdown(windowed, typ, 0, palette)
}

// OverviewSeries is the two-point income-versus-expense series for the
// dashboard donut.
func OverviewSeries(s Stats) Series {
	return Series{
		{Label: "Income", Value: s.Income, Color: IncomeColor},
		{Label: "Expense", Value: s.Expense, Color: ExpenseColor},
	}
}

// Total sums the series values.
func (s Series) Total() core.Money {
	var total core.Money
	for _, p := range s {
		total = total.Add(p.Value)
	}
	return total
}

func paletteColor(palette []string, rank int) string {
	if len(palette) == 0 {
		return DailyBarColor
	}
	return palette[rank%len(palette)]
}
