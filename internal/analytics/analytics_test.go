package analytics

import (
	"testing"

	"fintrack/internal/core"
)

func tx(title string, cents int64, typ core.TransactionType, category string, date core.Date) core.Transaction {
	return core.Transaction{
		ID:       core.NewID(),
		Title:    title,
		Amount:   core.Money{Cents: cents},
		Type:     typ,
		Category: category,
		Date:     date,
	}
}

func TestComputeStats(t *testing.T) {
	today := core.NewDate(2025, 8, 20)
	ts := []core.Transaction{
		tx("Salary", 500000, core.Income, "Salary", today),
		tx("Rent", 120000, core.Expense, "Rent", today),
		tx("Groceries", 35000, core.Expense, "Food", today),
	}
	s := ComputeStats(ts)
	if s.Income.Cents != 500000 {
		t.Fatalf("income = %d, want 500000", s.Income.Cents)
	}
	if s.Expense.Cents != 155000 {
		t.Fatalf("expense = %d, want 155000", s.Expense.Cents)
	}
	if s.Balance != s.Income.Sub(s.Expense) {
		t.Fatalf("balance invariant violated: %+v", s)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.Income.Cents != 0 || s.Expense.Cents != 0 || s.Balance.Cents != 0 {
		t.Fatalf("expected zero stats, got %+v", s)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	today := core.NewDate(2025, 8, 20)
	ts := []core.Transaction{
		tx("Groceries", 10000, core.Expense, "Food", today),
		tx("Dining", 5000, core.Expense, "Food", today),
		tx("Rent", 20000, core.Expense, "Rent", today),
		tx("Salary", 99999, core.Income, "Salary", today),
	}

	series := CategoryBreakdown(ts, core.Expense, 0, ExpensePalette)
	if len(series) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(series))
	}
	if series[0].Label != "Rent" || series[0].Value.Cents != 20000 {
		t.Fatalf("expected Rent 20000 first, got %+v", series[0])
	}
	if series[1].Label != "Food" || series[1].Value.Cents != 15000 {
		t.Fatalf("expected Food 15000 second, got %+v", series[1])
	}

	// Per-group sums cover the full input for that type.
	if series.Total().Cents != 35000 {
		t.Fatalf("breakdown total = %d, want 35000", series.Total().Cents)
	}

	// Sorted descending.
	for i := 1; i < len(series); i++ {
		if series[i].Value.Cents > series[i-1].Value.Cents {
			t.Fatalf("series not sorted descending at %d", i)
		}
	}
}

func TestCategoryBreakdownLimitAndPalette(t *testing.T) {
	today := core.NewDate(2025, 8, 20)
	var ts []core.Transaction
	categories := []string{"Food", "Rent", "Utilities", "Transport", "Health", "Shopping", "Education"}
	for i, c := range categories {
		ts = append(ts, tx(c, int64(1000*(len(categories)-i)), core.Expense, c, today))
	}

	series := CategoryBreakdown(ts, core.Expense, 6, ExpensePalette)
	if len(series) != 6 {
		t.Fatalf("expected truncation to 6, got %d", len(series))
	}
	// Colors cycle: rank 5 wraps to palette[0].
	if series[5].Color != ExpensePalette[0] {
		t.Fatalf("expected palette wrap, got %q", series[5].Color)
	}
}

func TestCategoryBreakdownStableTies(t *testing.T) {
	today := core.NewDate(2025, 8, 20)
	ts := []core.Transaction{
		tx("a", 1000, core.Expense, "Food", today),
		tx("b", 1000, core.Expense, "Transport", today),
		tx("c", 1000, core.Expense, "Health", today),
	}
	series := CategoryBreakdown(ts, core.Expense, 0, ExpensePalette)
	want := []string{"Food", "Transport", "Health"}
	for i, label := range want {
		if series[i].Label != label {
			t.Fatalf("tie order broken: got %q at %d, want %q", series[i].Label, i, label)
		}
	}
}

func TestDailySeriesLength(t *testing.T) {
	today := core.NewDate(2025, 8, 20)

	// Regardless of input size the series is exactly windowDays long.
	for _, ts := range [][]core.Transaction{
		nil,
		{tx("Gas", 4500, core.Expense, "Transport", today.AddDays(-2))},
	} {
		series := DailySeries(ts, today, 30, core.Expense)
		if len(series) != 30 {
			t.Fatalf("expected 30 points, got %d", len(series))
		}
	}
}

func TestDailySeriesValues(t *testing.T) {
	today := core.NewDate(2025, 8, 20)
	ts := []core.Transaction{
		tx("Gas", 4500, core.Expense, "Transport", today),
		tx("Dining", 8500, core.Expense, "Food", today),
		tx("Coffee", 500, core.Expense, "Food", today.AddDays(-1)),
		tx("Old", 9999, core.Expense, "Food", today.AddDays(-40)), // outside window
		tx("Salary", 100000, core.Income, "Salary", today),        // wrong type
	}

	series := DailySeries(ts, today, 30, core.Expense)
	last := series[len(series)-1]
	if last.Value.Cents != 13000 {
		t.Fatalf("today bucket = %d, want 13000", last.Value.Cents)
	}
	if last.Label != "Aug 20" {
		t.Fatalf("unexpected label %q", last.Label)
	}
	if series[len(series)-2].Value.Cents != 500 {
		t.Fatalf("yesterday bucket = %d, want 500", series[len(series)-2].Value.Cents)
	}
	// Oldest-first ordering with zero-filled gaps.
	if series[0].Label != today.AddDays(-29).Label() {
		t.Fatalf("series does not start at window head: %q", series[0].Label)
	}
	if series[0].Value.Cents != 0 {
		t.Fatalf("expected zero fill, got %d", series[0].Value.Cents)
	}
}

func TestWindowedCategoryBreakdown(t *testing.T) {
	today := core.NewDate(2025, 8, 20)
	ts := []core.Transaction{
		tx("Salary", 500000, core.Income, "Salary", today.AddDays(-10)),
		tx("Bonus", 100000, core.Income, "Business", today.AddDays(-45)),
		tx("Old freelance", 30000, core.Income, "Freelance", today.AddDays(-61)),
	}

	series := WindowedCategoryBreakdown(ts, today, 60, core.Income, IncomePalette)
	if len(series) != 2 {
		t.Fatalf("expected 2 groups inside window, got %d", len(series))
	}
	if series[0].Label != "Salary" || series[1].Label != "Business" {
		t.Fatalf("unexpected groups %+v", series)
	}
}

func TestOverviewSeries(t *testing.T) {
	s := OverviewSeries(Stats{Income: core.Money{Cents: 1000}, Expense: core.Money{Cents: 400}})
	if len(s) != 2 {
		t.Fatalf("expected 2 points, got %d", len(s))
	}
	if s[0].Label != "Income" || s[1].Label != "Expense" {
		t.Fatalf("unexpected labels %+v", s)
	}
	if s.Total().Cents != 1400 {
		t.Fatalf("total = %d, want 1400", s.Total().Cents)
	}
}

func TestSpecExampleBreakdown(t *testing.T) {
	today := core.NewDate(2025, 8, 20)
	ts := []core.Transaction{
		tx("Groceries", 10000, core.Expense, "Food", today),
		tx("Dining", 5000, core.Expense, "Food", today),
		tx("Rent", 20000, core.Expense, "Rent", today),
	}
	series := CategoryBreakdown(ts, core.Expense, 0, ExpensePalette)
	if series[0].Label != "Rent" || series[0].Value.Cents != 20000 ||
		series[1].Label != "Food" || series[1].Value.Cents != 15000 {
		t.Fatalf("unexpected breakdown %+v", series)
	}
}
