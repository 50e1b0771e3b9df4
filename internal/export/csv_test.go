package export

import (
	"strings"
	"testing"

	"fintrack/internal/core"
)

func TestWriteCSV(t *testing.T) {
	ts := []core.Transaction{
		{
			ID:          core.NewID(),
			Title:       "Dinner, with friends",
			Amount:      core.Money{Cents: 8550},
			Type:        core.Expense,
			Category:    "Food",
			Date:        core.NewDate(2025, 8, 20),
			Description: `He said "hi"`,
		},
		{
			ID:       core.NewID(),
			Title:    "Salary",
			Amount:   core.Money{Cents: 500000},
			Type:     core.Income,
			Category: "Salary",
			Date:     core.NewDate(2025, 8, 1),
		},
	}

	var b strings.Builder
	if err := WriteCSV(&b, ts); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != Header {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != `2025-08-20,expense,Food,"Dinner, with friends",85.5,"He said ""hi"""` {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if lines[2] != `2025-08-01,income,Salary,"Salary",5000,""` {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if b.String() != Header+"\n" {
		t.Fatalf("empty export must still carry the header, got %q", b.String())
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("income"); got != "finance_data_income.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}
