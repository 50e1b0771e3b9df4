package chart

import (
	"math"
	"strings"
	"testing"

	"fintrack/internal/analytics"
	"fintrack/internal/core"
)

func series(values ...int64) analytics.Series {
	s := make(analytics.Series, 0, len(values))
	for i, v := range values {
		s = append(s, analytics.Point{
			Label: string(rune('A' + i)),
			Value: core.Money{Cents: v},
			Color: "#000000",
		})
	}
	return s
}

func TestCircularNoData(t *testing.T) {
	if _, ok := Circular(nil); ok {
		t.Fatalf("empty series must signal no data")
	}
	if _, ok := Circular(series(0, 0, 0)); ok {
		t.Fatalf("all-zero series must signal no data")
	}
}

func TestCircularSweepsSumTo360(t *testing.T) {
	cases := []analytics.Series{
		series(100, 50, 200),
		series(1, 1, 1, 1, 1, 1, 1),
		series(99999, 1),
	}
	for i, s := range cases {
		chart, ok := Circular(s)
		if !ok {
			t.Fatalf("case %d: expected geometry", i)
		}
		sum := 0.0
		for _, slice := range chart.Slices {
			sum += slice.SweepDegrees
		}
		if math.Abs(sum-360) > 1e-9 {
			t.Fatalf("case %d: sweeps sum to %v, want 360", i, sum)
		}
	}
}

func TestCircularSingleSliceFullCircle(t *testing.T) {
	chart, ok := Circular(series(500))
	if !ok {
		t.Fatalf("expected geometry")
	}
	if !chart.Slices[0].FullCircle {
		t.Fatalf("single slice must be the full-circle special case")
	}
	if chart.Slices[0].Path != "" {
		t.Fatalf("full circle must not carry an arc path")
	}
	if chart.Slices[0].Percent != 100 {
		t.Fatalf("percent = %d, want 100", chart.Slices[0].Percent)
	}

	// One nonzero entry among zeros is the same case.
	chart, ok = Circular(series(0, 500, 0))
	if !ok {
		t.Fatalf("expected geometry")
	}
	if !chart.Slices[1].FullCircle {
		t.Fatalf("lone nonzero slice must be a full circle")
	}
}

func TestCircularWedgePaths(t *testing.T) {
	chart, ok := Circular(series(100, 50, 200))
	if !ok {
		t.Fatalf("expected geometry")
	}
	for i, slice := range chart.Slices {
		if slice.FullCircle {
			t.Fatalf("slice %d must not be a full circle", i)
		}
		if !strings.HasPrefix(slice.Path, "M 50 50 L ") {
			t.Fatalf("slice %d path does not start at center: %q", i, slice.Path)
		}
		if !strings.HasSuffix(slice.Path, "Z") {
			t.Fatalf("slice %d path not closed: %q", i, slice.Path)
		}
	}

	// 200/350 of the circle sweeps more than half: large-arc flag set.
	if !strings.Contains(chart.Slices[2].Path, " 0 1 1 ") {
		t.Fatalf("majority slice should set the large-arc flag: %q", chart.Slices[2].Path)
	}
	if strings.Contains(chart.Slices[0].Path, " 0 1 1 ") {
		t.Fatalf("minority slice should not set the large-arc flag: %q", chart.Slices[0].Path)
	}
}

func TestCircularLegendPercentages(t *testing.T) {
	// 200 of 350 is 57%, 150 of 350 is 43% (rounded).
	chart, ok := Circular(analytics.Series{
		{Label: "Rent", Value: core.Money{Cents: 20000}, Color: "#EF4444"},
		{Label: "Food", Value: core.Money{Cents: 15000}, Color: "#F87171"},
	})
	if !ok {
		t.Fatalf("expected geometry")
	}
	if chart.Legend[0].Percent != 57 || chart.Legend[1].Percent != 43 {
		t.Fatalf("unexpected legend percentages %+v", chart.Legend)
	}
}

func TestDonutInnerRadius(t *testing.T) {
	chart, ok := Donut(series(100, 200))
	if !ok {
		t.Fatalf("expected geometry")
	}
	if !chart.Donut || chart.InnerRadius != InnerRadius {
		t.Fatalf("donut cutout not set: %+v", chart)
	}
	pie, _ := Circular(series(100, 200))
	if pie.Donut || pie.InnerRadius != 0 {
		t.Fatalf("pie must not carry a cutout: %+v", pie)
	}
}
