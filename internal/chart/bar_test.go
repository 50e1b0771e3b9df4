package chart

import (
	"testing"

	"fintrack/internal/analytics"
	"fintrack/internal/core"
)

func TestBarsMaxHeight(t *testing.T) {
	chart := Bars(series(100, 400, 250), BarOptions{})
	if chart.Max.Cents != 400 {
		t.Fatalf("max = %d, want 400", chart.Max.Cents)
	}
	if chart.Bars[1].HeightFrac != 1.0 {
		t.Fatalf("maximum bar height = %v, want 1.0", chart.Bars[1].HeightFrac)
	}
	if chart.Bars[0].HeightFrac != 0.25 {
		t.Fatalf("bar height = %v, want 0.25", chart.Bars[0].HeightFrac)
	}
}

func TestBarsAllZero(t *testing.T) {
	chart := Bars(series(0, 0, 0), BarOptions{})
	if chart.Max.Cents != 1 {
		t.Fatalf("all-zero max must floor at 1 cent, got %d", chart.Max.Cents)
	}
	for i, b := range chart.Bars {
		if b.HeightFrac != DefaultMinHeightFrac {
			t.Fatalf("bar %d height = %v, want minimum %v", i, b.HeightFrac, DefaultMinHeightFrac)
		}
	}
}

func TestBarsMinimumVisibleHeight(t *testing.T) {
	chart := Bars(series(1, 100000), BarOptions{})
	if chart.Bars[0].HeightFrac != DefaultMinHeightFrac {
		t.Fatalf("near-zero bar height = %v, want clamped minimum", chart.Bars[0].HeightFrac)
	}
}

func TestBarsLabelDensity(t *testing.T) {
	var s analytics.Series
	for i := 0; i < 30; i++ {
		s = append(s, analytics.Point{Label: "d", Value: core.Money{Cents: int64(i)}, Color: "#6366F1"})
	}
	chart := Bars(s, BarOptions{})
	for i, b := range chart.Bars {
		want := i%DefaultLabelStride == 0 || i == len(s)-1
		if b.ShowLabel != want {
			t.Fatalf("bar %d label visibility = %v, want %v", i, b.ShowLabel, want)
		}
	}

	// Short series keep every label.
	short := Bars(series(1, 2, 3), BarOptions{})
	for i, b := range short.Bars {
		if !b.ShowLabel {
			t.Fatalf("short series bar %d must keep its label", i)
		}
	}
}
