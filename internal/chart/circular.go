// Package chart converts derived series into renderable shapes: SVG wedge
// paths for pie and donut charts, and height fractions for bar charts. Both
// converters are pure functions over their input series.
package chart

import (
	"fmt"
	"math"

	"fintrack/internal/analytics"
	"fintrack/internal/core"
)

// Fixed circular-chart frame: a 100x100 viewBox with the circle centered at
// (50,50). The donut variant punches a background-colored inner circle.
const (
	ViewBox     = 100
	CenterX     = 50.0
	CenterY     = 50.0
	Radius      = 40.0
	InnerRadius = 25.0
)

// Slice is one filled wedge of a circular chart. When FullCircle is set the
// renderer must draw a plain circle primitive: a 360-degree arc is an
// undefined path command, so the single-slice case never emits Path.
type Slice struct {
	Label        string     `json:"label"`
	Value        core.Money `json:"value"`
	Color        string     `json:"color"`
	Percent      int        `json:"percent"`
	SweepDegrees float64    `json:"sweepDegrees"`
	FullCircle   bool       `json:"fullCircle,omitempty"`
	Path         string     `json:"path,omitempty"`
}

// LegendEntry pairs a series item with its rounded percentage share.
type LegendEntry struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	Percent int    `json:"percent"`
}

// CircularChart is the renderable form of a pie or donut chart.
type CircularChart struct {
	Slices      []Slice       `json:"slices"`
	Legend      []LegendEntry `json:"legend"`
	Total       core.Money    `json:"total"`
	Donut       bool          `json:"donut"`
	InnerRadius float64       `json:"innerRadius,omitempty"`
}

// Circular builds the pie geometry for a series. The second return value is
// false when the series sums to zero: there is no degenerate shape for "no
// data", the caller must render an explicit empty state instead.
func Circular(series analytics.Series) (CircularChart, bool) {
	return circular(series, false)
}

// Donut is Circular with the concentric inner cutout enabled.
func Donut(series analytics.Series) (CircularChart, bool) {
	return circular(series, true)
}

func circular(series analytics.Series, donut bool) (CircularChart, bool) {
	total := series.Total()
	if total.Cents == 0 {
		return CircularChart{}, false
	}

	chart := CircularChart{
		Slices: make([]Slice, 0, len(series)),
		Legend: make([]LegendEntry, 0, len(series)),
		Total:  total,
		Donut:  donut,
	}
	if donut {
		chart.InnerRadius = InnerRadius
	}

	cumulative := 0.0
	for _, p := range series {
		share := float64(p.Value.Cents) / float64(total.Cents)
		sweep := share * 360
		percent := int(math.Round(share * 100))

		slice := Slice{
			Label:        p.Label,
			Value:        p.Value,
			Color:        p.Color,
			Percent:      percent,
			SweepDegrees: sweep,
		}
		if p.Value.Cents == total.Cents {
			// Single nonzero slice: a full circle, not an arc.
			slice.FullCircle = true
		} else {
			slice.Path = wedgePath(cumulative, sweep)
		}
		cumulative += sweep

		chart.Slices = append(chart.Slices, slice)
		chart.Legend = append(chart.Legend, LegendEntry{Label: p.Label, Color: p.Color, Percent: percent})
	}
	return chart, true
}

// wedgePath builds the filled-wedge path: move to center, line to the arc's
// start point, arc to its end point, close. Angles are degrees from the
// chart's zero axis; the presentation layer applies any rotation.
func wedgePath(startDeg, sweepDeg float64) string {
	largeArc := 0
	if sweepDeg > 180 {
		largeArc = 1
	}
	sx, sy := pointAt(startDeg)
	ex, ey := pointAt(startDeg + sweepDeg)
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		coord(CenterX), coord(CenterY),
		coord(sx), coord(sy),
		coord(Radius), coord(Radius),
		largeArc,
		coord(ex), coord(ey))
}

// pointAt evaluates the standard parametric circle at the given angle.
func pointAt(deg float64) (x, y float64) {
	rad := deg * math.Pi / 180
	return CenterX + Radius*math.Cos(rad), CenterY + Radius*math.Sin(rad)
}

// coord formats a path coordinate with enough precision for a 100-unit
// viewBox, trimming trailing zeros.
func coord(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
