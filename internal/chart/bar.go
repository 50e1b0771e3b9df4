package chart

import (
	"fintrack/internal/analytics"
	"fintrack/internal/core"
)

// Bar chart display defaults. Dense series suppress most axis labels so they
// do not overlap; zero bars keep a minimum height so they stay hoverable.
const (
	DefaultMinHeightFrac = 0.02
	DefaultLabelDensity  = 15
	DefaultLabelStride   = 5
)

// Bar is one rendered bar. HeightFrac is the bar's height as a fraction of
// the chart area, never below the configured minimum.
type Bar struct {
	Label      string     `json:"label"`
	Value      core.Money `json:"value"`
	Color      string     `json:"color"`
	HeightFrac float64    `json:"heightFrac"`
	ShowLabel  bool       `json:"showLabel"`
}

// BarChart is the renderable form of a bar series.
type BarChart struct {
	Bars []Bar      `json:"bars"`
	Max  core.Money `json:"max"`
}

// BarOptions tune display density. Zero values fall back to the defaults.
type BarOptions struct {
	MinHeightFrac float64
	LabelDensity  int
	LabelStride   int
}

// Bars scales a series against its maximum value. The maximum is floored at
// one cent so an all-zero series divides cleanly and renders every bar at the
// minimum visible height. When the series is longer than the density
// threshold, only every strideth label plus the final one is shown.
func Bars(series analytics.Series, opts BarOptions) BarChart {
	if opts.MinHeightFrac <= 0 {
		opts.MinHeightFrac = DefaultMinHeightFrac
	}
	if opts.LabelDensity <= 0 {
		opts.LabelDensity = DefaultLabelDensity
	}
	if opts.LabelStride <= 0 {
		opts.LabelStride = DefaultLabelStride
	}

	max := int64(1)
	for _, p := range series {
		if p.Value.Cents > max {
			max = p.Value.Cents
		}
	}

	dense := len(series) > opts.LabelDensity
	chart := BarChart{
		Bars: make([]Bar, 0, len(series)),
		Max:  core.Money{Cents: max},
	}
	for i, p := range series {
		frac := float64(p.Value.Cents) / float64(max)
		if frac < opts.MinHeightFrac {
			frac = opts.MinHeightFrac
		}
		show := !dense || i%opts.LabelStride == 0 || i == len(series)-1
		chart.Bars = append(chart.Bars, Bar{
			Label:      p.Label,
			Value:      p.Value,
			Color:      p.Color,
			HeightFrac: frac,
			ShowLabel:  show,
		})
	}
	return chart
}
