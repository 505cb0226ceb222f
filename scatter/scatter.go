// Package scatter renders two-variable plots: an interactive scatter
// whose points reveal a tip string on hover, and a static variant with
// permanent labels for image output.
package scatter

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Options control MouseOver and Static.
type Options struct {
	Title          string
	XLabel, YLabel string

	// SymbolSize is the rendered point diameter in pixels. Defaults
	// to 10.
	SymbolSize int
}

// MouseOver builds a scatter chart where hovering a point reveals its
// tip. The three slices are parallel and must have equal length.
// Hover detection itself belongs to the echarts runtime; this function
// only wires the tips to the points.
func MouseOver(xs, ys []float64, tips []string, o Options) (*charts.Scatter, error) {
	if len(xs) != len(ys) || len(xs) != len(tips) {
		return nil, fmt.Errorf("scatter: mismatched lengths x=%d y=%d tips=%d",
			len(xs), len(ys), len(tips))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("scatter: no points")
	}
	size := o.SymbolSize
	if size <= 0 {
		size = 10
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.YLabel, Type: "value"}),
	)

	items := make([]opts.ScatterData, len(xs))
	for i := range xs {
		items[i] = opts.ScatterData{
			Name:       tips[i],
			Value:      []interface{}{xs[i], ys[i]},
			SymbolSize: size,
		}
	}
	sc.AddSeries("points", items)
	return sc, nil
}

// Render writes sc as a self-contained HTML page.
func Render(w io.Writer, sc *charts.Scatter) error {
	if err := sc.Render(w); err != nil {
		return fmt.Errorf("render scatter: %w", err)
	}
	return nil
}
