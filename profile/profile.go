// Package profile renders single-variable distribution figures:
// percentage histograms for numeric columns, percentage bar charts for
// categorical ones, and whole data-frame profile grids combining both.
package profile

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/saulberardo/MagicEDA/chart"
)

// DefaultBins is the histogram bin count used when none is given.
const DefaultBins = 30

// IsNumeric reports whether s holds int or float values.
func IsNumeric(s series.Series) bool {
	return s.Type() == series.Int || s.Type() == series.Float
}

// IsCategorical reports whether s holds string or bool values.
func IsCategorical(s series.Series) bool {
	return s.Type() == series.String || s.Type() == series.Bool
}

// Categories returns the distinct values of s in sorted order.
func Categories(s series.Series) []string {
	seen := make(map[string]bool)
	var cats []string
	for i := 0; i < s.Len(); i++ {
		v := s.Elem(i).String()
		if !seen[v] {
			seen[v] = true
			cats = append(cats, v)
		}
	}
	sort.Strings(cats)
	return cats
}

// CategoryPercents returns the categories of s and the percentage of
// rows falling in each.
func CategoryPercents(s series.Series) ([]string, []float64) {
	cats := Categories(s)
	return cats, percentsIn(s, cats)
}

// percentsIn tallies s against a fixed category order; categories
// absent from s count zero.
func percentsIn(s series.Series, cats []string) []float64 {
	counts := make(map[string]int, len(cats))
	for i := 0; i < s.Len(); i++ {
		counts[s.Elem(i).String()]++
	}
	out := make([]float64, len(cats))
	if s.Len() == 0 {
		return out
	}
	for i, c := range cats {
		out[i] = 100 * float64(counts[c]) / float64(s.Len())
	}
	return out
}

// BarOptions control BarChart.
type BarOptions struct {
	Title, XLabel, YLabel string

	// Color overrides the palette for every series.
	Color color.Color

	// BarWidth is the width of a single bar. Defaults to 18pt split
	// between the series.
	BarWidth vg.Length

	// Legends name each series; defaults to "Series 1", "Series 2"...
	// The legend box is only drawn for more than one series.
	Legends []string

	// XTickRotation rotates category labels counterclockwise, in
	// degrees. Long category names overlap without it.
	XTickRotation float64
}

// BarChart draws a percentage bar chart of one or more categorical
// series, categories grouped together. The first series is assumed to
// carry every category; values outside it count toward nothing.
func BarChart(o BarOptions, ss ...series.Series) (*plot.Plot, error) {
	if len(ss) == 0 {
		return nil, fmt.Errorf("profile: no series")
	}
	for _, s := range ss {
		if !IsCategorical(s) {
			return nil, fmt.Errorf("profile: series %q is %v, want categorical", s.Name, s.Type())
		}
	}
	cats := Categories(ss[0])

	width := o.BarWidth
	if width == 0 {
		width = vg.Points(18) / vg.Length(len(ss))
	}

	p := plot.New()
	for i, s := range ss {
		bars, err := plotter.NewBarChart(plotter.Values(percentsIn(s, cats)), width)
		if err != nil {
			return nil, fmt.Errorf("bar chart: %w", err)
		}
		bars.LineStyle.Width = 0
		bars.Offset = width * vg.Length(i)
		if o.Color != nil {
			bars.Color = o.Color
		} else {
			bars.Color = chart.PaletteColor(i)
		}
		p.Add(bars)
		if len(ss) > 1 {
			p.Legend.Add(legendName(o.Legends, i), bars)
		}
	}
	if len(ss) > 1 {
		p.Legend.Top = true
	}
	p.NominalX(cats...)
	if o.XTickRotation != 0 {
		p.X.Tick.Label.Rotation = o.XTickRotation * math.Pi / 180
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	return p, nil
}

func legendName(legends []string, i int) string {
	if i < len(legends) {
		return legends[i]
	}
	return fmt.Sprintf("Series %d", i+1)
}

// HistOptions control Histogram.
type HistOptions struct {
	Title, XLabel, YLabel string
	Color                 color.Color
	Bins                  int
}

// Histogram draws a percentage histogram of a numeric series. Missing
// values are dropped.
func Histogram(s series.Series, o HistOptions) (*plot.Plot, error) {
	if !IsNumeric(s) {
		return nil, fmt.Errorf("profile: series %q is %v, want numeric", s.Name, s.Type())
	}
	vals := make(plotter.Values, 0, s.Len())
	for _, v := range s.Float() {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("profile: series %q has no values", s.Name)
	}
	bins := o.Bins
	if bins <= 0 {
		bins = DefaultBins
	}
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	h.Normalize(100)
	if o.Color != nil {
		h.FillColor = o.Color
	} else {
		h.FillColor = chart.Blue
	}

	p := plot.New()
	p.Add(plotter.NewGrid(), h)
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	return p, nil
}
