package profile

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"

	"github.com/saulberardo/MagicEDA/chart"
)

// Options control DataFrame. All fields are optional; the zero value
// profiles every column on an auto-shaped grid. Field names double as
// TOML keys so option files can be fed to the profile command.
type Options struct {
	// Include keeps only the named columns, in the given order.
	Include []string `toml:"include"`
	// Exclude drops columns, even ones listed in Include.
	Exclude []string `toml:"exclude"`

	// Rows and Cols fix the grid shape. When zero the grid gets
	// ceil(sqrt(n)) columns and as many rows as needed.
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	// Bins is the histogram bin count for numeric columns.
	Bins int `toml:"bins"`

	// Title is drawn above all subplots.
	Title string `toml:"title"`

	// Per-column subplot titles; a column missing from the map is
	// titled with its own name.
	Titles map[string]string `toml:"titles"`

	// Axis labels, per column and default.
	XLabels map[string]string `toml:"xlabels"`
	YLabels map[string]string `toml:"ylabels"`
	XLabel  string            `toml:"xlabel"`
	YLabel  string            `toml:"ylabel"`

	// Subplot colors as hex strings, per column and default.
	Colors map[string]string `toml:"colors"`
	Color  string            `toml:"color"`

	// Category label rotation in degrees, per column and default.
	// Applies to bar charts only.
	Rotations map[string]float64 `toml:"rotations"`
	Rotation  float64            `toml:"rotation"`
}

// DataFrame profiles df: one subplot per column, histograms for
// numeric columns and bar charts for categorical ones, arranged on a
// grid. Columns of any other type are skipped. The caller saves the
// returned grid (chart.Grid.SavePNG); no file I/O happens here.
func DataFrame(df dataframe.DataFrame, o Options) (*chart.Grid, error) {
	names := keptColumns(df.Names(), o.Include, o.Exclude)
	if len(names) == 0 {
		return nil, fmt.Errorf("profile: no columns to plot")
	}

	var plots []*plot.Plot
	for _, name := range names {
		s := df.Col(name)
		if s.Err != nil {
			return nil, fmt.Errorf("profile: column %q: %w", name, s.Err)
		}
		title := name
		if t, ok := o.Titles[name]; ok {
			title = t
		}
		var (
			p   *plot.Plot
			err error
		)
		switch {
		case IsCategorical(s):
			p, err = BarChart(BarOptions{
				Title:         title,
				XLabel:        o.labelFor(o.XLabels, name, o.XLabel),
				YLabel:        o.labelFor(o.YLabels, name, o.YLabel),
				Color:         o.colorFor(name),
				XTickRotation: o.rotationFor(name),
			}, s)
		case IsNumeric(s):
			p, err = Histogram(s, HistOptions{
				Title:  title,
				XLabel: o.labelFor(o.XLabels, name, o.XLabel),
				YLabel: o.labelFor(o.YLabels, name, o.YLabel),
				Color:  o.colorFor(name),
				Bins:   o.Bins,
			})
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("profile: column %q: %w", name, err)
		}
		plots = append(plots, p)
	}
	if len(plots) == 0 {
		return nil, fmt.Errorf("profile: no plottable columns")
	}

	rows, cols := shape(len(plots), o.Rows, o.Cols)
	g := chart.NewGrid(plots, rows, cols)
	g.Title = o.Title
	return g, nil
}

func (o Options) labelFor(m map[string]string, name, fallback string) string {
	if l, ok := m[name]; ok {
		return l
	}
	return fallback
}

func (o Options) rotationFor(name string) float64 {
	if r, ok := o.Rotations[name]; ok {
		return r
	}
	return o.Rotation
}

func (o Options) colorFor(name string) color.Color {
	if hex, ok := o.Colors[name]; ok {
		return chart.Color(hex)
	}
	if o.Color != "" {
		return chart.Color(o.Color)
	}
	return nil
}

// keptColumns applies Include order then Exclude, against the columns
// actually present.
func keptColumns(names, include, exclude []string) []string {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	kept := names
	if include != nil {
		kept = kept[:0:0]
		for _, n := range include {
			if present[n] {
				kept = append(kept, n)
			}
		}
	}
	if len(exclude) == 0 {
		return kept
	}
	drop := make(map[string]bool, len(exclude))
	for _, n := range exclude {
		drop[n] = true
	}
	out := make([]string, 0, len(kept))
	for _, n := range kept {
		if !drop[n] {
			out = append(out, n)
		}
	}
	return out
}

func shape(n, rows, cols int) (int, int) {
	if rows > 0 && cols > 0 {
		return rows, cols
	}
	c := int(math.Ceil(math.Sqrt(float64(n))))
	r := int(math.Ceil(float64(n) / float64(c)))
	return r, c
}
