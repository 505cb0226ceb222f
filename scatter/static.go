package scatter

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/saulberardo/MagicEDA/chart"
)

// Static draws a scatter with every label printed next to its point,
// for PNG/SVG output where hover is unavailable. Save the returned
// plot with plot.Plot.Save.
func Static(xs, ys []float64, labels []string, o Options) (*plot.Plot, error) {
	if len(xs) != len(ys) || len(xs) != len(labels) {
		return nil, fmt.Errorf("scatter: mismatched lengths x=%d y=%d labels=%d",
			len(xs), len(ys), len(labels))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("scatter: no points")
	}

	pts := chart.Zip(xs, ys)
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Color = chart.PaletteColor(0)
	s.GlyphStyle.Radius = vg.Points(3)

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}

	p := plot.New()
	p.Add(plotter.NewGrid(), s, lbls)
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel

	// Labels sit above their points; leave headroom so the topmost
	// one is not clipped.
	ymin, ymax := floats.Min(ys), floats.Max(ys)
	if span := ymax - ymin; span > 0 {
		p.Y.Max = ymax + span*0.08
	}
	return p, nil
}
