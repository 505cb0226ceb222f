package chart

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/saulberardo/MagicEDA/util"
)

// SecondaryXAxis builds a plot that renders nothing but an x axis
// ticked at values with the given labels, sharing p's horizontal
// range. Draw it beneath p with WriteStacked or SaveStacked to attach
// a second value mapping to the same extent.
func SecondaryXAxis(p *plot.Plot, values []float64, labels []string, axisLabel string) (*plot.Plot, error) {
	if len(values) != len(labels) {
		return nil, fmt.Errorf("chart: %d tick values for %d labels", len(values), len(labels))
	}
	ticks := make([]plot.Tick, len(values))
	for i := range values {
		ticks[i] = plot.Tick{Value: values[i], Label: labels[i]}
	}
	ax := plot.New()
	ax.X.Min, ax.X.Max = p.X.Min, p.X.Max
	ax.X.Tick.Marker = plot.ConstantTicks(ticks)
	ax.X.Label.Text = axisLabel
	ax.HideY()
	return ax, nil
}

// EvenTicks returns n tick positions evenly spread inside (min, max),
// labelled with format (e.g. "%.1f").
func EvenTicks(n int, min, max float64, format string) ([]float64, []string) {
	values := util.RangeLinearF(n, min, max)
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = fmt.Sprintf(format, v)
	}
	return values, labels
}

// WriteStacked renders p over axis in a single PNG figure, the axis
// squeezed into a strip along the bottom edge. Both data areas are
// aligned so the two axes map any x value to the same canvas position.
func WriteStacked(w io.Writer, p, axis *plot.Plot, width, height vg.Length) error {
	img := vgimg.New(width, height)
	dc := draw.New(img)

	top, bottom := stackedCanvases(dc, p, axis)
	p.Draw(top)
	axis.Draw(bottom)

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write stacked png: %w", err)
	}
	return nil
}

// stackedCanvases splits dc into a main area and a bottom strip. The
// horizontal insets come from plot.Align, so the data areas of p and
// axis line up even when p carries a wide y tick-label margin and axis
// has none.
func stackedCanvases(dc draw.Canvas, p, axis *plot.Plot) (top, bottom draw.Canvas) {
	aligned := plot.Align([][]*plot.Plot{{p}, {axis}}, draw.Tiles{Rows: 2, Cols: 1}, dc)
	top, bottom = aligned[0][0], aligned[1][0]

	strip := (dc.Max.Y - dc.Min.Y) / 6
	top.Min.Y, top.Max.Y = dc.Min.Y+strip, dc.Max.Y
	bottom.Min.Y, bottom.Max.Y = dc.Min.Y, dc.Min.Y+strip
	return top, bottom
}

// SaveStacked is WriteStacked to a file path.
func SaveStacked(path string, p, axis *plot.Plot, width, height vg.Length) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteStacked(f, p, axis, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
