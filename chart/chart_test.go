package chart

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestColor(t *testing.T) {
	if Color("ff0000") != (color.RGBA{R: 255, A: 255}) {
		t.Error("ff0000")
	}
	if Color("#00ff00") != (color.RGBA{G: 255, A: 255}) {
		t.Error("#00ff00")
	}
	if Color("00000080") != (color.RGBA{A: 128}) {
		t.Error("00000080")
	}
	if Color("nope") != color.Black {
		t.Error("invalid length should be black")
	}
}

func TestPaletteColor(t *testing.T) {
	if PaletteColor(0) != Colors[0] {
		t.Error("index 0")
	}
	if PaletteColor(len(Colors)) != Colors[0] {
		t.Error("wrap around")
	}
	if PaletteColor(-1) != Colors[1] {
		t.Error("negative index")
	}
}

func TestPoints(t *testing.T) {
	ps := Zip([]float64{1, 2, 3}, []float64{4, 5})
	if ps.Len() != 2 {
		t.Fatalf("Zip len: %d", ps.Len())
	}
	if x, y := ps.XY(1); x != 2 || y != 5 {
		t.Errorf("XY(1) = %v, %v", x, y)
	}
}

func TestSecondaryXAxis(t *testing.T) {
	p := plot.New()
	l, err := plotter.NewLine(Zip([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 2, 5}))
	if err != nil {
		t.Fatal(err)
	}
	p.Add(l)

	if _, err = SecondaryXAxis(p, []float64{1, 4}, []string{"a"}, ""); err == nil {
		t.Error("mismatched ticks should fail")
	}

	ax, err := SecondaryXAxis(p, []float64{1, 4}, []string{"a", "b"}, "state")
	if err != nil {
		t.Fatal(err)
	}
	if ax.X.Min != p.X.Min || ax.X.Max != p.X.Max {
		t.Errorf("axis range %v..%v, want %v..%v", ax.X.Min, ax.X.Max, p.X.Min, p.X.Max)
	}
	ticks := ax.X.Tick.Marker.Ticks(ax.X.Min, ax.X.Max)
	if len(ticks) != 2 || ticks[0].Label != "a" || ticks[1].Label != "b" {
		t.Errorf("unexpected ticks: %+v", ticks)
	}

	var buf bytes.Buffer
	if err = WriteStacked(&buf, p, ax, 10*vg.Centimeter, 8*vg.Centimeter); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a png")
	}
}

func TestSaveStacked(t *testing.T) {
	p := plot.New()
	l, err := plotter.NewLine(Zip([]float64{1, 2, 3}, []float64{3, 1, 2}))
	if err != nil {
		t.Fatal(err)
	}
	p.Add(l)
	ax, err := SecondaryXAxis(p, []float64{2}, []string{"mid"}, "")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "stacked.png")
	if err = SaveStacked(path, p, ax, 10*vg.Centimeter, 8*vg.Centimeter); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Error("output is not a png")
	}
}

// Wide y tick labels inset the main plot's data area far from the
// canvas edge; the axis strip, with its y axis hidden, has almost no
// inset of its own. The stacked canvases must still map any x value to
// the same horizontal position in both.
func TestStackedSharesXMapping(t *testing.T) {
	p := plot.New()
	l, err := plotter.NewLine(Zip(
		[]float64{1, 2, 3, 4},
		[]float64{100000, 300000, 200000, 500000},
	))
	if err != nil {
		t.Fatal(err)
	}
	p.Add(l)

	ax, err := SecondaryXAxis(p, []float64{1, 4}, []string{"a", "b"}, "")
	if err != nil {
		t.Fatal(err)
	}

	dc := draw.New(vgimg.New(10*vg.Centimeter, 8*vg.Centimeter))
	top, bottom := stackedCanvases(dc, p, ax)
	pda, ada := p.DataCanvas(top), ax.DataCanvas(bottom)
	px, _ := p.Transforms(&pda)
	axx, _ := ax.Transforms(&ada)
	for _, x := range []float64{1, 2.5, 4} {
		if d := math.Abs(float64(px(x) - axx(x))); d > 1e-6 {
			t.Errorf("x=%v: main plot at %v, axis strip at %v", x, px(x), axx(x))
		}
	}
	if bottom.Max.Y-bottom.Min.Y >= top.Max.Y-top.Min.Y {
		t.Error("axis strip should be shorter than the main plot area")
	}
}

func TestEvenTicks(t *testing.T) {
	values, labels := EvenTicks(3, 0, 10, "%.1f")
	if len(values) != 3 || len(labels) != 3 {
		t.Fatalf("lengths: %d, %d", len(values), len(labels))
	}
	for i, v := range values {
		if v <= 0 || v >= 10 {
			t.Errorf("tick %d = %v, want inside (0, 10)", i, v)
		}
	}
	if labels[1] != "5.0" {
		t.Errorf("label: %q", labels[1])
	}
}

func TestGrid(t *testing.T) {
	plots := make([]*plot.Plot, 3)
	for i := range plots {
		plots[i] = plot.New()
	}
	g := NewGrid(plots, 2, 2)
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Errorf("shape %dx%d", g.Rows(), g.Cols())
	}
	if g.Count() != 3 {
		t.Errorf("Count = %d", g.Count())
	}

	g.Title = "three plots"
	var buf bytes.Buffer
	if err := g.WritePNG(&buf, 12*vg.Centimeter, 12*vg.Centimeter); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a png")
	}
}
