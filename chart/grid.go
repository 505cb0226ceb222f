package chart

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Grid is a rectangular arrangement of subplots rendered on a single
// canvas, row-major. Cells may be nil (trailing holes in a non-square
// layout).
type Grid struct {
	Plots [][]*plot.Plot
	Title string

	// PadX and PadY separate neighboring tiles. Defaults to 2mm.
	PadX, PadY vg.Length
}

// NewGrid lays plots out row-major on rows x cols cells. Plots beyond
// rows*cols are dropped.
func NewGrid(plots []*plot.Plot, rows, cols int) *Grid {
	g := &Grid{Plots: make([][]*plot.Plot, rows)}
	for r := 0; r < rows; r++ {
		g.Plots[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			if i := r*cols + c; i < len(plots) {
				g.Plots[r][c] = plots[i]
			}
		}
	}
	return g
}

func (g *Grid) Rows() int {
	return len(g.Plots)
}

func (g *Grid) Cols() int {
	if len(g.Plots) == 0 {
		return 0
	}
	return len(g.Plots[0])
}

// Count returns the number of non-empty cells.
func (g *Grid) Count() (n int) {
	for _, row := range g.Plots {
		for _, p := range row {
			if p != nil {
				n++
			}
		}
	}
	return n
}

// Draw renders the grid on dc, title first, subplots aligned below.
func (g *Grid) Draw(dc draw.Canvas) {
	if g.Title != "" {
		sty := plot.New().Title.TextStyle
		dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y}, g.Title)
		dc = draw.Crop(dc, 0, 0, 0, -2*sty.Font.Size)
	}
	padX, padY := g.PadX, g.PadY
	if padX == 0 {
		padX = 2 * vg.Millimeter
	}
	if padY == 0 {
		padY = 2 * vg.Millimeter
	}
	tiles := draw.Tiles{
		Rows: g.Rows(),
		Cols: g.Cols(),
		PadX: padX,
		PadY: padY,
	}
	canvases := plot.Align(g.Plots, tiles, dc)
	for r, row := range g.Plots {
		for c, p := range row {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}
}

// WritePNG renders the grid on a width x height canvas and writes it
// as PNG.
func (g *Grid) WritePNG(w io.Writer, width, height vg.Length) error {
	img := vgimg.New(width, height)
	g.Draw(draw.New(img))
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write grid png: %w", err)
	}
	return nil
}

// SavePNG is WritePNG to a file path.
func (g *Grid) SavePNG(path string, width, height vg.Length) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = g.WritePNG(f, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
