package geo

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	sm "github.com/flopp/go-staticmaps"
	"github.com/golang/geo/s2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/saulberardo/MagicEDA/chart"
)

var tileCache sm.TileCache

func init() {
	dir, err := os.UserCacheDir()
	if err != nil {
		log.Printf("geo: tile cache disabled: os.UserCacheDir: %s", err)
		return
	}
	tileCache = sm.NewTileCache(filepath.Join(dir, "magiceda", "tiles"), 0755)
}

// PathOptions control PlotPath. The zero value renders standalone red
// markers over OpenStreetMap tiles on an 800x600 canvas with a tight
// viewport.
type PathOptions struct {
	// Padding expands the viewport by a fraction of the path's
	// bounding-box span per side.
	Padding float64
	// Color of markers and connecting lines. Defaults to chart.Red.
	Color color.Color
	// Connect draws the path as a polyline instead of standalone
	// markers.
	Connect bool
	// NoMap skips the tile layer and renders a plain lon/lat scatter.
	NoMap bool
	// Box overrides the computed viewport.
	Box *Box

	Width, Height int // pixels
}

// PlotPath renders path framed by Viewport, over OpenStreetMap tiles
// unless NoMap is set. Point order is the traversal order when Connect
// is set. Saving the returned image is the caller's business.
func PlotPath(path []s2.LatLng, o PathOptions) (image.Image, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("geo: empty path")
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Color == nil {
		o.Color = chart.Red
	}

	reg, err := regionFor(path, o)
	if err != nil {
		return nil, err
	}

	if o.NoMap {
		return plotFlat(path, reg.Box, o)
	}

	ctx := sm.NewContext()
	ctx.SetSize(o.Width, o.Height)
	ctx.SetCenter(reg.Center)
	ctx.SetZoom(reg.Zoom)
	if tileCache != nil {
		ctx.SetCache(tileCache)
	}
	if o.Connect {
		ctx.AddObject(sm.NewPath(path, o.Color, 2))
	} else {
		for _, ll := range path {
			ctx.AddObject(sm.NewMarker(ll, o.Color, 12))
		}
	}
	img, err := ctx.Render()
	if err != nil {
		return nil, fmt.Errorf("render map: %w", err)
	}
	return img, nil
}

// regionFor picks the rendered region: the explicit Box when set,
// otherwise a viewport framing the whole path. Width and Height must
// already be defaulted.
func regionFor(path []s2.LatLng, o PathOptions) (Region, error) {
	if o.Box != nil {
		return Region{
			Center: o.Box.Center(),
			Zoom:   ZoomFor(*o.Box, o.Width, o.Height),
			Box:    *o.Box,
		}, nil
	}
	return viewportSized(path, o.Padding, o.Width, o.Height)
}

// plotFlat draws the path as a plain lon/lat scatter, used when the
// tile layer is disabled.
func plotFlat(path []s2.LatLng, box Box, o PathOptions) (image.Image, error) {
	pts := make(chart.Points, len(path))
	for i, ll := range path {
		pts[i] = chart.Point{X: ll.Lng.Degrees(), Y: ll.Lat.Degrees()}
	}

	p := plot.New()
	p.X.Label.Text = "longitude"
	p.Y.Label.Text = "latitude"
	p.X.Min, p.X.Max = box.MinLon, box.MaxLon
	p.Y.Min, p.Y.Max = box.MinLat, box.MaxLat
	p.Add(plotter.NewGrid())

	if o.Connect {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("path line: %w", err)
		}
		l.LineStyle.Color = o.Color
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("path scatter: %w", err)
	}
	s.GlyphStyle.Color = o.Color
	s.GlyphStyle.Radius = vg.Points(3)
	p.Add(s)

	c := vgimg.New(vg.Length(o.Width), vg.Length(o.Height))
	p.Draw(draw.New(c))
	return c.Image(), nil
}
