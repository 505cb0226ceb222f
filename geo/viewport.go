package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
	"github.com/montanaflynn/stats"

	"github.com/saulberardo/MagicEDA/util"
)

const (
	// minSpan keeps single-point paths from collapsing the viewport
	// to a zero-extent box (degrees).
	minSpan = 0.002

	maxZoom = 17

	defaultWidth  = 800
	defaultHeight = 600
)

// Box is a geographic bounding box in decimal degrees.
type Box struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Contains reports whether ll falls inside b.
func (b Box) Contains(ll s2.LatLng) bool {
	lat, lon := ll.Lat.Degrees(), ll.Lng.Degrees()
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Center returns the middle of b.
func (b Box) Center() s2.LatLng {
	return s2.LatLngFromDegrees((b.MinLat+b.MaxLat)/2, (b.MinLon+b.MaxLon)/2)
}

// Region is a map viewport: a center and web-mercator zoom level,
// along with the padded box they were derived from.
type Region struct {
	Center s2.LatLng
	Zoom   int
	Box    Box
}

// Viewport selects a region wide enough to display every coordinate of
// path, expanded by padding on each side. Padding is a fraction of the
// path's bounding-box span per side (0 means a tight fit). The zoom
// level assumes a 800x600 pixel canvas; PlotPath recomputes it for
// custom sizes.
func Viewport(path []s2.LatLng, padding float64) (Region, error) {
	return viewportSized(path, padding, defaultWidth, defaultHeight)
}

func viewportSized(path []s2.LatLng, padding float64, width, height int) (Region, error) {
	box, err := pathBox(path, padding)
	if err != nil {
		return Region{}, err
	}
	return Region{
		Center: box.Center(),
		Zoom:   ZoomFor(box, width, height),
		Box:    box,
	}, nil
}

// pathBox returns the bounding box of path expanded by a padding
// fraction per side. Spans are widened to minSpan first so a
// single-point path still produces a usable box.
func pathBox(path []s2.LatLng, padding float64) (Box, error) {
	if len(path) == 0 {
		return Box{}, fmt.Errorf("geo: empty path")
	}
	if padding < 0 {
		return Box{}, fmt.Errorf("geo: negative padding %v", padding)
	}
	lats := make([]float64, len(path))
	lons := make([]float64, len(path))
	for i, ll := range path {
		lats[i] = ll.Lat.Degrees()
		lons[i] = ll.Lng.Degrees()
	}
	b := Box{}
	b.MinLat, _ = stats.Min(lats)
	b.MaxLat, _ = stats.Max(lats)
	b.MinLon, _ = stats.Min(lons)
	b.MaxLon, _ = stats.Max(lons)

	if b.MaxLat-b.MinLat < minSpan {
		mid := (b.MinLat + b.MaxLat) / 2
		b.MinLat, b.MaxLat = mid-minSpan/2, mid+minSpan/2
	}
	if b.MaxLon-b.MinLon < minSpan {
		mid := (b.MinLon + b.MaxLon) / 2
		b.MinLon, b.MaxLon = mid-minSpan/2, mid+minSpan/2
	}

	latPad := (b.MaxLat - b.MinLat) * padding
	lonPad := (b.MaxLon - b.MinLon) * padding
	b.MinLat -= latPad
	b.MaxLat += latPad
	b.MinLon -= lonPad
	b.MaxLon += lonPad
	return b, nil
}

// ZoomFor returns the highest web-mercator zoom level at which b fits
// in a width x height pixel viewport rendered from 256px tiles.
func ZoomFor(b Box, width, height int) int {
	lonFrac := (b.MaxLon - b.MinLon) / 360
	latFrac := (mercY(b.MaxLat) - mercY(b.MinLat)) / (2 * math.Pi)
	zx := math.Log2(float64(width) / 256 / lonFrac)
	zy := math.Log2(float64(height) / 256 / latFrac)
	return int(util.ClampF(math.Floor(math.Min(zx, zy)), 0, maxZoom))
}

// mercY projects latitude on the web-mercator y axis. Latitudes are
// clamped to the projection's usable range.
func mercY(latDeg float64) float64 {
	lat := util.ClampF(latDeg, -85, 85) * math.Pi / 180
	return math.Log(math.Tan(math.Pi/4 + lat/2))
}
