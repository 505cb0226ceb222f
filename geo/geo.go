// Package geo holds the geometric helpers behind map plotting:
// point-to-segment distance, great-circle distance, and viewport
// selection for plotting geographic paths.
package geo

import "math"

// Point is a planar coordinate pair.
type Point struct {
	X, Y float64
}

// Segment is an ordered pair of points. A zero-length segment
// (A == B) is valid.
type Segment struct {
	A, B Point
}

// Dist returns the shortest distance from p to the segment s.
// The point is projected on the line through A and B; when the
// projection falls outside [A,B] the distance to the nearer endpoint
// is returned instead. A zero-length segment degenerates to plain
// point-to-point distance.
func Dist(p Point, s Segment) float64 {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	d2 := dx*dx + dy*dy
	if d2 == 0 {
		return math.Hypot(p.X-s.A.X, p.Y-s.A.Y)
	}
	u := ((p.X-s.A.X)*dx + (p.Y-s.A.Y)*dy) / d2
	switch {
	case u < 0:
		return math.Hypot(p.X-s.A.X, p.Y-s.A.Y)
	case u > 1:
		return math.Hypot(p.X-s.B.X, p.Y-s.B.Y)
	}
	return math.Hypot(p.X-(s.A.X+u*dx), p.Y-(s.A.Y+u*dy))
}

// EarthRadiusKm is the mean earth radius used by Haversine.
const EarthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometers between
// two points given in decimal degrees.
func Haversine(lon1, lat1, lon2, lat2 float64) float64 {
	lon1 *= math.Pi / 180
	lat1 *= math.Pi / 180
	lon2 *= math.Pi / 180
	lat2 *= math.Pi / 180

	dlon := lon2 - lon1
	dlat := lat2 - lat1
	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}
