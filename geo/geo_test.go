package geo

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	horizontal := Segment{Point{0, 0}, Point{10, 0}}
	for _, tt := range []struct {
		name string
		p    Point
		s    Segment
		want float64
	}{
		{"perpendicular", Point{5, 5}, horizontal, 5},
		{"past right endpoint", Point{15, 0}, horizontal, 5},
		{"past left endpoint", Point{-3, 4}, horizontal, 5},
		{"on segment", Point{7, 0}, horizontal, 0},
		{"on endpoint", Point{10, 0}, horizontal, 0},
		{"degenerate", Point{3, 4}, Segment{Point{0, 0}, Point{0, 0}}, 5},
		{"degenerate on point", Point{2, 2}, Segment{Point{2, 2}, Point{2, 2}}, 0},
		{"diagonal", Point{0, 2}, Segment{Point{-1, 1}, Point{1, 1}}, 1},
	} {
		got := Dist(tt.p, tt.s)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: Dist(%v, %v) = %v, want %v", tt.name, tt.p, tt.s, got, tt.want)
		}
		if got < 0 {
			t.Errorf("%s: negative distance %v", tt.name, got)
		}
	}
}

func TestDistMatchesEndpointFallback(t *testing.T) {
	// Past an endpoint the distance must equal the plain euclidean
	// distance to that endpoint.
	s := Segment{Point{1, 1}, Point{4, 5}}
	p := Point{-2, -3}
	want := math.Hypot(p.X-s.A.X, p.Y-s.A.Y)
	if got := Dist(p, s); math.Abs(got-want) > 1e-12 {
		t.Errorf("Dist = %v, want %v", got, want)
	}
}

func TestHaversine(t *testing.T) {
	if d := Haversine(0, 0, 0, 0); d != 0 {
		t.Errorf("zero distance: %v", d)
	}
	// Paris - London, roughly 344km.
	d := Haversine(2.3522, 48.8566, -0.1278, 51.5074)
	if math.Abs(d-344) > 5 {
		t.Errorf("Paris-London: %v km", d)
	}
	// Symmetry.
	if d2 := Haversine(-0.1278, 51.5074, 2.3522, 48.8566); math.Abs(d-d2) > 1e-9 {
		t.Errorf("not symmetric: %v vs %v", d, d2)
	}
}
