package chart

// Point is a single XY value; it implements plotter.XYer.
type Point struct {
	X, Y float64
}

func (p Point) Len() int {
	return 1
}

func (p Point) XY(i int) (float64, float64) {
	return p.X, p.Y
}

// Points is an ordered XY sequence implementing plotter.XYer.
type Points []Point

func (ps Points) Len() int {
	return len(ps)
}

func (ps Points) XY(i int) (float64, float64) {
	return ps[i].X, ps[i].Y
}

// Zip pairs xs with ys. Slices of unequal length are truncated to the
// shorter one.
func Zip(xs, ys []float64) Points {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	ps := make(Points, n)
	for i := 0; i < n; i++ {
		ps[i] = Point{xs[i], ys[i]}
	}
	return ps
}
