package geom

// Simplify reduces a curve with the Douglas–Peucker algorithm: points
// closer than tol to the chord between their retained neighbors are
// dropped. Endpoints always survive. A non-positive tol returns a clone.
//
// Complexity: O(n²) worst case (degenerate recursion), O(n log n) typical.
func Simplify(c *Curve, tol float64) (*Curve, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if len(c.Points) < 2 {
		return nil, ErrTooFewPoints
	}
	if !(tol > 0) || len(c.Points) == 2 {
		return c.Clone(), nil
	}

	keep := make([]bool, len(c.Points))
	keep[0] = true
	keep[len(c.Points)-1] = true
	douglasPeucker(c.Points, 0, len(c.Points)-1, tol, keep)

	pts := make([]Point, 0, len(c.Points))
	for i, k := range keep {
		if k {
			pts = append(pts, c.Points[i])
		}
	}
	return &Curve{Points: pts, Closed: c.Closed}, nil
}

// douglasPeucker marks, between endpoints lo and hi, the farthest point
// from the chord when it exceeds tol, then recurses on both halves.
func douglasPeucker(pts []Point, lo, hi int, tol float64, keep []bool) {
	if hi <= lo+1 {
		return
	}
	far := -1
	farDist := tol
	for i := lo + 1; i < hi; i++ {
		if d := perpendicularDistance(pts[i], pts[lo], pts[hi]); d > farDist {
			far = i
			farDist = d
		}
	}
	if far < 0 {
		return
	}
	keep[far] = true
	douglasPeucker(pts, lo, far, tol, keep)
	douglasPeucker(pts, far, hi, tol, keep)
}
