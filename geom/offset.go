// Package geom - low-fidelity offset and union primitives.
//
// These are deliberately modest constructions: the real offset/boolean
// math belongs to the geometry provider. The helpers here exist so the
// fallback ladders can fabricate an always-available substitute result.
package geom

import (
	"math"
	"sort"
)

// NaiveOffset displaces each vertex along the average of its adjacent
// segment normals by dist. No join handling: corners keep a single vertex,
// so miter blowups cannot occur, at the cost of accuracy on sharp angles.
// Positive dist offsets to the left of the travel direction.
func NaiveOffset(c *Curve, dist float64) (*Curve, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if len(c.Points) < 2 {
		return nil, ErrTooFewPoints
	}
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		return nil, ErrBadDistance
	}

	n := len(c.Points)
	// Unit normal of each segment; degenerate segments contribute zero.
	normals := make([][2]float64, c.SegmentCount())
	for i := range normals {
		a, b := c.Segment(i)
		dx := b.X - a.X
		dy := b.Y - a.Y
		l := math.Hypot(dx, dy)
		if l < Eps {
			continue
		}
		normals[i] = [2]float64{-dy / l, dx / l}
	}

	pts := make([]Point, n)
	for i, p := range c.Points {
		var nx, ny float64
		prev := i - 1
		if prev < 0 && c.Closed {
			prev = len(normals) - 1
		}
		if prev >= 0 && prev < len(normals) {
			nx += normals[prev][0]
			ny += normals[prev][1]
		}
		if i < len(normals) {
			nx += normals[i][0]
			ny += normals[i][1]
		}
		l := math.Hypot(nx, ny)
		if l < Eps {
			pts[i] = p
			continue
		}
		pts[i] = Point{X: p.X + nx/l*dist, Y: p.Y + ny/l*dist}
	}
	return &Curve{Points: pts, Closed: c.Closed}, nil
}

// SegmentEnvelopes returns one clockwise rectangle per baseline segment,
// each segment expanded by halfWidth on both sides. The rectangles are
// independent — joins are left unresolved — which is exactly the contract
// of the segmented offset fallback.
func SegmentEnvelopes(c *Curve, halfWidth float64) ([]Polygon, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if len(c.Points) < 2 {
		return nil, ErrTooFewPoints
	}
	out := make([]Polygon, 0, c.SegmentCount())
	for i := 0; i < c.SegmentCount(); i++ {
		a, b := c.Segment(i)
		dx := b.X - a.X
		dy := b.Y - a.Y
		l := math.Hypot(dx, dy)
		if l < Eps {
			continue
		}
		nx := -dy / l * halfWidth
		ny := dx / l * halfWidth
		out = append(out, Polygon{Vertices: []Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		}})
	}
	return out, nil
}

// ConvexHull computes the convex hull of pts (Andrew's monotone chain)
// and returns it as a clockwise polygon. Needs at least three distinct
// points.
//
// Complexity: O(n log n).
func ConvexHull(pts []Point) (Polygon, error) {
	distinct, _ := DedupeAllPoints(pts, Eps)
	if len(distinct) < 3 {
		return Polygon{}, ErrHullTooSmall
	}

	sorted := append([]Point(nil), distinct...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var hull []Point
	for _, p := range sorted { // lower chain
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- { // upper chain
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1] // last point repeats the first

	if len(hull) < 3 {
		return Polygon{}, ErrHullTooSmall
	}
	poly := Polygon{Vertices: hull}
	if !poly.IsClockwise() {
		poly = poly.Reversed()
	}
	return poly, nil
}

// BasicUnion fabricates a single clockwise polygon covering all inputs by
// hulling their vertices. Low fidelity (concavities are filled) but total:
// it fails only when the inputs cannot seed a hull.
func BasicUnion(polys []Polygon) (Polygon, error) {
	var pts []Point
	for _, p := range polys {
		pts = append(pts, p.Vertices...)
	}
	return ConvexHull(pts)
}
