// Package geom - repair primitives shared by pipeline stage recovery and
// the automatic recovery strategies.
//
// Every helper is functional: the input curve is never mutated; a new
// curve (or the original when nothing changed) is returned together with
// the number of points affected.
package geom

import "math"

// IntersectionHit is one self-intersection found on a curve.
type IntersectionHit struct {
	// At is the crossing location.
	At Point
	// SegA and SegB are the indices of the crossing segments, SegA < SegB.
	SegA, SegB int
}

// FindSelfIntersections scans every pair of non-adjacent segments
// (skipping the pair that shares the closing point on closed curves) with
// the bounded determinant test.
//
// Complexity: O(n²) over segment count.
func FindSelfIntersections(c *Curve, eps float64) []IntersectionHit {
	if c == nil {
		return nil
	}
	n := c.SegmentCount()
	var hits []IntersectionHit
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			// The last and first segments of a closed curve share the
			// closing point; they are adjacent, not intersecting.
			if c.Closed && i == 0 && j == n-1 {
				continue
			}
			a1, a2 := c.Segment(i)
			b1, b2 := c.Segment(j)
			if at, ok := SegmentIntersection(a1, a2, b1, b2, eps); ok {
				hits = append(hits, IntersectionHit{At: at, SegA: i, SegB: j})
			}
		}
	}
	return hits
}

// SelfIntersects reports whether the curve has any self-intersection.
func SelfIntersects(c *Curve, eps float64) bool {
	return len(FindSelfIntersections(c, eps)) > 0
}

// RemoveSelfIntersections repairs a curve by iteratively deleting the
// offending later point of any intersecting segment pair. It terminates
// when no intersecting pair remains or the curve is down to three points.
// Returns the repaired curve and the number of points removed.
func RemoveSelfIntersections(c *Curve, eps float64) (*Curve, int) {
	if c == nil {
		return nil, 0
	}
	cur := c
	removed := 0
	for len(cur.Points) > 3 {
		hits := FindSelfIntersections(cur, eps)
		if len(hits) == 0 {
			break
		}
		// Delete the end point of the later segment in the first hit.
		drop := hits[0].SegB + 1
		if drop >= len(cur.Points) {
			drop = hits[0].SegB
		}
		pts := make([]Point, 0, len(cur.Points)-1)
		pts = append(pts, cur.Points[:drop]...)
		pts = append(pts, cur.Points[drop+1:]...)
		cur = &Curve{Points: pts, Closed: cur.Closed}
		removed++
	}
	return cur, removed
}

// DedupePoints removes consecutive points closer than tol, keeping the
// first of each run. Returns the filtered slice (a new one when any point
// was dropped) and the number of points removed.
func DedupePoints(points []Point, tol float64) ([]Point, int) {
	if len(points) < 2 {
		return points, 0
	}
	kept := make([]Point, 0, len(points))
	kept = append(kept, points[0])
	removed := 0
	for _, p := range points[1:] {
		if Dist(kept[len(kept)-1], p) < tol {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed == 0 {
		return points, 0
	}
	return kept, removed
}

// DedupeAllPoints removes every point coincident (within tol) with any
// earlier point, preserving order. Stronger than DedupePoints: duplicates
// need not be adjacent.
//
// Complexity: O(n²).
func DedupeAllPoints(points []Point, tol float64) ([]Point, int) {
	kept := make([]Point, 0, len(points))
	removed := 0
	for _, p := range points {
		dup := false
		for _, q := range kept {
			if Dist(p, q) < tol {
				dup = true
				break
			}
		}
		if dup {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed == 0 {
		return points, 0
	}
	return kept, removed
}

// FilterShortSegments drops points that form segments shorter than minLen
// against the previously kept point. The final point survives even when
// close, so the curve keeps its endpoints. Returns the filtered curve and
// the number of points removed.
func FilterShortSegments(c *Curve, minLen float64) (*Curve, int) {
	if c == nil || len(c.Points) < 3 {
		return c, 0
	}
	kept := make([]Point, 0, len(c.Points))
	kept = append(kept, c.Points[0])
	removed := 0
	for i, p := range c.Points[1:] {
		last := i+1 == len(c.Points)-1
		if !last && Dist(kept[len(kept)-1], p) < minLen {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	if removed == 0 {
		return c, 0
	}
	return &Curve{Points: kept, Closed: c.Closed}, removed
}

// ClampCoordinates bounds every coordinate magnitude to limit. Returns
// the clamped curve and the number of points adjusted.
func ClampCoordinates(c *Curve, limit float64) (*Curve, int) {
	if c == nil {
		return nil, 0
	}
	changed := 0
	pts := make([]Point, len(c.Points))
	for i, p := range c.Points {
		q := p
		q.X = Clamp(p.X, -limit, limit)
		q.Y = Clamp(p.Y, -limit, limit)
		if q.X != p.X || q.Y != p.Y {
			changed++
		}
		pts[i] = q
	}
	if changed == 0 {
		return c, 0
	}
	return &Curve{Points: pts, Closed: c.Closed}, changed
}

// SnapToGrid rounds every coordinate to the given grid step, the
// reduced-precision primitive of the fallback ladders. A step that is not
// finite and positive returns the curve unchanged.
func SnapToGrid(c *Curve, step float64) *Curve {
	if c == nil || !(step > 0) || math.IsInf(step, 0) {
		return c
	}
	pts := make([]Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = Point{
			X:         math.Round(p.X/step) * step,
			Y:         math.Round(p.Y/step) * step,
			Tolerance: p.Tolerance,
			Accuracy:  p.Accuracy,
			Validated: p.Validated,
		}
	}
	return &Curve{Points: pts, Closed: c.Closed}
}
