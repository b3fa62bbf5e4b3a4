// Package geom - numeric helpers used by detectors and repair strategies.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No panics on NaN/Inf input: comparisons involving NaN are false, so
//     callers degrade to "no result" instead of raising.
//   - Explicit tolerance parameters; no hidden global epsilons besides Eps.
package geom

import "math"

// Dist2 returns the squared Euclidean distance between a and b.
func Dist2(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 { return math.Sqrt(Dist2(a, b)) }

// SegmentIntersection computes the intersection of segments a1→a2 and
// b1→b2 using the standard 2×2 determinant test with both parameters
// bounded to [0,1]. A denominator with magnitude below eps (parallel or
// degenerate segments) reports no intersection.
//
// Complexity: O(1).
func SegmentIntersection(a1, a2, b1, b2 Point, eps float64) (Point, bool) {
	d1x := a2.X - a1.X
	d1y := a2.Y - a1.Y
	d2x := b2.X - b1.X
	d2y := b2.Y - b1.Y

	den := d1x*d2y - d1y*d2x
	if !(math.Abs(den) >= eps) { // NaN-safe: NaN den means no intersection
		return Point{}, false
	}

	ex := b1.X - a1.X
	ey := b1.Y - a1.Y
	t := (ex*d2y - ey*d2x) / den
	u := (ex*d1y - ey*d1x) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{X: a1.X + t*d1x, Y: a1.Y + t*d1y}, true
}

// AngleAt returns the interior angle at vertex `at` formed by its
// neighbors, via acos of the clamped dot-product ratio. A straight-through
// vertex yields π, a full spike yields 0. Degenerate neighbor vectors
// (zero length, NaN) yield NaN so that threshold comparisons degrade to
// "no edge case".
func AngleAt(prev, at, next Point) float64 {
	ux := prev.X - at.X
	uy := prev.Y - at.Y
	vx := next.X - at.X
	vy := next.Y - at.Y

	lu := math.Hypot(ux, uy)
	lv := math.Hypot(vx, vy)
	if !(lu > 0 && lv > 0) {
		return math.NaN()
	}

	cos := (ux*vx + uy*vy) / (lu * lv)
	return math.Acos(Clamp(cos, -1, 1))
}

// Clamp bounds v to [lo, hi]. NaN passes through unchanged.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// perpendicularDistance is the distance from p to the infinite line
// through a and b; coincident a,b fall back to point distance.
func perpendicularDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l := math.Hypot(dx, dy)
	if l < Eps {
		return Dist(p, a)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / l
}
