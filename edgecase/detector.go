// Package edgecase - detector entry points and checks.
//
// Design principles:
//   - Deterministic, side-effect free: results are built fresh per call.
//   - One aggregated Result per check, listing every affected element,
//     with the worst severity observed across occurrences.
//   - Disabled checks cost nothing.
package edgecase

import (
	"fmt"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// DetectCurve runs every enabled check over the curve and returns the
// findings. A nil curve yields a single degenerate finding (when the
// degenerate check is enabled).
//
// Complexity: O(n²) over point count.
func DetectCurve(c *geom.Curve, opts Options) []Result {
	var out []Result

	if opts.CheckDegenerate {
		if r, ok := checkDegenerate(c, opts); ok {
			out = append(out, r)
			// A degenerate curve makes the remaining checks meaningless.
			return out
		}
	}
	if c == nil {
		return out
	}

	if opts.CheckZeroLength {
		if r, ok := checkZeroLength(c, opts); ok {
			out = append(out, r)
		}
	}
	if opts.CheckSelfIntersection {
		if r, ok := checkSelfIntersection(c, opts); ok {
			out = append(out, r)
		}
	}
	if opts.CheckExtremeAngle {
		if r, ok := checkExtremeAngle(c, opts); ok {
			out = append(out, r)
		}
	}
	if opts.CheckCoincident {
		if r, ok := checkCoincident(c, opts); ok {
			out = append(out, r)
		}
	}
	if opts.CheckMicroSegment {
		if r, ok := checkMicroSegment(c, opts); ok {
			out = append(out, r)
		}
	}
	return out
}

// DetectWallSolid scans the baseline plus the left/right offset curves if
// present, and flags a thickness below numerical precision as
// instability.
func DetectWallSolid(w *geom.WallSolid, opts Options) []Result {
	if w == nil {
		return nil
	}

	out := DetectCurve(w.Baseline(), opts)
	if left := w.LeftOffset(); left != nil {
		out = append(out, DetectCurve(left, opts)...)
	}
	if right := w.RightOffset(); right != nil {
		out = append(out, DetectCurve(right, opts)...)
	}

	if w.Thickness() < opts.NumericalPrecision {
		out = append(out, Result{
			HasEdgeCase: true,
			Type:        ThicknessInstability,
			Severity:    geomerr.SeverityError,
			Description: fmt.Sprintf("wall thickness %g is below numerical precision %g", w.Thickness(), opts.NumericalPrecision),
			SuggestedFix: "Set the wall thickness to a value well above numerical precision",
			CanAutoFix:   true,
			Tolerance:    opts.NumericalPrecision,
		})
	}
	return out
}

// checkDegenerate fires for <2 points, an all-coincident point set, or a
// total length under MinSegmentLength. Not auto-fixable: there is nothing
// meaningful to repair from.
func checkDegenerate(c *geom.Curve, opts Options) (Result, bool) {
	r := Result{
		HasEdgeCase:  true,
		Type:         Degenerate,
		Severity:     geomerr.SeverityError,
		SuggestedFix: "Provide at least two distinct points with non-zero extent",
		Tolerance:    opts.MinSegmentLength,
	}

	if c == nil || len(c.Points) < 2 {
		r.Description = "curve has fewer than two points"
		return r, true
	}

	coincident := true
	for _, p := range c.Points[1:] {
		if geom.Dist(c.Points[0], p) >= opts.CoincidentPointTolerance {
			coincident = false
			break
		}
	}
	if coincident {
		r.Description = "all curve points are coincident within tolerance"
		r.Tolerance = opts.CoincidentPointTolerance
		return r, true
	}

	if c.Length() < opts.MinSegmentLength {
		r.Description = fmt.Sprintf("curve length %g is below the minimum segment length %g", c.Length(), opts.MinSegmentLength)
		return r, true
	}
	return Result{}, false
}

// checkZeroLength flags consecutive points closer than MinSegmentLength.
func checkZeroLength(c *geom.Curve, opts Options) (Result, bool) {
	var affected []int
	for i := 0; i < c.SegmentCount(); i++ {
		a, b := c.Segment(i)
		if geom.Dist(a, b) < opts.MinSegmentLength {
			affected = append(affected, i)
		}
	}
	if len(affected) == 0 {
		return Result{}, false
	}
	return Result{
		HasEdgeCase:      true,
		Type:             ZeroLengthSegment,
		Severity:         geomerr.SeverityWarning,
		Description:      fmt.Sprintf("%d segment(s) shorter than %g", len(affected), opts.MinSegmentLength),
		AffectedElements: affected,
		SuggestedFix:     "Remove or merge the zero-length segments",
		CanAutoFix:       true,
		Tolerance:        opts.MinSegmentLength,
	}, true
}

// checkSelfIntersection runs the bounded determinant test over every pair
// of non-adjacent segments.
func checkSelfIntersection(c *geom.Curve, opts Options) (Result, bool) {
	hits := geom.FindSelfIntersections(c, opts.NumericalPrecision)
	if len(hits) == 0 {
		return Result{}, false
	}
	affected := make([]int, 0, len(hits)*2)
	for _, h := range hits {
		affected = append(affected, h.SegA, h.SegB)
	}
	return Result{
		HasEdgeCase:      true,
		Type:             SelfIntersecting,
		Severity:         geomerr.SeverityError,
		Description:      fmt.Sprintf("curve crosses itself at %d location(s)", len(hits)),
		AffectedElements: affected,
		SuggestedFix:     "Remove or reorder the crossing points, or simplify the curve",
		CanAutoFix:       false,
		Tolerance:        opts.SelfIntersectionTolerance,
	}, true
}

// checkExtremeAngle flags interior vertices whose angle falls outside
// [MinAngleTolerance, MaxAngleTolerance]. The finding escalates from
// warning to error when an angle is under 10% of the lower tolerance or
// over 110% of the upper bound. NaN angles (degenerate neighbors) are
// skipped.
func checkExtremeAngle(c *geom.Curve, opts Options) (Result, bool) {
	var affected []int
	severity := geomerr.SeverityWarning
	for i := 1; i < len(c.Points)-1; i++ {
		angle := geom.AngleAt(c.Points[i-1], c.Points[i], c.Points[i+1])
		if !(angle < opts.MinAngleTolerance || angle > opts.MaxAngleTolerance) {
			continue // in band, or NaN
		}
		affected = append(affected, i)
		if angle < 0.1*opts.MinAngleTolerance || angle > 1.1*opts.MaxAngleTolerance {
			severity = geomerr.SeverityError
		}
	}
	if len(affected) == 0 {
		return Result{}, false
	}
	return Result{
		HasEdgeCase:      true,
		Type:             ExtremeAngle,
		Severity:         severity,
		Description:      fmt.Sprintf("%d vertex angle(s) outside [%g, %g] rad", len(affected), opts.MinAngleTolerance, opts.MaxAngleTolerance),
		AffectedElements: affected,
		SuggestedFix:     "Smooth or remove the extreme-angle vertices",
		CanAutoFix:       true,
		Tolerance:        opts.MinAngleTolerance,
	}, true
}

// checkCoincident flags any two points, adjacent or not, closer than
// CoincidentPointTolerance.
//
// Complexity: O(n²).
func checkCoincident(c *geom.Curve, opts Options) (Result, bool) {
	var affected []int
	seen := make(map[int]bool)
	for i := 0; i < len(c.Points); i++ {
		for j := i + 1; j < len(c.Points); j++ {
			if geom.Dist(c.Points[i], c.Points[j]) < opts.CoincidentPointTolerance {
				if !seen[j] {
					seen[j] = true
					affected = append(affected, j)
				}
			}
		}
	}
	if len(affected) == 0 {
		return Result{}, false
	}
	return Result{
		HasEdgeCase:      true,
		Type:             CoincidentPoints,
		Severity:         geomerr.SeverityWarning,
		Description:      fmt.Sprintf("%d point(s) coincident with an earlier point within %g", len(affected), opts.CoincidentPointTolerance),
		AffectedElements: affected,
		SuggestedFix:     "Deduplicate the coincident points",
		CanAutoFix:       true,
		Tolerance:        opts.CoincidentPointTolerance,
	}, true
}

// checkMicroSegment flags segments strictly between MinSegmentLength and
// 10×MinSegmentLength: long enough to survive the zero-length check,
// short enough to destabilize offsets.
func checkMicroSegment(c *geom.Curve, opts Options) (Result, bool) {
	var affected []int
	upper := 10 * opts.MinSegmentLength
	for i := 0; i < c.SegmentCount(); i++ {
		a, b := c.Segment(i)
		l := geom.Dist(a, b)
		if l > opts.MinSegmentLength && l < upper {
			affected = append(affected, i)
		}
	}
	if len(affected) == 0 {
		return Result{}, false
	}
	return Result{
		HasEdgeCase:      true,
		Type:             MicroSegment,
		Severity:         geomerr.SeverityWarning,
		Description:      fmt.Sprintf("%d micro segment(s) between %g and %g", len(affected), opts.MinSegmentLength, upper),
		AffectedElements: affected,
		SuggestedFix:     "Merge micro segments into their neighbors",
		CanAutoFix:       true,
		Tolerance:        opts.MinSegmentLength,
	}, true
}
