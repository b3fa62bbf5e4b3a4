// Package pipeline - the geometric-consistency stage.
package pipeline

import (
	"fmt"
	"time"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// consistencyStage enforces the basic entity invariants: a usable
// baseline, a positive thickness (when the entity carries one), and a
// non-self-intersecting baseline.
type consistencyStage struct {
	opts Options
}

func (s *consistencyStage) Name() string { return StageGeometricConsistency }

func (s *consistencyStage) Validate(e geom.Entity, run RunInfo) StageResult {
	var errs []*geomerr.GeometricError
	m := entityMetrics(e)

	b := e.Baseline()
	degenerate := b == nil || len(b.Points) < 2
	if degenerate {
		errs = append(errs, geomerr.NewDegenerateError(
			"baseline must have at least two points",
			geomerr.WithOperation(run.Operation)))
		m.DegenerateCount = maxInt(m.DegenerateCount, 1)
	}

	if tc, ok := e.(geom.ThicknessCarrier); ok && tc.Thickness() <= 0 {
		errs = append(errs, geomerr.New(geomerr.InvalidParameter,
			fmt.Sprintf("wall thickness must be positive, got %g", tc.Thickness()),
			geomerr.WithOperation(run.Operation),
			geomerr.WithFix("Set the wall thickness to a positive value")))
	}

	if !degenerate {
		if hits := geom.FindSelfIntersections(b, s.opts.Detector.NumericalPrecision); len(hits) > 0 {
			pts := make([]geom.Point, len(hits))
			segs := make([][2]int, len(hits))
			for i, h := range hits {
				pts[i] = h.At
				segs[i] = [2]int{h.SegA, h.SegB}
			}
			errs = append(errs, geomerr.NewSelfIntersectionError(
				fmt.Sprintf("baseline crosses itself at %d location(s)", len(hits)),
				pts, segs,
				geomerr.WithSeverity(geomerr.SeverityWarning),
				geomerr.WithOperation(run.Operation)))
			m.SelfIntersectionCount = maxInt(m.SelfIntersectionCount, len(hits))
		}
	}

	return StageResult{Passed: passFrom(errs), Errors: errs, Metrics: m}
}

// Recover substitutes a minimal two-point baseline for degeneracy, the
// configured default thickness for an invalid thickness, and removes
// baseline points that introduce self-intersections. Success requires
// the cumulative impact to stay under the consistency ceiling.
func (s *consistencyStage) Recover(e geom.Entity, errs []*geomerr.GeometricError) RecoveryOutcome {
	cur := e
	var impact float64
	var warnings []string

	for _, ge := range errs {
		switch ge.Kind {
		case geomerr.DegenerateGeometry:
			cur = cur.WithBaseline(minimalBaseline(cur.Baseline()))
			impact += 0.4
			warnings = append(warnings, "substituted a minimal two-point baseline for degenerate geometry")

		case geomerr.InvalidParameter:
			if tc, ok := cur.(geom.ThicknessCarrier); ok {
				cur = tc.WithThickness(s.opts.DefaultThickness)
				impact += 0.1
				warnings = append(warnings, fmt.Sprintf("reset wall thickness to default %g", s.opts.DefaultThickness))
			}

		case geomerr.SelfIntersection:
			fixed, removed := geom.RemoveSelfIntersections(cur.Baseline(), s.opts.Detector.NumericalPrecision)
			if removed > 0 {
				cur = cur.WithBaseline(fixed)
				impact += 0.05 * float64(removed)
				warnings = append(warnings, fmt.Sprintf("removed %d baseline point(s) to resolve self-intersections", removed))
			}
		}
	}

	success := impact < consistencyImpactCeiling
	if h, ok := cur.(geom.Healable); ok && len(warnings) > 0 {
		cur = h.WithHealing(geom.HealingRecord{
			Operation:     StageGeometricConsistency,
			QualityImpact: impact,
			Notes:         fmt.Sprintf("%d repair action(s)", len(warnings)),
			Timestamp:     time.Now().UTC(),
		})
	}
	return RecoveryOutcome{Success: success, Entity: cur, QualityImpact: impact, Warnings: warnings}
}

// minimalBaseline fabricates the smallest valid baseline, anchored at the
// first surviving point when one exists.
func minimalBaseline(b *geom.Curve) *geom.Curve {
	anchor := geom.Pt(0, 0)
	if b != nil && len(b.Points) > 0 {
		anchor = b.Points[0]
	}
	return geom.NewCurve([]geom.Point{anchor, geom.Pt(anchor.X+1, anchor.Y)}, false)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
