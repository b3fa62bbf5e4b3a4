// Package pipeline - the topology stage.
package pipeline

import (
	"fmt"
	"time"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// topologyStage checks the produced fill polygons: vertex count, winding,
// and duplicate consecutive vertices. Entities without polygons pass
// trivially.
type topologyStage struct {
	opts Options
}

func (s *topologyStage) Name() string { return StageTopology }

func (s *topologyStage) Validate(e geom.Entity, run RunInfo) StageResult {
	pc, ok := e.(geom.PolygonCarrier)
	if !ok {
		return StageResult{Passed: true, Metrics: entityMetrics(e)}
	}

	var errs []*geomerr.GeometricError
	var warnings []string
	m := entityMetrics(e)

	for i, poly := range pc.OutputPolygons() {
		if len(poly.Vertices) < 3 {
			errs = append(errs, geomerr.NewDegenerateError(
				fmt.Sprintf("output polygon %d has fewer than three vertices", i),
				geomerr.WithOperation(run.Operation)))
			m.DegenerateCount = maxInt(m.DegenerateCount, 1)
			continue
		}
		if !poly.IsClockwise() {
			warnings = append(warnings, fmt.Sprintf("output polygon %d is not clockwise-oriented", i))
		}
		if dup := duplicateConsecutive(poly, s.opts.Detector.CoincidentPointTolerance); dup > 0 {
			errs = append(errs, geomerr.New(geomerr.DuplicateVertices,
				fmt.Sprintf("output polygon %d has %d duplicate consecutive vertex pair(s)", i, dup),
				geomerr.WithSeverity(geomerr.SeverityWarning),
				geomerr.WithOperation(run.Operation),
				geomerr.WithFix("Deduplicate the consecutive polygon vertices")))
		}
	}

	return StageResult{Passed: passFrom(errs), Errors: errs, Warnings: warnings, Metrics: m}
}

// Recover substitutes a minimal triangle for degenerate polygons,
// removes duplicate consecutive vertices, and reverses counter-clockwise
// rings to enforce clockwise winding.
func (s *topologyStage) Recover(e geom.Entity, errs []*geomerr.GeometricError) RecoveryOutcome {
	pc, ok := e.(geom.PolygonCarrier)
	if !ok {
		return RecoveryOutcome{}
	}

	var impact float64
	var warnings []string
	polys := pc.OutputPolygons()
	changed := false

	for i, poly := range polys {
		if len(poly.Vertices) < 3 {
			polys[i] = minimalTriangle(e.Baseline())
			impact += 0.3
			changed = true
			warnings = append(warnings, fmt.Sprintf("substituted a minimal triangle for degenerate polygon %d", i))
			continue
		}
		kept, removed := geom.DedupePoints(poly.Vertices, s.opts.Detector.CoincidentPointTolerance)
		if removed > 0 {
			poly = geom.Polygon{Vertices: kept}
			impact += 0.02 * float64(removed)
			changed = true
			warnings = append(warnings, fmt.Sprintf("removed %d duplicate vertex(es) from polygon %d", removed, i))
		}
		if !poly.IsClockwise() {
			poly = poly.Reversed()
			changed = true
			warnings = append(warnings, fmt.Sprintf("reversed polygon %d to clockwise winding", i))
		}
		polys[i] = poly
	}

	if !changed {
		return RecoveryOutcome{Warnings: warnings}
	}

	cur := pc.WithPolygons(polys)
	success := impact < topologyImpactCeiling
	if h, ok := cur.(geom.Healable); ok {
		cur = h.WithHealing(geom.HealingRecord{
			Operation:     StageTopology,
			QualityImpact: impact,
			Notes:         fmt.Sprintf("%d repair action(s)", len(warnings)),
			Timestamp:     time.Now().UTC(),
		})
	}
	return RecoveryOutcome{Success: success, Entity: cur, QualityImpact: impact, Warnings: warnings}
}

// duplicateConsecutive counts consecutive vertex pairs (closing pair
// included) closer than tol.
func duplicateConsecutive(p geom.Polygon, tol float64) int {
	n := len(p.Vertices)
	dup := 0
	for i := 0; i < n; i++ {
		if geom.Dist(p.Vertices[i], p.Vertices[(i+1)%n]) < tol {
			dup++
		}
	}
	return dup
}

// minimalTriangle fabricates the smallest clockwise triangle, anchored
// near the baseline when one exists.
func minimalTriangle(b *geom.Curve) geom.Polygon {
	anchor := geom.Pt(0, 0)
	if b != nil && len(b.Points) > 0 {
		anchor = b.Points[0]
	}
	return geom.Polygon{Vertices: []geom.Point{
		anchor,
		{X: anchor.X, Y: anchor.Y + 1},
		{X: anchor.X + 1, Y: anchor.Y},
	}}
}
