// Package recovery - the named strategy implementations.
//
// Each strategy is a pure function from (entity, error) to a recovered
// entity plus an explicit quality impact. Strategies never panic on
// expected inputs; unexpected conditions return an error and the
// orchestrator records a failed attempt.
package recovery

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// ErrNotApplicable indicates the strategy cannot operate on the entity.
var ErrNotApplicable = errors.New("recovery: strategy not applicable to entity")

// Internal tolerances for the strategies. These mirror the detector
// defaults; strategies deliberately do not take per-call options so a
// session stays reproducible from its inputs.
const (
	strategyPrecision    = 1e-10
	strategyCoincidence  = 1e-6
	strategyShortSegment = 1e-6
	coordinateLimit      = 1e6
)

// strategy couples a named repair with its preview estimates.
type strategy struct {
	name        string
	confidence  float64
	estImpact   float64
	description string
	apply       func(e geom.Entity, ge *geomerr.GeometricError) (geom.Entity, float64, []string, error)
}

var stratDegenerateGeometry = strategy{
	name:        StrategyDegenerateGeometry,
	confidence:  0.9,
	estImpact:   0.4,
	description: "substitute a minimal two-point baseline for degenerate geometry",
	apply: func(e geom.Entity, _ *geomerr.GeometricError) (geom.Entity, float64, []string, error) {
		anchor := geom.Pt(0, 0)
		if b := e.Baseline(); b != nil && len(b.Points) > 0 {
			anchor = b.Points[0]
		}
		minimal := geom.NewCurve([]geom.Point{anchor, geom.Pt(anchor.X+1, anchor.Y)}, false)
		cur := heal(e.WithBaseline(minimal), StrategyDegenerateGeometry, 0.4)
		return cur, 0.4, []string{"substituted a minimal two-point baseline"}, nil
	},
}

var stratSelfIntersection = strategy{
	name:        StrategySelfIntersection,
	confidence:  0.85,
	estImpact:   0.2,
	description: "remove the baseline points introducing self-intersections",
	apply: func(e geom.Entity, _ *geomerr.GeometricError) (geom.Entity, float64, []string, error) {
		b := e.Baseline()
		if b == nil {
			return nil, 0, nil, ErrNotApplicable
		}
		fixed, removed := geom.RemoveSelfIntersections(b, strategyPrecision)
		if removed == 0 {
			return e, 0, []string{"no removable self-intersections found"}, nil
		}
		impact := math.Min(0.05*float64(removed), 0.5)
		cur := heal(e.WithBaseline(fixed), StrategySelfIntersection, impact)
		return cur, impact, []string{fmt.Sprintf("removed %d crossing point(s)", removed)}, nil
	},
}

var stratNumericalStability = strategy{
	name:        StrategyNumericalStability,
	confidence:  0.8,
	estImpact:   0.15,
	description: "filter sub-threshold segments and clamp extreme coordinates",
	apply: func(e geom.Entity, _ *geomerr.GeometricError) (geom.Entity, float64, []string, error) {
		b := e.Baseline()
		if b == nil {
			return nil, 0, nil, ErrNotApplicable
		}
		filtered, removed := geom.FilterShortSegments(b, strategyShortSegment)
		clamped, adjusted := geom.ClampCoordinates(filtered, coordinateLimit)
		if removed == 0 && adjusted == 0 {
			return e, 0, []string{"baseline already numerically stable"}, nil
		}
		impact := math.Min(0.05*float64(removed)+0.02*float64(adjusted), 0.3)
		cur := heal(e.WithBaseline(clamped), StrategyNumericalStability, impact)
		return cur, impact, []string{
			fmt.Sprintf("filtered %d segment(s), clamped %d coordinate(s)", removed, adjusted),
		}, nil
	},
}

var stratTopologyRepair = strategy{
	name:        StrategyTopologyRepair,
	confidence:  0.75,
	estImpact:   0.2,
	description: "deduplicate polygon vertices and enforce clockwise winding",
	apply: func(e geom.Entity, _ *geomerr.GeometricError) (geom.Entity, float64, []string, error) {
		pc, ok := e.(geom.PolygonCarrier)
		if !ok {
			return nil, 0, nil, ErrNotApplicable
		}
		polys := pc.OutputPolygons()
		var impact float64
		var warnings []string
		changed := false
		for i, poly := range polys {
			if len(poly.Vertices) < 3 {
				polys[i] = triangleNear(e.Baseline())
				impact += 0.3
				changed = true
				warnings = append(warnings, fmt.Sprintf("substituted a minimal triangle for polygon %d", i))
				continue
			}
			kept, removed := geom.DedupePoints(poly.Vertices, strategyCoincidence)
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
			return e, 0, []string{"polygons already topologically sound"}, nil
		}
		cur := heal(pc.WithPolygons(polys), StrategyTopologyRepair, impact)
		return cur, impact, warnings, nil
	},
}

var stratDuplicateVertexRemoval = strategy{
	name:        StrategyDuplicateVertexRemoval,
	confidence:  0.95,
	estImpact:   0.05,
	description: "remove coincident baseline points",
	apply: func(e geom.Entity, _ *geomerr.GeometricError) (geom.Entity, float64, []string, error) {
		b := e.Baseline()
		if b == nil {
			return nil, 0, nil, ErrNotApplicable
		}
		kept, removed := geom.DedupeAllPoints(b.Points, strategyCoincidence)
		if removed == 0 {
			return e, 0, []string{"no duplicate points found"}, nil
		}
		impact := math.Min(0.01*float64(removed), 0.2)
		cur := heal(e.WithBaseline(geom.NewCurve(kept, b.Closed)), StrategyDuplicateVertexRemoval, impact)
		return cur, impact, []string{fmt.Sprintf("removed %d duplicate point(s)", removed)}, nil
	},
}

var stratGeometricSimplification = strategy{
	name:        StrategyGeometricSimplification,
	confidence:  0.7,
	estImpact:   0.25,
	description: "simplify the baseline with a tolerance-bounded pass",
	apply: func(e geom.Entity, _ *geomerr.GeometricError) (geom.Entity, float64, []string, error) {
		b := e.Baseline()
		if b == nil {
			return nil, 0, nil, ErrNotApplicable
		}
		bb := b.BoundingBox()
		tol := 0.005 * math.Hypot(bb.Width(), bb.Height())
		simplified, err := geom.Simplify(b, tol)
		if err != nil {
			return nil, 0, nil, err
		}
		dropped := len(b.Points) - len(simplified.Points)
		if dropped == 0 {
			return e, 0, []string{"baseline already minimal at this tolerance"}, nil
		}
		impact := math.Min(0.25, 0.02*float64(dropped))
		cur := heal(e.WithBaseline(simplified), StrategyGeometricSimplification, impact)
		return cur, impact, []string{fmt.Sprintf("dropped %d point(s) within tolerance %g", dropped, tol)}, nil
	},
}

var stratFallbackReconstruction = strategy{
	name:        StrategyFallbackReconstruction,
	confidence:  0.5,
	estImpact:   0.6,
	description: "rebuild a minimal valid entity from the baseline bounds",
	apply: func(e geom.Entity, _ *geomerr.GeometricError) (geom.Entity, float64, []string, error) {
		b := e.Baseline()
		if b == nil || len(b.Points) == 0 {
			return nil, 0, nil, ErrNotApplicable
		}
		bb := b.BoundingBox()
		rebuilt := geom.NewCurve([]geom.Point{
			geom.Pt(bb.MinX, bb.MinY), geom.Pt(bb.MaxX, bb.MaxY),
		}, false)
		cur := e.WithBaseline(rebuilt)
		warnings := []string{"reconstructed a minimal baseline from the bounding box"}
		if pc, ok := cur.(geom.PolygonCarrier); ok && len(pc.OutputPolygons()) > 0 {
			cur = pc.WithPolygons([]geom.Polygon{bb.ToPolygon()})
			warnings = append(warnings, "replaced output polygons with the bounding rectangle")
		}
		cur = heal(cur, StrategyFallbackReconstruction, 0.6)
		return cur, 0.6, warnings, nil
	},
}

// heal appends a healing record when the entity supports it.
func heal(e geom.Entity, operation string, impact float64) geom.Entity {
	if h, ok := e.(geom.Healable); ok {
		return h.WithHealing(geom.HealingRecord{
			Operation:     operation,
			QualityImpact: impact,
			Timestamp:     time.Now().UTC(),
		})
	}
	return e
}

// triangleNear fabricates the smallest clockwise triangle near the
// baseline anchor.
func triangleNear(b *geom.Curve) geom.Polygon {
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
