// Package pipeline - the numerical-stability stage.
package pipeline

import (
	"fmt"
	"math"
	"time"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// stabilityStage flags baseline geometry that destabilizes floating-point
// arithmetic: segments under minStableSegment (an error) and coordinate
// magnitudes above maxCoordinateMagnitude (a warning only).
type stabilityStage struct{}

func (s *stabilityStage) Name() string { return StageNumericalStability }

func (s *stabilityStage) Validate(e geom.Entity, run RunInfo) StageResult {
	var errs []*geomerr.GeometricError
	var warnings []string
	m := entityMetrics(e)

	b := e.Baseline()
	if b == nil || len(b.Points) < 2 {
		// The consistency stage owns degenerate baselines.
		return StageResult{Passed: true, Metrics: m}
	}

	short := 0
	for i := 0; i < b.SegmentCount(); i++ {
		p, q := b.Segment(i)
		if geom.Dist(p, q) < minStableSegment {
			short++
		}
	}
	if short > 0 {
		errs = append(errs, geomerr.NewInstabilityError(
			fmt.Sprintf("%d baseline segment(s) shorter than %g", short, minStableSegment),
			geomerr.WithOperation(run.Operation)))
	}

	huge := 0
	for _, p := range b.Points {
		if math.Abs(p.X) > maxCoordinateMagnitude || math.Abs(p.Y) > maxCoordinateMagnitude {
			huge++
		}
	}
	if huge > 0 {
		warnings = append(warnings, fmt.Sprintf("%d baseline coordinate(s) exceed magnitude %g", huge, maxCoordinateMagnitude))
	}

	return StageResult{Passed: passFrom(errs), Errors: errs, Warnings: warnings, Metrics: m}
}

// Recover filters sub-threshold segments and clamps out-of-range
// coordinates, under the tighter stability ceiling.
func (s *stabilityStage) Recover(e geom.Entity, _ []*geomerr.GeometricError) RecoveryOutcome {
	b := e.Baseline()
	if b == nil {
		return RecoveryOutcome{}
	}

	var impact float64
	var warnings []string

	filtered, removed := geom.FilterShortSegments(b, minStableSegment)
	if removed > 0 {
		impact += 0.05 * float64(removed)
		warnings = append(warnings, fmt.Sprintf("filtered %d sub-threshold baseline segment(s)", removed))
	}
	clamped, adjusted := geom.ClampCoordinates(filtered, maxCoordinateMagnitude)
	if adjusted > 0 {
		impact += 0.02 * float64(adjusted)
		warnings = append(warnings, fmt.Sprintf("clamped %d out-of-range coordinate(s)", adjusted))
	}

	if removed == 0 && adjusted == 0 {
		return RecoveryOutcome{}
	}

	cur := e.WithBaseline(clamped)
	success := impact < stabilityImpactCeiling
	if h, ok := cur.(geom.Healable); ok {
		cur = h.WithHealing(geom.HealingRecord{
			Operation:     StageNumericalStability,
			QualityImpact: impact,
			Timestamp:     time.Now().UTC(),
		})
	}
	return RecoveryOutcome{Success: success, Entity: cur, QualityImpact: impact, Warnings: warnings}
}
