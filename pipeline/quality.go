// Package pipeline - the quality-metrics stage.
package pipeline

import (
	"fmt"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// Quality thresholds. Below these the stage warns; it has no hard
// failures of its own.
const (
	minGeometricAccuracy      = 0.8
	minTopologicalConsistency = 0.9
)

// qualityStage inspects the entity's pre-computed quality snapshot.
// Entities without metrics pass trivially.
type qualityStage struct{}

func (s *qualityStage) Name() string { return StageQualityMetrics }

func (s *qualityStage) Validate(e geom.Entity, run RunInfo) StageResult {
	mc, ok := e.(geom.MetricsCarrier)
	if !ok {
		return StageResult{Passed: true, Metrics: geom.PerfectMetrics()}
	}

	m := mc.Metrics()
	var errs []*geomerr.GeometricError
	var warnings []string

	if m.GeometricAccuracy < minGeometricAccuracy {
		warnings = append(warnings, fmt.Sprintf("geometric accuracy %.3f is below %.2f", m.GeometricAccuracy, minGeometricAccuracy))
	}
	if m.TopologicalConsistency < minTopologicalConsistency {
		warnings = append(warnings, fmt.Sprintf("topological consistency %.3f is below %.2f", m.TopologicalConsistency, minTopologicalConsistency))
	}
	if m.SelfIntersectionCount > 0 {
		errs = append(errs, geomerr.New(geomerr.SelfIntersection,
			fmt.Sprintf("quality snapshot records %d self-intersection(s)", m.SelfIntersectionCount),
			geomerr.WithSeverity(geomerr.SeverityWarning),
			geomerr.WithOperation(run.Operation),
			geomerr.WithFix("Run self-intersection resolution before trusting the polygons")))
	}

	return StageResult{Passed: passFrom(errs), Errors: errs, Warnings: warnings, Metrics: m}
}
