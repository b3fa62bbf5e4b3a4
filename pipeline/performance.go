// Package pipeline - the performance stage.
package pipeline

import (
	"fmt"

	"github.com/goodwillp/wallmend/geom"
)

// performanceStage reports complexity and timing concerns. It only ever
// warns: performance never fails validation.
type performanceStage struct{}

func (s *performanceStage) Name() string { return StagePerformance }

func (s *performanceStage) Validate(e geom.Entity, run RunInfo) StageResult {
	var warnings []string
	m := entityMetrics(e)

	vertices := 0
	if b := e.Baseline(); b != nil {
		vertices += len(b.Points)
	}
	if pc, ok := e.(geom.PolygonCarrier); ok {
		for _, poly := range pc.OutputPolygons() {
			vertices += len(poly.Vertices)
		}
	}
	m.Complexity = maxInt(m.Complexity, vertices)

	if vertices > maxVertexCount {
		warnings = append(warnings, fmt.Sprintf("entity has %d vertices, above the %d budget", vertices, maxVertexCount))
	}
	if run.Elapsed > maxProcessingTime {
		warnings = append(warnings, fmt.Sprintf("validation has consumed %s, above the %s budget", run.Elapsed, maxProcessingTime))
	}

	return StageResult{Passed: true, Warnings: warnings, Metrics: m}
}
