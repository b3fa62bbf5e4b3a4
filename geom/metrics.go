package geom

import "math"

// QualityMetrics is the quality snapshot carried by a WallSolid and
// aggregated by the validation pipeline.
//
// GeometricAccuracy, TopologicalConsistency, and ProcessingEfficiency are
// ratios in [0,1] where 1 is perfect; the counts tally defects; Complexity
// is the total vertex count of the produced geometry.
type QualityMetrics struct {
	GeometricAccuracy      float64 `json:"geometric_accuracy"`
	TopologicalConsistency float64 `json:"topological_consistency"`
	SliverCount            int     `json:"sliver_count"`
	MicroGapCount          int     `json:"micro_gap_count"`
	SelfIntersectionCount  int     `json:"self_intersection_count"`
	DegenerateCount        int     `json:"degenerate_count"`
	Complexity             int     `json:"complexity"`
	ProcessingEfficiency   float64 `json:"processing_efficiency"`
}

// PerfectMetrics returns the snapshot of a defect-free result.
func PerfectMetrics() QualityMetrics {
	return QualityMetrics{
		GeometricAccuracy:      1,
		TopologicalConsistency: 1,
		ProcessingEfficiency:   1,
	}
}

// WorstOf merges two snapshots pessimistically: ratio metrics take the
// minimum observed value, defect counts and complexity the maximum.
func (m QualityMetrics) WorstOf(o QualityMetrics) QualityMetrics {
	return QualityMetrics{
		GeometricAccuracy:      math.Min(m.GeometricAccuracy, o.GeometricAccuracy),
		TopologicalConsistency: math.Min(m.TopologicalConsistency, o.TopologicalConsistency),
		SliverCount:            maxInt(m.SliverCount, o.SliverCount),
		MicroGapCount:          maxInt(m.MicroGapCount, o.MicroGapCount),
		SelfIntersectionCount:  maxInt(m.SelfIntersectionCount, o.SelfIntersectionCount),
		DegenerateCount:        maxInt(m.DegenerateCount, o.DegenerateCount),
		Complexity:             maxInt(m.Complexity, o.Complexity),
		ProcessingEfficiency:   math.Min(m.ProcessingEfficiency, o.ProcessingEfficiency),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
