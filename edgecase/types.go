// Package edgecase - result and options types.
package edgecase

import (
	"math"

	"github.com/goodwillp/wallmend/geomerr"
)

// Type labels one detector check.
type Type string

const (
	// ZeroLengthSegment - consecutive points closer than MinSegmentLength.
	ZeroLengthSegment Type = "zero_length_segment"
	// Degenerate - <2 points, all-coincident, or near-zero total length.
	Degenerate Type = "degenerate_geometry"
	// SelfIntersecting - non-adjacent segments cross.
	SelfIntersecting Type = "self_intersection"
	// ExtremeAngle - interior vertex angle outside the configured band.
	ExtremeAngle Type = "extreme_angle"
	// CoincidentPoints - any two points within CoincidentPointTolerance.
	CoincidentPoints Type = "coincident_points"
	// MicroSegment - segment strictly between MinSegmentLength and 10× it.
	MicroSegment Type = "micro_segment"
	// ThicknessInstability - wall thickness below numerical precision.
	ThicknessInstability Type = "numerical_instability"
)

// Result is one detector finding. Produced fresh per call, never cached.
type Result struct {
	// HasEdgeCase is true for every finding a detector returns; callers
	// composing their own Result values may use false for "checked, clean".
	HasEdgeCase bool `json:"has_edge_case"`
	// Type labels the check that fired.
	Type Type `json:"edge_case_type"`
	// Severity uses the shared ordered scale.
	Severity geomerr.Severity `json:"severity"`
	// Description is human-readable detail.
	Description string `json:"description"`
	// AffectedElements lists point or segment indices, by check semantics.
	AffectedElements []int `json:"affected_elements,omitempty"`
	// SuggestedFix is remediation guidance.
	SuggestedFix string `json:"suggested_fix,omitempty"`
	// CanAutoFix reports whether an automatic repair exists for the finding.
	CanAutoFix bool `json:"can_auto_fix"`
	// Tolerance is the threshold the check ran under.
	Tolerance float64 `json:"tolerance"`
}

// Options configures the detector thresholds and per-check toggles.
//
// Angles are interior vertex angles in radians: a collinear vertex reads
// π, a full spike reads 0. The extreme-angle check flags angles outside
// [MinAngleTolerance, MaxAngleTolerance].
type Options struct {
	MinSegmentLength          float64
	MinAngleTolerance         float64
	MaxAngleTolerance         float64
	NumericalPrecision        float64
	SelfIntersectionTolerance float64
	CoincidentPointTolerance  float64

	CheckZeroLength       bool
	CheckDegenerate       bool
	CheckSelfIntersection bool
	CheckExtremeAngle     bool
	CheckCoincident       bool
	CheckMicroSegment     bool
}

// DefaultOptions returns production thresholds with every check enabled.
func DefaultOptions() Options {
	return Options{
		MinSegmentLength:          1e-3,
		MinAngleTolerance:         15 * math.Pi / 180,
		MaxAngleTolerance:         165 * math.Pi / 180,
		NumericalPrecision:        1e-10,
		SelfIntersectionTolerance: 1e-9,
		CoincidentPointTolerance:  1e-6,

		CheckZeroLength:       true,
		CheckDegenerate:       true,
		CheckSelfIntersection: true,
		CheckExtremeAngle:     true,
		CheckCoincident:       true,
		CheckMicroSegment:     true,
	}
}
