// Package geomerr - kind-specific factory constructors.
//
// Each factory pre-fills a reasonable suggested fix so callers surface
// actionable guidance without composing remediation text themselves.
package geomerr

import (
	"github.com/goodwillp/wallmend/geom"
)

// NewOffsetError builds an OffsetFailure with the offset context attached.
func NewOffsetError(message string, distance float64, join geom.JoinType, opts ...Option) *GeometricError {
	e := New(OffsetFailure, message,
		WithFix("Reduce the offset distance, simplify the baseline, or switch to a bevel join"))
	e.Offset = &OffsetPayload{Distance: distance, Join: join}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewToleranceError builds a ToleranceExceeded carrying the measured and
// required values.
func NewToleranceError(message string, current, required float64, detail string, opts ...Option) *GeometricError {
	e := New(ToleranceExceeded, message,
		WithFix("Loosen the tolerance or snap input coordinates to a coarser grid"))
	e.Tolerance = &TolerancePayload{Current: current, Required: required, Detail: detail}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewBooleanError builds a BooleanFailure carrying the operation context.
func NewBooleanError(message string, op geom.BooleanOp, inputCount int, opts ...Option) *GeometricError {
	e := New(BooleanFailure, message,
		WithFix("Simplify the input polygons or run the operation pairwise"))
	e.Boolean = &BooleanPayload{Op: op, InputCount: inputCount}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewSelfIntersectionError builds a SelfIntersection carrying crossing
// locations and the indices of the crossing segments.
func NewSelfIntersectionError(message string, points []geom.Point, segments [][2]int, opts ...Option) *GeometricError {
	e := New(SelfIntersection, message,
		WithFix("Remove or reorder the crossing points, or simplify the curve"))
	e.Intersections = &IntersectionPayload{Points: points, Segments: segments}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDegenerateError builds a DegenerateGeometry error.
func NewDegenerateError(message string, opts ...Option) *GeometricError {
	e := New(DegenerateGeometry, message,
		WithFix("Provide at least two distinct points with non-zero extent"))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewInstabilityError builds a NumericalInstability error.
func NewInstabilityError(message string, opts ...Option) *GeometricError {
	e := New(NumericalInstability, message,
		WithFix("Rescale coordinates toward the origin and drop sub-tolerance segments"))
	for _, opt := range opts {
		opt(e)
	}
	return e
}
