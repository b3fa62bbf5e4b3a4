package geom

import "errors"

var (
	// ErrNilCurve indicates a nil *Curve was passed where one is required.
	ErrNilCurve = errors.New("geom: nil curve")
	// ErrTooFewPoints indicates a curve with fewer than two points.
	ErrTooFewPoints = errors.New("geom: curve needs at least two points")
	// ErrHullTooSmall indicates fewer than three distinct points for a hull.
	ErrHullTooSmall = errors.New("geom: not enough distinct points for a hull")
	// ErrBadDistance indicates a non-finite offset distance.
	ErrBadDistance = errors.New("geom: offset distance must be finite")
)
