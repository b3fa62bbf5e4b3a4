// Package fallback - operations, inputs, results, and options.
package fallback

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// ErrNotApplicable is returned by a strategy asked to execute an input
// it cannot handle.
var ErrNotApplicable = errors.New("fallback: strategy not applicable to input")

// Operation identifies the geometric operation being rescued.
type Operation int

const (
	// OpOffset is baseline offsetting (left/right wall faces).
	OpOffset Operation = iota
	// OpBoolean is polygon union/difference/intersection.
	OpBoolean
	// OpIntersection is wall junction resolution.
	OpIntersection
)

// String implements fmt.Stringer.
func (o Operation) String() string {
	switch o {
	case OpOffset:
		return "offset"
	case OpBoolean:
		return "boolean"
	case OpIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// Input carries everything a strategy may need. Only the fields
// relevant to the operation are populated.
type Input struct {
	// Operation selects which operation failed.
	Operation Operation
	// Err is the error that triggered the fallback; strategies may use
	// it to decide applicability.
	Err *geomerr.GeometricError
	// Curve is the baseline for OpOffset.
	Curve *geom.Curve
	// Distance is the offset distance for OpOffset.
	Distance float64
	// Join is the requested corner style for OpOffset.
	Join geom.JoinType
	// Solids are the participating walls for OpIntersection.
	Solids []*geom.WallSolid
	// Polygons are the operands for OpBoolean.
	Polygons []geom.Polygon
	// BoolOp selects the boolean operation for OpBoolean.
	BoolOp geom.BooleanOp
	// Tolerance is the caller's working tolerance; zero means default.
	Tolerance float64
}

// Result is what a strategy (or graceful degradation) produced.
type Result struct {
	// Success reports whether usable output was produced.
	Success bool
	// OperationType names the method that produced the output, for
	// diagnostics ("offset_simplified", "graceful_degradation_union", ...).
	OperationType string
	// Curves holds offset output (left, right) when applicable.
	Curves []*geom.Curve
	// Polygons holds polygonal output when applicable.
	Polygons []geom.Polygon
	// Points holds resolved junction points for OpIntersection.
	Points []geom.Point
	// QualityImpact is the retained-quality fraction of the output,
	// 1 meaning lossless.
	QualityImpact float64
	// FallbackUsed marks output produced by anything other than the
	// primary implementation.
	FallbackUsed bool
	// Warnings document what was sacrificed.
	Warnings []string
	// RequiresHealing marks degraded output that should be routed
	// through recovery before further processing.
	RequiresHealing bool
}

// Strategy is one prioritized alternative implementation of an
// operation. Implementations must be safe for concurrent use.
type Strategy interface {
	// Name identifies the strategy in results and notifications.
	Name() string
	// Priority orders strategies; higher runs first.
	Priority() int
	// QualityImpact estimates the retained-quality fraction of this
	// strategy's output (1 = lossless).
	QualityImpact() float64
	// CanHandle reports whether the strategy applies to the input.
	CanHandle(in Input) bool
	// Execute runs the strategy. An error means this strategy failed;
	// the engine moves on to the next one.
	Execute(in Input) (Result, error)
}

// Notification tells the caller what happened to a rescued operation.
type Notification struct {
	// Operation is the rescued operation.
	Operation Operation `json:"operation"`
	// OriginalError is the failure that triggered the fallback.
	OriginalError string `json:"original_error"`
	// Method is the strategy that produced output, or
	// "none_successful" on exhaustion.
	Method string `json:"method"`
	// QualityImpact is the retained-quality fraction of the output.
	QualityImpact float64 `json:"quality_impact"`
	// Guidance is actionable advice for the caller.
	Guidance string `json:"guidance"`
	// CanRetry reports whether retrying with adjusted input may help.
	CanRetry bool `json:"can_retry"`
	// Alternatives lists manual options when automation gave up.
	Alternatives []string `json:"alternatives,omitempty"`
	// Timestamp is when the notification was emitted.
	Timestamp time.Time `json:"timestamp"`
}

// NotifyFunc receives notifications; implementations must not block.
type NotifyFunc func(Notification)

// Options configures the fallback engine.
type Options struct {
	// MaxFallbackAttempts bounds how many strategies are tried per
	// operation before graceful degradation.
	MaxFallbackAttempts int
	// QualityThreshold is the minimum acceptable retained-quality
	// fraction for a fallback result.
	QualityThreshold float64
	// Notify receives quality notifications; nil falls back to a zap
	// console logger.
	Notify NotifyFunc
}

// DefaultOptions returns production fallback bounds.
func DefaultOptions() Options {
	return Options{
		MaxFallbackAttempts: 3,
		QualityThreshold:    0.3,
		Notify:              zapNotify(),
	}
}

// zapNotify builds the default notification sink: structured warnings
// on a production-encoded console logger.
func zapNotify() NotifyFunc {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return func(n Notification) {
		logger.Warn("geometric operation degraded",
			zap.Stringer("operation", n.Operation),
			zap.String("method", n.Method),
			zap.Float64("quality_impact", n.QualityImpact),
			zap.String("original_error", n.OriginalError),
			zap.Bool("can_retry", n.CanRetry),
			zap.String("guidance", n.Guidance),
		)
	}
}
