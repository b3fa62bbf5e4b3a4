// Package recovery - session, attempt, and option types.
package recovery

import (
	"time"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// Named strategies, in the fixed kind→strategy mapping.
const (
	StrategyDegenerateGeometry      = "degenerate_geometry_recovery"
	StrategySelfIntersection        = "self_intersection_resolution"
	StrategyNumericalStability      = "numerical_stability_recovery"
	StrategyTopologyRepair          = "topology_repair"
	StrategyDuplicateVertexRemoval  = "duplicate_vertex_removal"
	StrategyGeometricSimplification = "geometric_simplification"
	StrategyFallbackReconstruction  = "fallback_reconstruction"
)

// reviewImpactThreshold flags a single application for user review when
// its quality impact exceeds this value.
const reviewImpactThreshold = 0.3

// Options configures the recovery system.
type Options struct {
	// MaxRecoveryAttempts bounds strategy applications per session,
	// across all errors.
	MaxRecoveryAttempts int
	// QualityThreshold halts the session once TotalQualityImpact
	// exceeds it.
	QualityThreshold float64
	// PreserveOriginalData keeps the pre-recovery entity on the session
	// for diff/undo; disable to save memory.
	PreserveOriginalData bool
	// RequireUserConfirmation completes sessions immediately with
	// RequiresUserIntervention set, leaving the decision to the caller.
	RequireUserConfirmation bool
	// FallbackToSimplification routes error kinds without a dedicated
	// strategy to fallback reconstruction as a last resort.
	FallbackToSimplification bool
	// EnableAutoRecovery gates the whole system.
	EnableAutoRecovery bool
}

// DefaultOptions returns production recovery bounds.
func DefaultOptions() Options {
	return Options{
		MaxRecoveryAttempts:      3,
		QualityThreshold:         0.7,
		PreserveOriginalData:     true,
		RequireUserConfirmation:  false,
		FallbackToSimplification: true,
		EnableAutoRecovery:       true,
	}
}

// AttemptResult records one strategy application.
type AttemptResult struct {
	// Strategy is the applied strategy name.
	Strategy string
	// Kind is the error kind the strategy addressed.
	Kind geomerr.Kind
	// Success reports whether the application produced usable data.
	Success bool
	// Entity is the recovered data; nil on failure.
	Entity geom.Entity
	// QualityImpact is the fractional fidelity loss of this application.
	QualityImpact float64
	// Warnings document the concrete repair actions.
	Warnings []string
	// RequiresUserReview is set when QualityImpact exceeds the review
	// threshold.
	RequiresUserReview bool
}

// Session is the bounded, recorded attempt to repair one entity's
// errors. Sessions are immutable values: every update returns a new
// session, and a session is never reused across AttemptRecovery calls.
type Session struct {
	// ID identifies the session (UUID unless caller-supplied).
	ID string
	// StartTime is when the session was created.
	StartTime time.Time
	// Original is the pre-recovery entity, nil unless
	// PreserveOriginalData is set.
	Original geom.Entity
	// Current is the latest (possibly repaired) entity.
	Current geom.Entity
	// AppliedStrategies lists every applied strategy name, in order.
	AppliedStrategies []string
	// History records every attempt, successful or not.
	History []AttemptResult
	// TotalQualityImpact sums the successful attempts' impacts.
	TotalQualityImpact float64
	// Complete marks the session finished.
	Complete bool
	// RequiresUserIntervention is set when errors were skipped, budgets
	// were exhausted, or recovery is disabled.
	RequiresUserIntervention bool
}

// withAttempt returns a new session with the attempt recorded.
func (s Session) withAttempt(a AttemptResult) Session {
	s.AppliedStrategies = append(append([]string(nil), s.AppliedStrategies...), a.Strategy)
	s.History = append(append([]AttemptResult(nil), s.History...), a)
	if a.Success {
		s.TotalQualityImpact += a.QualityImpact
		if a.Entity != nil {
			s.Current = a.Entity
		}
	}
	return s
}

// Recommendation is one ranked candidate from Recommendations.
type Recommendation struct {
	// Strategy is the candidate strategy name; empty when only manual
	// intervention applies.
	Strategy string
	// Kind is the error kind addressed.
	Kind geomerr.Kind
	// Confidence estimates the chance the strategy resolves the error.
	Confidence float64
	// EstimatedQualityImpact is the expected fidelity loss.
	EstimatedQualityImpact float64
	// RequiresUserInput marks candidates the system would not apply
	// automatically.
	RequiresUserInput bool
	// Description is human-readable guidance.
	Description string
}
