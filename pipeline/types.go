// Package pipeline - stage contracts, options, and result types.
package pipeline

import (
	"time"

	"github.com/goodwillp/wallmend/edgecase"
	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// Phase distinguishes validation before and after an operation.
type Phase int

const (
	// PhasePre validates inputs before an operation runs.
	PhasePre Phase = iota
	// PhasePost validates results after an operation ran.
	PhasePost
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	if p == PhasePre {
		return "pre"
	}
	return "post"
}

// Stage name constants, in execution order.
const (
	StageGeometricConsistency = "geometric-consistency"
	StageTopology             = "topology"
	StageNumericalStability   = "numerical-stability"
	StageQualityMetrics       = "quality-metrics"
	StagePerformance          = "performance"
)

// RecoveredSuffix distinguishes the post-recovery re-validation result of
// a stage in Result.StageResults.
const RecoveredSuffix = ":recovered"

// Stage-recovery quality ceilings: recovery is declared failed when its
// cumulative impact reaches the ceiling, even though data was mutated.
const (
	consistencyImpactCeiling = 0.5
	topologyImpactCeiling    = 0.5
	stabilityImpactCeiling   = 0.3
)

// Numerical-stability thresholds.
const (
	minStableSegment       = 1e-6
	maxCoordinateMagnitude = 1e6
)

// Performance thresholds. The performance stage warns and never fails.
const (
	maxVertexCount    = 1000
	maxProcessingTime = time.Second
)

// RunInfo carries per-invocation context into a stage.
type RunInfo struct {
	// Operation is the caller-supplied free-text label.
	Operation string
	// Phase is pre or post.
	Phase Phase
	// Elapsed is the pipeline wall-clock time consumed before this stage.
	Elapsed time.Duration
}

// StageResult is the outcome of one stage validation.
type StageResult struct {
	StageName string `json:"stage"`
	// Passed is false when any error of SeverityError or worse is present.
	Passed   bool                       `json:"passed"`
	Errors   []*geomerr.GeometricError  `json:"errors,omitempty"`
	Warnings []string                   `json:"warnings,omitempty"`
	// Metrics is the stage's partial quality snapshot, seeded from the
	// entity's own snapshot so unmeasured fields stay meaningful.
	Metrics        geom.QualityMetrics `json:"metrics"`
	ProcessingTime time.Duration       `json:"processing_time"`
}

// RecoveryOutcome is the explicit result value of one stage-recovery
// application. Entity is the possibly-mutated entity (nil when recovery
// touched nothing); Success is false once QualityImpact reaches the
// stage ceiling, signaling "partial, inspect before trusting".
type RecoveryOutcome struct {
	Success       bool
	Entity        geom.Entity
	QualityImpact float64
	Warnings      []string
}

// Stage validates one aspect of an entity.
type Stage interface {
	Name() string
	Validate(e geom.Entity, run RunInfo) StageResult
}

// RecoverableStage is a stage that can repair its own failures.
type RecoverableStage interface {
	Stage
	Recover(e geom.Entity, errs []*geomerr.GeometricError) RecoveryOutcome
}

// Options configures a Pipeline.
type Options struct {
	// EnablePreValidation / EnablePostValidation toggle the two phases
	// independently; a disabled phase returns a skipped, passing Result.
	EnablePreValidation  bool
	EnablePostValidation bool
	// EnableAutoRecovery lets failing stages run their recovery.
	EnableAutoRecovery bool
	// MaxRecoveryAttempts bounds recovery applications per failing stage.
	MaxRecoveryAttempts int
	// FailFast stops the pipeline at the first unresolved stage failure.
	FailFast bool
	// ReportingLevel filters the aggregated Warnings list: warnings are
	// dropped when the level is above SeverityWarning.
	ReportingLevel geomerr.Severity
	// DefaultThickness is substituted by consistency recovery for an
	// invalid wall thickness.
	DefaultThickness float64
	// Detector supplies the tolerances stages share with the edge-case
	// detector (numerical precision, coincident-point tolerance).
	Detector edgecase.Options
}

// DefaultOptions enables both phases and auto-recovery with production
// bounds.
func DefaultOptions() Options {
	return Options{
		EnablePreValidation:  true,
		EnablePostValidation: true,
		EnableAutoRecovery:   true,
		MaxRecoveryAttempts:  3,
		FailFast:             false,
		ReportingLevel:       geomerr.SeverityWarning,
		DefaultThickness:     0.2,
		Detector:             edgecase.DefaultOptions(),
	}
}

// Result is the aggregated outcome of one Execute invocation.
type Result struct {
	// Passed is the conjunction of all stage outcomes after recovery.
	Passed bool
	// Skipped marks a phase disabled by configuration.
	Skipped bool
	// Operation and Phase echo the invocation context.
	Operation string
	Phase     Phase
	// Entity is the final (possibly recovered) entity. Callers must use
	// this value, not the one they passed in.
	Entity geom.Entity
	// StageResults maps stage name → result; a recovered stage also has
	// its re-validation under name+RecoveredSuffix.
	StageResults map[string]StageResult
	// Errors are the unresolved stage errors.
	Errors []*geomerr.GeometricError
	// Warnings aggregates stage warnings, subject to ReportingLevel.
	Warnings []string
	// Metrics is the pessimistic per-metric aggregate across stages.
	Metrics geom.QualityMetrics
	// RecommendedActions lists the deduplicated suggested fixes of the
	// unresolved errors.
	RecommendedActions []string
	ProcessingTime     time.Duration
}
