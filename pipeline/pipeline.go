// Package pipeline - the Execute orchestrator.
package pipeline

import (
	"fmt"
	"time"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// Pipeline runs the fixed stage order against entities. Stateless across
// invocations; safe for concurrent Execute calls on independent entities.
type Pipeline struct {
	opts   Options
	stages []Stage
}

// New builds a pipeline with the five standard stages.
func New(opts Options) *Pipeline {
	return &Pipeline{
		opts: opts,
		stages: []Stage{
			&consistencyStage{opts: opts},
			&topologyStage{opts: opts},
			&stabilityStage{},
			&qualityStage{},
			&performanceStage{},
		},
	}
}

// NewWithStages builds a pipeline over a custom stage sequence. Intended
// for callers extending the standard order with domain stages.
func NewWithStages(opts Options, stages ...Stage) *Pipeline {
	return &Pipeline{opts: opts, stages: stages}
}

// Execute validates the entity for the given phase. A phase disabled by
// configuration yields a skipped, passing result. The returned Entity is
// the post-recovery value and must replace the caller's reference.
func (p *Pipeline) Execute(e geom.Entity, operation string, phase Phase) Result {
	start := time.Now()
	res := Result{
		Passed:       true,
		Operation:    operation,
		Phase:        phase,
		Entity:       e,
		StageResults: make(map[string]StageResult),
		Metrics:      geom.PerfectMetrics(),
	}

	if (phase == PhasePre && !p.opts.EnablePreValidation) ||
		(phase == PhasePost && !p.opts.EnablePostValidation) {
		res.Skipped = true
		return res
	}

	cur := e
	for _, st := range p.stages {
		run := RunInfo{Operation: operation, Phase: phase, Elapsed: time.Since(start)}
		sr := p.runStage(st, cur, run)
		resolved := sr.Passed

		if !resolved && p.opts.EnableAutoRecovery {
			if rs, ok := st.(RecoverableStage); ok && hasRecoverable(sr.Errors) {
				cur, resolved = p.recoverStage(rs, cur, run, sr, &res)
			}
		}

		res.StageResults[st.Name()] = sr
		res.Metrics = res.Metrics.WorstOf(sr.Metrics)
		if p.opts.ReportingLevel <= geomerr.SeverityWarning {
			res.Warnings = append(res.Warnings, sr.Warnings...)
		}

		if !resolved {
			res.Passed = false
			for _, ge := range sr.Errors {
				if ge.Severity >= geomerr.SeverityError {
					res.Errors = append(res.Errors, ge)
				}
			}
			if p.opts.FailFast {
				break
			}
		}
	}

	res.Entity = cur
	res.RecommendedActions = recommendedActions(res.Errors)
	res.ProcessingTime = time.Since(start)
	return res
}

// recoverStage loops stage recovery until the stage re-passes or the
// attempt budget is exhausted. On success it records the re-validation
// under the distinguishable key and returns the recovered entity.
func (p *Pipeline) recoverStage(rs RecoverableStage, e geom.Entity, run RunInfo, failing StageResult, res *Result) (geom.Entity, bool) {
	cur := e
	for attempt := 0; attempt < p.opts.MaxRecoveryAttempts; attempt++ {
		out := p.runRecovery(rs, cur, failing.Errors)
		if out.Entity != nil {
			cur = out.Entity
		}
		if p.opts.ReportingLevel <= geomerr.SeverityWarning {
			res.Warnings = append(res.Warnings, out.Warnings...)
		}
		if !out.Success {
			continue
		}
		recheck := p.runStage(rs, cur, run)
		if recheck.Passed {
			res.StageResults[rs.Name()+RecoveredSuffix] = recheck
			res.Metrics = res.Metrics.WorstOf(recheck.Metrics)
			return cur, true
		}
		failing = recheck
	}
	return cur, false
}

// runStage executes one stage, converting a panic into a synthetic
// critical, non-recoverable validation failure for that stage.
func (p *Pipeline) runStage(st Stage, e geom.Entity, run RunInfo) (sr StageResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			sr = StageResult{
				StageName: st.Name(),
				Passed:    false,
				Errors: []*geomerr.GeometricError{geomerr.New(
					geomerr.ValidationFailure,
					fmt.Sprintf("stage %s aborted: %v", st.Name(), r),
					geomerr.WithSeverity(geomerr.SeverityCritical),
					geomerr.WithOperation(run.Operation),
					geomerr.WithFix("Inspect the entity manually; the stage could not process it"),
				)},
				Metrics:        entityMetrics(e),
				ProcessingTime: time.Since(start),
			}
		}
	}()

	sr = st.Validate(e, run)
	sr.StageName = st.Name()
	sr.ProcessingTime = time.Since(start)
	return sr
}

// runRecovery executes stage recovery, degrading a panic to a failed
// outcome so a broken repair never aborts the pipeline.
func (p *Pipeline) runRecovery(rs RecoverableStage, e geom.Entity, errs []*geomerr.GeometricError) (out RecoveryOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = RecoveryOutcome{
				Warnings: []string{fmt.Sprintf("recovery for stage %s aborted: %v", rs.Name(), r)},
			}
		}
	}()
	return rs.Recover(e, errs)
}

// hasRecoverable reports whether any error is eligible for automatic
// recovery (explicitly recoverable and below critical).
func hasRecoverable(errs []*geomerr.GeometricError) bool {
	for _, ge := range errs {
		if ge.Recoverable && ge.Severity < geomerr.SeverityCritical {
			return true
		}
	}
	return false
}

// entityMetrics returns the entity's own snapshot, or a perfect one for
// entities without metrics.
func entityMetrics(e geom.Entity) geom.QualityMetrics {
	if mc, ok := e.(geom.MetricsCarrier); ok {
		return mc.Metrics()
	}
	return geom.PerfectMetrics()
}

// passFrom derives the pass flag: warnings never fail a stage.
func passFrom(errs []*geomerr.GeometricError) bool {
	for _, ge := range errs {
		if ge.Severity >= geomerr.SeverityError {
			return false
		}
	}
	return true
}

// recommendedActions collects the deduplicated suggested fixes of the
// unresolved errors, in first-seen order.
func recommendedActions(errs []*geomerr.GeometricError) []string {
	var out []string
	seen := make(map[string]bool)
	for _, ge := range errs {
		if ge.SuggestedFix == "" || seen[ge.SuggestedFix] {
			continue
		}
		seen[ge.SuggestedFix] = true
		out = append(out, ge.SuggestedFix)
	}
	return out
}
