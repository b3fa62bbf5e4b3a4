// Package recovery - the session orchestrator.
package recovery

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// System applies recovery strategies under the configured budgets. A
// System is stateless between calls and safe for concurrent use.
type System struct {
	opts Options
}

// NewSystem builds a recovery system.
func NewSystem(opts Options) *System {
	return &System{opts: opts}
}

// AttemptRecovery runs a fresh session over the entity's errors with a
// generated session ID.
func (s *System) AttemptRecovery(e geom.Entity, errs []*geomerr.GeometricError) Session {
	return s.AttemptRecoveryWithID(e, errs, uuid.NewString())
}

// AttemptRecoveryWithID runs a fresh session under a caller-supplied ID.
//
// Errors are processed critical-first. Critical or non-recoverable
// errors are skipped entirely and force RequiresUserIntervention. At
// most MaxRecoveryAttempts strategies are applied across the whole
// session; exceeding QualityThreshold halts further attempts.
func (s *System) AttemptRecoveryWithID(e geom.Entity, errs []*geomerr.GeometricError, id string) Session {
	session := Session{
		ID:        id,
		StartTime: time.Now().UTC(),
		Current:   e,
	}
	if s.opts.PreserveOriginalData {
		session.Original = e
	}

	if !s.opts.EnableAutoRecovery || s.opts.RequireUserConfirmation {
		session.Complete = true
		session.RequiresUserIntervention = true
		return session
	}

	ordered := append([]*geomerr.GeometricError(nil), errs...)
	geomerr.SortBySeverity(ordered)

	attempts := 0
	for _, ge := range ordered {
		if ge.Severity == geomerr.SeverityCritical || !ge.Recoverable {
			session.RequiresUserIntervention = true
			continue
		}
		if attempts >= s.opts.MaxRecoveryAttempts {
			session.RequiresUserIntervention = true
			break
		}

		strat, ok := s.strategyFor(ge.Kind)
		if !ok {
			session.RequiresUserIntervention = true
			continue
		}

		attempt := s.apply(strat, session.Current, ge)
		attempts++
		session = session.withAttempt(attempt)
		if !attempt.Success {
			session.RequiresUserIntervention = true
		}

		if session.TotalQualityImpact > s.opts.QualityThreshold {
			session.RequiresUserIntervention = true
			break
		}
	}

	session.Complete = true
	return session
}

// Recommendations previews, without mutating anything, the strategies
// AttemptRecovery would try, ranked by confidence descending.
func (s *System) Recommendations(e geom.Entity, errs []*geomerr.GeometricError) []Recommendation {
	_ = e // reserved for entity-sensitive confidence tuning
	out := make([]Recommendation, 0, len(errs))
	for _, ge := range errs {
		if ge.Severity == geomerr.SeverityCritical || !ge.Recoverable {
			out = append(out, Recommendation{
				Kind:              ge.Kind,
				RequiresUserInput: true,
				Description:       fmt.Sprintf("%s requires manual intervention: %s", ge.Kind, ge.Message),
			})
			continue
		}
		strat, ok := s.strategyFor(ge.Kind)
		if !ok {
			out = append(out, Recommendation{
				Kind:              ge.Kind,
				RequiresUserInput: true,
				Description:       fmt.Sprintf("no automatic strategy handles %s", ge.Kind),
			})
			continue
		}
		out = append(out, Recommendation{
			Strategy:               strat.name,
			Kind:                   ge.Kind,
			Confidence:             strat.confidence,
			EstimatedQualityImpact: strat.estImpact,
			RequiresUserInput:      strat.estImpact > reviewImpactThreshold,
			Description:            strat.description,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}

// strategyFor is the fixed mapping from error kind to strategy. Kinds
// without a dedicated strategy fall through to fallback reconstruction
// when FallbackToSimplification is enabled.
func (s *System) strategyFor(kind geomerr.Kind) (strategy, bool) {
	switch kind {
	case geomerr.DegenerateGeometry:
		return stratDegenerateGeometry, true
	case geomerr.SelfIntersection:
		return stratSelfIntersection, true
	case geomerr.NumericalInstability:
		return stratNumericalStability, true
	case geomerr.TopologyError:
		return stratTopologyRepair, true
	case geomerr.DuplicateVertices:
		return stratDuplicateVertexRemoval, true
	case geomerr.ComplexityExceeded, geomerr.ToleranceExceeded:
		return stratGeometricSimplification, true
	default:
		if s.opts.FallbackToSimplification {
			return stratFallbackReconstruction, true
		}
		return strategy{}, false
	}
}

// apply executes one strategy defensively: a panicking or erroring
// strategy degrades to a failed attempt and the session search
// continues.
func (s *System) apply(strat strategy, e geom.Entity, ge *geomerr.GeometricError) (attempt AttemptResult) {
	attempt = AttemptResult{Strategy: strat.name, Kind: ge.Kind}
	defer func() {
		if r := recover(); r != nil {
			attempt.Success = false
			attempt.Entity = nil
			attempt.Warnings = append(attempt.Warnings, fmt.Sprintf("strategy %s aborted: %v", strat.name, r))
		}
	}()

	recovered, impact, warnings, err := strat.apply(e, ge)
	attempt.QualityImpact = impact
	attempt.Warnings = warnings
	if err != nil {
		attempt.Warnings = append(attempt.Warnings, fmt.Sprintf("strategy %s failed: %v", strat.name, err))
		return attempt
	}

	attempt.Success = true
	attempt.Entity = recovered
	attempt.RequiresUserReview = impact > reviewImpactThreshold
	return attempt
}
