// Package fallback - the priority-walk engine.
package fallback

import (
	"fmt"
	"math"
	"time"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// gracefulDegradationQuality is the declared retained quality of the
// last-resort union; it bypasses the acceptance threshold.
const gracefulDegradationQuality = 0.2

// Engine walks a registry best-first to rescue failed operations. An
// Engine is stateless between calls and safe for concurrent use.
type Engine struct {
	opts     Options
	registry *Registry
}

// NewEngine builds an engine over the given registry; a nil registry
// gets the built-in ladders.
func NewEngine(opts Options, registry *Registry) *Engine {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if opts.MaxFallbackAttempts <= 0 {
		opts.MaxFallbackAttempts = DefaultOptions().MaxFallbackAttempts
	}
	if opts.Notify == nil {
		opts.Notify = zapNotify()
	}
	return &Engine{opts: opts, registry: registry}
}

// Registry exposes the engine's registry for add/remove of strategies.
func (e *Engine) Registry() *Registry { return e.registry }

// ExecuteOffsetFallback rescues a failed baseline offset.
func (e *Engine) ExecuteOffsetFallback(c *geom.Curve, distance float64, join geom.JoinType, cause *geomerr.GeometricError) Result {
	return e.execute(Input{
		Operation: OpOffset,
		Err:       cause,
		Curve:     c,
		Distance:  distance,
		Join:      join,
	})
}

// ExecuteBooleanFallback rescues a failed polygon boolean.
func (e *Engine) ExecuteBooleanFallback(polys []geom.Polygon, op geom.BooleanOp, cause *geomerr.GeometricError) Result {
	return e.execute(Input{
		Operation: OpBoolean,
		Err:       cause,
		Polygons:  polys,
		BoolOp:    op,
	})
}

// ExecuteIntersectionFallback rescues a failed wall-junction
// resolution. Unlike the other two entry points it cannot fail while
// the inputs admit a basic union: exhaustion falls through to the
// graceful-degradation path.
func (e *Engine) ExecuteIntersectionFallback(solids []*geom.WallSolid, cause *geomerr.GeometricError) Result {
	return e.execute(Input{
		Operation: OpIntersection,
		Err:       cause,
		Solids:    solids,
	})
}

// execute is the shared priority walk.
func (e *Engine) execute(in Input) Result {
	candidates := make([]Strategy, 0)
	for _, s := range e.registry.Snapshot() {
		if s.CanHandle(in) {
			candidates = append(candidates, s)
		}
	}

	attempted := make(map[string]bool, len(candidates))
	for round := 0; round < e.opts.MaxFallbackAttempts; round++ {
		for _, s := range candidates {
			if attempted[s.Name()] {
				continue
			}
			attempted[s.Name()] = true

			res, err := e.tryStrategy(s, in)
			if err != nil || !res.Success {
				continue
			}
			if res.QualityImpact < e.opts.QualityThreshold {
				continue
			}
			return e.accept(in, res)
		}
	}

	if in.Operation == OpIntersection {
		return e.gracefulDegradation(in)
	}
	return e.exhausted(in)
}

// tryStrategy contains strategy panics; a panicking strategy reads as a
// failed attempt.
func (e *Engine) tryStrategy(s Strategy, in Input) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = fmt.Errorf("fallback: strategy %s aborted: %v", s.Name(), r)
		}
	}()
	return s.Execute(in)
}

// accept stamps a successful fallback result and notifies the caller.
func (e *Engine) accept(in Input, res Result) Result {
	res.FallbackUsed = true
	res.Warnings = append(res.Warnings, fmt.Sprintf(
		"Fallback method %s used; approximately %.0f%% quality loss",
		res.OperationType, (1-res.QualityImpact)*100))

	e.opts.Notify(Notification{
		Operation:     in.Operation,
		OriginalError: causeText(in),
		Method:        res.OperationType,
		QualityImpact: res.QualityImpact,
		Guidance: fmt.Sprintf(
			"The %s operation was completed with the %s fallback at reduced fidelity; review the result before committing.",
			in.Operation, res.OperationType),
		CanRetry:     true,
		Alternatives: manualAlternatives(in.Operation),
		Timestamp:    time.Now().UTC(),
	})
	return res
}

// gracefulDegradation is the unconditional intersection floor: simplify
// every wall's footprint and merge them with a basic union. It is not
// part of the registry loop and ignores the quality threshold. Only a
// failing union turns it into a reported failure.
func (e *Engine) gracefulDegradation(in Input) Result {
	var footprints []geom.Polygon
	for _, s := range in.Solids {
		b := s.Baseline()
		if b == nil || len(b.Points) < 2 {
			continue
		}
		simplified, err := geom.Simplify(b, defaultTolerance)
		if err != nil {
			continue
		}
		half := math.Max(s.Thickness()/2, defaultTolerance)
		envs, err := geom.SegmentEnvelopes(simplified, half)
		if err != nil {
			continue
		}
		footprints = append(footprints, envs...)
	}

	merged, err := geom.BasicUnion(footprints)
	if err != nil {
		e.opts.Notify(Notification{
			Operation:     in.Operation,
			OriginalError: causeText(in),
			Method:        "none_successful",
			Guidance:      "All fallback strategies and graceful degradation failed; resolve the junction manually.",
			CanRetry:      false,
			Alternatives:  manualAlternatives(in.Operation),
			Timestamp:     time.Now().UTC(),
		})
		return Result{
			Success:         false,
			OperationType:   "none_successful",
			Warnings:        []string{fmt.Sprintf("graceful degradation failed: %v", err)},
			RequiresHealing: false,
		}
	}

	res := Result{
		Success:       true,
		OperationType: "graceful_degradation_union",
		Polygons:      []geom.Polygon{merged},
		QualityImpact: gracefulDegradationQuality,
		FallbackUsed:  true,
		Warnings: []string{
			"Graceful degradation applied: junction replaced by a basic union of simplified wall footprints",
		},
		RequiresHealing: true,
	}
	e.opts.Notify(Notification{
		Operation:     in.Operation,
		OriginalError: causeText(in),
		Method:        res.OperationType,
		QualityImpact: res.QualityImpact,
		Guidance:      "Junction resolved by graceful degradation; the result requires healing and manual review.",
		CanRetry:      true,
		Alternatives:  manualAlternatives(in.Operation),
		Timestamp:     time.Now().UTC(),
	})
	return res
}

// exhausted reports terminal failure for offset and boolean rescues.
func (e *Engine) exhausted(in Input) Result {
	e.opts.Notify(Notification{
		Operation:     in.Operation,
		OriginalError: causeText(in),
		Method:        "none_successful",
		Guidance:      fmt.Sprintf("No fallback strategy produced an acceptable %s result; adjust the input geometry.", in.Operation),
		CanRetry:      false,
		Alternatives:  manualAlternatives(in.Operation),
		Timestamp:     time.Now().UTC(),
	})
	return Result{
		Success:       false,
		OperationType: "none_successful",
		Warnings:      []string{fmt.Sprintf("all %s fallback strategies exhausted", in.Operation)},
	}
}

func causeText(in Input) string {
	if in.Err == nil {
		return ""
	}
	return in.Err.Error()
}

// manualAlternatives lists operation-specific manual escapes for the
// notification record.
func manualAlternatives(op Operation) []string {
	switch op {
	case OpOffset:
		return []string{
			"Simplify the baseline by hand and retry",
			"Reduce the wall thickness",
			"Switch the join style to bevel",
		}
	case OpBoolean:
		return []string{
			"Run the boolean pairwise on fewer operands",
			"Repair or simplify the operand polygons first",
		}
	case OpIntersection:
		return []string{
			"Move the wall endpoints until the baselines cross",
			"Resolve the junction manually in the editor",
		}
	default:
		return nil
	}
}
