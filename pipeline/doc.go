// Package pipeline runs a geometric entity through an ordered set of
// named validation stages, orchestrating bounded per-stage recovery when
// a stage fails and automatic recovery is enabled.
//
// 🚀 Stage order (fixed):
//
//	geometric-consistency → topology → numerical-stability →
//	quality-metrics → performance
//
// Each stage validates the entity against its own invariants and returns
// a StageResult (pass/fail, typed errors, warnings, a partial quality
// snapshot, timing). Stages that know how to repair their failures also
// implement RecoverableStage; the pipeline re-validates after every
// recovery attempt and, when the stage then passes, records both the
// failing and the post-recovery result under distinguishable keys.
//
// ✨ Contracts:
//
//   - A stage failure is an error of SeverityError or worse; warnings
//     alone never fail a stage
//   - A panicking stage is converted into a synthetic critical,
//     non-recoverable ValidationFailure for that stage — it never
//     propagates
//   - FailFast stops at the first unresolved failure; otherwise all
//     stages run and overall success is the conjunction of stage
//     outcomes after recovery
//   - Stage recovery is budgeted: it is declared successful only when
//     its cumulative quality impact stays under the stage ceiling
//     (0.5 for consistency/topology, 0.3 for numerical stability) —
//     an over-budget repair still returns mutated data, flagged failed,
//     meaning "partial, inspect before trusting"
//   - The aggregated snapshot is pessimistic: each metric takes the
//     worst value observed across stages
//
// The pipeline itself is stateless across invocations; Execute is safe
// to call concurrently on independent entities.
package pipeline
