// Package recovery orchestrates session-based automatic repair of a
// geometric entity's classified errors: it prioritizes errors by
// severity, maps each error kind to a named strategy, and applies
// strategies under session-wide attempt and quality budgets, recording a
// full history.
//
// 🚀 Lifecycle of a session:
//
//	AttemptRecovery creates a fresh Session, walks the errors
//	critical-damage-first, and applies at most MaxRecoveryAttempts
//	strategies across the whole session (not per error). A session is
//	marked complete when no further errors remain, when the attempt or
//	quality budget is hit, or when recovery is disabled — and is never
//	reused across calls.
//
// ✨ Invariants:
//
//   - TotalQualityImpact is exactly the sum of the successful attempts'
//     impacts
//   - Critical or explicitly non-recoverable errors are skipped entirely
//     and force RequiresUserIntervention
//   - A single application with impact above the review threshold flags
//     RequiresUserReview on its attempt record
//   - Exceeding QualityThreshold halts further attempts even when the
//     attempt budget remains
//   - A panicking strategy degrades to a failed attempt; the session
//     continues
//
// Recommendations is the read-only companion: it previews what
// AttemptRecovery would do, ranked by confidence, without mutating
// anything.
//
// Sessions are self-contained values. Each concurrent task owns its own
// session; nothing in this package touches shared state.
package recovery
