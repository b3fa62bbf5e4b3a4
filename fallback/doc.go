// Package fallback keeps geometric operations producing usable output
// when their primary implementation fails: a registry of prioritized
// alternative strategies, an engine that walks them best-first, and a
// graceful-degradation floor that trades fidelity for availability.
//
// 🚀 Resolution order for a failed operation:
//
//	highest-priority applicable strategy → … → lowest-priority
//	applicable strategy → graceful degradation (last resort) → failure
//
// Every strategy declares its retained-quality fraction (1 = lossless);
// the engine accepts the first successful result whose retained quality
// meets the configured threshold, stamps it FallbackUsed, and notifies
// the caller which method ran and what it cost. Graceful degradation is
// reported distinctly: its result is usable for display and export but
// is flagged RequiresHealing for follow-up repair.
//
// ✨ Contracts:
//
//   - Strategies are tried strictly by descending priority; ties keep
//     registration order
//   - A panicking strategy is contained and treated as a failed
//     attempt; the walk continues
//   - Exhausting every strategy and degradation produces a terminal
//     notification with CanRetry=false and actionable alternatives
//   - The registry is safe for concurrent mutation while the engine
//     executes; each execution walks an immutable snapshot
//
// Notifications go through a pluggable NotifyFunc; the default sink
// logs structured warnings.
package fallback
