// Package geomerr defines the typed error taxonomy for the geometric
// integrity layer: every defect, failed operation, and validation finding
// is represented as a GeometricError value with a kind, an ordered
// severity, a recoverability flag, and a suggested remediation.
//
// 🚀 What is a GeometricError?
//
//	An immutable value, not an exception: orchestrators inspect it, sort
//	it, and route it to recovery — they never rely on panics for expected
//	failure paths. A GeometricError also satisfies the error interface,
//	so it can propagate to callers unchanged.
//
// ✨ Key decisions:
//
//   - One ordered severity scale — Warning < Error < Critical. (The
//     historical low/medium/high vocabulary is gone; all call sites map
//     onto this single scale.)
//   - A kind discriminant (~15 tags) with optional kind-specific payloads
//     (offset distance + join, tolerance current/required, boolean
//     operation + input count, self-intersection points + segments).
//   - Critical severity implies "never auto-recover": the recovery
//     orchestrators skip such errors and force user intervention.
//   - JSON round-trips every field, payloads included.
//
// ⚙️ Usage:
//
//	err := geomerr.NewOffsetError("miter join exploded", 12.5, geom.MiterJoin)
//	if err.Recoverable {
//	  // hand to recovery
//	}
//
// Construction is pure value construction: no side effects, no globals.
package geomerr
