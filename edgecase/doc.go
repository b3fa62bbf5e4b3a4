// Package edgecase scans raw curves and wall solids for geometric defects
// before they poison downstream offset and boolean operations.
//
// 🚀 What does it detect?
//
//   - Zero-length segments (consecutive points under MinSegmentLength)
//   - Degenerate geometry (<2 points, all-coincident, near-zero length)
//   - Self-intersections (bounded determinant test over segment pairs)
//   - Extreme vertex angles (interior angle outside the configured band)
//   - Coincident points anywhere on the curve, adjacency not required
//   - Micro segments (between MinSegmentLength and 10× that length)
//
// DetectWallSolid additionally scans the baseline and both offset curves,
// and flags a thickness below numerical precision as instability.
//
// ✨ Guarantees:
//
//   - Pure functions of (input, options): no shared state, safe to call
//     concurrently on independent curves
//   - Each check independently toggled by its Options flag
//   - NaN/Inf never raise: comparisons involving NaN are false, so broken
//     coordinates degrade to "no edge case" rather than to a panic. This
//     leniency is deliberate — the validation pipeline, not the detector,
//     is the place that fails hard.
//
// Complexity: O(n²) per curve, dominated by the pairwise checks.
package edgecase
