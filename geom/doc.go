// Package geom defines the geometric primitives shared by every wallmend
// subsystem — points, curves, polygons, wall solids — plus the small set of
// numeric helpers (bounded segment intersection, vertex angles, signed
// area, convex hulls) the detectors and recovery strategies are built on.
//
// 🚀 What lives here?
//
//   - Point / Curve / Polygon / BBox value types with cached derived data
//   - WallSolid — the wall-modeling result: baseline, thickness, offset
//     curves, output polygons, intersection metadata, healing history, and
//     a quality-metrics snapshot
//   - Capability interfaces (Entity, ThicknessCarrier, PolygonCarrier,
//     MetricsCarrier, Healable) so validation stages bind to shape
//     contracts instead of concrete types
//   - Repair primitives: self-intersection removal, duplicate filtering,
//     short-segment filtering, coordinate clamping
//   - Simplification (Douglas–Peucker), naive offsets, convex hulls —
//     the building blocks of the fallback strategy ladders
//
// ⚙️ Ownership model:
//
//	Curves and wall solids are owned by exactly one task at a time. All
//	mutating operations are functional: they return a new value and never
//	touch the receiver, so a caller can always diff against the original.
//	Lazily cached fields (curve length, bounding box) make a *Curve unsafe
//	for concurrent first use by multiple goroutines; share only after the
//	caches are warm, or give each task its own Clone.
//
// Performance: every helper is a pure O(n) or O(n²) pass with no hidden
// allocations beyond its result.
package geom
