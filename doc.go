// Package wallmend is the geometric integrity layer for wall-modeling
// engines: it inspects curves and wall solids produced by offset, boolean,
// and intersection operations, classifies their defects, and attempts
// staged, budgeted repair before surfacing an error to the caller.
//
// 🚀 What is wallmend?
//
//	A pure-Go, in-process library that brings together:
//		• A typed geometric error taxonomy with severities and suggested fixes
//		• An edge-case detector for degenerate, self-intersecting, and
//		  numerically fragile geometry
//		• A staged validation pipeline with per-stage automatic recovery
//		• A session-based recovery orchestrator with quality budgets
//		• A priority-ordered fallback registry for failed operations,
//		  including an unconditional graceful-degradation last resort
//
// ✨ Why choose wallmend?
//
//   - Deterministic – every detector, stage, and strategy is a pure function
//     of its input and options; safe to run in parallel across entities
//   - Budgeted – recovery never runs away: attempt ceilings and quality
//     thresholds bound every session
//   - Honest – strategies report explicit result values; exhaustion is a
//     normal, reported outcome, never a panic
//
// Under the hood, everything is organized under seven subpackages:
//
//	geom/     — Point, Curve, Polygon, WallSolid primitives & numeric helpers
//	geomerr/  — the GeometricError taxonomy, factories & serialization
//	edgecase/ — pure defect detectors over curves and wall solids
//	pipeline/ — the five-stage validation pipeline with stage recovery
//	recovery/ — session-based automatic recovery under quality budgets
//	fallback/ — ranked substitute computations for failed operations
//	config/   — YAML loading for every subsystem's options
//
// Quick ASCII example:
//
//	baseline ──► [pipeline] ──► pass? ──► done
//	                │ fail
//	                ▼
//	          [recovery session] ──► repaired / "needs user review"
//
//	offset op fails ──► [fallback registry] ──► substitute result
//
// Dive into each package's doc.go for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/goodwillp/wallmend
package wallmend
