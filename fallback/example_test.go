package fallback_test

import (
	"fmt"

	"github.com/goodwillp/wallmend/fallback"
	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEngine_ExecuteOffsetFallback
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A miter offset blew up on a jagged baseline. The engine walks the
//	built-in offset ladder best-first; the simplified rung succeeds and
//	returns both wall faces at 80% retained quality.
//
// Options:
//   - MaxFallbackAttempts = 3   (outer rounds)
//   - QualityThreshold    = 0.3 (minimum retained quality)
//   - Notify: custom sink       (default is a structured console warning)
//
// Use case:
//
//	Keeping wall generation responsive when the geometry provider's
//	offset fails on pathological input.
func ExampleEngine_ExecuteOffsetFallback() {
	opts := fallback.DefaultOptions()
	opts.Notify = func(n fallback.Notification) {
		fmt.Printf("notified: method=%s retry=%v\n", n.Method, n.CanRetry)
	}
	eng := fallback.NewEngine(opts, nil)

	baseline := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(8, 3), geom.Pt(12, 3),
	}, false)
	cause := geomerr.NewOffsetError("miter join exceeded limit", 0.1, geom.MiterJoin)

	res := eng.ExecuteOffsetFallback(baseline, 0.1, geom.MiterJoin, cause)
	fmt.Printf("success=%v method=%s faces=%d\n", res.Success, res.OperationType, len(res.Curves))
	// Output:
	// notified: method=offset_simplified retry=true
	// success=true method=offset_simplified faces=2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEngine_ExecuteIntersectionFallback
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Every ranked intersection strategy has been removed from the
//	registry, so the engine falls through to graceful degradation: the
//	wall footprints are simplified and merged with a basic union. The
//	result is always usable but flagged for healing.
func ExampleEngine_ExecuteIntersectionFallback() {
	opts := fallback.DefaultOptions()
	opts.Notify = func(fallback.Notification) {}
	eng := fallback.NewEngine(opts, fallback.NewRegistry())

	a := geom.NewWallSolid(geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}, false), 0.2)
	b := geom.NewWallSolid(geom.NewCurve([]geom.Point{geom.Pt(5, -5), geom.Pt(5, 5)}, false), 0.2)

	res := eng.ExecuteIntersectionFallback([]*geom.WallSolid{a, b}, nil)
	fmt.Printf("success=%v method=%s healing=%v\n", res.Success, res.OperationType, res.RequiresHealing)
	// Output:
	// success=true method=graceful_degradation_union healing=true
}
