// Package fallback - the built-in strategy ladders.
//
// Each operation gets several layered strategies, ordered by decreasing
// priority and increasing risk tolerance: the first rung stays close to
// the original request, the last fabricates the crudest result that is
// still usable. All strategies are stateless values.
package fallback

import (
	"fmt"
	"math"

	"github.com/goodwillp/wallmend/geom"
)

// Working tolerances for the built-in ladders. Input.Tolerance, when
// positive, overrides defaultTolerance.
const (
	defaultTolerance = 1e-6
	precisionGrid    = 1e-4
)

// builtin is the shared shape of the built-in strategies.
type builtin struct {
	name     string
	priority int
	quality  float64
	op       Operation
	run      func(in Input) (Result, error)
}

func (b builtin) Name() string           { return b.name }
func (b builtin) Priority() int          { return b.priority }
func (b builtin) QualityImpact() float64 { return b.quality }

func (b builtin) CanHandle(in Input) bool {
	if in.Operation != b.op {
		return false
	}
	switch b.op {
	case OpOffset:
		return in.Curve != nil && len(in.Curve.Points) >= 2
	case OpBoolean:
		return len(in.Polygons) > 0
	case OpIntersection:
		return len(in.Solids) >= 2
	default:
		return false
	}
}

func (b builtin) Execute(in Input) (Result, error) {
	if !b.CanHandle(in) {
		return Result{}, ErrNotApplicable
	}
	res, err := b.run(in)
	if err != nil {
		return Result{}, err
	}
	res.Success = true
	res.OperationType = b.name
	res.QualityImpact = b.quality
	return res, nil
}

func tolerance(in Input) float64 {
	if in.Tolerance > 0 {
		return in.Tolerance
	}
	return defaultTolerance
}

// ── Offset ladder ─────────────────────────────────────────────────────

// offsetSimplified reattempts the offset on a Douglas-Peucker
// simplified baseline, producing both wall faces.
var offsetSimplified = builtin{
	name:     "offset_simplified",
	priority: 100,
	quality:  0.8,
	op:       OpOffset,
	run: func(in Input) (Result, error) {
		bb := in.Curve.BoundingBox()
		tol := math.Max(tolerance(in), 0.002*math.Hypot(bb.Width(), bb.Height()))
		base, err := geom.Simplify(in.Curve, tol)
		if err != nil {
			return Result{}, err
		}
		left, err := geom.NaiveOffset(base, in.Distance)
		if err != nil {
			return Result{}, err
		}
		right, err := geom.NaiveOffset(base, -in.Distance)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Curves:   []*geom.Curve{left, right},
			Warnings: []string{fmt.Sprintf("offset computed on a simplified baseline (tolerance %g)", tol)},
		}, nil
	},
}

// offsetReducedPrecision snaps the baseline to a coarse grid before
// offsetting, trading positional accuracy for numerical headroom.
var offsetReducedPrecision = builtin{
	name:     "offset_reduced_precision",
	priority: 80,
	quality:  0.7,
	op:       OpOffset,
	run: func(in Input) (Result, error) {
		snapped := geom.SnapToGrid(in.Curve, precisionGrid)
		deduped, _ := geom.DedupeAllPoints(snapped.Points, tolerance(in))
		if len(deduped) < 2 {
			return Result{}, geom.ErrTooFewPoints
		}
		base := geom.NewCurve(deduped, snapped.Closed)
		left, err := geom.NaiveOffset(base, in.Distance)
		if err != nil {
			return Result{}, err
		}
		right, err := geom.NaiveOffset(base, -in.Distance)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Curves:   []*geom.Curve{left, right},
			Warnings: []string{fmt.Sprintf("offset computed at reduced precision (grid %g)", precisionGrid)},
		}, nil
	},
}

// offsetSegmented emits one independent envelope rectangle per baseline
// segment, leaving joins unresolved.
var offsetSegmented = builtin{
	name:     "offset_segmented",
	priority: 60,
	quality:  0.5,
	op:       OpOffset,
	run: func(in Input) (Result, error) {
		polys, err := geom.SegmentEnvelopes(in.Curve, math.Abs(in.Distance))
		if err != nil {
			return Result{}, err
		}
		return Result{
			Polygons: polys,
			Warnings: []string{"offset approximated by per-segment envelopes; joins unresolved"},
		}, nil
	},
}

// offsetBasicPolygon covers the baseline's bounding box expanded by the
// offset distance. Crude, but it cannot fail on a finite baseline.
var offsetBasicPolygon = builtin{
	name:     "offset_basic_polygon",
	priority: 40,
	quality:  0.3,
	op:       OpOffset,
	run: func(in Input) (Result, error) {
		d := math.Abs(in.Distance)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return Result{}, geom.ErrBadDistance
		}
		poly := in.Curve.BoundingBox().Expand(d).ToPolygon()
		return Result{
			Polygons: []geom.Polygon{poly},
			Warnings: []string{"offset approximated by an expanded bounding rectangle"},
		}, nil
	},
}

// ── Boolean ladder ────────────────────────────────────────────────────

// booleanSimplified retries the boolean on deduplicated operands, with
// op-specific approximations.
var booleanSimplified = builtin{
	name:     "boolean_simplified",
	priority: 100,
	quality:  0.8,
	op:       OpBoolean,
	run: func(in Input) (Result, error) {
		tol := tolerance(in)
		operands := make([]geom.Polygon, 0, len(in.Polygons))
		for _, p := range in.Polygons {
			kept, _ := geom.DedupePoints(p.Vertices, tol)
			if len(kept) < 3 {
				return Result{}, geom.ErrHullTooSmall
			}
			operands = append(operands, geom.Polygon{Vertices: kept})
		}
		switch in.BoolOp {
		case geom.Union:
			merged, err := geom.BasicUnion(operands)
			if err != nil {
				return Result{}, err
			}
			return Result{
				Polygons: []geom.Polygon{merged},
				Warnings: []string{"union approximated by the convex hull of all operands"},
			}, nil
		case geom.IntersectOp:
			overlap, ok := bboxOverlap(operands)
			if !ok {
				return Result{}, ErrNotApplicable
			}
			return Result{
				Polygons: []geom.Polygon{overlap},
				Warnings: []string{"intersection approximated by the bounding-box overlap"},
			}, nil
		case geom.Difference:
			// conservative over-approximation: keep the minuend
			return Result{
				Polygons: []geom.Polygon{operands[0].Clone()},
				Warnings: []string{"difference approximated by the unmodified first operand"},
			}, nil
		default:
			return Result{}, ErrNotApplicable
		}
	},
}

// booleanReducedPrecision snaps every vertex to a coarse grid and hulls
// the result regardless of the requested operation.
var booleanReducedPrecision = builtin{
	name:     "boolean_reduced_precision",
	priority: 80,
	quality:  0.6,
	op:       OpBoolean,
	run: func(in Input) (Result, error) {
		var pts []geom.Point
		for _, p := range in.Polygons {
			snapped := geom.SnapToGrid(geom.NewCurve(p.Vertices, true), precisionGrid)
			pts = append(pts, snapped.Points...)
		}
		hull, err := geom.ConvexHull(pts)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Polygons: []geom.Polygon{hull},
			Warnings: []string{fmt.Sprintf("%v approximated by a reduced-precision hull", in.BoolOp)},
		}, nil
	},
}

// booleanBBox covers all operands with a single axis-aligned rectangle.
var booleanBBox = builtin{
	name:     "boolean_bbox",
	priority: 40,
	quality:  0.3,
	op:       OpBoolean,
	run: func(in Input) (Result, error) {
		bb, ok := jointBBox(in.Polygons)
		if !ok {
			return Result{}, ErrNotApplicable
		}
		return Result{
			Polygons: []geom.Polygon{bb.ToPolygon()},
			Warnings: []string{fmt.Sprintf("%v approximated by the joint bounding rectangle", in.BoolOp)},
		}, nil
	},
}

// ── Intersection ladder ───────────────────────────────────────────────

// intersectionSimplified crosses the simplified baselines pairwise and
// reports the exact crossing points.
var intersectionSimplified = builtin{
	name:     "intersection_simplified",
	priority: 100,
	quality:  0.7,
	op:       OpIntersection,
	run: func(in Input) (Result, error) {
		tol := tolerance(in)
		baselines := make([]*geom.Curve, 0, len(in.Solids))
		for _, s := range in.Solids {
			b := s.Baseline()
			if b == nil || len(b.Points) < 2 {
				return Result{}, geom.ErrTooFewPoints
			}
			simplified, err := geom.Simplify(b, tol)
			if err != nil {
				return Result{}, err
			}
			baselines = append(baselines, simplified)
		}
		pts := crossings(baselines, geom.Eps)
		if len(pts) == 0 {
			return Result{}, ErrNotApplicable
		}
		return Result{
			Points:   pts,
			Warnings: []string{fmt.Sprintf("junctions resolved on simplified baselines (%d crossing(s))", len(pts))},
		}, nil
	},
}

// intersectionToleranceExpanded treats near-miss point pairs across
// baselines as junctions, at ten times the working tolerance.
var intersectionToleranceExpanded = builtin{
	name:     "intersection_tolerance_expanded",
	priority: 80,
	quality:  0.6,
	op:       OpIntersection,
	run: func(in Input) (Result, error) {
		reach := 10 * tolerance(in)
		var pts []geom.Point
		for i := 0; i < len(in.Solids); i++ {
			for j := i + 1; j < len(in.Solids); j++ {
				a, b := in.Solids[i].Baseline(), in.Solids[j].Baseline()
				if a == nil || b == nil {
					continue
				}
				for _, pa := range a.Points {
					for _, pb := range b.Points {
						if geom.Dist(pa, pb) <= reach {
							pts = append(pts, midpoint(pa, pb))
						}
					}
				}
			}
		}
		if len(pts) == 0 {
			return Result{}, ErrNotApplicable
		}
		deduped, _ := geom.DedupeAllPoints(pts, reach)
		return Result{
			Points:   deduped,
			Warnings: []string{fmt.Sprintf("junctions resolved with expanded tolerance %g", reach)},
		}, nil
	},
}

// intersectionNearestPoint declares a junction at the midpoint of the
// globally nearest point pair. Total for any two non-empty baselines.
var intersectionNearestPoint = builtin{
	name:     "intersection_nearest_point",
	priority: 60,
	quality:  0.4,
	op:       OpIntersection,
	run: func(in Input) (Result, error) {
		a, b := in.Solids[0].Baseline(), in.Solids[1].Baseline()
		if a == nil || b == nil || len(a.Points) == 0 || len(b.Points) == 0 {
			return Result{}, geom.ErrNilCurve
		}
		best := math.Inf(1)
		var pa, pb geom.Point
		for _, p := range a.Points {
			for _, q := range b.Points {
				if d := geom.Dist2(p, q); d < best {
					best = d
					pa, pb = p, q
				}
			}
		}
		if math.IsInf(best, 1) || math.IsNaN(best) {
			return Result{}, ErrNotApplicable
		}
		return Result{
			Points:   []geom.Point{midpoint(pa, pb)},
			Warnings: []string{fmt.Sprintf("junction snapped to the nearest point pair (gap %g)", math.Sqrt(best))},
		}, nil
	},
}

// DefaultRegistry returns a registry loaded with all built-in ladders.
func DefaultRegistry() *Registry {
	return NewRegistry(
		offsetSimplified, offsetReducedPrecision, offsetSegmented, offsetBasicPolygon,
		booleanSimplified, booleanReducedPrecision, booleanBBox,
		intersectionSimplified, intersectionToleranceExpanded, intersectionNearestPoint,
	)
}

// crossings collects the pairwise segment intersections between all
// distinct baseline pairs.
func crossings(curves []*geom.Curve, eps float64) []geom.Point {
	var out []geom.Point
	for i := 0; i < len(curves); i++ {
		for j := i + 1; j < len(curves); j++ {
			a, b := curves[i], curves[j]
			for si := 0; si < a.SegmentCount(); si++ {
				a1, a2 := a.Segment(si)
				for sj := 0; sj < b.SegmentCount(); sj++ {
					b1, b2 := b.Segment(sj)
					if p, ok := geom.SegmentIntersection(a1, a2, b1, b2, eps); ok {
						out = append(out, p)
					}
				}
			}
		}
	}
	return out
}

func midpoint(a, b geom.Point) geom.Point {
	return geom.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// bboxOverlap intersects the operand bounding boxes; ok is false when
// they do not overlap.
func bboxOverlap(polys []geom.Polygon) (geom.Polygon, bool) {
	bb, ok := jointOverlap(polys)
	if !ok {
		return geom.Polygon{}, false
	}
	return bb.ToPolygon(), true
}

func jointOverlap(polys []geom.Polygon) (geom.BBox, bool) {
	if len(polys) == 0 {
		return geom.BBox{}, false
	}
	bb, ok := polyBBox(polys[0])
	if !ok {
		return geom.BBox{}, false
	}
	for _, p := range polys[1:] {
		other, ok := polyBBox(p)
		if !ok {
			return geom.BBox{}, false
		}
		bb.MinX = math.Max(bb.MinX, other.MinX)
		bb.MinY = math.Max(bb.MinY, other.MinY)
		bb.MaxX = math.Min(bb.MaxX, other.MaxX)
		bb.MaxY = math.Min(bb.MaxY, other.MaxY)
		if bb.MinX >= bb.MaxX || bb.MinY >= bb.MaxY {
			return geom.BBox{}, false
		}
	}
	return bb, true
}

func jointBBox(polys []geom.Polygon) (geom.BBox, bool) {
	var pts []geom.Point
	for _, p := range polys {
		pts = append(pts, p.Vertices...)
	}
	if len(pts) == 0 {
		return geom.BBox{}, false
	}
	bb, ok := polyBBox(geom.Polygon{Vertices: pts})
	return bb, ok
}

func polyBBox(p geom.Polygon) (geom.BBox, bool) {
	if len(p.Vertices) == 0 {
		return geom.BBox{}, false
	}
	bb := geom.BBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, v := range p.Vertices {
		bb.MinX = math.Min(bb.MinX, v.X)
		bb.MinY = math.Min(bb.MinY, v.Y)
		bb.MaxX = math.Max(bb.MaxX, v.X)
		bb.MaxY = math.Max(bb.MaxY, v.Y)
	}
	return bb, true
}
