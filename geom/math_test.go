package geom_test

import (
	"math"
	"testing"

	"github.com/goodwillp/wallmend/geom"
	"github.com/stretchr/testify/assert"
)

// TestSegmentIntersection_Crossing verifies that two crossing segments
// report their intersection point with both parameters in range.
func TestSegmentIntersection_Crossing(t *testing.T) {
	at, ok := geom.SegmentIntersection(
		geom.Pt(0, 0), geom.Pt(10, 10),
		geom.Pt(10, 0), geom.Pt(0, 10),
		1e-10,
	)
	assert.True(t, ok, "diagonals of a square must cross")
	assert.InDelta(t, 5.0, at.X, 1e-9)
	assert.InDelta(t, 5.0, at.Y, 1e-9)
}

// TestSegmentIntersection_Parallel verifies the denominator guard:
// parallel segments never intersect, even when collinear and overlapping.
func TestSegmentIntersection_Parallel(t *testing.T) {
	_, ok := geom.SegmentIntersection(
		geom.Pt(0, 0), geom.Pt(10, 0),
		geom.Pt(0, 1), geom.Pt(10, 1),
		1e-10,
	)
	assert.False(t, ok, "parallel segments must not intersect")
}

// TestSegmentIntersection_OutOfRange verifies the [0,1] parameter bound:
// lines that cross outside the segments report no intersection.
func TestSegmentIntersection_OutOfRange(t *testing.T) {
	_, ok := geom.SegmentIntersection(
		geom.Pt(0, 0), geom.Pt(1, 1),
		geom.Pt(10, 0), geom.Pt(0, 10),
		1e-10,
	)
	assert.False(t, ok, "crossing beyond segment ends must not count")
}

// TestSegmentIntersection_NaN verifies lenient degradation: NaN input
// yields "no intersection" instead of a panic or a bogus hit.
func TestSegmentIntersection_NaN(t *testing.T) {
	_, ok := geom.SegmentIntersection(
		geom.Pt(math.NaN(), 0), geom.Pt(10, 10),
		geom.Pt(10, 0), geom.Pt(0, 10),
		1e-10,
	)
	assert.False(t, ok, "NaN input must degrade to no intersection")
}

// TestAngleAt_RightAngle verifies a square corner reads π/2 and a
// straight-through vertex reads π.
func TestAngleAt_RightAngle(t *testing.T) {
	a := geom.AngleAt(geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10))
	assert.InDelta(t, math.Pi/2, a, 1e-9, "square corner should be π/2")

	s := geom.AngleAt(geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(10, 0))
	assert.InDelta(t, math.Pi, s, 1e-9, "collinear vertex should be π")
}

// TestAngleAt_Degenerate verifies a zero-length neighbor vector yields NaN.
func TestAngleAt_Degenerate(t *testing.T) {
	a := geom.AngleAt(geom.Pt(5, 5), geom.Pt(5, 5), geom.Pt(10, 0))
	assert.True(t, math.IsNaN(a), "coincident neighbor should yield NaN")
}

// TestCurve_LengthAndBounds verifies cached length and bounding box,
// including the closing segment of a closed curve.
func TestCurve_LengthAndBounds(t *testing.T) {
	open := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}, false)
	assert.InDelta(t, 20.0, open.Length(), 1e-9)

	closed := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}, true)
	assert.InDelta(t, 40.0, closed.Length(), 1e-9, "closed square perimeter")

	b := closed.BoundingBox()
	assert.Equal(t, geom.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, b)
}

// TestPolygon_Winding verifies signed area and the clockwise test on both
// windings of the same square.
func TestPolygon_Winding(t *testing.T) {
	ccw := geom.Polygon{Vertices: []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}}
	assert.Greater(t, ccw.SignedArea(), 0.0)
	assert.False(t, ccw.IsClockwise())

	cw := ccw.Reversed()
	assert.Less(t, cw.SignedArea(), 0.0)
	assert.True(t, cw.IsClockwise())
}
