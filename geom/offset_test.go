package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodwillp/wallmend/geom"
)

// TestSimplify_DropsNearCollinearPoints keeps endpoints and drops
// interior points within tolerance of the chord.
func TestSimplify_DropsNearCollinearPoints(t *testing.T) {
	c := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(1, 0.001), geom.Pt(2, -0.002), geom.Pt(3, 0),
	}, false)

	out, err := geom.Simplify(c, 0.01)
	require.NoError(t, err)
	require.Len(t, out.Points, 2)
	assert.Equal(t, geom.Pt(0, 0), out.Points[0])
	assert.Equal(t, geom.Pt(3, 0), out.Points[1])
}

// TestSimplify_KeepsSignificantCorners retains points farther than the
// tolerance from their chord.
func TestSimplify_KeepsSignificantCorners(t *testing.T) {
	c := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(5, 4), geom.Pt(10, 0),
	}, false)

	out, err := geom.Simplify(c, 0.5)
	require.NoError(t, err)
	assert.Len(t, out.Points, 3)
}

// TestSimplify_InvalidInput covers the sentinel paths.
func TestSimplify_InvalidInput(t *testing.T) {
	_, err := geom.Simplify(nil, 0.1)
	assert.ErrorIs(t, err, geom.ErrNilCurve)

	_, err = geom.Simplify(geom.NewCurve([]geom.Point{geom.Pt(0, 0)}, false), 0.1)
	assert.ErrorIs(t, err, geom.ErrTooFewPoints)
}

// TestNaiveOffset_StraightLine offsets a horizontal segment: positive
// distance displaces to the left of travel (+y here).
func TestNaiveOffset_StraightLine(t *testing.T) {
	c := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}, false)

	left, err := geom.NaiveOffset(c, 1)
	require.NoError(t, err)
	require.Len(t, left.Points, 2)
	assert.InDelta(t, 1, left.Points[0].Y, 1e-12)
	assert.InDelta(t, 1, left.Points[1].Y, 1e-12)

	right, err := geom.NaiveOffset(c, -1)
	require.NoError(t, err)
	assert.InDelta(t, -1, right.Points[0].Y, 1e-12)
}

// TestNaiveOffset_BadDistance rejects NaN and infinite distances.
func TestNaiveOffset_BadDistance(t *testing.T) {
	c := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}, false)
	_, err := geom.NaiveOffset(c, math.NaN())
	assert.ErrorIs(t, err, geom.ErrBadDistance)

	_, err = geom.NaiveOffset(c, math.Inf(1))
	assert.ErrorIs(t, err, geom.ErrBadDistance)
}

// TestSegmentEnvelopes_OnePerSegment emits one quad per non-degenerate
// segment.
func TestSegmentEnvelopes_OnePerSegment(t *testing.T) {
	c := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4),
	}, false)

	envs, err := geom.SegmentEnvelopes(c, 0.5)
	require.NoError(t, err)
	require.Len(t, envs, 2)
	for _, env := range envs {
		assert.Len(t, env.Vertices, 4)
		assert.True(t, env.IsClockwise())
		// each segment is 4 long and the envelope 1 wide
		assert.InDelta(t, -4, env.SignedArea(), 1e-12)
	}
}

// TestConvexHull_IgnoresInteriorPoints hulls a square with a point
// inside it; the hull keeps only the corners, clockwise.
func TestConvexHull_IgnoresInteriorPoints(t *testing.T) {
	hull, err := geom.ConvexHull([]geom.Point{
		geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4), geom.Pt(1, 1),
	})
	require.NoError(t, err)
	assert.Len(t, hull.Vertices, 4)
	assert.True(t, hull.IsClockwise())
	assert.InDelta(t, -16, hull.SignedArea(), 1e-12)
}

// TestConvexHull_TooFewDistinct fails on fewer than three distinct
// points.
func TestConvexHull_TooFewDistinct(t *testing.T) {
	_, err := geom.ConvexHull([]geom.Point{
		geom.Pt(0, 0), geom.Pt(0, 0), geom.Pt(1, 1),
	})
	assert.ErrorIs(t, err, geom.ErrHullTooSmall)
}

// TestBasicUnion_CoversAllOperands hulls two disjoint squares into one
// clockwise polygon containing both.
func TestBasicUnion_CoversAllOperands(t *testing.T) {
	a := geom.BBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}.ToPolygon()
	b := geom.BBox{MinX: 5, MinY: 5, MaxX: 7, MaxY: 7}.ToPolygon()

	merged, err := geom.BasicUnion([]geom.Polygon{a, b})
	require.NoError(t, err)
	assert.True(t, merged.IsClockwise())
	assert.GreaterOrEqual(t, -merged.SignedArea(), 8.0) // at least both squares
}
