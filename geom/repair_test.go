package geom_test

import (
	"testing"

	"github.com/goodwillp/wallmend/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bowtie is the canonical self-intersecting 4-point curve:
// (0,0)→(10,10)→(10,0)→(0,10) crosses itself between segments 0 and 2.
func bowtie() *geom.Curve {
	return geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(10, 0), geom.Pt(0, 10),
	}, false)
}

// rectangle is the same 4 points in non-crossing order, closed.
func rectangle() *geom.Curve {
	return geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10),
	}, true)
}

// TestFindSelfIntersections_Bowtie verifies the bow-tie is detected open
// or closed, and the rectangle is not.
func TestFindSelfIntersections_Bowtie(t *testing.T) {
	assert.True(t, geom.SelfIntersects(bowtie(), 1e-10), "open bow-tie must self-intersect")

	closedBowtie := geom.NewCurve(bowtie().Points, true)
	assert.True(t, geom.SelfIntersects(closedBowtie, 1e-10), "closed bow-tie must self-intersect")

	assert.False(t, geom.SelfIntersects(rectangle(), 1e-10), "closed rectangle must not self-intersect")
}

// TestRemoveSelfIntersections_Bowtie verifies repair by later-point
// deletion terminates with a clean curve.
func TestRemoveSelfIntersections_Bowtie(t *testing.T) {
	fixed, removed := geom.RemoveSelfIntersections(bowtie(), 1e-10)
	require.NotNil(t, fixed)
	assert.Equal(t, 1, removed, "one deleted point resolves the bow-tie")
	assert.False(t, geom.SelfIntersects(fixed, 1e-10))
	assert.GreaterOrEqual(t, len(fixed.Points), 3)
}

// TestDedupePoints verifies consecutive near-duplicates are dropped and
// distinct points survive.
func TestDedupePoints(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1e-9), geom.Pt(10, 0), geom.Pt(10, 0), geom.Pt(20, 0)}
	kept, removed := geom.DedupePoints(pts, 1e-6)
	assert.Equal(t, 2, removed)
	assert.Len(t, kept, 3)
}

// TestDedupeAllPoints verifies non-adjacent duplicates are also removed.
func TestDedupeAllPoints(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(0, 1e-9)}
	kept, removed := geom.DedupeAllPoints(pts, 1e-6)
	assert.Equal(t, 1, removed, "the non-adjacent duplicate of the origin must go")
	assert.Len(t, kept, 2)
}

// TestFilterShortSegments verifies sub-threshold interior points are
// dropped while both endpoints survive.
func TestFilterShortSegments(t *testing.T) {
	c := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(1e-8, 0), geom.Pt(10, 0), geom.Pt(10, 1e-8),
	}, false)
	fixed, removed := geom.FilterShortSegments(c, 1e-6)
	assert.Equal(t, 1, removed)
	assert.Equal(t, geom.Pt(0, 0), fixed.Points[0])
	assert.Equal(t, geom.Pt(10, 1e-8), fixed.Points[len(fixed.Points)-1], "final point must survive")
}

// TestClampCoordinates verifies out-of-range magnitudes are bounded.
func TestClampCoordinates(t *testing.T) {
	c := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(5e6, -2e6)}, false)
	fixed, changed := geom.ClampCoordinates(c, 1e6)
	assert.Equal(t, 1, changed)
	assert.Equal(t, 1e6, fixed.Points[1].X)
	assert.Equal(t, -1e6, fixed.Points[1].Y)
}

// TestSimplify verifies Douglas–Peucker drops near-collinear interior
// points and keeps true corners.
func TestSimplify(t *testing.T) {
	c := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(5, 0.001), geom.Pt(10, 0), geom.Pt(10, 10),
	}, false)
	s, err := geom.Simplify(c, 0.01)
	require.NoError(t, err)
	assert.Len(t, s.Points, 3, "the near-collinear point must be dropped")
	assert.Equal(t, geom.Pt(10, 10), s.Points[len(s.Points)-1])

	_, err = geom.Simplify(nil, 0.01)
	assert.ErrorIs(t, err, geom.ErrNilCurve)
}

// TestConvexHull verifies hulling, clockwise output, and the
// too-few-points sentinel.
func TestConvexHull(t *testing.T) {
	hull, err := geom.ConvexHull([]geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(5, 5),
	})
	require.NoError(t, err)
	assert.Len(t, hull.Vertices, 4, "interior point must be excluded")
	assert.True(t, hull.IsClockwise())

	_, err = geom.ConvexHull([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)})
	assert.ErrorIs(t, err, geom.ErrHullTooSmall)
}

// TestBasicUnion verifies the union hull covers all input polygons.
func TestBasicUnion(t *testing.T) {
	a := geom.Polygon{Vertices: []geom.Point{geom.Pt(0, 0), geom.Pt(0, 5), geom.Pt(5, 5), geom.Pt(5, 0)}}
	b := geom.Polygon{Vertices: []geom.Point{geom.Pt(10, 10), geom.Pt(10, 15), geom.Pt(15, 15), geom.Pt(15, 10)}}
	u, err := geom.BasicUnion([]geom.Polygon{a, b})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(u.Vertices), 3)
	assert.True(t, u.IsClockwise())
}
