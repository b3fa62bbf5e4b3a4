package edgecase_test

import (
	"math"
	"testing"

	"github.com/goodwillp/wallmend/edgecase"
	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findResult returns the first finding of the given type, if any.
func findResult(results []edgecase.Result, typ edgecase.Type) (edgecase.Result, bool) {
	for _, r := range results {
		if r.Type == typ {
			return r, true
		}
	}
	return edgecase.Result{}, false
}

// TestDetectCurve_SelfIntersection verifies the bow-tie ordering of four
// points is reported, open or closed, while the rectangle ordering of the
// same points is clean.
func TestDetectCurve_SelfIntersection(t *testing.T) {
	opts := edgecase.DefaultOptions()
	bowtiePts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(10, 0), geom.Pt(0, 10)}

	for _, closed := range []bool{false, true} {
		r, ok := findResult(edgecase.DetectCurve(geom.NewCurve(bowtiePts, closed), opts), edgecase.SelfIntersecting)
		require.True(t, ok, "bow-tie (closed=%v) must report self-intersection", closed)
		assert.True(t, r.HasEdgeCase)
		assert.Equal(t, geomerr.SeverityError, r.Severity)
		assert.False(t, r.CanAutoFix)
	}

	rect := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}, true)
	_, ok := findResult(edgecase.DetectCurve(rect, opts), edgecase.SelfIntersecting)
	assert.False(t, ok, "rectangle ordering must be clean")
}

// TestDetectCurve_CoincidentPoints verifies any pair within tolerance is
// reported with has_edge_case=true, adjacency not required.
func TestDetectCurve_CoincidentPoints(t *testing.T) {
	opts := edgecase.DefaultOptions()
	c := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(1e-9, 1e-9),
	}, false)

	r, ok := findResult(edgecase.DetectCurve(c, opts), edgecase.CoincidentPoints)
	require.True(t, ok)
	assert.True(t, r.HasEdgeCase)
	assert.True(t, r.CanAutoFix)
	assert.Equal(t, []int{3}, r.AffectedElements, "the later of the coincident pair is reported")
}

// TestDetectCurve_Degenerate verifies the three degeneracy triggers and
// that a degenerate finding short-circuits the remaining checks.
func TestDetectCurve_Degenerate(t *testing.T) {
	opts := edgecase.DefaultOptions()

	results := edgecase.DetectCurve(geom.NewCurve([]geom.Point{geom.Pt(1, 1)}, false), opts)
	require.Len(t, results, 1, "degenerate finding short-circuits")
	assert.Equal(t, edgecase.Degenerate, results[0].Type)
	assert.False(t, results[0].CanAutoFix)

	allSame := geom.NewCurve([]geom.Point{geom.Pt(5, 5), geom.Pt(5, 5), geom.Pt(5, 5)}, false)
	_, ok := findResult(edgecase.DetectCurve(allSame, opts), edgecase.Degenerate)
	assert.True(t, ok, "all-coincident points are degenerate")

	tiny := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(1e-5, 0)}, false)
	_, ok = findResult(edgecase.DetectCurve(tiny, opts), edgecase.Degenerate)
	assert.True(t, ok, "near-zero total length is degenerate")

	_, ok = findResult(edgecase.DetectCurve(nil, opts), edgecase.Degenerate)
	assert.True(t, ok, "nil curve is degenerate")
}

// TestDetectCurve_ZeroAndMicroSegments verifies the two length bands do
// not overlap: under MinSegmentLength is zero-length, strictly between
// min and 10×min is micro.
func TestDetectCurve_ZeroAndMicroSegments(t *testing.T) {
	opts := edgecase.DefaultOptions() // MinSegmentLength 1e-3

	c := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(1e-4, 0), // zero-length segment 0
		geom.Pt(5e-3, 0), // micro segment 1
		geom.Pt(10, 0), // healthy segment 2
	}, false)

	results := edgecase.DetectCurve(c, opts)

	zero, ok := findResult(results, edgecase.ZeroLengthSegment)
	require.True(t, ok)
	assert.Equal(t, []int{0}, zero.AffectedElements)

	micro, ok := findResult(results, edgecase.MicroSegment)
	require.True(t, ok)
	assert.Equal(t, []int{1}, micro.AffectedElements)
}

// TestDetectCurve_ExtremeAngle verifies a sharp spike is flagged and the
// sub-10%-of-tolerance escalation to error severity.
func TestDetectCurve_ExtremeAngle(t *testing.T) {
	opts := edgecase.DefaultOptions()

	// Near-reversal spike at (10,0): interior angle ≈ 0.0057 rad, far
	// under 10% of the 15° tolerance.
	spike := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(0, 0.057)}, false)
	r, ok := findResult(edgecase.DetectCurve(spike, opts), edgecase.ExtremeAngle)
	require.True(t, ok)
	assert.Equal(t, []int{1}, r.AffectedElements)
	assert.Equal(t, geomerr.SeverityError, r.Severity)

	// A 30° corner sits inside the band.
	fine := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(0, 5.77)}, false)
	_, ok = findResult(edgecase.DetectCurve(fine, opts), edgecase.ExtremeAngle)
	assert.False(t, ok)
}

// TestDetectCurve_NaNLeniency verifies NaN coordinates never raise and
// degrade to "no edge case" for the tolerance comparisons.
func TestDetectCurve_NaNLeniency(t *testing.T) {
	opts := edgecase.DefaultOptions()
	c := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(math.NaN(), 5), geom.Pt(10, 0), geom.Pt(20, 0),
	}, false)

	assert.NotPanics(t, func() {
		results := edgecase.DetectCurve(c, opts)
		for _, typ := range []edgecase.Type{edgecase.ZeroLengthSegment, edgecase.CoincidentPoints, edgecase.SelfIntersecting} {
			_, ok := findResult(results, typ)
			assert.False(t, ok, "NaN comparisons must not fire %s", typ)
		}
	})
}

// TestDetectCurve_Toggles verifies a disabled check stays silent.
func TestDetectCurve_Toggles(t *testing.T) {
	opts := edgecase.DefaultOptions()
	opts.CheckSelfIntersection = false

	bowtie := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(10, 0), geom.Pt(0, 10)}, false)
	_, ok := findResult(edgecase.DetectCurve(bowtie, opts), edgecase.SelfIntersecting)
	assert.False(t, ok, "disabled check must not fire")
}

// TestDetectWallSolid verifies the baseline and offset curves are all
// scanned and a sub-precision thickness is flagged as instability.
func TestDetectWallSolid(t *testing.T) {
	opts := edgecase.DefaultOptions()

	bowtie := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(10, 0), geom.Pt(0, 10)}, false)
	baseline := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}, false)

	w := geom.NewWallSolid(baseline, 1e-12, geom.WithLeftOffset(bowtie))
	results := edgecase.DetectWallSolid(w, opts)

	_, ok := findResult(results, edgecase.SelfIntersecting)
	assert.True(t, ok, "offset-curve defects must surface")

	thick, ok := findResult(results, edgecase.ThicknessInstability)
	require.True(t, ok)
	assert.Equal(t, geomerr.SeverityError, thick.Severity)
	assert.True(t, thick.CanAutoFix)

	assert.Nil(t, edgecase.DetectWallSolid(nil, opts))
}
