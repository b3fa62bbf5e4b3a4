package pipeline_test

import (
	"testing"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/geomerr"
	"github.com/goodwillp/wallmend/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// healthyWall builds a wall solid that passes every stage.
func healthyWall() *geom.WallSolid {
	baseline := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}, false)
	poly := geom.Polygon{Vertices: []geom.Point{
		geom.Pt(0, -1), geom.Pt(0, 1), geom.Pt(10, 1), geom.Pt(10, -1),
	}}
	return geom.NewWallSolid(baseline, 0.2, geom.WithOutputPolygons([]geom.Polygon{poly}))
}

// TestExecute_HealthyWallPasses verifies a clean solid passes all stages
// with zero errors and a perfect-ish aggregate.
func TestExecute_HealthyWallPasses(t *testing.T) {
	p := pipeline.New(pipeline.DefaultOptions())

	res := p.Execute(healthyWall(), "offset", pipeline.PhasePost)
	assert.True(t, res.Passed)
	assert.Empty(t, res.Errors)
	assert.Len(t, res.StageResults, 5, "every stage must report")
	assert.Equal(t, 1.0, res.Metrics.GeometricAccuracy)
}

// TestExecute_Idempotent verifies validating an already-passing entity a
// second time yields passed=true and zero errors.
func TestExecute_Idempotent(t *testing.T) {
	p := pipeline.New(pipeline.DefaultOptions())
	w := healthyWall()

	first := p.Execute(w, "offset", pipeline.PhasePost)
	require.True(t, first.Passed)

	second := p.Execute(first.Entity, "offset", pipeline.PhasePost)
	assert.True(t, second.Passed)
	assert.Empty(t, second.Errors)
}

// TestExecute_InvalidThicknessRecovers verifies the §-testable property:
// thickness<=0 fails geometric-consistency with InvalidParameter, and
// stage recovery substitutes the configured default and re-passes.
func TestExecute_InvalidThicknessRecovers(t *testing.T) {
	opts := pipeline.DefaultOptions()
	p := pipeline.New(opts)

	baseline := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}, false)
	w := geom.NewWallSolid(baseline, -1)

	res := p.Execute(w, "construct", pipeline.PhasePre)
	assert.True(t, res.Passed, "recovery must resolve the invalid thickness")

	failing, ok := res.StageResults[pipeline.StageGeometricConsistency]
	require.True(t, ok)
	assert.False(t, failing.Passed)
	require.NotEmpty(t, failing.Errors)
	assert.Equal(t, geomerr.InvalidParameter, failing.Errors[0].Kind)

	recovered, ok := res.StageResults[pipeline.StageGeometricConsistency+pipeline.RecoveredSuffix]
	require.True(t, ok, "post-recovery result must be recorded under the distinguishable key")
	assert.True(t, recovered.Passed)

	tc, ok := res.Entity.(geom.ThicknessCarrier)
	require.True(t, ok)
	assert.Equal(t, opts.DefaultThickness, tc.Thickness())

	h, ok := res.Entity.(*geom.WallSolid)
	require.True(t, ok)
	assert.NotEmpty(t, h.HealingHistory(), "the repair must be recorded")
}

// TestExecute_RecoveryDisabled verifies the same defect fails outright
// when auto-recovery is off.
func TestExecute_RecoveryDisabled(t *testing.T) {
	opts := pipeline.DefaultOptions()
	opts.EnableAutoRecovery = false
	p := pipeline.New(opts)

	baseline := geom.NewCurve([]geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)}, false)
	res := p.Execute(geom.NewWallSolid(baseline, 0), "construct", pipeline.PhasePre)

	assert.False(t, res.Passed)
	require.NotEmpty(t, res.Errors)
	assert.Equal(t, geomerr.InvalidParameter, res.Errors[0].Kind)
	assert.NotEmpty(t, res.RecommendedActions, "unresolved errors must surface their suggested fixes")
}

// TestExecute_PhaseDisabled verifies a disabled phase returns a skipped,
// passing result without running stages.
func TestExecute_PhaseDisabled(t *testing.T) {
	opts := pipeline.DefaultOptions()
	opts.EnablePreValidation = false
	p := pipeline.New(opts)

	res := p.Execute(healthyWall(), "construct", pipeline.PhasePre)
	assert.True(t, res.Passed)
	assert.True(t, res.Skipped)
	assert.Empty(t, res.StageResults)
}

// panicStage always panics, to exercise the synthetic-failure conversion.
type panicStage struct{}

func (panicStage) Name() string { return "panic" }
func (panicStage) Validate(geom.Entity, pipeline.RunInfo) pipeline.StageResult {
	panic("boom")
}

// TestExecute_PanicBecomesCriticalFailure verifies an aborting stage is
// converted into a critical, non-recoverable ValidationFailure instead of
// propagating.
func TestExecute_PanicBecomesCriticalFailure(t *testing.T) {
	p := pipeline.NewWithStages(pipeline.DefaultOptions(), panicStage{})

	var res pipeline.Result
	assert.NotPanics(t, func() {
		res = p.Execute(healthyWall(), "construct", pipeline.PhasePost)
	})
	assert.False(t, res.Passed)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, geomerr.ValidationFailure, res.Errors[0].Kind)
	assert.Equal(t, geomerr.SeverityCritical, res.Errors[0].Severity)
	assert.False(t, res.Errors[0].Recoverable)
}

// failStage fails without recovery, to exercise fail-fast ordering.
type failStage struct{ name string }

func (s failStage) Name() string { return s.name }
func (s failStage) Validate(geom.Entity, pipeline.RunInfo) pipeline.StageResult {
	return pipeline.StageResult{
		Passed: false,
		Errors: []*geomerr.GeometricError{geomerr.New(geomerr.TopologyError, "broken")},
	}
}

// TestExecute_FailFast verifies the pipeline stops at the first
// unresolved failure when configured, and runs everything otherwise.
func TestExecute_FailFast(t *testing.T) {
	opts := pipeline.DefaultOptions()
	opts.FailFast = true
	p := pipeline.NewWithStages(opts, failStage{name: "first"}, failStage{name: "second"})

	res := p.Execute(healthyWall(), "construct", pipeline.PhasePost)
	assert.False(t, res.Passed)
	assert.Len(t, res.StageResults, 1, "fail-fast must stop after the first failure")

	opts.FailFast = false
	p = pipeline.NewWithStages(opts, failStage{name: "first"}, failStage{name: "second"})
	res = p.Execute(healthyWall(), "construct", pipeline.PhasePost)
	assert.Len(t, res.StageResults, 2, "without fail-fast all stages run")
	assert.Len(t, res.Errors, 2)
}

// TestExecute_SelfIntersectingBaselineWarns verifies a crossing baseline
// surfaces as a warning-severity finding without failing consistency.
func TestExecute_SelfIntersectingBaselineWarns(t *testing.T) {
	p := pipeline.New(pipeline.DefaultOptions())

	bowtie := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(10, 0), geom.Pt(0, 10),
	}, false)
	w := geom.NewWallSolid(bowtie, 0.2)

	res := p.Execute(w, "construct", pipeline.PhasePre)
	assert.True(t, res.Passed, "warning-severity findings never fail a stage")

	sr := res.StageResults[pipeline.StageGeometricConsistency]
	require.Len(t, sr.Errors, 1)
	assert.Equal(t, geomerr.SelfIntersection, sr.Errors[0].Kind)
	assert.Equal(t, geomerr.SeverityWarning, sr.Errors[0].Severity)
	assert.Greater(t, res.Metrics.SelfIntersectionCount, 0, "the aggregate snapshot must absorb the finding")
}

// TestExecute_QualityStageWarnings verifies the pre-computed snapshot
// thresholds produce warnings and the aggregate takes worst-case values.
func TestExecute_QualityStageWarnings(t *testing.T) {
	p := pipeline.New(pipeline.DefaultOptions())

	w := healthyWall().WithMetrics(geom.QualityMetrics{
		GeometricAccuracy:      0.5,
		TopologicalConsistency: 0.95,
		ProcessingEfficiency:   1,
	})

	res := p.Execute(w, "heal", pipeline.PhasePost)
	assert.True(t, res.Passed)
	assert.NotEmpty(t, res.Warnings)
	assert.Equal(t, 0.5, res.Metrics.GeometricAccuracy, "aggregate takes the worst observed accuracy")
}
