package pipeline_test

import (
	"fmt"

	"github.com/goodwillp/wallmend/geom"
	"github.com/goodwillp/wallmend/pipeline"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePipeline_Execute
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Validate a wall produced by an offset operation. The wall carries a
//	zero thickness, which fails the geometric-consistency stage; stage
//	recovery substitutes the configured default thickness and the stage
//	re-passes.
//
// Options:
//   - EnableAutoRecovery = true  (stage recovery allowed)
//   - DefaultThickness   = 0.2   (substituted for invalid thickness)
//   - FailFast           = false (all stages run)
//
// Use case:
//
//	Post-operation validation of generated wall geometry before it is
//	handed back to the document model.
func ExamplePipeline_Execute() {
	baseline := geom.NewCurve([]geom.Point{
		geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(5, 5),
	}, false)
	wall := geom.NewWallSolid(baseline, 0) // invalid: zero thickness

	p := pipeline.New(pipeline.DefaultOptions())
	res := p.Execute(wall, "offset", pipeline.PhasePost)

	repaired := res.Entity.(*geom.WallSolid)
	fmt.Printf("passed=%v\n", res.Passed)
	fmt.Printf("thickness=%.1f\n", repaired.Thickness())
	_, recovered := res.StageResults["geometric-consistency"+pipeline.RecoveredSuffix]
	fmt.Printf("consistency recovered=%v\n", recovered)
	// Output:
	// passed=true
	// thickness=0.2
	// consistency recovered=true
}
