package openloop_test

import (
	"fmt"

	"github.com/katalvlaran/clsched/core"
	"github.com/katalvlaran/clsched/openloop"
)

// ExampleApply schedules a one-block design with a guarded give method,
// runs two full cycles, then pulls a value mid-cycle through the wrapper.
func ExampleApply() {
	count := 0
	up := &core.Block{Name: "up_count", Run: func() error {
		count++

		return nil
	}}
	give := &core.CalleePort{Name: "give", Func: func(args ...any) (any, error) {
		return count, nil
	}}
	giveRdy := &core.CalleePort{Name: "give_rdy", Func: func(args ...any) (any, error) {
		return true, nil
	}}

	root := &stubRoot{
		nbifcs: []*core.NBInterface{{Name: "give_ifc", Method: give, Rdy: giveRdy}},
	}
	dag := &core.DAG{
		FinalUpblks:    []*core.Block{up},
		AllConstraints: map[core.Edge]struct{}{},
		TopLevelCalleeConstraints: map[core.Edge]struct{}{
			{U: up, V: give}: {},
		},
	}

	sim, err := openloop.Apply(root, dag, openloop.WithSeed(42))
	if err != nil {
		fmt.Println(err)

		return
	}

	_ = sim.Tick()
	_ = sim.Tick()

	// The wrapper advances the schedule to give's slot, then runs the body.
	v, _ := give.Call()
	fmt.Println(sim.NumCyclesExecuted(), v)
	// Output: 2 3
}
