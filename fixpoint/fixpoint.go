package fixpoint

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/clsched/core"
)

// MaxIters bounds fixed-point iteration per component per cycle. A
// component still unstable after this many passes is a divergent
// combinational circuit.
const MaxIters = 100

// CombinationalLoopError reports a component that failed to stabilize
// within the iteration bound.
type CombinationalLoopError struct {
	// Members lists the display names of every component member.
	Members []string
}

// Error implements error with the message contract the framework's drivers
// match on.
func (e *CombinationalLoopError) Error() string {
	return fmt.Sprintf("Combinational loop detected at runtime in {%s}!",
		strings.Join(e.Members, ", "))
}

// Wrap synthesizes the super-block for one multi-vertex component. exec is
// the component's intra-order, memberNames its vertices for the failure
// report, triggers the convergence variables of its internal edges.
// maxIters <= 0 selects MaxIters.
func Wrap(name string, exec []func() error, memberNames []string, triggers []core.Trigger, maxIters int) *core.Block {
	if maxIters <= 0 {
		maxIters = MaxIters
	}

	run := func() error {
		snaps := make([]any, len(triggers))
		for iter := 0; iter < maxIters; iter++ {
			for i, t := range triggers {
				snaps[i] = t.Snapshot()
			}
			for _, f := range exec {
				if err := f(); err != nil {
					return err
				}
			}
			stable := true
			for i, t := range triggers {
				if t.Changed(snaps[i]) {
					stable = false

					break
				}
			}
			if stable {
				return nil
			}
		}

		return &CombinationalLoopError{Members: memberNames}
	}

	return &core.Block{Name: name, Run: run}
}
