package order

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/clsched/core"
	"github.com/katalvlaran/clsched/scc"
	"github.com/katalvlaran/clsched/schedgraph"
)

// NoPredecessor marks a component no other component drained.
const NoPredecessor = -1

// TopoSort runs Kahn's algorithm over the condensation. It returns the
// component IDs in schedule order and, per component, the ID of the
// component that first drained one of its in-degree edges (NoPredecessor
// when the component started on the frontier).
//
// Frontier pops prefer a trivial component whose vertex is an update block
// over components holding callee ports; see the package documentation.
func TopoSort(cond *scc.Condensation, g *schedgraph.Graph) ([]int, []int, error) {
	n := len(cond.Comps)
	inDeg := make([]int, n)
	copy(inDeg, cond.InDeg)

	pred := make([]int, n)
	enqueued := make([]bool, n)
	frontier := make([]int, 0, n)
	for id := 0; id < n; id++ {
		pred[id] = NoPredecessor
		if inDeg[id] == 0 {
			frontier = append(frontier, id)
			enqueued[id] = true
		}
	}

	out := make([]int, 0, n)
	for len(frontier) > 0 {
		id := popPreferred(&frontier, cond, g)
		out = append(out, id)

		succs := sortedSuccs(cond.Succ[id])
		// First drainer wins the predecessor slot of every successor that
		// has not reached the frontier yet.
		for _, t := range succs {
			if !enqueued[t] && pred[t] == NoPredecessor {
				pred[t] = id
			}
		}
		for _, t := range succs {
			inDeg[t]--
			if inDeg[t] == 0 {
				frontier = append(frontier, t)
				enqueued[t] = true
			}
		}
	}

	if len(out) != n {
		return nil, nil, fmt.Errorf("%w: topological sort covered %d of %d components",
			core.ErrSchedulingInvariant, len(out), n)
	}

	return out, pred, nil
}

// popPreferred removes and returns the best frontier entry: the first
// trivial non-callee component if one exists, the oldest entry otherwise.
func popPreferred(frontier *[]int, cond *scc.Condensation, g *schedgraph.Graph) int {
	q := *frontier
	pick := 0
	for i, id := range q {
		c := cond.Comps[id]
		if c.Trivial() && !g.Callee[c.Members[0]] {
			pick = i

			break
		}
	}
	id := q[pick]
	*frontier = append(q[:pick], q[pick+1:]...)

	return id
}

// sortedSuccs flattens a successor set into ascending ID order.
func sortedSuccs(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Ints(out)

	return out
}
