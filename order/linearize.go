package order

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/clsched/core"
	"github.com/katalvlaran/clsched/scc"
	"github.com/katalvlaran/clsched/schedgraph"
)

// Linearize produces an execution order for each component, indexed like
// topo. Trivial components emit their single vertex; multi-vertex
// components seed as the package documentation describes and BFS over
// internal edges. Vertices driven by the predecessor component sit at the
// front, so one pass of the fixed-point loop often converges.
func Linearize(cond *scc.Condensation, g *schedgraph.Graph, topo, pred []int) ([][]core.Vertex, error) {
	out := make([][]core.Vertex, len(topo))
	for pos, id := range topo {
		comp := cond.Comps[id]
		if comp.Trivial() {
			out[pos] = []core.Vertex{comp.Members[0]}

			continue
		}

		lin, err := linearizeComponent(comp, cond, g, pred[id])
		if err != nil {
			return nil, err
		}
		out[pos] = lin
	}

	return out, nil
}

// linearizeComponent orders one multi-vertex component.
func linearizeComponent(comp *scc.Component, cond *scc.Condensation, g *schedgraph.Graph, predID int) ([]core.Vertex, error) {
	inside := make(map[core.Vertex]bool, len(comp.Members))
	for _, v := range comp.Members {
		inside[v] = true
	}
	members := byName(comp.Members, g)

	var seeds []core.Vertex
	if predID == NoPredecessor {
		seeds = []core.Vertex{maxInternalInDegree(members, g, inside)}
	} else {
		// Every member the predecessor component drives, name-sorted.
		for _, x := range members {
			for _, v := range g.Pred(x) {
				if cond.Of[v] == predID {
					seeds = append(seeds, x)

					break
				}
			}
		}
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: component of %s has no linearization seed",
			core.ErrSchedulingInvariant, members[0].VertexName())
	}

	// BFS over internal forward edges; append on first visit.
	lin := make([]core.Vertex, 0, len(comp.Members))
	visited := make(map[core.Vertex]bool, len(comp.Members))
	queue := make([]core.Vertex, 0, len(comp.Members))
	for _, s := range seeds {
		if !visited[s] {
			visited[s] = true
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		lin = append(lin, v)
		for _, w := range byName(g.Succ(v), g) {
			if inside[w] && !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}

	// Strong connectivity guarantees coverage from any non-empty seed set.
	if len(lin) != len(comp.Members) {
		return nil, fmt.Errorf("%w: linearization reached %d of %d members of component %d",
			core.ErrSchedulingInvariant, len(lin), len(comp.Members), comp.ID)
	}

	return lin, nil
}

// maxInternalInDegree picks the member with the most incoming internal
// edges; members arrives name-sorted, so the first maximum wins name ties.
func maxInternalInDegree(members []core.Vertex, g *schedgraph.Graph, inside map[core.Vertex]bool) core.Vertex {
	best := members[0]
	bestDeg := -1
	for _, v := range members {
		deg := 0
		for _, p := range g.Pred(v) {
			if inside[p] {
				deg++
			}
		}
		if deg > bestDeg {
			best, bestDeg = v, deg
		}
	}

	return best
}

// byName returns vs sorted by display name, insertion index breaking
// duplicate names.
func byName(vs []core.Vertex, g *schedgraph.Graph) []core.Vertex {
	out := make([]core.Vertex, len(vs))
	copy(out, vs)
	sort.Slice(out, func(i, j int) bool {
		ni, nj := out[i].VertexName(), out[j].VertexName()
		if ni != nj {
			return ni < nj
		}

		return g.Index[out[i]] < g.Index[out[j]]
	})

	return out
}
