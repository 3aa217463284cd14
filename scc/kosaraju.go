package scc

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/clsched/core"
	"github.com/katalvlaran/clsched/schedgraph"
)

// Component is one strongly connected component of the scheduling digraph.
type Component struct {
	// ID is the component's index in Condensation.Comps.
	ID int

	// Members lists the component's vertices in discovery order.
	Members []core.Vertex
}

// Trivial reports whether the component holds a single vertex.
func (c *Component) Trivial() bool { return len(c.Members) == 1 }

// Condensation is the component partition plus the condensed DAG.
type Condensation struct {
	// Comps lists every component; IDs index this slice.
	Comps []*Component

	// Of maps each vertex to its component ID.
	Of map[core.Vertex]int

	// Succ holds the deduplicated cross-component successor sets.
	Succ []map[int]struct{}

	// InDeg counts distinct cross-component predecessors per component.
	InDeg []int
}

// Condense partitions g into strongly connected components and builds the
// condensed DAG. rng shuffles the pass-1 start order; nil keeps insertion
// order. The result is deterministic for one (graph, rng-seed) pair.
func Condense(g *schedgraph.Graph, rng *rand.Rand) (*Condensation, error) {
	// 1. Start order: insertion order, optionally shuffled.
	starts := make([]core.Vertex, len(g.Verts))
	copy(starts, g.Verts)
	if rng != nil {
		rng.Shuffle(len(starts), func(i, j int) {
			starts[i], starts[j] = starts[j], starts[i]
		})
	}

	// 2. Pass 1: iterative DFS post-order on the forward graph.
	post := postOrder(g, starts)

	// 3. Pass 2: reverse-BFS on the reverse graph, seeded in reverse
	//    post-order; each unseen seed opens a new component.
	cond := &Condensation{Of: make(map[core.Vertex]int, len(g.Verts))}
	seen := make(map[core.Vertex]bool, len(g.Verts))
	queue := make([]core.Vertex, 0, len(g.Verts))
	for i := len(post) - 1; i >= 0; i-- {
		leader := post[i]
		if seen[leader] {
			continue
		}
		comp := &Component{ID: len(cond.Comps)}
		seen[leader] = true
		queue = append(queue[:0], leader)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp.Members = append(comp.Members, v)
			cond.Of[v] = comp.ID
			for _, p := range g.Pred(v) {
				if !seen[p] {
					seen[p] = true
					queue = append(queue, p)
				}
			}
		}
		cond.Comps = append(cond.Comps, comp)
	}

	// 4. Condense: deduplicate cross-component edges, count in-degrees.
	n := len(cond.Comps)
	cond.Succ = make([]map[int]struct{}, n)
	cond.InDeg = make([]int, n)
	for i := range cond.Succ {
		cond.Succ[i] = make(map[int]struct{})
	}
	for _, u := range g.Verts {
		cu, ok := cond.Of[u]
		if !ok {
			return nil, fmt.Errorf("%w: vertex %s missing from SCC map",
				core.ErrSchedulingInvariant, u.VertexName())
		}
		for _, v := range g.Succ(u) {
			cv := cond.Of[v]
			if cu == cv {
				continue
			}
			if _, dup := cond.Succ[cu][cv]; dup {
				continue
			}
			cond.Succ[cu][cv] = struct{}{}
			cond.InDeg[cv]++
		}
	}

	return cond, nil
}

// dfsFrame is one explicit-stack DFS frame. expanded marks the second
// visit: children already pushed, post-order emission pending.
type dfsFrame struct {
	v        core.Vertex
	expanded bool
}

// postOrder runs iterative DFS from each start in turn and returns the
// combined post-order. Safe on chains far deeper than the native stack.
func postOrder(g *schedgraph.Graph, starts []core.Vertex) []core.Vertex {
	post := make([]core.Vertex, 0, len(g.Verts))
	visited := make(map[core.Vertex]bool, len(g.Verts))
	stack := make([]dfsFrame, 0, 64)

	for _, s := range starts {
		if visited[s] {
			continue
		}
		stack = append(stack[:0], dfsFrame{v: s})
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.expanded {
				post = append(post, f.v)
				stack = stack[:len(stack)-1]

				continue
			}
			if visited[f.v] {
				// Pushed twice before its first visit; drop the duplicate.
				stack = stack[:len(stack)-1]

				continue
			}
			visited[f.v] = true
			f.expanded = true
			for _, w := range g.Succ(f.v) {
				if !visited[w] {
					stack = append(stack, dfsFrame{v: w})
				}
			}
		}
	}

	return post
}
