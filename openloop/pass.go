package openloop

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/clsched/core"
	"github.com/katalvlaran/clsched/fixpoint"
	"github.com/katalvlaran/clsched/order"
	"github.com/katalvlaran/clsched/scc"
	"github.com/katalvlaran/clsched/schedgraph"
)

// entry is one slot of the full schedule. Callee slots have no runner —
// their execution happens through the installed wrapper.
type entry struct {
	vtx    core.Vertex
	run    func() error
	callee bool
}

// Apply schedules the elaborated root against the upstream DAG products and
// returns the driving Sim. Every top-level callee port gets its Call
// wrapper installed; the original body stays in Func.
func Apply(root core.Root, dag *core.DAG, opts ...Option) (*Sim, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Materialize the digraph.
	g, err := schedgraph.Build(root, dag)
	if err != nil {
		return nil, err
	}
	if o.dumpDAG != "" {
		if err = g.DumpDOT(o.dumpDAG); err != nil {
			return nil, err
		}
	}

	// 2. Condense, sort, linearize.
	rng := rand.New(rand.NewSource(o.seed))
	cond, err := scc.Condense(g, rng)
	if err != nil {
		return nil, err
	}
	topo, pred, err := order.TopoSort(cond, g)
	if err != nil {
		return nil, err
	}
	perComp, err := order.Linearize(cond, g, topo, pred)
	if err != nil {
		return nil, err
	}

	sim := &Sim{
		root:   root,
		out:    o.out,
		ports:  g.Ports,
		nbIfcs: g.NBIfcs,
	}

	// 3. Link the per-cycle schedule in its fixed layout.
	sched := make([]entry, 0, len(g.Verts)+len(dag.ScheduleFF)+len(dag.SchedulePosedgeFlip)+4)

	ports := g.Ports
	clearTrace := &core.Block{
		Name: "clear_cl_trace",
		Run: func() error {
			for _, p := range ports {
				p.ClearCalled()
			}

			return nil
		},
	}
	sched = append(sched, entry{vtx: clearTrace, run: clearTrace.Run})

	for pos, id := range topo {
		comp := cond.Comps[id]
		lin := perComp[pos]
		if comp.Trivial() {
			switch v := lin[0].(type) {
			case *core.Block:
				sched = append(sched, entry{vtx: v, run: v.Run})
			case *core.CalleePort:
				sched = append(sched, entry{vtx: v, callee: true})
			default:
				return nil, fmt.Errorf("%w: unknown vertex kind %T", core.ErrSchedulingInvariant, v)
			}

			continue
		}

		super, buildErr := buildSuperBlock(g, comp, lin, o.maxIters)
		if buildErr != nil {
			return nil, buildErr
		}
		sched = append(sched, entry{vtx: super, run: super.Run})
	}

	if o.lineTrace {
		lt := &core.Block{
			Name: "print_line_trace",
			Run: func() error {
				fmt.Fprintf(sim.out, "%3d: %s\n", sim.numCycles, root.LineTrace())

				return nil
			},
		}
		sched = append(sched, entry{vtx: lt, run: lt.Run})
	}
	for _, b := range dag.ScheduleFF {
		sched = append(sched, entry{vtx: b, run: b.Run})
	}
	for i, hook := range o.traceHooks {
		h := &core.Block{Name: fmt.Sprintf("trace_hook_%d", i), Run: hook}
		sched = append(sched, entry{vtx: h, run: h.Run})
	}
	for _, b := range dag.SchedulePosedgeFlip {
		sched = append(sched, entry{vtx: b, run: b.Run})
	}

	// 4. Methodless projection and its index map.
	proj := make([]entry, 0, len(sched))
	projIndex := make(map[core.Vertex]int, len(sched))
	for _, e := range sched {
		if e.callee {
			continue
		}
		projIndex[e.vtx] = len(proj)
		proj = append(proj, e)
	}
	sim.schedule = sched
	sim.projection = proj
	sim.projIndex = projIndex

	// 5. Install the cursor wrappers.
	for i, e := range sched {
		if !e.callee {
			continue
		}
		p := e.vtx.(*core.CalleePort)
		target := len(proj)
		for j := i + 1; j < len(sched); j++ {
			if !sched[j].callee {
				target = projIndex[sched[j].vtx]

				break
			}
		}
		p.Call = sim.wrap(p, i, target)
	}

	return sim, nil
}

// buildSuperBlock synthesizes the fixed-point block of one multi-vertex
// component. Callee ports cannot participate in a combinational cycle —
// their bodies run host-driven, outside the sweep.
func buildSuperBlock(g *schedgraph.Graph, comp *scc.Component, lin []core.Vertex, maxIters int) (*core.Block, error) {
	exec := make([]func() error, 0, len(lin))
	names := make([]string, 0, len(lin))
	for _, v := range lin {
		b, ok := v.(*core.Block)
		if !ok {
			return nil, fmt.Errorf("%w: callee port %s inside a combinational cycle",
				core.ErrSchedulingInvariant, v.VertexName())
		}
		exec = append(exec, b.Run)
		names = append(names, b.Name)
	}

	return fixpoint.Wrap(
		fmt.Sprintf("fixed_point_scc_%d", comp.ID),
		exec, names, internalTriggers(g, comp), maxIters,
	), nil
}

// internalTriggers collects the trigger variables of edges internal to
// comp, deduplicated by signal name, in deterministic edge order.
func internalTriggers(g *schedgraph.Graph, comp *scc.Component) []core.Trigger {
	inside := make(map[core.Vertex]bool, len(comp.Members))
	for _, v := range comp.Members {
		inside[v] = true
	}

	members := make([]core.Vertex, len(comp.Members))
	copy(members, comp.Members)
	for i := 1; i < len(members); i++ {
		for j := i; j > 0 && g.Index[members[j]] < g.Index[members[j-1]]; j-- {
			members[j], members[j-1] = members[j-1], members[j]
		}
	}

	seen := make(map[string]bool)
	var out []core.Trigger
	for _, u := range members {
		for _, v := range g.Succ(u) {
			if !inside[v] {
				continue
			}
			for _, t := range g.Triggers[core.Edge{U: u, V: v}] {
				if seen[t.Name] {
					continue
				}
				seen[t.Name] = true
				out = append(out, t)
			}
		}
	}

	return out
}
