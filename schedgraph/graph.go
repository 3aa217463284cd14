package schedgraph

import (
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/clsched/core"
)

// defaultDumpFile receives the DOT dump when MAMBA_DAG is set but empty.
const defaultDumpFile = "clsched_dag.dot"

// Graph is the scheduling digraph: vertices in stable insertion order,
// forward and reverse adjacency, and the trigger variables attached to
// retained edges. Immutable once Build returns.
type Graph struct {
	// Verts lists every vertex in insertion order: combinational update
	// blocks first, then callee ports and ready-guards.
	Verts []core.Vertex

	// Index maps each vertex to its position in Verts.
	Index map[core.Vertex]int

	// Fwd and Rev are the forward and reverse adjacency sets.
	Fwd map[core.Vertex]map[core.Vertex]struct{}
	Rev map[core.Vertex]map[core.Vertex]struct{}

	// Triggers holds the trigger variables of each retained edge.
	Triggers map[core.Edge][]core.Trigger

	// Callee marks vertices that are callee ports (methods and guards).
	Callee map[core.Vertex]bool

	// Ports lists every registered callee port in registration order:
	// normal ports first, then per non-blocking interface method and guard.
	Ports []*core.CalleePort

	// NBIfcs lists the non-blocking interfaces in discovery order.
	NBIfcs []*core.NBInterface
}

// Has reports whether v belongs to the vertex set.
func (g *Graph) Has(v core.Vertex) bool {
	_, ok := g.Index[v]

	return ok
}

// Succ returns the forward neighbors of v sorted by insertion index.
func (g *Graph) Succ(v core.Vertex) []core.Vertex { return g.sorted(g.Fwd[v]) }

// Pred returns the reverse neighbors of v sorted by insertion index.
func (g *Graph) Pred(v core.Vertex) []core.Vertex { return g.sorted(g.Rev[v]) }

// Edges returns every edge, ordered by (source, target) insertion index.
func (g *Graph) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(g.Fwd))
	for _, u := range g.Verts {
		for _, v := range g.sorted(g.Fwd[u]) {
			out = append(out, core.Edge{U: u, V: v})
		}
	}

	return out
}

// sorted flattens a neighbor set into an index-ordered slice.
func (g *Graph) sorted(set map[core.Vertex]struct{}) []core.Vertex {
	out := make([]core.Vertex, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return g.Index[out[i]] < g.Index[out[j]] })

	return out
}

// addVertex appends v to the vertex set, ignoring re-insertion.
func (g *Graph) addVertex(v core.Vertex) {
	if _, ok := g.Index[v]; ok {
		return
	}
	g.Index[v] = len(g.Verts)
	g.Verts = append(g.Verts, v)
	g.Fwd[v] = make(map[core.Vertex]struct{})
	g.Rev[v] = make(map[core.Vertex]struct{})
}

// addEdge inserts (u,v) into both adjacency maps; duplicates collapse.
func (g *Graph) addEdge(u, v core.Vertex) {
	g.Fwd[u][v] = struct{}{}
	g.Rev[v][u] = struct{}{}
}

// Build materializes the scheduling digraph from the DAG products and the
// root component. See the package documentation for the vertex and edge
// rules. Returns core.PassOrderError when the DAG-generation pass has not
// been applied and core.ErrDuplicateMethod on corrupt callee registration.
func Build(root core.Root, dag *core.DAG) (*Graph, error) {
	// 1. Pass-order gate: the constraint set is the prior pass's product.
	if dag == nil || dag.AllConstraints == nil {
		return nil, &core.PassOrderError{Attr: "AllConstraints"}
	}

	g := &Graph{
		Index:    make(map[core.Vertex]int),
		Fwd:      make(map[core.Vertex]map[core.Vertex]struct{}),
		Rev:      make(map[core.Vertex]map[core.Vertex]struct{}),
		Triggers: make(map[core.Edge][]core.Trigger),
		Callee:   make(map[core.Vertex]bool),
	}

	// 2. V = all update blocks minus the flip-flop sweep.
	ff := make(map[*core.Block]struct{}, len(root.AllUpdateFF()))
	for _, b := range root.AllUpdateFF() {
		ff[b] = struct{}{}
	}
	for _, b := range dag.FinalUpblks {
		if _, isFF := ff[b]; isFF {
			continue
		}
		g.addVertex(b)
	}

	// 3. Callee ports: normal ports, then method+guard per NB interface.
	registered := make(map[*core.CalleePort]struct{})
	register := func(p *core.CalleePort) error {
		if _, dup := registered[p]; dup {
			return fmt.Errorf("%w: %s", core.ErrDuplicateMethod, p.Name)
		}
		registered[p] = struct{}{}
		g.addVertex(p)
		g.Callee[p] = true
		g.Ports = append(g.Ports, p)

		return nil
	}
	for _, p := range root.CalleePorts() {
		if err := register(p); err != nil {
			return nil, err
		}
	}
	guardOf := make(map[*core.CalleePort]*core.CalleePort)
	for _, ifc := range root.NBInterfaces() {
		if err := register(ifc.Method); err != nil {
			return nil, err
		}
		if err := register(ifc.Rdy); err != nil {
			return nil, err
		}
		guardOf[ifc.Method] = ifc.Rdy
		g.NBIfcs = append(g.NBIfcs, ifc)

		// The guard must have run before the method's slot each cycle.
		g.addEdge(ifc.Rdy, ifc.Method)
	}

	// 4. Upstream constraints: retain edges fully inside V.
	for e := range dag.AllConstraints {
		if !g.Has(e.U) || !g.Has(e.V) {
			continue
		}
		g.addEdge(e.U, e.V)
		if tr := dag.ConstraintObjs[e]; len(tr) > 0 {
			g.Triggers[e] = tr
		}
	}

	// 5. Top-level callee constraints: "before a guarded method" means
	//    "before its ready".
	for e := range dag.TopLevelCalleeConstraints {
		u, v := e.U, e.V
		if m, ok := v.(*core.CalleePort); ok {
			if rdy, guarded := guardOf[m]; guarded {
				v = rdy
			}
		}
		if !g.Has(u) || !g.Has(v) {
			continue
		}
		g.addEdge(u, v)
	}

	// 6. Optional DOT dump for debugging schedules.
	if path, ok := os.LookupEnv("MAMBA_DAG"); ok {
		if path == "" {
			path = defaultDumpFile
		}
		if err := g.DumpDOT(path); err != nil {
			return nil, err
		}
	}

	return g, nil
}
