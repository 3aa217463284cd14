package core

// Vertex is an opaque executable handle scheduled within one cycle: an
// update block, a callee method, or a ready-guard. Identity is object
// reference — Vertex values are pointers and may key maps directly.
type Vertex interface {
	// VertexName returns the stable display name used in diagnostics,
	// deterministic tie-breaking, and combinational-loop reports.
	VertexName() string
}

// Block is a side-effecting function over a component's signals, executed
// once per cycle at the position the scheduler determines. A non-nil error
// from Run aborts the cycle: a synthesized super-block returns one when it
// fails to converge or one of its members fails; plain update blocks return
// nil.
type Block struct {
	// Name is the stable display name of this block.
	Name string

	// Run executes the block's side effects.
	Run func() error
}

// VertexName implements Vertex.
func (b *Block) VertexName() string { return b.Name }

// CalleePort is an externally callable entry point on the root component.
// Func holds the original method body; Call is nil until the open-loop pass
// installs a cursor wrapper over it. Hosts invoke Call, never Func.
type CalleePort struct {
	// Name is the stable display name of this port.
	Name string

	// Func is the original method body.
	Func func(args ...any) (any, error)

	// Call is the installed wrapper; nil before the pass runs.
	Call func(args ...any) (any, error)

	called bool // set when Call ran this cycle; cleared at cycle start
}

// VertexName implements Vertex.
func (p *CalleePort) VertexName() string { return p.Name }

// MarkCalled records that the port was invoked in the current cycle.
func (p *CalleePort) MarkCalled() { p.called = true }

// ClearCalled resets the per-cycle invocation marker.
func (p *CalleePort) ClearCalled() { p.called = false }

// CalledThisCycle reports whether the port was invoked since the last
// cycle-start clear. Line-trace renderers consult this.
func (p *CalleePort) CalledThisCycle() bool { return p.called }

// NBInterface pairs a non-blocking callee method with its ready-guard.
// The guard carries an implicit happens-before edge onto the method.
type NBInterface struct {
	// Name is the interface display name.
	Name string

	// Method is the callable entry point.
	Method *CalleePort

	// Rdy is the ready predicate guarding Method.
	Rdy *CalleePort
}

// Edge is a happens-before ordering constraint: U must execute before V
// within one cycle.
type Edge struct {
	U, V Vertex
}

// DAG carries the products of the upstream DAG-generation pass. The
// scheduling core consumes it read-only.
type DAG struct {
	// FinalUpblks is every update block of the elaborated design,
	// flip-flop blocks included.
	FinalUpblks []*Block

	// ScheduleFF is the flip-flop sweep, already ordered by the collaborator.
	ScheduleFF []*Block

	// SchedulePosedgeFlip is the posedge shadow-copy sweep.
	SchedulePosedgeFlip []*Block

	// AllConstraints is the happens-before edge set between update blocks.
	// A nil map means the DAG-generation pass has not been applied.
	AllConstraints map[Edge]struct{}

	// TopLevelCalleeConstraints are method-level edges whose endpoints
	// still need substitution through the callee-port registry.
	TopLevelCalleeConstraints map[Edge]struct{}

	// ConstraintObjs maps each edge to the trigger variables whose change
	// during U is observed by V. Consulted only inside multi-vertex SCCs.
	ConstraintObjs map[Edge][]Trigger
}

// Root is the reflection surface of the elaborated top-level component.
type Root interface {
	// ComponentName returns the root's display name.
	ComponentName() string

	// AllUpdateFF returns the flip-flop update blocks, which are excluded
	// from the combinational vertex set.
	AllUpdateFF() []*Block

	// CalleePorts returns the normal (unguarded) top-level callee ports.
	CalleePorts() []*CalleePort

	// NBInterfaces returns the non-blocking interfaces, in discovery order.
	NBInterfaces() []*NBInterface

	// LineTrace renders the per-cycle trace string.
	LineTrace() string
}
