// Package openloop is the open-loop CL scheduling pass: it turns the
// constraint digraph of an elaborated design into one linear per-cycle
// schedule and wraps every top-level callee port behind an execution
// cursor, so the host may interleave method calls with whole-cycle ticks.
//
// Pipeline
//
//	schedgraph.Build → scc.Condense → order.TopoSort → order.Linearize
//	→ fixpoint.Wrap (per multi-vertex component) → schedule linking
//	→ cursor installation.
//
// Schedule layout, in fixed order:
//
//  1. clear_cl_trace — resets the per-cycle method-called markers.
//  2. The update sweep: trivial-component vertices and fixed-point
//     super-blocks, in component-topological order.
//  3. The line-trace print, when enabled.
//  4. The flip-flop sweep (collaborator-supplied).
//  5. Tracing hooks, when installed.
//  6. The posedge-flip sweep (collaborator-supplied).
//
// The methodless projection is the schedule with callee-port slots
// filtered out; it is the execution spine. A cursor of two counters
// (projected index, original index) tracks how far the current cycle has
// advanced. Invoking a wrapped port executes the projected prefix up to
// the port's slot, then the method body; invoking a port whose slot
// already passed finishes the cycle, wraps around, and replays the prefix.
// Sim.Tick runs the remaining projection and closes the cycle.
//
// Concurrency
//
//	Single-threaded cooperative. The only suspension points are wrapped
//	callee ports; the cursor records where execution paused. The cursor
//	and schedule live on the Sim — multiple elaborated roots are
//	independent.
//
// Errors
//
//	All errors surface, none are swallowed, no retries. An error raised
//	while a wrapper or Tick advances the schedule leaves the cursor
//	unchanged; resuming after a failure is not supported (fail-stop).
//
//   - core.PassOrderError            - DAG products missing.
//   - core.ErrDuplicateMethod        - corrupt callee registration.
//   - core.ErrSchedulingInvariant    - a bug in the scheduling core.
//   - *fixpoint.CombinationalLoopError - a divergent component, surfaced
//     through Tick or a wrapped method.
package openloop
