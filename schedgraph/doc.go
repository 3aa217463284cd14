// Package schedgraph materializes the scheduling digraph from the upstream
// DAG products and the elaborated root component.
//
// What
//
//   - Vertex set V: every combinational update block (flip-flop blocks are
//     excluded — they run in their own sweep), each normal top-level callee
//     port, and for each non-blocking interface both the method and its
//     ready-guard.
//   - Edge set E: the retained upstream constraints, the implicit
//     (rdy → method) edge of every non-blocking interface, and the
//     substituted top-level callee constraints. E is a set; duplicates
//     collapse.
//   - Forward adjacency Fwd and reverse adjacency Rev, plus a stable
//     insertion index per vertex so later stages iterate deterministically.
//
// Endpoint substitution
//
//	Top-level callee constraints are written against methods. Each endpoint
//	resolves through the callee-port registry; when the right endpoint is a
//	guarded method, the constraint redirects onto the guard — "before the
//	method" means "before its ready". Constraints whose endpoints fall
//	outside V are dropped.
//
// Diagnostics
//
//	When the MAMBA_DAG environment variable is set, Build renders V/E as
//	GraphViz DOT into the file the variable names (clsched_dag.dot when the
//	variable is set but empty) before any scheduling happens.
//
// Errors
//
//   - core.PassOrderError     - the DAG lacks AllConstraints (prior pass
//     not applied).
//   - core.ErrDuplicateMethod - a callee port registered twice.
//
// Complexity: Build is O(V + E) time and space.
package schedgraph
