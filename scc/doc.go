// Package scc folds the scheduling digraph into strongly connected
// components and builds the condensed DAG the topological sorter runs on.
//
// What
//
//   - Kosaraju-Sharir two-pass condensation:
//   - Pass 1 computes a post-order of the forward graph with an
//     iterative, explicit-stack DFS (a second-visit marker per frame);
//     constraint chains 1500+ vertices deep occur in real designs, so
//     recursion is off the table.
//   - Pass 2 pops vertices in reverse post-order and gathers each
//     component by BFS over the reverse graph.
//   - Condensation: cross-component edges deduplicate into set-valued
//     successor lists; in-degrees are tracked per component.
//
// Why Kosaraju over Tarjan
//
//	Straightforward to implement iteratively, and it needs no auxiliary
//	bookkeeping on the vertices themselves — they are opaque handles.
//
// Determinism
//
//	Pass 1's start order is shuffled by a caller-supplied seedable RNG:
//	reproducible for one seed, variable across seeds, so regression tests
//	lock a seed while fuzz sweeps vary it. Neighbor iteration follows the
//	graph's insertion index, so the full condensation is a pure function of
//	(graph, seed).
//
// Errors
//
//   - core.ErrSchedulingInvariant - a vertex escaped the component map;
//     implies a bug in this package.
//
// Complexity: O(V + E) time, O(V) extra space beyond the condensation.
package scc
