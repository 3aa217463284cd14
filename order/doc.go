// Package order linearizes the condensed scheduling DAG: a Kahn topological
// sort over components, then a per-component linearization of multi-vertex
// components.
//
// Tie-break
//
//	When the zero-in-degree frontier offers a choice, the sorter prefers a
//	trivial component whose single vertex is an update block rather than a
//	callee port or ready-guard. Methods scheduled late improve cursor
//	locality: a host-driven call replays less of the cycle prefix. When no
//	such candidate is in the frontier, the oldest entry pops.
//
// Predecessor seeding
//
//	The first component to drain one of a successor's in-degree edges is
//	recorded as that successor's predecessor (first-drainer wins). The
//	intra-component orderer seeds from vertices the predecessor drives, so
//	a single pass of the fixed-point loop often converges.
//
// Intra-component order
//
//   - Trivial component: emit its single vertex.
//   - No predecessor: seed with the member of maximum in-degree restricted
//     to internal edges, ties broken by name.
//   - With predecessor: seed with every member some predecessor-component
//     vertex drives, iterated in name-sorted order.
//   - BFS from the seeds over internal forward edges, appending each
//     member on first visit.
//
// Errors
//
//   - core.ErrSchedulingInvariant - the sort covered fewer components than
//     exist (a cycle among components — impossible unless condensation is
//     broken), or an intra-component BFS failed to reach every member.
//
// Complexity: O(V + E) time overall; sorting member names costs an extra
// O(k log k) per k-member component.
package order
