// Package core defines the data model shared by every scheduling stage:
// executable vertices (update blocks, callee ports, ready-guards), the
// happens-before edge type, trigger variables for fixed-point convergence,
// and the inbound surfaces handed over by the upstream DAG-generation pass
// and the elaborated root component.
//
// What
//
//   - Vertex: an opaque executable handle, identified by object reference.
//     Implemented by *Block and *CalleePort.
//   - Block: a named side-effect function executed once per cycle.
//   - CalleePort / NBInterface: externally callable entry points on the
//     root, optionally guarded by a ready predicate.
//   - Edge: a happens-before constraint "U executes before V within one
//     cycle". Edge sets are map[Edge]struct{} — deduplicated by value.
//   - Trigger: a (Snapshot, Changed) closure pair over one signal, used to
//     decide convergence of a strongly connected component.
//   - DAG: the products of the upstream DAG-generation pass.
//   - Root: reflection surface of the elaborated top-level component.
//
// Why
//
//	Every later stage (graph build, condensation, ordering, fixed-point
//	wrapping, cursor installation) exchanges these types; keeping them in
//	one leaf package avoids import cycles between the stages.
//
// Errors
//
//   - PassOrderError          - a required upstream product is missing.
//   - ErrDuplicateMethod      - a method object registered twice.
//   - ErrSchedulingInvariant  - an internal invariant of the core broke.
package core
