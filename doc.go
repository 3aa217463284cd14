// Package clsched is the cycle-accurate scheduling core of a
// hardware-modeling simulation framework.
//
// 🚀 What is clsched?
//
//	A design is a hierarchy of components carrying update blocks
//	(side-effect functions over signals) and callee methods (entry points
//	the host test bench invokes). clsched takes the constraint digraph a
//	prior DAG-generation pass produced and turns it into one linear
//	per-cycle schedule that behaves as if every block ran concurrently:
//
//	  • schedgraph/ — materialize the vertex & edge sets, callee ports and
//	    ready-guards included, with forward/reverse adjacency
//	  • scc/       — Kosaraju condensation of strongly connected components
//	  • order/     — Kahn topological sort over the condensation plus
//	    intra-SCC linearization heuristics
//	  • fixpoint/  — per-SCC fixed-point super-blocks with a runtime
//	    combinational-loop guard
//	  • openloop/  — the open-loop pass: schedule linking, the methodless
//	    projection, and cursor wrappers that let the host call methods in
//	    any order while the cycle advances underneath
//	  • clconfig/  — YAML-loadable driver configuration
//
// ✨ Why clsched?
//
//   - Cycle-accurate      — every happens-before constraint is honored
//   - Open-loop           — the host drives methods; the schedule follows
//   - Fail-loud           — divergent combinational cycles are detected at
//     runtime and reported with every member named
//   - Deterministic       — seedable randomization, reproducible per seed
//
// Quick ASCII example:
//
//	    up_a ──▶ up_b ──▶ enq.rdy ──▶ enq
//	      ▲        │
//	      └────────┘        (up_a/up_b form one fixed-point super-block)
//
// Start with openloop.Apply to schedule an elaborated root component, then
// drive it with Sim.Tick or by calling the wrapped ports directly.
package clsched
