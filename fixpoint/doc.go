// Package fixpoint synthesizes the re-entrant super-block that executes a
// multi-vertex strongly connected component until its trigger variables
// stabilize.
//
// Contract per iteration
//
//  1. Snapshot every trigger variable attached to the component's internal
//     edges (variables with no producer inside the component contribute no
//     snapshot — only internal edges are consulted).
//  2. Execute the component's intra-order once.
//  3. Re-read the same variables; if all equal their snapshots, the block
//     has converged and returns.
//  4. Otherwise repeat. After MaxIters iterations the block fails with a
//     CombinationalLoopError naming every member vertex.
//
// Comparison is structural equality between the snapshot and the
// post-iteration value (see core.Trigger). No code is generated at
// schedule time: the wrapper iterates a closure list.
//
// Errors
//
//   - *CombinationalLoopError - the component diverged; surfaces to the
//     caller of Tick or of a wrapped method. Never swallowed, no retries.
package fixpoint
