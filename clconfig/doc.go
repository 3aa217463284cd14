// Package clconfig loads driver-level simulation settings from YAML and
// supplies the defaults the open-loop pass assumes when no file is given.
//
// Fields
//
//   - line_trace: print the root's per-cycle trace string (default false).
//   - seed:       RNG seed for the condensation's start-order shuffle
//     (default 42; regression suites lock it, fuzz sweeps vary it).
//   - max_iters:  fixed-point iteration bound per component (default 100).
//   - dump_dag:   when non-empty, write the scheduling digraph as GraphViz
//     DOT to this path (the MAMBA_DAG environment variable does the same
//     without a config file).
//
// Usage
//
//	cfg, err := clconfig.Load("sim.yaml")
//	if err != nil { ... }
//	sim, err := openloop.Apply(top, dag, openloop.WithConfig(cfg))
//
// Errors
//
//   - ErrBadConfig - a field fails validation (non-positive max_iters);
//     YAML syntax errors wrap the decoder's error.
package clconfig
