package openloop

import (
	"io"
	"os"

	"github.com/katalvlaran/clsched/clconfig"
	"github.com/katalvlaran/clsched/fixpoint"
)

// Option customizes the open-loop pass before scheduling begins.
// Option constructors never panic and ignore nil inputs.
type Option func(*options)

// options holds the configurable parameters of one Apply call.
type options struct {
	seed       int64          // condensation start-order shuffle seed
	maxIters   int            // fixed-point bound per component
	lineTrace  bool           // print the root's trace string per cycle
	out        io.Writer      // line-trace destination
	traceHooks []func() error // waveform collectors, between FF and posedge
	dumpDAG    string         // DOT output path; "" disables
}

// defaultOptions mirrors clconfig.Default.
func defaultOptions() options {
	return options{
		seed:     clconfig.Default().Seed,
		maxIters: fixpoint.MaxIters,
		out:      os.Stdout,
	}
}

// WithSeed sets the RNG seed for the condensation's start-order shuffle.
// Scheduling is deterministic for one seed, variable across seeds.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithMaxIters overrides the fixed-point iteration bound. Non-positive
// values keep the default.
func WithMaxIters(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIters = n
		}
	}
}

// WithLineTrace enables or disables the per-cycle trace print.
func WithLineTrace(on bool) Option {
	return func(o *options) { o.lineTrace = on }
}

// WithWriter redirects the line-trace print. Nil is ignored.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithTraceHook appends a tracing hook (VCD writer, text-signal collector)
// executed after the flip-flop sweep, before the posedge flip. Nil is
// ignored; hooks run in installation order.
func WithTraceHook(fn func() error) Option {
	return func(o *options) {
		if fn != nil {
			o.traceHooks = append(o.traceHooks, fn)
		}
	}
}

// WithDumpDAG writes the scheduling digraph as GraphViz DOT to path before
// scheduling. Empty disables (the MAMBA_DAG environment variable still
// applies).
func WithDumpDAG(path string) Option {
	return func(o *options) { o.dumpDAG = path }
}

// WithConfig applies a driver configuration file wholesale. Later options
// override individual fields.
func WithConfig(cfg clconfig.Config) Option {
	return func(o *options) {
		o.seed = cfg.Seed
		o.lineTrace = cfg.LineTrace
		o.dumpDAG = cfg.DumpDAG
		if cfg.MaxIters > 0 {
			o.maxIters = cfg.MaxIters
		}
	}
}
