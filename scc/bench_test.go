package scc_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/clsched/core"
	"github.com/katalvlaran/clsched/scc"
	"github.com/katalvlaran/clsched/schedgraph"
)

// BenchmarkCondense measures condensation of a sparse random digraph the
// size of a mid-scale design.
func BenchmarkCondense(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(1))
	blks := make([]*core.Block, n)
	for i := range blks {
		blks[i] = &core.Block{Name: fmt.Sprintf("up_%04d", i), Run: func() error { return nil }}
	}
	cons := make(map[core.Edge]struct{})
	for i := 0; i < 3*n; i++ {
		cons[core.Edge{U: blks[rng.Intn(n)], V: blks[rng.Intn(n)]}] = struct{}{}
	}
	g, err := schedgraph.Build(benchRoot{}, &core.DAG{FinalUpblks: blks, AllConstraints: cons})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scc.Condense(g, rand.New(rand.NewSource(42))); err != nil {
			b.Fatal(err)
		}
	}
}

type benchRoot struct{}

func (benchRoot) ComponentName() string { return "top" }
func (benchRoot) AllUpdateFF() []*core.Block { return nil }
func (benchRoot) CalleePorts() []*core.CalleePort { return nil }
func (benchRoot) NBInterfaces() []*core.NBInterface { return nil }
func (benchRoot) LineTrace() string { return "" }
