package schedgraph

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteDOT renders the digraph as GraphViz DOT. Callee ports draw as boxes,
// update blocks as ellipses; vertices emit in insertion order so output is
// stable for one build.
func (g *Graph) WriteDOT(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("digraph clsched {\n")
	sb.WriteString("  rankdir=TB;\n")
	for _, v := range g.Verts {
		shape := "ellipse"
		if g.Callee[v] {
			shape = "box"
		}
		fmt.Fprintf(&sb, "  %q [shape=%s];\n", v.VertexName(), shape)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "  %q -> %q;\n", e.U.VertexName(), e.V.VertexName())
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

// DumpDOT writes the DOT rendering to path, truncating any existing file.
func (g *Graph) DumpDOT(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("schedgraph: dump DAG: %w", err)
	}
	defer f.Close()

	return g.WriteDOT(f)
}
