package tunnel

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes a Graphviz representation of net on w.
// Edges are labelled with their capabilities; the edges listed in highlight,
// typically the ones of a path, are drawn in bold red.
func WriteDOT(w io.Writer, net Network, highlight []Edge) error {
	hl := make(map[Edge]bool, len(highlight))
	for _, e := range highlight {
		hl[e] = true
	}
	var sb strings.Builder
	sb.WriteString("digraph network {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	for n := 0; n < net.NumNodes(); n++ {
		attrs := ""
		switch n {
		case net.Initial():
			attrs = " [shape=doublecircle, style=filled, fillcolor=lightblue]"
		case net.Final():
			attrs = " [shape=doublecircle, style=filled, fillcolor=lightgreen]"
		}
		fmt.Fprintf(&sb, "  %q%s;\n", net.Name(n), attrs)
	}
	for _, e := range net.Edges() {
		caps := Capabilities(net, e)
		labels := make([]string, len(caps))
		for i, a := range caps {
			labels[i] = a.String()
		}
		style := ""
		if hl[e] {
			style = ", color=red, penwidth=2"
		}
		fmt.Fprintf(&sb, "  %q -> %q [label=\"%s\"%s];\n", net.Name(e.From), net.Name(e.To), strings.Join(labels, `\n`), style)
	}
	sb.WriteString("}\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("could not write DOT output: %w", err)
	}
	return nil
}
