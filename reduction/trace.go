package reduction

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/tunnel"
)

// A Cell is the content of a stack cell in a model.
type Cell uint8

const (
	// Empty cells hold no symbol.
	Empty Cell = iota
	CellA
	CellB
	// Conflict cells hold both symbols.
	Conflict
)

func (c Cell) String() string {
	switch c {
	case CellA:
		return "A"
	case CellB:
		return "B"
	case Conflict:
		return "X"
	default:
		return " "
	}
}

// A State is a (node, height) pair.
type State struct {
	Node, Height int
}

// A Frame is what a model says about a position.
type Frame struct {
	Pos    int
	States []State // should hold exactly one element
	Stack  []Cell
	// IllDefined is true when a cell is in conflict, or when a non-empty cell
	// lies above an empty one.
	IllDefined bool
}

// Warnings returns the problems found in f.
func (f *Frame) Warnings() []string {
	var res []string
	switch {
	case len(f.States) == 0:
		res = append(res, "no node at that position")
	case len(f.States) > 1:
		res = append(res, fmt.Sprintf("%d (node, height) pairs at that position", len(f.States)))
	}
	if f.IllDefined {
		res = append(res, "ill-defined stack")
	}
	return res
}

// A Trace is a human-readable view of a model, position by position.
type Trace struct {
	net    tunnel.Network
	Frames []Frame
}

// NewTrace reads the frames of m, a model for paths of length bound.
// It never fails: problems are recorded in the frames.
func NewTrace(m formula.Model, net tunnel.Network, bound int) *Trace {
	v := NewVars(bound)
	t := &Trace{net: net, Frames: make([]Frame, bound+1)}
	for pos := range t.Frames {
		f := Frame{Pos: pos, Stack: make([]Cell, v.StackSize())}
		for n := 0; n < net.NumNodes(); n++ {
			for h := 0; h < v.StackSize(); h++ {
				if m.Value(v.Path(n, pos, h)) {
					f.States = append(f.States, State{n, h})
				}
			}
		}
		aboveTop := false
		for h := range f.Stack {
			a := m.Value(v.Symbol(tunnel.A, pos, h))
			b := m.Value(v.Symbol(tunnel.B, pos, h))
			switch {
			case a && b:
				f.Stack[h] = Conflict
				f.IllDefined = true
			case a:
				f.Stack[h] = CellA
			case b:
				f.Stack[h] = CellB
			default:
				f.Stack[h] = Empty
				aboveTop = true
			}
			if aboveTop && f.Stack[h] != Empty {
				f.IllDefined = true
			}
		}
		t.Frames[pos] = f
	}
	return t
}

// Consistent reports whether no frame has a warning.
func (t *Trace) Consistent() bool {
	for i := range t.Frames {
		if len(t.Frames[i].Warnings()) > 0 {
			return false
		}
	}
	return true
}

// Write writes the trace on w. If colored is true, warnings are highlighted
// with ANSI escape codes.
func (t *Trace) Write(w io.Writer, colored bool) error {
	warn := color.New(color.FgYellow, color.Bold)
	if colored {
		warn.EnableColor()
	} else {
		warn.DisableColor()
	}
	var sb strings.Builder
	for i := range t.Frames {
		f := &t.Frames[i]
		fmt.Fprintf(&sb, "At pos %d:\nState:", f.Pos)
		for _, st := range f.States {
			fmt.Fprintf(&sb, " (%s,%d)", t.net.Name(st.Node), st.Height)
		}
		sb.WriteString("\nStack: ")
		for _, c := range f.Stack {
			sb.WriteString("|" + c.String())
		}
		sb.WriteString("|\n")
		for _, msg := range f.Warnings() {
			warn.Fprintf(&sb, "Warning: %s\n", msg)
		}
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("could not write trace: %w", err)
	}
	return nil
}

// Render writes the uncolored trace of m on w.
func Render(w io.Writer, m formula.Model, net tunnel.Network, bound int) error {
	return NewTrace(m, net, bound).Write(w, false)
}
