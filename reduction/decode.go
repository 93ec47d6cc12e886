package reduction

import (
	"fmt"
	"strings"

	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/tunnel"
)

// A Step is a move of a decoded path, from one node to the next.
type Step struct {
	Action     tunnel.Action // nil if the model did not define the move
	From, To   int
	FromHeight int
	ToHeight   int
}

// Edge returns the edge the step goes through.
func (s Step) Edge() tunnel.Edge {
	return tunnel.Edge{From: s.From, To: s.To}
}

// An Issue is an inconsistency found at a given position of a model.
type Issue struct {
	Pos int
	Msg string
}

func (i Issue) String() string {
	return fmt.Sprintf("pos %d: %s", i.Pos, i.Msg)
}

// A ModelError is returned by Decode when the model does not describe a
// well-defined path. This cannot happen for a model of Formula(net, length).
type ModelError struct {
	Issues []Issue
}

func (e *ModelError) Error() string {
	strs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		strs[i] = issue.String()
	}
	return "inconsistent model: " + strings.Join(strs, "; ")
}

type state struct {
	node, height int
	count        int
}

type decoder struct {
	m      formula.Model
	v      *Vars
	issues []Issue
}

func (d *decoder) issuef(pos int, format string, args ...interface{}) {
	d.issues = append(d.issues, Issue{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// state finds the (node, height) pair that holds at pos.
// If several do, the first one in (node, height) order is kept.
func (d *decoder) state(net tunnel.Network, pos int) state {
	st := state{node: -1, height: -1}
	for n := 0; n < net.NumNodes(); n++ {
		for h := 0; h < d.v.StackSize(); h++ {
			if !d.m.Value(d.v.Path(n, pos, h)) {
				continue
			}
			if st.count == 0 {
				st.node, st.height = n, h
			}
			st.count++
		}
	}
	switch {
	case st.count == 0:
		d.issuef(pos, "no node")
	case st.count > 1:
		d.issuef(pos, "%d (node, height) pairs", st.count)
	}
	return st
}

// symbol reads the symbol of the cell at (pos, height).
func (d *decoder) symbol(pos, height int) tunnel.Symbol {
	a := d.m.Value(d.v.Symbol(tunnel.A, pos, height))
	b := d.m.Value(d.v.Symbol(tunnel.B, pos, height))
	if a == b {
		d.issuef(pos, "undefined symbol at height %d", height)
	}
	if a {
		return tunnel.A
	}
	return tunnel.B
}

// Decode reads the path of the given length described by m, a model of
// Formula(net, length).
// It always returns length steps. If m does not describe a well-defined path,
// the steps are a best effort and a *ModelError lists the problems: when a
// position holds several states, the first one in (node, height) order is used,
// and a step whose state is unknown has a nil Action.
func Decode(m formula.Model, net tunnel.Network, length int) ([]Step, error) {
	d := &decoder{m: m, v: NewVars(length)}
	states := make([]state, length+1)
	for pos := range states {
		states[pos] = d.state(net, pos)
	}
	steps := make([]Step, length)
	for pos := range steps {
		src, tgt := states[pos], states[pos+1]
		step := Step{From: src.node, To: tgt.node, FromHeight: src.height, ToHeight: tgt.height}
		if src.count > 0 && tgt.count > 0 {
			switch tgt.height - src.height {
			case 0:
				step.Action = tunnel.Transmit{Symbol: d.symbol(pos, src.height)}
			case 1:
				step.Action = tunnel.Push{Lower: d.symbol(pos, src.height), Upper: d.symbol(pos+1, tgt.height)}
			case -1:
				step.Action = tunnel.Pop{Lower: d.symbol(pos+1, tgt.height), Upper: d.symbol(pos, src.height)}
			default:
				d.issuef(pos, "height goes from %d to %d", src.height, tgt.height)
			}
		}
		steps[pos] = step
	}
	if len(d.issues) > 0 {
		return steps, &ModelError{Issues: d.issues}
	}
	return steps, nil
}

// FormatPath returns a one-line description of the path made of steps, such as
// "s -push(A,B)-> a -pop(A,B)-> d".
func FormatPath(net tunnel.Network, steps []Step) string {
	name := func(n int) string {
		if n < 0 || n >= net.NumNodes() {
			return "?"
		}
		return net.Name(n)
	}
	if len(steps) == 0 {
		return name(net.Initial())
	}
	var sb strings.Builder
	sb.WriteString(name(steps[0].From))
	for _, s := range steps {
		action := "?"
		if s.Action != nil {
			action = s.Action.String()
		}
		fmt.Fprintf(&sb, " -%s-> %s", action, name(s.To))
	}
	return sb.String()
}
