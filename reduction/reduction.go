package reduction

import (
	"io"

	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/tunnel"
)

// A Reduction is the formula whose models are the simple paths of a given
// length from the initial to the final node of a network, along with the
// generator of its propositions.
type Reduction struct {
	Vars    *Vars
	Formula formula.Formula
}

// Build returns the reduction of the path problem of the given length on net.
func Build(net tunnel.Network, length int) *Reduction {
	v := NewVars(length)
	f := formula.And(
		Boundary(net, v),
		Uniqueness(net, v),
		SimplePath(net, v),
		Transitions(net, v),
	)
	return &Reduction{Vars: v, Formula: f}
}

// Formula returns the formula of Build(net, length).
func Formula(net tunnel.Network, length int) formula.Formula {
	return Build(net, length).Formula
}

// Dimacs writes the CNF translation of the reduction on w, in the DIMACS format.
func (r *Reduction) Dimacs(w io.Writer) error {
	return formula.Dimacs(r.Formula, w)
}
