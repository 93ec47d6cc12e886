package reduction

import (
	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/tunnel"
)

// Boundary pins the path at both ends: at position 0 it is on the initial node
// with the stack [A], at position v.Length() it is on the final node with the
// stack [A].
func Boundary(net tunnel.Network, v *Vars) formula.Formula {
	return formula.And(
		endpoint(net, v, net.Initial(), 0),
		endpoint(net, v, net.Final(), v.Length()),
	)
}

func endpoint(net tunnel.Network, v *Vars, node, pos int) formula.Formula {
	res := make([]formula.Formula, 0, (net.NumNodes()+2)*v.StackSize())
	for n := 0; n < net.NumNodes(); n++ {
		for h := 0; h < v.StackSize(); h++ {
			if n == node && h == 0 {
				res = append(res, v.Path(n, pos, h))
			} else {
				res = append(res, formula.Not(v.Path(n, pos, h)))
			}
		}
	}
	res = append(res, v.Symbol(tunnel.A, pos, 0), formula.Not(v.Symbol(tunnel.B, pos, 0)))
	for h := 1; h < v.StackSize(); h++ {
		res = append(res, v.Empty(pos, h))
	}
	return formula.And(res...)
}

// Uniqueness states that at each position, exactly one (node, height) pair holds.
func Uniqueness(net tunnel.Network, v *Vars) formula.Formula {
	res := make([]formula.Formula, 0, v.Length()+1)
	for pos := 0; pos <= v.Length(); pos++ {
		pairs := make([]formula.Formula, 0, net.NumNodes()*v.StackSize())
		for n := 0; n < net.NumNodes(); n++ {
			for h := 0; h < v.StackSize(); h++ {
				pairs = append(pairs, v.Path(n, pos, h))
			}
		}
		res = append(res, formula.ExactlyOne(pairs...))
	}
	return formula.And(res...)
}

// SimplePath states that no node is visited twice.
func SimplePath(net tunnel.Network, v *Vars) formula.Formula {
	res := make([]formula.Formula, 0, net.NumNodes())
	for n := 0; n < net.NumNodes(); n++ {
		occ := make([]formula.Formula, v.Length()+1)
		for pos := range occ {
			occ[pos] = v.Occupied(n, pos)
		}
		res = append(res, formula.AtMostOne(occ...))
	}
	return formula.And(res...)
}
