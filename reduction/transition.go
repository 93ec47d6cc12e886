package reduction

import (
	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/tunnel"
)

// Transitions states that consecutive positions are linked by an edge of net,
// through an action the edge allows and that is consistent with the stack.
// It also keeps the stack well-formed at every position: a cell holds at most
// one symbol, the cells up to the current height are filled and the cells
// above are empty.
func Transitions(net tunnel.Network, v *Vars) formula.Formula {
	var res []formula.Formula
	for pos := 0; pos <= v.Length(); pos++ {
		res = append(res, stackShape(net, v, pos)...)
	}
	succ := tunnel.Successors(net)
	for pos := 0; pos < v.Length(); pos++ {
		for u := 0; u < net.NumNodes(); u++ {
			for h := 0; h < v.StackSize(); h++ {
				x := v.Path(u, pos, h)
				res = append(res, frame(v, x, pos, h)...)
				res = append(res, formula.Implies(x, formula.Or(moves(net, v, succ[u], pos, h)...)))
			}
		}
	}
	return formula.And(res...)
}

func stackShape(net tunnel.Network, v *Vars, pos int) []formula.Formula {
	var res []formula.Formula
	for k := 0; k < v.StackSize(); k++ {
		res = append(res, formula.Or(formula.Not(v.Symbol(tunnel.A, pos, k)), formula.Not(v.Symbol(tunnel.B, pos, k))))
	}
	for n := 0; n < net.NumNodes(); n++ {
		for h := 0; h < v.StackSize(); h++ {
			notX := formula.Not(v.Path(n, pos, h))
			for k := 0; k <= h; k++ {
				res = append(res, formula.Or(notX, v.Symbol(tunnel.A, pos, k), v.Symbol(tunnel.B, pos, k)))
			}
			for k := h + 1; k < v.StackSize(); k++ {
				res = append(res,
					formula.Or(notX, formula.Not(v.Symbol(tunnel.A, pos, k))),
					formula.Or(notX, formula.Not(v.Symbol(tunnel.B, pos, k))))
			}
		}
	}
	return res
}

// frame states that, when x holds, the cells strictly below height are the
// same at pos and pos+1. No action touches them.
func frame(v *Vars, x formula.Formula, pos, height int) []formula.Formula {
	res := make([]formula.Formula, 0, 4*height)
	for k := 0; k < height; k++ {
		for _, s := range tunnel.Symbols {
			cur, next := v.Symbol(s, pos, k), v.Symbol(s, pos+1, k)
			res = append(res,
				formula.Or(formula.Not(x), formula.Not(cur), next),
				formula.Or(formula.Not(x), cur, formula.Not(next)))
		}
	}
	return res
}

// moves lists the possible successor states of a path that is at height h at
// pos and leaves through one of edges.
func moves(net tunnel.Network, v *Vars, edges []tunnel.Edge, pos, h int) []formula.Formula {
	var res []formula.Formula
	for _, e := range edges {
		for _, a := range tunnel.AllActions() {
			if !net.Allows(e, a) {
				continue
			}
			switch a := a.(type) {
			case tunnel.Transmit:
				res = append(res, formula.And(
					v.Path(e.To, pos+1, h),
					v.Symbol(a.Symbol, pos, h),
					v.Symbol(a.Symbol, pos+1, h)))
			case tunnel.Push:
				if h+1 >= v.StackSize() {
					continue
				}
				res = append(res, formula.And(
					v.Path(e.To, pos+1, h+1),
					v.Symbol(a.Lower, pos, h),
					v.Symbol(a.Lower, pos+1, h),
					v.Symbol(a.Upper, pos+1, h+1)))
			case tunnel.Pop:
				if h == 0 {
					continue
				}
				res = append(res, formula.And(
					v.Path(e.To, pos+1, h-1),
					v.Symbol(a.Upper, pos, h),
					v.Symbol(a.Lower, pos, h-1)))
			}
		}
	}
	return res
}
