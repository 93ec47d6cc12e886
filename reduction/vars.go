package reduction

import (
	"fmt"

	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/tunnel"
)

// StackSize returns the number of stack cells needed by paths of the given
// length: heights range over [0, StackSize(length)).
// A path cannot push more than length/2 times and still pop back to height 0.
func StackSize(length int) int {
	return length/2 + 1
}

type pathKey struct {
	node, pos, height int
}

type symbolKey struct {
	symbol      tunnel.Symbol
	pos, height int
}

// Vars generates the propositions of the reduction for a given path length.
// Equal keys always yield the same proposition, whatever the Vars instance:
// propositions are identified by their name.
//
// Arguments must satisfy 0 <= pos <= length and 0 <= height < StackSize(length).
// This is not checked.
type Vars struct {
	length    int
	stackSize int
	path      map[pathKey]formula.Formula
	symbol    map[symbolKey]formula.Formula
}

// NewVars returns a generator for paths of the given length.
func NewVars(length int) *Vars {
	return &Vars{
		length:    length,
		stackSize: StackSize(length),
		path:      make(map[pathKey]formula.Formula),
		symbol:    make(map[symbolKey]formula.Formula),
	}
}

// Length returns the length of the paths.
func (v *Vars) Length() int { return v.length }

// StackSize returns the number of stack cells.
func (v *Vars) StackSize() int { return v.stackSize }

// Path returns the proposition "the path is on node at pos, and the top of its
// stack is at height".
func (v *Vars) Path(node, pos, height int) formula.Formula {
	key := pathKey{node, pos, height}
	if f, ok := v.path[key]; ok {
		return f
	}
	f := formula.Var(PathVarName(node, pos, height))
	v.path[key] = f
	return f
}

// Symbol returns the proposition "at pos, the stack cell at height holds sym".
// When both symbols are false, the cell is empty.
func (v *Vars) Symbol(sym tunnel.Symbol, pos, height int) formula.Formula {
	key := symbolKey{sym, pos, height}
	if f, ok := v.symbol[key]; ok {
		return f
	}
	f := formula.Var(SymbolVarName(sym, pos, height))
	v.symbol[key] = f
	return f
}

// Empty returns the proposition "at pos, the stack cell at height is empty".
func (v *Vars) Empty(pos, height int) formula.Formula {
	return formula.And(formula.Not(v.Symbol(tunnel.A, pos, height)), formula.Not(v.Symbol(tunnel.B, pos, height)))
}

// Occupied returns the proposition "the path is on node at pos", whatever the height.
func (v *Vars) Occupied(node, pos int) formula.Formula {
	subs := make([]formula.Formula, v.stackSize)
	for h := range subs {
		subs[h] = v.Path(node, pos, h)
	}
	return formula.Or(subs...)
}

// PathVarName is the name of the proposition returned by Vars.Path.
func PathVarName(node, pos, height int) string {
	return fmt.Sprintf("x[node=%d,pos=%d,height=%d]", node, pos, height)
}

// SymbolVarName is the name of the proposition returned by Vars.Symbol.
func SymbolVarName(sym tunnel.Symbol, pos, height int) string {
	return fmt.Sprintf("y[%v,pos=%d,height=%d]", sym, pos, height)
}
