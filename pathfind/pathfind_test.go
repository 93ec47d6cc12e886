package pathfind

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/tunnelsat/formula"
	"github.com/crillab/tunnelsat/reduction"
	"github.com/crillab/tunnelsat/sat"
	"github.com/crillab/tunnelsat/tunnel"
)

const tunnels = `
initial s;
final d;
s -> d : push(A,B);          // a shortcut that leaves B on the stack
s -> r1 : push(A,B);
r1 -> r2 : transmit(B);
r2 -> d : pop(A,B);
s -> r2 : transmit(A);       // r2 cannot pop from [A]
`

func parse(t testing.TB, desc string) tunnel.Network {
	t.Helper()
	g, err := tunnel.ParseText(strings.NewReader(desc))
	require.NoError(t, err)
	return g
}

func TestShortest(t *testing.T) {
	net := parse(t, tunnels)
	for _, name := range sat.Names() {
		s, err := sat.New(name, sat.Options{})
		require.NoError(t, err)
		p, err := New(s, nil).Shortest(net, 10)
		require.NoError(t, err, name)
		assert.Equal(t, 3, p.Length, name)
		assert.Equal(t, "s -push(A,B)-> r1 -transmit(B)-> r2 -pop(A,B)-> d", reduction.FormatPath(net, p.Steps), name)
		assert.Len(t, p.Edges(), 3)
		assert.True(t, reduction.NewTrace(p.Model, net, p.Length).Consistent())
	}
}

func TestSolveNoPath(t *testing.T) {
	net := parse(t, tunnels)
	f := New(&sat.Gophersat{}, nil)
	_, err := f.Solve(net, 1)
	assert.True(t, errors.Is(err, ErrNoPath))
	_, err = f.Solve(net, -1)
	assert.Error(t, err)
	_, err = f.Shortest(net, 2)
	assert.True(t, errors.Is(err, ErrNoPath))
	assert.EqualError(t, err, "no path of length at most 2")
}

func TestShortestSameEndpoints(t *testing.T) {
	net := parse(t, "initial s; final s; s -> a : transmit(A);")
	p, err := New(&sat.Gophersat{}, nil).Shortest(net, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Length)
	assert.Empty(t, p.Steps)
}

// stubSolver returns a fixed result.
type stubSolver struct {
	res sat.Result
	err error
}

func (s stubSolver) Solve(formula.Formula) (sat.Result, error) { return s.res, s.err }

func TestSolveSolverFailures(t *testing.T) {
	net := parse(t, tunnels)
	_, err := New(stubSolver{err: errors.New("crashed")}, nil).Solve(net, 3)
	assert.EqualError(t, err, "could not solve reduction for length 3: crashed")

	_, err = New(stubSolver{res: sat.Result{Status: sat.Indet}}, nil).Shortest(net, 3)
	assert.True(t, errors.Is(err, ErrIndeterminate))

	// A model that says nothing cannot be decoded.
	_, err = New(stubSolver{res: sat.Result{Status: sat.Sat, Model: formula.Model{}}}, nil).Solve(net, 3)
	var merr *reduction.ModelError
	assert.True(t, errors.As(err, &merr))
}

func ExampleFinder_Shortest() {
	g := tunnel.NewGraph()
	s, r, d := g.AddNode("s"), g.AddNode("r"), g.AddNode("d")
	g.AddEdge(s, r, tunnel.Push{Lower: tunnel.A, Upper: tunnel.B})
	g.AddEdge(r, d, tunnel.Pop{Lower: tunnel.A, Upper: tunnel.B})
	g.SetInitial(s)
	g.SetFinal(d)
	p, err := New(&sat.Gophersat{}, nil).Shortest(g, 10)
	if err != nil {
		fmt.Printf("no path: %v", err)
		return
	}
	fmt.Println(reduction.FormatPath(g, p.Steps))
	// Output: s -push(A,B)-> r -pop(A,B)-> d
}
