package reduction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crillab/tunnelsat/tunnel"
)

func TestValidate(t *testing.T) {
	net := network(t, pushPop)
	const s, d, a, b = 0, 1, 2, 3
	push := Step{Action: tunnel.Push{Lower: tunnel.A, Upper: tunnel.B}, From: s, To: a, FromHeight: 0, ToHeight: 1}
	carry := Step{Action: tunnel.Transmit{Symbol: tunnel.B}, From: a, To: b, FromHeight: 1, ToHeight: 1}
	pop := Step{Action: tunnel.Pop{Lower: tunnel.A, Upper: tunnel.B}, From: b, To: d, FromHeight: 1, ToHeight: 0}
	valid := []Step{push, carry, pop}

	with := func(i int, change func(*Step)) []Step {
		res := append([]Step{}, valid...)
		change(&res[i])
		return res
	}

	tests := []struct {
		name   string
		steps  []Step
		length int
		step   int // faulty step, -2 when valid
		reason string
	}{
		{"valid", valid, 3, -2, ""},
		{"wrong length", valid, 4, -1, ""},
		{"wrong start", with(0, func(st *Step) { st.From = a }), 3, 0, ""},
		{"wrong end", with(2, func(st *Step) { st.To = a }), 3, 2, ""},
		{"broken chain", []Step{push, {Action: tunnel.Transmit{Symbol: tunnel.B}, From: b, To: a, FromHeight: 1, ToHeight: 1}, pop}, 3, 1, ""},
		{"forbidden action", with(1, func(st *Step) { st.Action = tunnel.Transmit{Symbol: tunnel.A} }), 3, 1, ""},
		{"wrong height", with(1, func(st *Step) { st.ToHeight = 0 }), 3, 1, "invalid path: step 1: height goes from 1 to 0, transmit(B) changes it by 0"},
		{"no action", with(1, func(st *Step) { st.Action = nil }), 3, 1, ""},
		{"unknown node", with(1, func(st *Step) { st.To = 12 }), 3, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(net, tt.steps, tt.length)
			if tt.step == -2 {
				assert.NoError(t, err)
				return
			}
			if tt.reason != "" {
				assert.EqualError(t, err, tt.reason)
			}
			var verr *ValidationError
			if assert.True(t, errors.As(err, &verr), "error %v", err) {
				assert.Equal(t, tt.step, verr.Step, verr.Error())
			}
		})
	}
}

func TestValidateStackDiscipline(t *testing.T) {
	// A single push on a two-node network, with a length of 1: the stack has
	// one cell only.
	g := tunnel.NewGraph()
	s, d := g.AddNode("s"), g.AddNode("d")
	g.AddEdge(s, d, tunnel.Push{Lower: tunnel.A, Upper: tunnel.B}, tunnel.Pop{Lower: tunnel.A, Upper: tunnel.A})
	g.SetInitial(s)
	g.SetFinal(d)

	err := Validate(g, []Step{{Action: tunnel.Push{Lower: tunnel.A, Upper: tunnel.B}, From: s, To: d, ToHeight: 1}}, 1)
	assert.EqualError(t, err, "invalid path: step 0: stack overflow")
	err = Validate(g, []Step{{Action: tunnel.Pop{Lower: tunnel.A, Upper: tunnel.A}, From: s, To: d}}, 1)
	assert.EqualError(t, err, "invalid path: step 0: stack underflow")

	assert.NoError(t, Validate(network(t, "initial s; final s;"), nil, 0))
	assert.Error(t, Validate(g, nil, 0))
}
