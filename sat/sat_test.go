package sat

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	f "github.com/crillab/tunnelsat/formula"
)

func vars(names ...string) []f.Formula {
	res := make([]f.Formula, len(names))
	for i, n := range names {
		res[i] = f.Var(n)
	}
	return res
}

// pigeons states that n pigeons sit in n-1 holes, one per hole.
func pigeons(n int) f.Formula {
	var res []f.Formula
	for p := 0; p < n; p++ {
		var holes []f.Formula
		for h := 0; h < n-1; h++ {
			holes = append(holes, f.Var(fmt.Sprintf("p%d-h%d", p, h)))
		}
		res = append(res, f.Or(holes...))
	}
	for h := 0; h < n-1; h++ {
		var ps []f.Formula
		for p := 0; p < n; p++ {
			ps = append(ps, f.Var(fmt.Sprintf("p%d-h%d", p, h)))
		}
		res = append(res, f.AtMostOne(ps...))
	}
	return f.And(res...)
}

func backendsUnderTest(t *testing.T) map[string]Solver {
	res := make(map[string]Solver)
	for _, name := range Names() {
		s, err := New(name, Options{Timeout: time.Minute})
		require.NoError(t, err)
		res[name] = s
	}
	return res
}

func TestSolve(t *testing.T) {
	abcde := vars("a", "b", "c", "d", "e")
	tests := []struct {
		name   string
		f      f.Formula
		status Status
	}{
		{"unique", f.And(f.Var("a"), f.ExactlyOne(abcde...)), Sat},
		{"unique conflict", f.And(f.Var("a"), f.Or(f.Var("b"), f.Var("c")), f.ExactlyOne(abcde...)), Unsat},
		{"tautology", f.True, Sat},
		{"contradiction", f.And(f.Var("a"), f.False), Unsat},
		{"nested", f.Or(f.And(f.Var("a"), f.Not(f.Var("b"))), f.And(f.Not(f.Var("a")), f.Var("b"))), Sat},
		{"pigeons", pigeons(4), Unsat},
	}
	for name, s := range backendsUnderTest(t) {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				res, err := s.Solve(tt.f)
				require.NoError(t, err)
				assert.Equal(t, tt.status, res.Status)
				if res.Status == Sat {
					assert.True(t, res.Model.Value(tt.f), "model %v does not satisfy the formula", res.Model)
				} else {
					assert.Nil(t, res.Model)
				}
			})
		}
	}
}

func TestSolveUniqueModel(t *testing.T) {
	form := f.And(f.Var("a"), f.ExactlyOne(vars("a", "b", "c", "d", "e")...))
	for name, s := range backendsUnderTest(t) {
		res, err := s.Solve(form)
		require.NoError(t, err, name)
		assert.Equal(t, f.Model{"a": true, "b": false, "c": false, "d": false, "e": false}, res.Model, name)
	}
}

func TestNew(t *testing.T) {
	s, err := New("", Options{})
	require.NoError(t, err)
	assert.IsType(t, &Gophersat{}, s)
	_, err = New("minisat", Options{})
	assert.True(t, errors.Is(err, ErrUnknownBackend))
	assert.Equal(t, []string{"gini", "gophersat"}, Names())
	assert.Equal(t, "UNSAT", Unsat.String())
}
