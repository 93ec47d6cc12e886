package formula

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// vars associate variable names with numeric indices.
type vars struct {
	all map[variable]int // all vars, including those created when converting the formula
	pb  map[variable]int // Only the vars that appeared orinigally in the problem
}

// litValue returns the int value associated with the given problem var.
// If the var was not referenced yet, it is created first.
func (vars *vars) litValue(l lit) int {
	val, ok := vars.all[l.v]
	if !ok {
		val = len(vars.all) + 1
		vars.all[l.v] = val
		vars.pb[l.v] = val
	}
	if l.signed {
		return -val
	}
	return val
}

// dummy creates a dummy variable and returns its associated index.
func (vars *vars) dummy() int {
	val := len(vars.all) + 1
	vars.all[dummyVar(fmt.Sprintf("dummy-%d", val))] = val
	return val
}

// A CNF is the representation of a boolean formula as a conjunction of disjunction.
// Literals are non-null ints, DIMACS style: variable i is i, its negation is -i.
// It can be solved by any SAT solver.
type CNF struct {
	vars    vars
	Clauses [][]int
}

// ToCNF returns a CNF representation of the given formula.
// The translation is polynomial in time and space: a dummy variable is introduced
// for each conjunction nested in a disjunction.
func ToCNF(f Formula) *CNF {
	vars := vars{all: make(map[variable]int), pb: make(map[variable]int)}
	clauses := cnfRec(f.nnf(), &vars)
	return &CNF{vars: vars, Clauses: clauses}
}

// NbVars returns the number of variables of the CNF, dummy ones included.
func (cnf *CNF) NbVars() int {
	return len(cnf.vars.all)
}

// Trivial reports whether the CNF contains an empty clause, i.e. is UNSAT
// without any search.
func (cnf *CNF) Trivial() bool {
	for _, c := range cnf.Clauses {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

// Model associates each problem variable with the binding value returns for
// its index. Dummy variables are not part of the returned model.
func (cnf *CNF) Model(value func(idx int) bool) Model {
	m := make(Model, len(cnf.vars.pb))
	for v, idx := range cnf.vars.pb {
		m[v.name] = value(idx)
	}
	return m
}

// Dimacs writes the DIMACS CNF version of the formula on w.
// The original names of variables is associated with their DIMACS integer counterparts
// in comments, between the prolog and the set of clauses.
// For instance, if the variable "a" is associated with the index 1, there will be a comment line
// "c a=1".
func Dimacs(f Formula, w io.Writer) error {
	return ToCNF(f).Dimacs(w)
}

// Dimacs writes cnf on w in the DIMACS format.
func (cnf *CNF) Dimacs(w io.Writer) error {
	prefix := fmt.Sprintf("p cnf %d %d\n", cnf.NbVars(), len(cnf.Clauses))
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("could not write DIMACS output: %w", err)
	}
	pbVars := make([]string, 0, len(cnf.vars.pb))
	for v := range cnf.vars.pb {
		pbVars = append(pbVars, v.name)
	}
	sort.Strings(pbVars)
	for _, v := range pbVars {
		idx := cnf.vars.pb[pbVar(v)]
		line := fmt.Sprintf("c %s=%d\n", v, idx)
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	for _, clause := range cnf.Clauses {
		strClause := make([]string, len(clause))
		for i, lit := range clause {
			strClause[i] = strconv.Itoa(lit)
		}
		line := fmt.Sprintf("%s 0\n", strings.Join(strClause, " "))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	return nil
}

// transforms the f NNF formula into a CNF formula.
func cnfRec(f Formula, vars *vars) [][]int {
	switch f := f.(type) {
	case lit:
		return [][]int{{vars.litValue(f)}}
	case and:
		var res [][]int
		for _, sub := range f {
			res = append(res, cnfRec(sub, vars)...)
		}
		return res
	case or:
		var res [][]int
		var lits []int
		for _, sub := range f {
			switch sub := sub.(type) {
			case lit:
				lits = append(lits, vars.litValue(sub))
			case and:
				// d -> sub: every clause of sub is guarded by d.
				d := vars.dummy()
				lits = append(lits, d)
				for _, sub2 := range sub {
					for _, clause := range cnfRec(sub2, vars) {
						res = append(res, append(clause, -d))
					}
				}
			default:
				panic("unexpected or in or")
			}
		}
		res = append(res, lits)
		return res
	case trueConst: // True clauses are ignored
		return [][]int{}
	case falseConst:
		return [][]int{{}}
	default:
		panic("invalid NNF formula")
	}
}
