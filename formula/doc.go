// Package formula offers facilities to build generic boolean formulas and to
// translate them to CNF.
//
// SAT solvers usually expect as an input CNF formulas.
// A CNF, or Conjunctive Normal Form, is a set of clauses that must all be true, each clause
// being a set of potentially negated literals. For the clause to be true, at least one of
// these literals must be true.
//
// Manually translating a given boolean formula to an equivalent CNF is tedious and error-prone.
// This package provides a set of logical connectors to define generic logical formulas,
// and ToCNF to translate them, adding variables when needed.
//
// For example, the following boolean formula:
//
//	(a & b) | c
//
// Will be defined with the following code:
//
//	f := Or(And(Var("a"), Var("b")), Var("c"))
//
// And translated to the following CNF, where x1 is a new variable:
//
//	(a | !x1) & (b | !x1) & (x1 | c)
//
// Variables are identified by their name: Var("a") and Var("a") are the same
// proposition. Once a solver found a model of the CNF, CNF.Model maps it back
// to the names of the original variables.
package formula
