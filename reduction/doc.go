// Package reduction reduces the search of a path in a tunnel network to SAT,
// and reads paths back from the models the solver finds.
//
// For paths of length n, the stack has StackSize(n) cells and the reduction
// uses two families of propositions:
//
//   - x[node,pos,height] holds iff the path is on node at position pos, with the
//     top of its stack at height;
//   - y[sym,pos,height] holds iff the stack cell at height holds sym at position
//     pos. A cell where both symbols are false is empty.
//
// The formula is the conjunction of four parts: Boundary, Uniqueness,
// SimplePath and Transitions. Decode turns a model into a sequence of steps,
// Validate checks such a sequence against the network, and NewTrace gives a
// position by position view of a model, for debugging purposes.
package reduction
