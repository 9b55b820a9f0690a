// Package wfg implements the WFG exact hypervolume algorithm
// (While, Bradstreet and Barone) and a decomposition variant that emits
// signed hyper-rectangles instead of a scalar.
//
// Inputs are fronts translated so that the reference point is the origin
// and larger objective values are better. Fronts of one to four points are
// handled by closed inclusion-exclusion forms; larger fronts are sliced
// along their last objective and each slice is computed recursively one
// objective down.
//
// All recursion state lives in a Context, which owns a preallocated stack
// of auxiliary fronts sized for the largest front it will see. Nothing is
// allocated on the recursive path.
//
// The engine needs at least two active objectives for fronts of more than
// four points, and two-objective fronts must be mutually non-dominated.
package wfg
