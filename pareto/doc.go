// Package pareto provides Pareto-dominance primitives over dense point sets:
// lexicographic sorting, non-dominated filtering and a cross-set dominance
// test.
//
// Smaller is better by default. Pass WithMaximize to treat larger values as
// better.
//
// Non-dominated filtering sorts the points lexicographically, so a point can
// only be dominated by points that precede it, then compares every point
// against the surviving points before it:
//
//	res, err := pareto.Find(model.FromRows(points))
//	for _, pos := range res.NDPos[:res.K] {
//		// points[pos] is non-dominated
//	}
//
// Exact duplicates are resolved deterministically: the copy with the lowest
// input index survives and the others are reported as dominated by it.
package pareto
