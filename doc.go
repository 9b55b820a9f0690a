// Package hvgo computes the exact dominated hypervolume of Pareto fronts
// with the WFG algorithm.
//
// The hypervolume of a front is the measure of the region dominated by its
// points and bounded by a reference point. hvgo computes it exactly for any
// number of objectives, and can alternatively return an explicit signed
// decomposition of that region into axis-aligned boxes.
//
// # Quick Start
//
//	hv, _ := hvgo.Hypervolume([][]float64{{1, 5}, {3, 3}, {5, 1}}, nil)
//	fmt.Println(hv) // 13
//
// # Batches
//
// An Engine processes many fronts in one call. Scratch memory is sized once
// for the largest front in the batch and reused for every front:
//
//	eng := hvgo.New(hvgo.WithLogLevel(slog.LevelDebug))
//	vols, _ := eng.Hypervolume(fronts, model.Reference{10, 10, 10})
//
// Coordinates are measured as absolute distance to the reference, so the
// reference may sit on either side of the front. Dominated and duplicate
// points are dropped before the engine runs.
//
// # Decomposition
//
//	lists, _ := eng.Decompose(fronts, nil)
//	for _, r := range lists[0].Rects() {
//		fmt.Println(r.Sign, r.Lower, r.Upper)
//	}
//
// The signed volumes of every list sum to the hypervolume of its front.
//
// # Concurrency
//
// Each call builds its own recursion state, so an Engine may be shared by
// goroutines. A single call is single-threaded.
package hvgo
