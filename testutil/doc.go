// Package testutil provides testing utilities for hvgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random fronts and computing a
// brute-force reference hypervolume.
//
// # Random Fronts
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(50, 3)   // uniform [0, 1)
//	nd := rng.SpherePoints(50, 3)     // mutually non-dominated
//	ties := rng.GridPoints(50, 3, 4)  // many ties and duplicates
//
// # Ground Truth
//
//	hv := testutil.BruteForceHV(pts[:10])
package testutil
