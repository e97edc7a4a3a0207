// Package testutil provides testing utilities for ntree.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random points and computing exact
// nearest-neighbor and radius results by linear scan.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, 3)         // uniform [0, 1)
//	points = rng.ClusteredPoints(1000, 3, 4, .01) // tight clusters inside [0, 1)
//
// # Exact Search (Ground Truth)
//
//	want := testutil.BruteForceNearest(points, query, k)
//	inside := testutil.BruteForceRadius(points, query, radius)
package testutil
