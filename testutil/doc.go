// Package testutil provides testing utilities for geocell.
//
// This package is intended for use in tests and benchmarks only. It
// generates reproducible random cell coordinates and points so that property
// tests can sweep the id space without importing the packages under test.
//
// # Random Cells
//
//	rng := testutil.NewRNG(seed)
//	face, pos, level := rng.Face(), rng.Pos(), rng.Level(cellid.MaxLevel)
//	id := cellid.FromFacePosLevel(face, pos, level)
//
// # Random Points
//
//	p := rng.Point()   // uniform on the unit sphere
//	ll := rng.LatLng() // same distribution as a LatLng
package testutil
