// Package testutil provides testing utilities for submet.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded generator for random subspace bases.
//
// # Random Bases
//
//	rng := testutil.NewRNG(seed)
//	b := rng.GaussianBasis(10, 3)      // 10x3, full rank with probability 1
//	q := rng.OrthonormalBasis(10, 3)   // orthonormal columns
//	r := rng.Rotation(3)               // random 3x3 orthogonal matrix
//	c := rng.Collection(8, 10, 3)      // 8 random 10x3 bases
//
// # Same Subspace, Different Basis
//
//	b2 := rng.Reparameterize(b)        // b·M for a random invertible M
package testutil
