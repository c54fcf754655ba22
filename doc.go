// Package submet computes distances between linear subspaces of a common
// ambient space.
//
// A subspace is given by any basis: a matrix whose columns span it. The
// columns need not be orthonormal. Each comparison orthonormalizes both
// bases (QR), computes the principal angles between them from the SVD of
// the cross inner-product matrix, and reduces the angles to a scalar with
// one of the metrics in package metric.
//
// # Quick Start
//
//	eng, _ := submet.New(metric.Grassmann)
//	res, _ := eng.FitPair(ctx, x, y)
//	fmt.Println(res.Distance, res.Angles)
//
// Metrics can also be selected by name, which is validated up front:
//
//	eng, err := submet.NewFromName("BinetCauchy")
//
// # Batched Comparison
//
// FitAll compares every basis of one collection with every basis of
// another and returns the distance matrix. Pairs are evaluated in parallel.
//
//	d, _ := eng.FitAll(ctx, xs, ys)   // len(xs) x len(ys)
//	d, _ := eng.FitAll(ctx, xs, nil)  // symmetric, zero diagonal
//
// To treat every row (or column) of a matrix as a 1-dimensional subspace:
//
//	d, _ := eng.FitAllAxis(ctx, samples, nil, submet.Rows)
//
// # Shapes
//
// A basis must have at least one column and no more columns than rows.
// Compared bases must have the same number of rows. Bases of different
// dimension may be compared: there are min(kx, ky) principal angles.
// Use Vector or any mat.Vector for a 1-dimensional subspace.
//
// # Errors
//
// Errors are typed: *ErrConfiguration, *ErrDimensionMismatch,
// *ErrNumericDomain and *ErrDecomposition. Use errors.As to inspect them.
package submet
