// Package linalg implements the numerical core of subspace comparison:
// QR orthonormalization of a basis and principal angles via the SVD of the
// cross inner-product matrix of two orthonormal bases.
package linalg
