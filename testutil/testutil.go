package testutil

import (
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// GaussianBasis returns a rows x cols matrix with standard normal entries.
// For rows >= cols its columns are linearly independent with probability 1.
func (r *RNG) GaussianBasis(rows, cols int) *mat.Dense {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gaussianLocked(rows, cols)
}

func (r *RNG) gaussianLocked(rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = r.rand.NormFloat64()
	}
	return mat.NewDense(rows, cols, data)
}

// OrthonormalBasis returns a random rows x cols matrix with orthonormal
// columns.
func (r *RNG) OrthonormalBasis(rows, cols int) *mat.Dense {
	g := r.GaussianBasis(rows, cols)

	var qr mat.QR
	qr.Factorize(g)

	var q mat.Dense
	qr.QTo(&q)

	return mat.DenseCopyOf(q.Slice(0, rows, 0, cols))
}

// Rotation returns a random dim x dim orthogonal matrix, uniformly
// distributed over the orthogonal group.
// https://arxiv.org/abs/math-ph/0609050#
func (r *RNG) Rotation(dim int) *mat.Dense {
	z := r.GaussianBasis(dim, dim)

	var qr mat.QR
	qr.Factorize(z)

	var q, rr mat.Dense
	qr.QTo(&q)
	qr.RTo(&rr)

	// Extract the signs of the diagonal from R.
	s := make([]float64, dim)
	for i := range dim {
		if rr.At(i, i) < 0 {
			s[i] = -1.0
		} else {
			s[i] = 1.0
		}
	}

	var out mat.Dense
	out.Mul(&q, mat.NewDiagDense(dim, s))
	return &out
}

// Reparameterize returns b·M for a random, well-conditioned invertible M.
// The result spans the same subspace as b.
func (r *RNG) Reparameterize(b mat.Matrix) *mat.Dense {
	_, cols := b.Dims()

	// A rotation scaled per column is invertible and keeps the condition
	// number bounded by the scale ratio.
	m := r.Rotation(cols)
	for j := range cols {
		scale := 0.5 + r.Float64()
		for i := range cols {
			m.Set(i, j, m.At(i, j)*scale)
		}
	}

	var out mat.Dense
	out.Mul(b, m)
	return &out
}

// Collection returns num random Gaussian bases of shape rows x cols.
func (r *RNG) Collection(num, rows, cols int) []mat.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]mat.Matrix, num)
	for i := range out {
		out[i] = r.gaussianLocked(rows, cols)
	}
	return out
}
