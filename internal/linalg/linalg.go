package linalg

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// CosineTolerance is how far a singular value of Qxᵀ·Qy may exceed 1 before
// it is treated as a numeric failure instead of rounding noise.
const CosineTolerance = 1e-8

var (
	// ErrEmpty is returned for a matrix with no rows or no columns.
	ErrEmpty = errors.New("linalg: empty matrix")
	// ErrNonFinite is returned when a matrix contains NaN or Inf.
	ErrNonFinite = errors.New("linalg: non-finite matrix entry")
	// ErrSVDFailed is returned when the SVD does not converge.
	ErrSVDFailed = errors.New("linalg: SVD factorization failed")
)

// ErrWide indicates a basis with more columns than rows, which cannot span
// a subspace of that dimension.
type ErrWide struct {
	Rows, Cols int
}

func (e *ErrWide) Error() string {
	return fmt.Sprintf("linalg: %dx%d basis has more columns than rows", e.Rows, e.Cols)
}

// ErrAmbient indicates two bases living in different ambient spaces.
type ErrAmbient struct {
	X, Y int
}

func (e *ErrAmbient) Error() string {
	return fmt.Sprintf("linalg: ambient dimension mismatch: %d vs %d", e.X, e.Y)
}

// ErrCosineRange indicates a singular value outside [0, 1+CosineTolerance].
type ErrCosineRange struct {
	Value float64
}

func (e *ErrCosineRange) Error() string {
	return fmt.Sprintf("linalg: cosine %v outside [-1, 1]", e.Value)
}

// CheckBasis validates that a can be orthonormalized.
func CheckBasis(a mat.Matrix) error {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return ErrEmpty
	}
	if c > r {
		return &ErrWide{Rows: r, Cols: c}
	}
	return nil
}

// CheckFinite reports ErrNonFinite if any entry of a is NaN or ±Inf.
func CheckFinite(a mat.Matrix) error {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFinite
			}
		}
	}
	return nil
}

// Orthonormalize returns the thin Q factor (rows x cols) of the QR
// factorization of a. R is discarded.
func Orthonormalize(a mat.Matrix) (*mat.Dense, error) {
	if err := CheckBasis(a); err != nil {
		return nil, err
	}
	if err := CheckFinite(a); err != nil {
		return nil, err
	}

	r, c := a.Dims()

	var qr mat.QR
	qr.Factorize(a)

	var q mat.Dense
	qr.QTo(&q)

	return mat.DenseCopyOf(q.Slice(0, r, 0, c)), nil
}

// Angles holds the principal angles between two subspaces together with the
// rotations that align their orthonormal bases.
type Angles struct {
	// Theta are the principal angles in ascending order.
	Theta []float64
	// Cosines are the clipped singular values of Qxᵀ·Qy, descending.
	Cosines []float64
	// U (kx x k) and V (ky x k) rotate Qx and Qy onto the principal vectors.
	U, V *mat.Dense
}

// PrincipalAngles computes the principal angles between the subspaces
// spanned by the orthonormal bases qx and qy. The number of angles is
// min(kx, ky).
//
// Angles are arccos of the singular values of S = Qxᵀ·Qy. arccos cannot
// resolve angles much below 1e-8, so angles under π/4 are recomputed as
// arcsin of the singular values of Qy − Qx·S.
//
// If both subspaces are 1-dimensional the decomposition is skipped: the
// absolute inner product is the cosine of the single angle and both
// rotations are the 1x1 identity.
func PrincipalAngles(qx, qy mat.Matrix) (*Angles, error) {
	rx, kx := qx.Dims()
	ry, ky := qy.Dims()
	if rx != ry {
		return nil, &ErrAmbient{X: rx, Y: ry}
	}

	var s mat.Dense
	s.Mul(qx.T(), qy)

	var (
		cos  []float64
		u, v *mat.Dense
	)
	if kx == 1 && ky == 1 {
		cos = []float64{math.Abs(s.At(0, 0))}
		u = mat.NewDense(1, 1, []float64{1})
		v = mat.NewDense(1, 1, []float64{1})
	} else {
		var svd mat.SVD
		if ok := svd.Factorize(&s, mat.SVDThin); !ok {
			return nil, ErrSVDFailed
		}
		cos = svd.Values(nil)
		u, v = &mat.Dense{}, &mat.Dense{}
		svd.UTo(u)
		svd.VTo(v)
	}

	theta := make([]float64, len(cos))
	refine := false
	for i, c := range cos {
		if math.IsNaN(c) || c > 1+CosineTolerance || c < -1-CosineTolerance {
			return nil, &ErrCosineRange{Value: c}
		}
		c = clip(c)
		cos[i] = c
		theta[i] = math.Acos(c)
		if c*c > 0.5 {
			refine = true
		}
	}

	if refine {
		sin, err := sines(qx, qy, &s)
		if err != nil {
			return nil, err
		}
		for i, c := range cos {
			if c*c > 0.5 {
				theta[i] = math.Asin(math.Min(sin[i], 1))
			}
		}
	}

	return &Angles{Theta: theta, Cosines: cos, U: u, V: v}, nil
}

// sines returns the singular values of Qy − Qx·S in ascending order. The
// first min(kx, ky) of them are the sines of the principal angles.
func sines(qx, qy mat.Matrix, s *mat.Dense) ([]float64, error) {
	var proj, b mat.Dense
	proj.Mul(qx, s)
	b.Sub(qy, &proj)

	if _, c := b.Dims(); c == 1 {
		return []float64{mat.Norm(b.ColView(0), 2)}, nil
	}

	var svd mat.SVD
	if ok := svd.Factorize(&b, mat.SVDNone); !ok {
		return nil, ErrSVDFailed
	}
	sv := svd.Values(nil)
	slices.Reverse(sv)
	return sv, nil
}

// Rotate returns q·r.
func Rotate(q, r mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Mul(q, r)
	return &out
}

func clip(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}
