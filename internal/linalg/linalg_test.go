package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestOrthonormalize(t *testing.T) {
	a := mat.NewDense(4, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
		7, 9,
	})

	q, err := Orthonormalize(a)
	require.NoError(t, err)

	r, c := q.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)

	var gram mat.Dense
	gram.Mul(q.T(), q)
	assert.True(t, mat.EqualApprox(&gram, mat.NewDiagDense(2, []float64{1, 1}), 1e-12))

	// Q spans the columns of a: projecting a onto span(Q) leaves it unchanged.
	var proj, back mat.Dense
	proj.Mul(q.T(), a)
	back.Mul(q, &proj)
	assert.True(t, mat.EqualApprox(&back, a, 1e-10))
}

func TestOrthonormalizeInvalid(t *testing.T) {
	t.Run("Wide", func(t *testing.T) {
		_, err := Orthonormalize(mat.NewDense(2, 3, nil))
		var wide *ErrWide
		require.ErrorAs(t, err, &wide)
		assert.Equal(t, 2, wide.Rows)
		assert.Equal(t, 3, wide.Cols)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Orthonormalize(&mat.Dense{})
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("NonFinite", func(t *testing.T) {
		_, err := Orthonormalize(mat.NewDense(2, 1, []float64{1, math.Inf(1)}))
		assert.ErrorIs(t, err, ErrNonFinite)
	})
}

func TestPrincipalAnglesDisjointPlanes(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
	})
	y := mat.NewDense(3, 2, []float64{
		0, 1,
		0, 0,
		1, 0,
	})

	qx, err := Orthonormalize(x)
	require.NoError(t, err)
	qy, err := Orthonormalize(y)
	require.NoError(t, err)

	a, err := PrincipalAngles(qx, qy)
	require.NoError(t, err)

	require.Len(t, a.Theta, 2)
	// The planes share e1, the remaining directions are orthogonal.
	assert.InDelta(t, 0, a.Theta[0], 1e-8)
	assert.InDelta(t, math.Pi/2, a.Theta[1], 1e-8)
	assert.LessOrEqual(t, a.Theta[0], a.Theta[1])
	assert.InDelta(t, 1, a.Cosines[0], 1e-12)
}

func TestPrincipalAnglesScalarBranch(t *testing.T) {
	qx := mat.NewDense(2, 1, []float64{1, 0})
	qy := mat.NewDense(2, 1, []float64{-math.Sqrt2 / 2, -math.Sqrt2 / 2})

	a, err := PrincipalAngles(qx, qy)
	require.NoError(t, err)

	require.Len(t, a.Theta, 1)
	assert.InDelta(t, math.Pi/4, a.Theta[0], 1e-12)
	assert.Equal(t, 1.0, a.U.At(0, 0))
	assert.Equal(t, 1.0, a.V.At(0, 0))
}

func TestPrincipalAnglesUnequalDimensions(t *testing.T) {
	qx := mat.NewDense(3, 1, []float64{0, 0, 1})
	qy := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
	})

	a, err := PrincipalAngles(qx, qy)
	require.NoError(t, err)

	require.Len(t, a.Theta, 1)
	assert.InDelta(t, math.Pi/2, a.Theta[0], 1e-12)

	ur, uc := a.U.Dims()
	vr, vc := a.V.Dims()
	assert.Equal(t, []int{1, 1}, []int{ur, uc})
	assert.Equal(t, []int{2, 1}, []int{vr, vc})
}

func TestPrincipalAnglesClipsRounding(t *testing.T) {
	qx := mat.NewDense(1, 1, []float64{1 + 1e-12})
	qy := mat.NewDense(1, 1, []float64{1})

	a, err := PrincipalAngles(qx, qy)
	require.NoError(t, err)
	assert.InDelta(t, 0, a.Theta[0], 1e-10)
	assert.Equal(t, 1.0, a.Cosines[0])
}

func TestPrincipalAnglesSmallAngleAccuracy(t *testing.T) {
	const eps = 1e-9

	qx := mat.NewDense(2, 1, []float64{1, 0})
	qy := mat.NewDense(2, 1, []float64{math.Cos(eps), math.Sin(eps)})

	a, err := PrincipalAngles(qx, qy)
	require.NoError(t, err)
	assert.InDelta(t, eps, a.Theta[0], 1e-15)
}

func TestPrincipalAnglesSelf(t *testing.T) {
	q, err := Orthonormalize(mat.NewDense(5, 3, []float64{
		1, 2, 0,
		0, 1, 3,
		4, 0, 1,
		2, 2, 2,
		1, 0, 5,
	}))
	require.NoError(t, err)

	a, err := PrincipalAngles(q, q)
	require.NoError(t, err)
	for _, th := range a.Theta {
		assert.InDelta(t, 0, th, 1e-12)
	}
}

func TestPrincipalAnglesCosineOutOfRange(t *testing.T) {
	qx := mat.NewDense(1, 1, []float64{2})
	qy := mat.NewDense(1, 1, []float64{1})

	_, err := PrincipalAngles(qx, qy)
	var cr *ErrCosineRange
	require.ErrorAs(t, err, &cr)
	assert.Equal(t, 2.0, cr.Value)
}

func TestPrincipalAnglesAmbientMismatch(t *testing.T) {
	_, err := PrincipalAngles(mat.NewDense(3, 1, nil), mat.NewDense(2, 1, nil))
	var amb *ErrAmbient
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, 3, amb.X)
	assert.Equal(t, 2, amb.Y)
}

func TestRotate(t *testing.T) {
	q := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	r := mat.NewDense(2, 2, []float64{0, 1, 1, 0})

	got := Rotate(q, r)
	assert.True(t, mat.Equal(got, r))
}
