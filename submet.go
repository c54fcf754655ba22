package submet

import (
	"context"
	"slices"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/submet/internal/linalg"
	"github.com/hupe1980/submet/metric"
)

// Engine computes subspace distances under a single metric.
//
// An Engine holds only its validated configuration. Every result is
// returned by value, so a configured Engine may be shared by concurrent
// callers.
type Engine struct {
	eval   *metric.Evaluator
	opts   options
	logger *Logger
}

// PairResult is the outcome of comparing two subspaces.
type PairResult struct {
	// Distance is the configured metric applied to Angles.
	Distance float64
	// Angles are the principal angles in ascending order. There are
	// min(kx, ky) of them.
	Angles []float64
	// RotatedX is Qx·U, the principal vectors of X (ambient x len(Angles)).
	RotatedX *mat.Dense
	// RotatedY is Qy·V, the principal vectors of Y (ambient x len(Angles)).
	RotatedY *mat.Dense
}

// New creates an Engine for the given metric.
// It returns *ErrConfiguration if m is not a supported metric.
func New(m metric.Metric, optFns ...Option) (*Engine, error) {
	eval, err := metric.NewEvaluator(m)
	if err != nil {
		return nil, translateError(err)
	}

	opts := applyOptions(optFns)

	return &Engine{
		eval:   eval,
		opts:   opts,
		logger: opts.logger.WithMetric(m.String()),
	}, nil
}

// NewFromName creates an Engine for the metric with the given name, e.g.
// "Grassmann" or "binetcauchy".
// It returns *ErrConfiguration if the name is not recognized.
func NewFromName(name string, optFns ...Option) (*Engine, error) {
	m, err := metric.Parse(name)
	if err != nil {
		return nil, translateError(err)
	}
	return New(m, optFns...)
}

// Metric returns the configured metric.
func (e *Engine) Metric() metric.Metric {
	return e.eval.Metric()
}

// Vector reshapes v into a single-column basis (len(v) x 1).
// v is copied. An empty v yields an empty matrix, which every Fit rejects.
func Vector(v []float64) *mat.Dense {
	if len(v) == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(len(v), 1, slices.Clone(v))
}

// FitPair computes the distance between the subspaces spanned by the
// columns of x and y.
//
// Any mat.Vector (such as *mat.VecDense) is a single-column basis. If y is
// nil, x is compared with itself, which measures numerical
// self-consistency and yields a distance close to zero.
//
// Shapes are validated before any decomposition: both bases must be
// non-empty, share the same number of rows, and have no more columns than
// rows. The bases need not have the same number of columns; the angles are
// truncated to the smaller dimension.
func (e *Engine) FitPair(ctx context.Context, x, y mat.Matrix) (*PairResult, error) {
	start := time.Now()

	res, err := e.fitPair(x, y)

	ambient := 0
	if x != nil {
		ambient, _ = x.Dims()
	}
	if err != nil {
		e.logger.LogFitPair(ctx, ambient, 0, 0, err)
	} else {
		e.logger.LogFitPair(ctx, ambient, len(res.Angles), res.Distance, nil)
	}
	e.opts.metricsCollector.RecordFitPair(time.Since(start), err)

	return res, err
}

func (e *Engine) fitPair(x, y mat.Matrix) (*PairResult, error) {
	self := y == nil
	if self {
		y = x
	}
	if err := validatePair(x, y); err != nil {
		return nil, err
	}

	qx, err := orthonormalize(x)
	if err != nil {
		return nil, err
	}
	qy := qx
	if !self {
		if qy, err = orthonormalize(y); err != nil {
			return nil, err
		}
	}

	angles, err := linalg.PrincipalAngles(qx, qy)
	if err != nil {
		return nil, translateError(err)
	}

	d, err := e.eval.Evaluate(angles.Theta)
	if err != nil {
		return nil, translateError(err)
	}

	return &PairResult{
		Distance: d,
		Angles:   angles.Theta,
		RotatedX: linalg.Rotate(qx, angles.U),
		RotatedY: linalg.Rotate(qy, angles.V),
	}, nil
}

// distance runs the per-pair pipeline on bases that are already
// orthonormal, without forming the rotated bases.
func (e *Engine) distance(qx, qy *mat.Dense) (float64, error) {
	angles, err := linalg.PrincipalAngles(qx, qy)
	if err != nil {
		return 0, translateError(err)
	}
	d, err := e.eval.Evaluate(angles.Theta)
	if err != nil {
		return 0, translateError(err)
	}
	return d, nil
}

func validatePair(x, y mat.Matrix) error {
	if err := validateBasis(x); err != nil {
		return err
	}
	if err := validateBasis(y); err != nil {
		return err
	}
	rx, _ := x.Dims()
	ry, _ := y.Dims()
	if rx != ry {
		return translateError(&linalg.ErrAmbient{X: rx, Y: ry})
	}
	return nil
}

func validateBasis(a mat.Matrix) error {
	if a == nil {
		return translateError(linalg.ErrEmpty)
	}
	return translateError(linalg.CheckBasis(a))
}

func orthonormalize(a mat.Matrix) (*mat.Dense, error) {
	q, err := linalg.Orthonormalize(a)
	if err != nil {
		return nil, translateError(err)
	}
	return q, nil
}
