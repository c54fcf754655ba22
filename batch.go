package submet

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/submet/internal/linalg"
)

// Collection is an ordered set of subspace bases. All bases compared in one
// FitAll call must share the same ambient dimension (row count).
type Collection []mat.Matrix

// Axis selects whether the rows or the columns of a matrix enumerate the
// samples when it is split into a Collection.
type Axis int

const (
	// Rows treats each row as one sample.
	Rows Axis = iota
	// Cols treats each column as one sample.
	Cols
)

func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Cols:
		return "cols"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Split turns every row (Rows) or column (Cols) of m into a single-column
// basis. The returned bases are copies.
func Split(m mat.Matrix, axis Axis) (Collection, error) {
	if m == nil {
		return nil, translateError(linalg.ErrEmpty)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, translateError(linalg.ErrEmpty)
	}

	switch axis {
	case Rows:
		out := make(Collection, r)
		for i := range r {
			out[i] = mat.NewVecDense(c, mat.Row(nil, i, m))
		}
		return out, nil
	case Cols:
		out := make(Collection, c)
		for j := range c {
			out[j] = mat.NewVecDense(r, mat.Col(nil, j, m))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidAxis, axis)
	}
}

// FitAllAxis splits x (and y, if non-nil) along axis and runs FitAll.
func (e *Engine) FitAllAxis(ctx context.Context, x, y mat.Matrix, axis Axis) (*mat.Dense, error) {
	xs, err := Split(x, axis)
	if err != nil {
		return nil, err
	}
	var ys Collection
	if y != nil {
		if ys, err = Split(y, axis); err != nil {
			return nil, err
		}
	}
	return e.FitAll(ctx, xs, ys)
}

// FitAll computes the distance between every basis of xs and every basis of
// ys, returning an len(xs) x len(ys) matrix.
//
// If ys is nil, xs is compared with itself: the result is len(xs) x len(xs),
// symmetric, and its diagonal is exactly zero regardless of rounding.
//
// Each basis is orthonormalized once per call and pairs are evaluated in
// parallel (see WithConcurrency). The first failing pair aborts the batch
// and no partial matrix is returned. Cancelling ctx stops scheduling work
// and returns ctx.Err().
func (e *Engine) FitAll(ctx context.Context, xs, ys Collection) (*mat.Dense, error) {
	start := time.Now()

	self := ys == nil
	if self {
		ys = xs
	}

	d, err := e.fitAll(ctx, xs, ys, self)

	e.logger.LogFitAll(ctx, len(xs), len(ys), self, err)
	e.opts.metricsCollector.RecordFitAll(pairCount(len(xs), len(ys), self), time.Since(start), err)

	return d, err
}

func (e *Engine) fitAll(ctx context.Context, xs, ys Collection, self bool) (*mat.Dense, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, &ErrDimensionMismatch{Reason: "empty collection", Expected: 1, Actual: 0}
	}

	if err := validateCollections(xs, ys, self); err != nil {
		return nil, err
	}

	qx, err := e.orthonormalizeAll(ctx, xs)
	if err != nil {
		return nil, err
	}
	qy := qx
	if !self {
		if qy, err = e.orthonormalizeAll(ctx, ys); err != nil {
			return nil, err
		}
	}

	n, p := len(qx), len(qy)
	out := mat.NewDense(n, p, nil)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.concurrency)

	// One task per row. Every task writes only cells it owns: row i, and in
	// self mode also the mirrored cells (j, i) for j > i.
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			from := 0
			if self {
				from = i + 1
			}
			for j := from; j < p; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				d, err := e.distance(qx[i], qy[j])
				if err != nil {
					return fmt.Errorf("pair (%d, %d): %w", i, j, err)
				}
				out.Set(i, j, d)
				if self {
					out.Set(j, i, d)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancelled ctx may stop scheduling before any task fails.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if self {
		for i := range n {
			out.Set(i, i, 0)
		}
	}

	return out, nil
}

func (e *Engine) orthonormalizeAll(ctx context.Context, c Collection) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(c))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.concurrency)

	for i, b := range c {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			q, err := orthonormalize(b)
			if err != nil {
				return fmt.Errorf("basis %d: %w", i, err)
			}
			out[i] = q
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// validateCollections checks every basis before any decomposition runs.
// All bases must share the ambient dimension of xs[0].
func validateCollections(xs, ys Collection, self bool) error {
	ambient := -1
	check := func(name string, c Collection) error {
		for i, b := range c {
			if err := validateBasis(b); err != nil {
				return fmt.Errorf("%s[%d]: %w", name, i, err)
			}
			r, _ := b.Dims()
			if ambient < 0 {
				ambient = r
			}
			if r != ambient {
				return fmt.Errorf("%s[%d]: %w", name, i, translateError(&linalg.ErrAmbient{X: ambient, Y: r}))
			}
		}
		return nil
	}

	if err := check("x", xs); err != nil {
		return err
	}
	if self {
		return nil
	}
	return check("y", ys)
}

func pairCount(n, p int, self bool) int {
	if self {
		return n * (n - 1) / 2
	}
	return n * p
}
