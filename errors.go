package submet

import (
	"errors"
	"fmt"

	"github.com/hupe1980/submet/internal/linalg"
	"github.com/hupe1980/submet/metric"
)

var (
	// ErrInvalidAxis is returned when an Axis is neither Rows nor Cols.
	ErrInvalidAxis = errors.New("invalid axis")
)

// ErrConfiguration indicates an engine configured with a metric outside the
// supported set. It is detected by New/NewFromName, never during a fit.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrConfiguration struct {
	Metric string
	cause  error
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("invalid configuration: unknown metric %q", e.Metric)
}

func (e *ErrConfiguration) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates malformed input: an empty basis or
// collection, a basis with more columns than rows, or two bases whose
// ambient dimensions differ.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Reason   string
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %s: expected %d, got %d", e.Reason, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrNumericDomain indicates a value outside the domain of arccos or of a
// metric formula, e.g. the Martin distance of orthogonal subspaces.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrNumericDomain struct {
	Value float64
	cause error
}

func (e *ErrNumericDomain) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("numeric domain error: %v", e.cause)
	}
	return fmt.Sprintf("numeric domain error: %v", e.Value)
}

func (e *ErrNumericDomain) Unwrap() error { return e.cause }

// ErrDecomposition indicates that orthonormalization or the SVD failed,
// typically because the input contains NaN or Inf.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDecomposition struct {
	cause error
}

func (e *ErrDecomposition) Error() string {
	return fmt.Sprintf("decomposition failed: %v", e.cause)
}

func (e *ErrDecomposition) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Configuration.
	var um *metric.ErrUnknownMetric
	if errors.As(err, &um) {
		return &ErrConfiguration{Metric: um.Name, cause: err}
	}

	// Shape.
	if errors.Is(err, linalg.ErrEmpty) {
		return &ErrDimensionMismatch{Reason: "empty basis", Expected: 1, Actual: 0, cause: err}
	}
	var wide *linalg.ErrWide
	if errors.As(err, &wide) {
		return &ErrDimensionMismatch{Reason: "subspace dimension exceeds ambient dimension", Expected: wide.Rows, Actual: wide.Cols, cause: err}
	}
	var amb *linalg.ErrAmbient
	if errors.As(err, &amb) {
		return &ErrDimensionMismatch{Reason: "ambient dimension", Expected: amb.X, Actual: amb.Y, cause: err}
	}

	// Numeric domain.
	var cr *linalg.ErrCosineRange
	if errors.As(err, &cr) {
		return &ErrNumericDomain{Value: cr.Value, cause: err}
	}
	var nd *metric.ErrNumericDomain
	if errors.As(err, &nd) {
		return &ErrNumericDomain{Value: nd.Value, cause: err}
	}
	if errors.Is(err, metric.ErrEmptyAngles) {
		return &ErrNumericDomain{cause: err}
	}

	// Decomposition.
	if errors.Is(err, linalg.ErrNonFinite) || errors.Is(err, linalg.ErrSVDFailed) {
		return &ErrDecomposition{cause: err}
	}

	return err
}
