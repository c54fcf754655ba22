package metric

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Metric identifies one of the subspace distances defined over principal angles.
type Metric int

const (
	// Grassmann is the geodesic distance sqrt(Σθ²). It is the default.
	Grassmann Metric = iota
	// Asimov is the largest principal angle.
	Asimov
	// BinetCauchy is sqrt(1 − ∏cos²θ).
	BinetCauchy
	// Chordal is sqrt(Σsin²θ).
	Chordal
	// FubiniStudy is arccos(∏cosθ).
	FubiniStudy
	// Martin is sqrt(ln ∏ 1/cos²θ).
	Martin
	// Procrustes is 2·sqrt(Σsin²(θ/2)).
	Procrustes
	// Projection is sin of the largest principal angle.
	Projection
	// Spectral is 2·sin(θ_last/2).
	Spectral
)

// All lists every supported metric.
var All = []Metric{Asimov, BinetCauchy, Chordal, FubiniStudy, Grassmann, Martin, Procrustes, Projection, Spectral}

// angleTolerance bounds how far an angle may stray outside [0, π/2]
// before Evaluate rejects it.
const angleTolerance = 1e-12

// orthogonalCosine is the magnitude below which a cosine is taken to be
// exactly zero, i.e. the angle is π/2 up to rounding.
const orthogonalCosine = 1e-15

// ErrEmptyAngles is returned when a metric is evaluated on no angles.
var ErrEmptyAngles = errors.New("metric: empty principal angle vector")

// ErrUnknownMetric indicates a metric name or value outside the closed set.
type ErrUnknownMetric struct {
	Name string
}

func (e *ErrUnknownMetric) Error() string {
	return fmt.Sprintf("metric: unknown metric %q", e.Name)
}

// ErrNumericDomain indicates that an angle or a formula result is outside
// the valid numeric domain (NaN, ±Inf or an angle beyond [0, π/2]).
type ErrNumericDomain struct {
	Metric Metric
	Value  float64
	Reason string
}

func (e *ErrNumericDomain) Error() string {
	return fmt.Sprintf("metric %s: numeric domain error: %s (%v)", e.Metric, e.Reason, e.Value)
}

func (m Metric) String() string {
	switch m {
	case Asimov:
		return "Asimov"
	case BinetCauchy:
		return "BinetCauchy"
	case Chordal:
		return "Chordal"
	case FubiniStudy:
		return "FubiniStudy"
	case Grassmann:
		return "Grassmann"
	case Martin:
		return "Martin"
	case Procrustes:
		return "Procrustes"
	case Projection:
		return "Projection"
	case Spectral:
		return "Spectral"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Valid reports whether m is one of the supported metrics.
func (m Metric) Valid() bool {
	return m >= Grassmann && m <= Spectral
}

// Parse parses a metric name. Matching ignores case and surrounding spaces.
func Parse(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asimov":
		return Asimov, nil
	case "binetcauchy":
		return BinetCauchy, nil
	case "chordal":
		return Chordal, nil
	case "fubinistudy":
		return FubiniStudy, nil
	case "grassmann":
		return Grassmann, nil
	case "martin":
		return Martin, nil
	case "procrustes":
		return Procrustes, nil
	case "projection":
		return Projection, nil
	case "spectral":
		return Spectral, nil
	default:
		return Grassmann, &ErrUnknownMetric{Name: s}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &ErrUnknownMetric{Name: m.String()}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Func reduces a principal angle vector to a scalar distance.
// theta must be non-empty and ordered ascending.
type Func func(theta []float64) float64

// Provider returns the formula for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case Asimov:
		return asimov, nil
	case BinetCauchy:
		return binetCauchy, nil
	case Chordal:
		return chordal, nil
	case FubiniStudy:
		return fubiniStudy, nil
	case Grassmann:
		return grassmann, nil
	case Martin:
		return martin, nil
	case Procrustes:
		return procrustes, nil
	case Projection:
		return projection, nil
	case Spectral:
		return spectral, nil
	default:
		return nil, &ErrUnknownMetric{Name: m.String()}
	}
}

// Evaluate computes metric m over theta.
func Evaluate(m Metric, theta []float64) (float64, error) {
	e, err := NewEvaluator(m)
	if err != nil {
		return 0, err
	}
	return e.Evaluate(theta)
}

// Evaluator applies a single validated metric. It is stateless and safe for
// concurrent use.
type Evaluator struct {
	metric Metric
	fn     Func
}

// NewEvaluator validates m and binds its formula.
func NewEvaluator(m Metric) (*Evaluator, error) {
	fn, err := Provider(m)
	if err != nil {
		return nil, err
	}
	return &Evaluator{metric: m, fn: fn}, nil
}

// Metric returns the bound metric.
func (e *Evaluator) Metric() Metric {
	return e.metric
}

// Evaluate reduces theta to a distance. Non-finite results are reported as
// *ErrNumericDomain rather than returned.
func (e *Evaluator) Evaluate(theta []float64) (float64, error) {
	if len(theta) == 0 {
		return 0, ErrEmptyAngles
	}
	for _, t := range theta {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, &ErrNumericDomain{Metric: e.metric, Value: t, Reason: "non-finite principal angle"}
		}
		if t < -angleTolerance || t > math.Pi/2+angleTolerance {
			return 0, &ErrNumericDomain{Metric: e.metric, Value: t, Reason: "principal angle outside [0, pi/2]"}
		}
	}

	d := e.fn(theta)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, &ErrNumericDomain{Metric: e.metric, Value: d, Reason: "non-finite distance"}
	}
	return d, nil
}

func last(theta []float64) float64 {
	return theta[len(theta)-1]
}

func asimov(theta []float64) float64 {
	return last(theta)
}

func binetCauchy(theta []float64) float64 {
	p := 1.0
	for _, t := range theta {
		c := math.Cos(t)
		p *= c * c
	}
	return math.Sqrt(1 - p)
}

func chordal(theta []float64) float64 {
	var sum float64
	for _, t := range theta {
		s := math.Sin(t)
		sum += s * s
	}
	return math.Sqrt(sum)
}

func fubiniStudy(theta []float64) float64 {
	p := 1.0
	for _, t := range theta {
		p *= math.Cos(t)
	}
	return math.Acos(p)
}

func grassmann(theta []float64) float64 {
	var sum float64
	for _, t := range theta {
		sum += t * t
	}
	return math.Sqrt(sum)
}

// martin diverges to +Inf once any angle reaches π/2.
func martin(theta []float64) float64 {
	p := 1.0
	for _, t := range theta {
		c := math.Cos(t)
		// math.Cos(math.Pi/2) is ~6e-17, not zero.
		if math.Abs(c) < orthogonalCosine {
			return math.Inf(1)
		}
		p *= 1 / (c * c)
	}
	return math.Sqrt(math.Log(p))
}

func procrustes(theta []float64) float64 {
	var sum float64
	for _, t := range theta {
		s := math.Sin(t / 2)
		sum += s * s
	}
	return 2 * math.Sqrt(sum)
}

func projection(theta []float64) float64 {
	return math.Sin(last(theta))
}

func spectral(theta []float64) float64 {
	return 2 * math.Sin(last(theta)/2)
}
