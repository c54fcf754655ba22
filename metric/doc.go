// Package metric reduces principal angles between two subspaces to a scalar
// distance.
//
// # Supported Metrics
//
//   - Grassmann: sqrt(Σθ²) (default)
//   - Asimov: θ_last
//   - BinetCauchy: sqrt(1 − ∏cos²θ)
//   - Chordal: sqrt(Σsin²θ)
//   - FubiniStudy: arccos(∏cosθ)
//   - Martin: sqrt(ln ∏ 1/cos²θ)
//   - Procrustes: 2·sqrt(Σsin²(θ/2))
//   - Projection: sin(θ_last)
//   - Spectral: 2·sin(θ_last/2)
//
// θ_last is the largest principal angle, the last entry when angles are
// ordered by descending singular value.
//
// # Usage
//
//	m, err := metric.Parse("Chordal")
//	eval, err := metric.NewEvaluator(m)
//	d, err := eval.Evaluate(theta)
package metric
