// Package finmath holds the small numeric utilities shared by the decision
// and option valuation engines: intrinsic payoffs, continuous discounting,
// and the standard normal distribution functions.
package finmath

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Tolerance is the default floating tolerance for probability sums and
// cross-checks against reference values.
const Tolerance = 1e-6

// NormCDF returns Φ(x), the standard normal cumulative distribution function.
func NormCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormPDF returns φ(x), the standard normal density.
func NormPDF(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}

// Discount returns the continuous discount factor e^(-rate*t).
func Discount(rate, t float64) float64 {
	return math.Exp(-rate * t)
}

// CallPayoff returns the intrinsic value of a call: max(s-k, 0).
func CallPayoff(s, k float64) float64 {
	return math.Max(s-k, 0)
}

// PutPayoff returns the intrinsic value of a put: max(k-s, 0).
func PutPayoff(s, k float64) float64 {
	return math.Max(k-s, 0)
}
