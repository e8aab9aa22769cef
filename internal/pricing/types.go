package pricing

import "github.com/jwaldner/forgecheck/internal/finmath"

// OptionKind distinguishes calls from puts.
type OptionKind string

const (
	Call OptionKind = "call"
	Put  OptionKind = "put"
)

// ExerciseStyle distinguishes European from American exercise.
type ExerciseStyle string

const (
	European ExerciseStyle = "european"
	American ExerciseStyle = "american"
)

// OptionSpec describes one option pricing request. Immutable per call.
type OptionSpec struct {
	S     float64 // spot price of the underlying
	K     float64 // strike price
	R     float64 // annualized risk-free rate
	Sigma float64 // annualized volatility
	T     float64 // time to expiry in years
	Q     float64 // continuous dividend yield
	Kind  OptionKind
	Style ExerciseStyle
	Steps int // lattice time steps, binomial model only
}

// Intrinsic returns the immediate exercise value of the spec.
func (s OptionSpec) Intrinsic() float64 {
	if s.Kind == Put {
		return finmath.PutPayoff(s.S, s.K)
	}
	return finmath.CallPayoff(s.S, s.K)
}

// payoff returns the exercise value for an arbitrary underlying price.
func (s OptionSpec) payoff(price float64) float64 {
	if s.Kind == Put {
		return finmath.PutPayoff(price, s.K)
	}
	return finmath.CallPayoff(price, s.K)
}

// Greeks are the closed-form price sensitivities. Theta is per calendar day,
// vega is per 1 percentage point of volatility, rho per 1 percentage point
// of rate.
type Greeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

// Result is a closed-form pricing result. Greeks is nil when the Greeks are
// not applicable (degenerate T <= 0), never a numeric zero.
type Result struct {
	Price     float64
	Greeks    *Greeks
	Intrinsic float64
	TimeValue float64
}

// LatticeResult is a binomial pricing result. U, D and P are the per-step
// up/down factors and risk-neutral probability, reported for diagnostics.
type LatticeResult struct {
	Price     float64
	U         float64
	D         float64
	P         float64
	Intrinsic float64
	TimeValue float64
}
