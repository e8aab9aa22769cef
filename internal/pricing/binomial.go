package pricing

import (
	"fmt"
	"math"

	"github.com/jwaldner/forgecheck/internal/finmath"
)

// Binomial prices an option on a Cox-Ross-Rubinstein lattice.
//
// Per step: dt = T/n, u = e^(sigma*sqrt(dt)), d = 1/u and the risk-neutral
// probability p = (e^((r-q)*dt) - d) / (u - d). Only one layer of option
// values is held at a time; backward induction collapses layer i+1 into
// layer i under the per-step discount e^(-r*dt). American exercise applies
// the intrinsic-value floor at every interior node, not just at expiry.
//
// A risk-neutral probability outside [0,1] is an error, never clamped.
// T <= 0 degenerates to the intrinsic value, matching the closed form.
func Binomial(spec OptionSpec) (*LatticeResult, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	if spec.Steps < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidSteps, spec.Steps)
	}

	intrinsic := spec.Intrinsic()
	if spec.T <= 0 {
		// Expired: the lattice collapses to a single node. The up/down
		// factors degenerate to the identity move.
		return &LatticeResult{Price: intrinsic, U: 1, D: 1, Intrinsic: intrinsic}, nil
	}
	if spec.Sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma=%v", ErrInvalidVolatility, spec.Sigma)
	}

	n := spec.Steps
	dt := spec.T / float64(n)
	u := math.Exp(spec.Sigma * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp((spec.R-spec.Q)*dt) - d) / (u - d)
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%v (r=%v q=%v sigma=%v dt=%v)",
			ErrRiskNeutralProb, p, spec.R, spec.Q, spec.Sigma, dt)
	}
	df := finmath.Discount(spec.R, dt)

	// Terminal layer: asset price for up-count j is S * d^(n-j) * u^j.
	values := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		price := spec.S * math.Pow(d, float64(n-j)) * math.Pow(u, float64(j))
		values[j] = spec.payoff(price)
	}

	american := spec.Style == American
	for i := n - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			v := df * (p*values[j+1] + (1-p)*values[j])
			if american {
				exercise := spec.payoff(spec.S * math.Pow(d, float64(i-j)) * math.Pow(u, float64(j)))
				if exercise > v {
					v = exercise
				}
			}
			values[j] = v
		}
	}

	return &LatticeResult{
		Price:     values[0],
		U:         u,
		D:         d,
		P:         p,
		Intrinsic: intrinsic,
		TimeValue: values[0] - intrinsic,
	}, nil
}
