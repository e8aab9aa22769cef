package pricing

import (
	"fmt"
	"math"

	"github.com/jwaldner/forgecheck/internal/finmath"
)

// BlackScholes prices a European option in closed form and computes its
// analytic Greeks.
//
// Degenerate horizons (T <= 0) return the intrinsic value with Greeks nil.
// A non-positive volatility on a live horizon is an error rather than a
// silent NaN: the formulas divide by sigma*sqrt(T).
func BlackScholes(spec OptionSpec) (*Result, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	if spec.Style == American {
		return nil, ErrAmericanClosedForm
	}

	intrinsic := spec.Intrinsic()
	if spec.T <= 0 {
		// Expired or expiring now: the option is worth exactly its
		// intrinsic value and the sensitivities are undefined.
		return &Result{Price: intrinsic, Intrinsic: intrinsic}, nil
	}
	if spec.Sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma=%v", ErrInvalidVolatility, spec.Sigma)
	}

	sqrtT := math.Sqrt(spec.T)
	d1 := (math.Log(spec.S/spec.K) + (spec.R-spec.Q+0.5*spec.Sigma*spec.Sigma)*spec.T) / (spec.Sigma * sqrtT)
	d2 := d1 - spec.Sigma*sqrtT

	dfR := finmath.Discount(spec.R, spec.T)
	dfQ := finmath.Discount(spec.Q, spec.T)
	pdfD1 := finmath.NormPDF(d1)

	var price, delta, theta, rho float64
	if spec.Kind == Call {
		price = spec.S*dfQ*finmath.NormCDF(d1) - spec.K*dfR*finmath.NormCDF(d2)
		delta = dfQ * finmath.NormCDF(d1)
		theta = -spec.S*dfQ*pdfD1*spec.Sigma/(2*sqrtT) -
			spec.R*spec.K*dfR*finmath.NormCDF(d2) +
			spec.Q*spec.S*dfQ*finmath.NormCDF(d1)
		rho = spec.K * spec.T * dfR * finmath.NormCDF(d2)
	} else {
		price = spec.K*dfR*finmath.NormCDF(-d2) - spec.S*dfQ*finmath.NormCDF(-d1)
		delta = dfQ * (finmath.NormCDF(d1) - 1)
		theta = -spec.S*dfQ*pdfD1*spec.Sigma/(2*sqrtT) +
			spec.R*spec.K*dfR*finmath.NormCDF(-d2) -
			spec.Q*spec.S*dfQ*finmath.NormCDF(-d1)
		rho = -spec.K * spec.T * dfR * finmath.NormCDF(-d2)
	}

	greeks := &Greeks{
		Delta: delta,
		Gamma: dfQ * pdfD1 / (spec.S * spec.Sigma * sqrtT),
		Theta: theta / 365, // per calendar day
		Vega:  spec.S * dfQ * pdfD1 * sqrtT / 100,
		Rho:   rho / 100,
	}

	return &Result{
		Price:     price,
		Greeks:    greeks,
		Intrinsic: intrinsic,
		TimeValue: price - intrinsic,
	}, nil
}

func validateSpec(spec OptionSpec) error {
	if spec.S <= 0 {
		return fmt.Errorf("%w: S=%v", ErrInvalidSpot, spec.S)
	}
	if spec.K <= 0 {
		return fmt.Errorf("%w: K=%v", ErrInvalidStrike, spec.K)
	}
	if spec.Kind != Call && spec.Kind != Put {
		return fmt.Errorf("%w: %q", ErrUnknownOptionKind, spec.Kind)
	}
	return nil
}
