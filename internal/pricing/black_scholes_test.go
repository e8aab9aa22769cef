package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlackScholesReferenceCall(t *testing.T) {
	res, err := BlackScholes(OptionSpec{S: 100, K: 100, R: 0.05, Sigma: 0.3, T: 1, Kind: Call, Style: European})
	require.NoError(t, err)

	assert.InDelta(t, 14.2313, res.Price, 1e-3)
	assert.InDelta(t, 0.0, res.Intrinsic, 1e-12)
	assert.InDelta(t, res.Price, res.Intrinsic+res.TimeValue, 1e-12)

	require.NotNil(t, res.Greeks)
	assert.InDelta(t, 0.6243, res.Greeks.Delta, 1e-3)
	assert.InDelta(t, 0.01265, res.Greeks.Gamma, 1e-4)
	assert.InDelta(t, -0.0222, res.Greeks.Theta, 1e-3) // per calendar day
	assert.InDelta(t, 0.3794, res.Greeks.Vega, 1e-3)   // per vol point
	assert.InDelta(t, 0.4819, res.Greeks.Rho, 1e-3)    // per rate point
}

func TestBlackScholesPutCallParity(t *testing.T) {
	spec := OptionSpec{S: 100, K: 100, R: 0.05, Sigma: 0.3, T: 1, Kind: Call, Style: European}
	call, err := BlackScholes(spec)
	require.NoError(t, err)

	spec.Kind = Put
	put, err := BlackScholes(spec)
	require.NoError(t, err)

	// C - P = S*e^(-qT) - K*e^(-rT)
	left := call.Price - put.Price
	right := spec.S - spec.K*math.Exp(-spec.R*spec.T)
	assert.InDelta(t, right, left, 1e-9)
	assert.InDelta(t, 9.3542, put.Price, 1e-3)

	// Mirrored put delta: call delta - e^(-qT)
	require.NotNil(t, put.Greeks)
	assert.InDelta(t, call.Greeks.Delta-1, put.Greeks.Delta, 1e-12)
	assert.InDelta(t, call.Greeks.Gamma, put.Greeks.Gamma, 1e-12)
	assert.InDelta(t, call.Greeks.Vega, put.Greeks.Vega, 1e-12)
}

func TestBlackScholesDividendYieldLowersCall(t *testing.T) {
	spec := OptionSpec{S: 100, K: 100, R: 0.05, Sigma: 0.3, T: 1, Kind: Call, Style: European}
	plain, err := BlackScholes(spec)
	require.NoError(t, err)

	spec.Q = 0.03
	withYield, err := BlackScholes(spec)
	require.NoError(t, err)
	assert.Less(t, withYield.Price, plain.Price)
}

func TestBlackScholesExpiredIsIntrinsic(t *testing.T) {
	res, err := BlackScholes(OptionSpec{S: 110, K: 100, T: 0, Kind: Call, Style: European})
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Price)
	assert.Equal(t, 10.0, res.Intrinsic)
	assert.Zero(t, res.TimeValue)
	assert.Nil(t, res.Greeks, "Greeks must be reported not-applicable, not zero")

	res, err = BlackScholes(OptionSpec{S: 110, K: 100, T: -0.5, Kind: Put, Style: European})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Price)
	assert.Nil(t, res.Greeks)
}

func TestBlackScholesInvalidInputs(t *testing.T) {
	_, err := BlackScholes(OptionSpec{S: -1, K: 100, Sigma: 0.3, T: 1, Kind: Call})
	require.ErrorIs(t, err, ErrInvalidSpot)

	_, err = BlackScholes(OptionSpec{S: 100, K: 0, Sigma: 0.3, T: 1, Kind: Call})
	require.ErrorIs(t, err, ErrInvalidStrike)

	_, err = BlackScholes(OptionSpec{S: 100, K: 100, Sigma: 0, T: 1, Kind: Call})
	require.ErrorIs(t, err, ErrInvalidVolatility)

	_, err = BlackScholes(OptionSpec{S: 100, K: 100, Sigma: -0.1, T: 1, Kind: Put})
	require.ErrorIs(t, err, ErrInvalidVolatility)

	_, err = BlackScholes(OptionSpec{S: 100, K: 100, Sigma: 0.3, T: 1, Kind: "straddle"})
	require.ErrorIs(t, err, ErrUnknownOptionKind)

	_, err = BlackScholes(OptionSpec{S: 100, K: 100, Sigma: 0.3, T: 1, Kind: Put, Style: American})
	require.ErrorIs(t, err, ErrAmericanClosedForm)
}
