package pricing

import "errors"

var (
	// ErrInvalidSpot is returned when the spot price is not strictly positive.
	ErrInvalidSpot = errors.New("pricing: spot price must be positive")

	// ErrInvalidStrike is returned when the strike price is not strictly positive.
	ErrInvalidStrike = errors.New("pricing: strike price must be positive")

	// ErrInvalidVolatility is returned when a non-degenerate computation would
	// divide by sigma*sqrt(T) with sigma <= 0.
	ErrInvalidVolatility = errors.New("pricing: volatility must be positive")

	// ErrInvalidSteps is returned when the lattice step count is below 1.
	ErrInvalidSteps = errors.New("pricing: lattice steps must be >= 1")

	// ErrUnknownOptionKind is returned for a kind other than call or put.
	ErrUnknownOptionKind = errors.New("pricing: unknown option kind")

	// ErrRiskNeutralProb is returned when the CRR risk-neutral probability
	// falls outside [0,1]. The value is surfaced, never clamped.
	ErrRiskNeutralProb = errors.New("pricing: risk-neutral probability outside [0,1]")

	// ErrAmericanClosedForm is returned when American exercise is requested
	// from the European-only closed form.
	ErrAmericanClosedForm = errors.New("pricing: closed form supports European exercise only")
)
