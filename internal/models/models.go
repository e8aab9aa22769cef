package models

import "github.com/leekchan/accounting"

// FieldValue carries a value with both raw data and formatted display
type FieldValue struct {
	Raw     interface{} `json:"raw"`     // For comparison tooling: 125000
	Display string      `json:"display"` // For reports: "$125,000.00"
	Type    string      `json:"type"`    // "currency"
}

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

// Money formats a monetary amount as a raw/display field pair.
func Money(v float64) FieldValue {
	return FieldValue{Raw: v, Display: usd.FormatMoney(v), Type: "currency"}
}

// TreeNode is the recursive decision-tree request shape. Type defaults to
// "decision" at the root and to "terminal" for childless nodes without an
// explicit type; unrecognized types evaluate with decision semantics.
type TreeNode struct {
	Name        string     `json:"name"`
	Type        string     `json:"type,omitempty"`
	Cost        *float64   `json:"cost,omitempty"`
	Probability *float64   `json:"probability,omitempty"`
	Payoff      *float64   `json:"payoff,omitempty"`
	Children    []TreeNode `json:"children,omitempty"`
}

// AnnotatedNode mirrors TreeNode with the rollback results attached.
type AnnotatedNode struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Cost        *float64         `json:"cost,omitempty"`
	Probability *float64         `json:"probability,omitempty"`
	Payoff      *float64         `json:"payoff,omitempty"`
	EMV         float64          `json:"emv"`
	Decision    string           `json:"decision,omitempty"`
	Children    []*AnnotatedNode `json:"children,omitempty"`
}

// RiskOutcome is one reachable terminal under a decision alternative.
type RiskOutcome struct {
	Name        string     `json:"name"`
	Probability float64    `json:"probability"`
	Payoff      FieldValue `json:"payoff"`
}

// RiskProfile is the outcome distribution of one alternative plus its
// probability-weighted summary.
type RiskProfile struct {
	Outcomes      []RiskOutcome `json:"outcomes"`
	ExpectedValue FieldValue    `json:"expected_value"`
	StdDev        float64       `json:"std_dev"`
}

// DecisionResults is the success payload of a tree evaluation.
type DecisionResults struct {
	RootEMV         FieldValue             `json:"root_emv"`
	OptimalDecision string                 `json:"optimal_decision,omitempty"`
	DecisionPath    []string               `json:"decision_path"`
	Tree            *AnnotatedNode         `json:"tree"`
	RiskProfiles    map[string]RiskProfile `json:"risk_profiles"`
}

// DecisionResponse is the tree-evaluation envelope. Consumers branch on
// Success before reading Results.
type DecisionResponse struct {
	Success bool             `json:"success"`
	Results *DecisionResults `json:"results,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// OptionRequest is an option-pricing request. S and K are mandatory; the
// remaining parameters default from configuration (r=0.05, sigma=0.3, T=1,
// n=100, q=0, american=false).
type OptionRequest struct {
	OptionType string   `json:"option_type"`
	Model      string   `json:"model,omitempty"`
	S          *float64 `json:"S"`
	K          *float64 `json:"K"`
	R          *float64 `json:"r,omitempty"`
	Sigma      *float64 `json:"sigma,omitempty"`
	T          *float64 `json:"T,omitempty"`
	N          *int     `json:"n,omitempty"`
	Q          *float64 `json:"q,omitempty"`
	American   *bool    `json:"american,omitempty"`
}

// GreeksDTO reports the closed-form sensitivities. Present only when the
// Greeks are applicable.
type GreeksDTO struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// OptionResults is the success payload of a pricing call. U, D and P are
// set only for the binomial model; Greeks only for black_scholes.
type OptionResults struct {
	Price     float64    `json:"price"`
	Model     string     `json:"model"`
	Greeks    *GreeksDTO `json:"greeks,omitempty"`
	U         *float64   `json:"u,omitempty"`
	D         *float64   `json:"d,omitempty"`
	P         *float64   `json:"p,omitempty"`
	Intrinsic float64    `json:"intrinsic"`
	TimeValue float64    `json:"time_value"`
}

// OptionResponse is the option-pricing envelope.
type OptionResponse struct {
	Success bool           `json:"success"`
	Results *OptionResults `json:"results,omitempty"`
	Error   string         `json:"error,omitempty"`
}
