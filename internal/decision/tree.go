// Package decision implements expected-monetary-value rollback over
// decision/chance/terminal trees: backward induction from the leaves,
// optimal-path extraction, and probability-weighted risk profiles.
package decision

import "fmt"

// Kind is the closed set of node variants.
type Kind string

const (
	KindDecision Kind = "decision"
	KindChance   Kind = "chance"
	KindTerminal Kind = "terminal"
)

// Node is one node of a decision tree. The caller builds the tree once and
// hands it to Rollback, which mutates only the derived EMV and Chosen fields.
type Node struct {
	Name string
	Kind Kind

	// Cost is an outlay charged at this node when rolling up. Applies to
	// decision and chance nodes.
	Cost float64

	// Probability is required on every child of a chance node. Nil means
	// absent, which is distinct from zero.
	Probability *float64

	// Payoff is required on terminal nodes.
	Payoff *float64

	Children []*Node

	// Derived by Rollback.
	EMV    float64
	Chosen string // argmax child name, decision nodes only

	rolled bool
}

// NewDecision builds a decision node.
func NewDecision(name string, cost float64, children ...*Node) *Node {
	return &Node{Name: name, Kind: KindDecision, Cost: cost, Children: children}
}

// NewChance builds a chance node.
func NewChance(name string, cost float64, children ...*Node) *Node {
	return &Node{Name: name, Kind: KindChance, Cost: cost, Children: children}
}

// NewTerminal builds a terminal node carrying a payoff.
func NewTerminal(name string, payoff float64) *Node {
	return &Node{Name: name, Kind: KindTerminal, Payoff: &payoff}
}

// WithProbability attaches the branch probability used when the parent is a
// chance node, and returns the node for chaining.
func (n *Node) WithProbability(p float64) *Node {
	n.Probability = &p
	return n
}

// Policy controls the explicitly configurable validation behaviors.
type Policy struct {
	// UniformProbabilities assigns 1/len(children) when every child of a
	// chance node lacks a probability. When false, a missing probability is
	// an error. Mixed present/missing is always an error.
	UniformProbabilities bool

	// ProbTolerance bounds the allowed deviation of sibling probability
	// sums from 1.
	ProbTolerance float64
}

// DefaultPolicy matches the documented defaults: uniform fallback on, sum
// tolerance 1e-6.
func DefaultPolicy() Policy {
	return Policy{UniformProbabilities: true, ProbTolerance: 1e-6}
}

// Validate checks the tree structurally before any rollback: every
// non-terminal node has at least one child, every terminal node carries a
// payoff and no children, sibling names are unique, and chance-branch
// probabilities are present and sum to 1 within the policy tolerance.
// Under the uniform policy it fills in missing chance probabilities, so a
// validated tree always carries an explicit distribution.
func Validate(root *Node, pol Policy) error {
	if root == nil {
		return ErrNilRoot
	}

	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(n.Children) == 0 {
			if n.Kind != KindTerminal {
				return fmt.Errorf("node %q: %w", n.Name, ErrNoChildren)
			}
			if n.Payoff == nil {
				return fmt.Errorf("node %q: %w", n.Name, ErrMissingPayoff)
			}
			continue
		}
		if n.Kind == KindTerminal {
			return fmt.Errorf("node %q: %w", n.Name, ErrTerminalChildren)
		}

		seen := make(map[string]struct{}, len(n.Children))
		for _, c := range n.Children {
			if _, dup := seen[c.Name]; dup {
				return fmt.Errorf("node %q child %q: %w", n.Name, c.Name, ErrDuplicateName)
			}
			seen[c.Name] = struct{}{}
		}

		if n.Kind == KindChance {
			if err := checkProbabilities(n, pol); err != nil {
				return err
			}
		}

		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nil
}

func checkProbabilities(n *Node, pol Policy) error {
	present := 0
	sum := 0.0
	for _, c := range n.Children {
		if c.Probability != nil {
			present++
			sum += *c.Probability
		}
	}

	switch {
	case present == len(n.Children):
		if diff := sum - 1; diff > pol.ProbTolerance || diff < -pol.ProbTolerance {
			return fmt.Errorf("node %q: sum=%v: %w", n.Name, sum, ErrProbabilitySum)
		}
	case present == 0 && pol.UniformProbabilities:
		uniform := 1 / float64(len(n.Children))
		for _, c := range n.Children {
			p := uniform
			c.Probability = &p
		}
	default:
		return fmt.Errorf("node %q: %d of %d children have probabilities: %w",
			n.Name, present, len(n.Children), ErrMissingProbability)
	}
	return nil
}
