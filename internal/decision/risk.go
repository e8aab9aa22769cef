package decision

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Outcome is one reachable terminal under a decision alternative, with the
// probability accumulated down the chance branches leading to it.
type Outcome struct {
	Name        string
	Probability float64
	Payoff      float64
}

// Summary is the probability-weighted shape of an outcome distribution.
type Summary struct {
	ExpectedValue float64
	StdDev        float64
}

// RiskProfile enumerates every terminal reachable from alt once decisions
// are fixed: chance branches multiply the running probability and all of
// them are followed, while decision nodes follow only the child chosen
// during rollback. The emitted probabilities sum to 1 within floating
// tolerance. alt must belong to a rolled-back tree.
func RiskProfile(alt *Node) ([]Outcome, error) {
	if alt == nil {
		return nil, ErrNilRoot
	}
	if !alt.rolled {
		return nil, ErrNotRolledBack
	}

	type visit struct {
		node *Node
		prob float64
	}
	var outcomes []Outcome
	stack := []visit{{alt, 1}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := v.node
		switch {
		case len(n.Children) == 0:
			outcomes = append(outcomes, Outcome{
				Name:        n.Name,
				Probability: v.prob,
				Payoff:      *n.Payoff,
			})
		case n.Kind == KindChance:
			for i := len(n.Children) - 1; i >= 0; i-- {
				c := n.Children[i]
				stack = append(stack, visit{c, v.prob * *c.Probability})
			}
		default:
			// A decision, once rolled back, is fixed.
			var chosen *Node
			for _, c := range n.Children {
				if c.Name == n.Chosen {
					chosen = c
					break
				}
			}
			if chosen == nil {
				return nil, fmt.Errorf("node %q: %w", n.Name, ErrNotRolledBack)
			}
			stack = append(stack, visit{chosen, v.prob})
		}
	}
	return outcomes, nil
}

// Summarize reduces a risk profile to its probability-weighted mean and
// population standard deviation.
func Summarize(outcomes []Outcome) Summary {
	if len(outcomes) == 0 {
		return Summary{}
	}
	payoffs := make([]float64, len(outcomes))
	probs := make([]float64, len(outcomes))
	for i, o := range outcomes {
		payoffs[i] = o.Payoff
		probs[i] = o.Probability
	}
	mean := stat.Mean(payoffs, probs)
	variance := stat.Moment(2, payoffs, probs)
	return Summary{ExpectedValue: mean, StdDev: math.Sqrt(variance)}
}
