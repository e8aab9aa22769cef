package decision

import "fmt"

// Rollback computes the expected monetary value of every node by backward
// induction and returns the root EMV. Terminal nodes take their payoff,
// chance nodes the probability-weighted sum of their children minus cost,
// and decision nodes the maximum child EMV minus cost, recording the argmax
// child in Chosen. Ties between equal-EMV children break to the first child
// in input order, deterministically. Any Kind outside the closed set rolls
// up with decision semantics as a compatibility fallback.
//
// The traversal is an explicit-stack post-order, so tree depth is bounded by
// heap rather than call-stack growth. Rollback validates first and fails
// without partial results; recomputing over the same inputs is idempotent.
func Rollback(root *Node, pol Policy) (float64, error) {
	if err := Validate(root, pol); err != nil {
		return 0, err
	}

	type frame struct {
		node     *Node
		expanded bool
	}
	stack := []frame{{root, false}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.expanded {
			stack = append(stack, frame{f.node, true})
			for i := len(f.node.Children) - 1; i >= 0; i-- {
				stack = append(stack, frame{f.node.Children[i], false})
			}
			continue
		}

		n := f.node
		switch n.Kind {
		case KindTerminal:
			n.EMV = *n.Payoff
		case KindChance:
			ev := 0.0
			for _, c := range n.Children {
				ev += c.EMV * *c.Probability
			}
			n.EMV = ev - n.Cost
		default:
			// Decision semantics, also the fallback for unknown kinds.
			best := n.Children[0]
			for _, c := range n.Children[1:] {
				if c.EMV > best.EMV {
					best = c
				}
			}
			n.EMV = best.EMV - n.Cost
			n.Chosen = best.Name
		}
		n.rolled = true
	}

	return root.EMV, nil
}

// OptimalPath walks a rolled-back tree from the root and returns the node
// names along the representative best path: the recorded choice at decision
// nodes and the highest-EMV branch at chance nodes. Chance nodes have no
// actual choice; the branch shown is for display only and is not the
// expected outcome.
func OptimalPath(root *Node) ([]string, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if !root.rolled {
		return nil, ErrNotRolledBack
	}

	var path []string
	n := root
	for n != nil {
		path = append(path, n.Name)
		if len(n.Children) == 0 {
			break
		}
		var next *Node
		if n.Kind == KindChance {
			next = n.Children[0]
			for _, c := range n.Children[1:] {
				if c.EMV > next.EMV {
					next = c
				}
			}
		} else {
			for _, c := range n.Children {
				if c.Name == n.Chosen {
					next = c
					break
				}
			}
			if next == nil {
				return nil, fmt.Errorf("node %q: %w", n.Name, ErrNotRolledBack)
			}
		}
		n = next
	}
	return path, nil
}
