package handlers

import (
	"github.com/jwaldner/forgecheck/internal/decision"
	"github.com/jwaldner/forgecheck/internal/logger"
	"github.com/jwaldner/forgecheck/internal/models"
)

// buildTree converts the wire tree into an engine tree, applying the
// documented type defaults: decision at the root, terminal for childless
// nodes without an explicit type, and decision semantics for anything
// unrecognized.
func buildTree(t *models.TreeNode, isRoot bool) *decision.Node {
	n := &decision.Node{
		Name:        t.Name,
		Kind:        normalizeKind(t, isRoot),
		Probability: t.Probability,
		Payoff:      t.Payoff,
	}
	if t.Cost != nil {
		n.Cost = *t.Cost
	}
	for i := range t.Children {
		n.Children = append(n.Children, buildTree(&t.Children[i], false))
	}
	return n
}

func normalizeKind(t *models.TreeNode, isRoot bool) decision.Kind {
	switch t.Type {
	case "decision":
		return decision.KindDecision
	case "chance":
		return decision.KindChance
	case "terminal":
		return decision.KindTerminal
	case "":
		if !isRoot && len(t.Children) == 0 {
			return decision.KindTerminal
		}
		return decision.KindDecision
	default:
		// Compatibility fallback: unknown types roll up like decisions.
		logger.Warn.Printf("🌳 Unknown node type %q on %q, using decision semantics", t.Type, t.Name)
		return decision.KindDecision
	}
}

// annotate converts a rolled-back engine tree into the response shape.
func annotate(n *decision.Node) *models.AnnotatedNode {
	out := &models.AnnotatedNode{
		Name:        n.Name,
		Type:        string(n.Kind),
		Probability: n.Probability,
		Payoff:      n.Payoff,
		EMV:         n.EMV,
		Decision:    n.Chosen,
	}
	if n.Cost != 0 {
		cost := n.Cost
		out.Cost = &cost
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, annotate(c))
	}
	return out
}
