package decision

import "errors"

var (
	// ErrNilRoot is returned when an operation receives a nil tree.
	ErrNilRoot = errors.New("decision: nil tree root")

	// ErrNoChildren is returned for a non-terminal node with no children.
	ErrNoChildren = errors.New("decision: non-terminal node has no children")

	// ErrTerminalChildren is returned for a terminal node that has children.
	ErrTerminalChildren = errors.New("decision: terminal node has children")

	// ErrMissingPayoff is returned for a terminal node without a payoff.
	ErrMissingPayoff = errors.New("decision: terminal node has no payoff")

	// ErrMissingProbability is returned when some but not all children of a
	// chance node carry probabilities, or when all are missing and the
	// uniform fallback policy is disabled.
	ErrMissingProbability = errors.New("decision: chance child has no probability")

	// ErrProbabilitySum is returned when the probabilities under a chance
	// node do not sum to 1 within the policy tolerance.
	ErrProbabilitySum = errors.New("decision: chance probabilities do not sum to 1")

	// ErrDuplicateName is returned when two siblings share a name.
	ErrDuplicateName = errors.New("decision: duplicate sibling name")

	// ErrNotRolledBack is returned when a path or risk profile is requested
	// from a tree that has not been rolled back.
	ErrNotRolledBack = errors.New("decision: tree has not been rolled back")
)
