package searcher

import (
	"errors"
	"fmt"
	"math"
	"multiagent/game"
	"multiagent/utils"
)

var (
	// ErrInvalidState is returned when the agent to move has no legal action
	// besides the no-op in a state that is not terminal.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnimplementedVariant is returned for a search variant without an implementation.
	ErrUnimplementedVariant = errors.New("unimplemented search variant")
)

// Variant selects how adversary nodes are backed up.
type Variant int

const (
	Minimax Variant = iota
	AlphaBeta
	Expectimax
)

var variantNames = map[Variant]string{
	Minimax:    "minimax",
	AlphaBeta:  "alphabeta",
	Expectimax: "expectimax",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant resolves a variant from its name.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnimplementedVariant, name)
}

func (v Variant) implemented() bool {
	_, ok := variantNames[v]
	return ok
}

// role is how a node folds the values of its children.
type role int

const (
	maxRole    role = iota // Agent 0
	minRole                // Adversary under minimax and alpha-beta
	chanceRole             // Adversary choosing uniformly at random
)

func (r role) initial() float64 {
	switch r {
	case maxRole:
		return math.Inf(-1)
	case minRole:
		return math.Inf(1)
	}
	return 0
}

func roleOf(variant Variant, agent int) role {
	if agent == 0 {
		return maxRole
	}
	if variant == Expectimax {
		return chanceRole
	}
	return minRole
}

// advance returns the agent to move after agent, and the depth left. A round
// ends, and depth drops, only once the last agent has moved.
func advance(numAgents, agent, depth int) (nextAgent, nextDepth int) {
	nextAgent = (agent + 1) % numAgents
	if agent == numAgents-1 {
		return nextAgent, depth - 1
	}
	return nextAgent, depth
}

// legalActions lists the actions of agent, without the no-op.
func legalActions(state game.State, agent int) ([]game.Action, error) {
	actions := utils.Filter(state.LegalActions(agent), func(a game.Action) bool {
		return a != game.Stop
	})
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: agent %d has no legal actions", ErrInvalidState, agent)
	}
	return actions, nil
}
