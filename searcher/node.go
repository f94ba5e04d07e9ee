package searcher

import (
	"math"
	"multiagent/game"
)

// value backs up the value of state with agent to move and depth rounds
// left. The agent's role decides the fold: max for agent 0, min or mean for
// adversaries. Under AlphaBeta, (alpha, beta) bounds the values the caller
// can still use and the remaining children are skipped once a node falls
// outside them.
func (s *Searcher) value(state game.State, agent, depth int, alpha, beta float64) (float64, error) {
	s.metrics.AddNode()

	if game.IsTerminal(state) || depth == 0 {
		return s.evaluate(state), nil
	}

	actions, err := legalActions(state, agent)
	if err != nil {
		return 0, err
	}
	nextAgent, nextDepth := advance(state.NumAgents(), agent, depth)
	pruning := s.variant == AlphaBeta

	r := roleOf(s.variant, agent)
	best := r.initial()
	for i, action := range actions {
		v, err := s.value(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta)
		if err != nil {
			return 0, err
		}

		switch r {
		case maxRole:
			best = math.Max(best, v)
			if pruning {
				if best > beta {
					s.prune(i, len(actions))
					return best, nil
				}
				alpha = math.Max(alpha, best)
			}
		case minRole:
			best = math.Min(best, v)
			if pruning {
				if best < alpha {
					s.prune(i, len(actions))
					return best, nil
				}
				beta = math.Min(beta, best)
			}
		case chanceRole:
			// Divide first: summing sentinels would overflow
			best += v / float64(len(actions))
		}
	}
	return best, nil
}

func (s *Searcher) prune(expanded, total int) {
	if expanded < total-1 {
		s.metrics.AddPrune()
	}
}
