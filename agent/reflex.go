package agent

import (
	"fmt"
	"math"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/heuristic"
	"multiagent/searcher"

	"golang.org/x/exp/rand"
)

type reflexAgent struct {
	coefficients heuristic.Coefficients
	rng          *rand.Rand
	metrics      metrics.Collector
}

// NewReflexAgent returns agent 0 looking a single move ahead: every action is
// scored by how much it improves the evaluation of the current state.
func NewReflexAgent(coefficients heuristic.Coefficients, rng *rand.Rand) Agent {
	return reflexAgent{
		coefficients: coefficients,
		rng:          rng,
		metrics:      metrics.NewCollector(),
	}
}

func (a reflexAgent) ChooseAction(state game.State) (game.Action, metrics.SearchMetric, error) {
	if game.IsTerminal(state) {
		return game.Stop, metrics.SearchMetric{}, nil
	}
	a.metrics.Start("reflex", 0)

	bestScore := math.Inf(-1)
	best := []game.Action{}
	for _, action := range state.LegalActions(0) {
		// Stopping never makes progress
		if action == game.Stop {
			continue
		}
		a.metrics.AddNode()
		score := heuristic.Differential(state, state.Successor(0, action), a.coefficients)
		if score > bestScore {
			bestScore = score
			best = append(best[:0], action)
		} else if score == bestScore {
			best = append(best, action)
		}
	}
	if len(best) == 0 {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: agent 0 has no legal actions", searcher.ErrInvalidState)
	}

	a.metrics.SetValue(bestScore)
	return best[a.rng.Intn(len(best))], a.metrics.Complete(), nil
}
