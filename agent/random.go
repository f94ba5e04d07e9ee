package agent

import (
	"fmt"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"
	"multiagent/utils"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	index int
	rng   *rand.Rand
}

// NewRandomAgent returns an adversary picking uniformly among its legal
// actions, the opponent model expectimax assumes.
func NewRandomAgent(index int, rng *rand.Rand) Agent {
	return randomAgent{index: index, rng: rng}
}

func (a randomAgent) ChooseAction(state game.State) (game.Action, metrics.SearchMetric, error) {
	actions := utils.Filter(state.LegalActions(a.index), func(action game.Action) bool {
		return action != game.Stop
	})
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: agent %d has no legal actions", searcher.ErrInvalidState, a.index)
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}, nil
}
