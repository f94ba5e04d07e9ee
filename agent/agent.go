package agent

import (
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"
)

type Agent interface {
	// ChooseAction returns the agent's action in state and the statistics of
	// the decision (zero if not collected)
	ChooseAction(state game.State) (game.Action, metrics.SearchMetric, error)
}

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewMinimaxAgent returns agent 0 searching depth rounds with exact minimax.
func NewMinimaxAgent(depth int, evaluate game.Evaluate, options ...searcher.Option) Agent {
	return searchAgent{searcher: searcher.NewSearcher(searcher.Minimax, depth, evaluate, options...)}
}

// NewAlphaBetaAgent returns agent 0 searching depth rounds with alpha-beta pruning.
func NewAlphaBetaAgent(depth int, evaluate game.Evaluate, options ...searcher.Option) Agent {
	return searchAgent{searcher: searcher.NewSearcher(searcher.AlphaBeta, depth, evaluate, options...)}
}

// NewExpectimaxAgent returns agent 0 searching depth rounds against adversaries
// that pick uniformly among their legal actions.
func NewExpectimaxAgent(depth int, evaluate game.Evaluate, options ...searcher.Option) Agent {
	return searchAgent{searcher: searcher.NewSearcher(searcher.Expectimax, depth, evaluate, options...)}
}

func (a searchAgent) ChooseAction(state game.State) (game.Action, metrics.SearchMetric, error) {
	return a.searcher.FindMove(state)
}
