package searcher

import (
	"fmt"
	"math"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Searcher picks agent 0's action by a depth-limited search where depth
// counts rounds: every agent moving once.
type Searcher struct {
	variant  Variant
	depth    int
	evaluate game.Evaluate
	rng      *rand.Rand
	metrics  metrics.Collector
}

func NewSearcher(variant Variant, depth int, evaluate game.Evaluate, options ...Option) *Searcher {
	if evaluate == nil {
		panic("searcher needs an evaluation function")
	}
	if depth < 1 {
		panic(fmt.Sprintf("search depth must be positive, got %d", depth))
	}
	s := &Searcher{ // Default values
		variant:  variant,
		depth:    depth,
		evaluate: evaluate,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Variant() Variant {
	return s.variant
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Decide searches state with a throwaway Searcher.
func Decide(state game.State, depth int, variant Variant, evaluate game.Evaluate, options ...Option) (game.Action, error) {
	action, _, err := NewSearcher(variant, depth, evaluate, options...).FindMove(state)
	return action, err
}

// FindMove returns agent 0's best action in state. Ties between equally
// valued actions are broken uniformly at random. A terminal state has nothing
// to decide and yields the no-op.
func (s *Searcher) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	if !s.variant.implemented() {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: %s", ErrUnimplementedVariant, s.variant)
	}
	if state.NumAgents() < 1 {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: no agents", ErrInvalidState)
	}
	if game.IsTerminal(state) {
		return game.Stop, metrics.SearchMetric{}, nil
	}

	s.metrics.Start(s.variant.String(), s.depth)
	s.metrics.AddNode()

	actions, err := legalActions(state, 0)
	if err != nil {
		return game.Stop, metrics.SearchMetric{}, err
	}
	nextAgent, nextDepth := advance(state.NumAgents(), 0, s.depth)

	alpha, beta := math.Inf(-1), math.Inf(1)
	bestValue := math.Inf(-1)
	best := make([]game.Action, 0, len(actions))
	for _, action := range actions {
		v, err := s.value(state.Successor(0, action), nextAgent, nextDepth, alpha, beta)
		if err != nil {
			return game.Stop, metrics.SearchMetric{}, err
		}
		if v > bestValue {
			bestValue = v
			best = append(best[:0], action)
		} else if v == bestValue {
			best = append(best, action)
		}
		if s.variant == AlphaBeta {
			alpha = math.Max(alpha, bestValue)
		}
	}

	choice := best[s.rng.Intn(len(best))]
	s.metrics.SetValue(bestValue)
	metric := s.metrics.Complete()

	log.Debug().
		Str("variant", s.variant.String()).
		Int("depth", s.depth).
		Int("nodes", metric.Nodes).
		Int("prunes", metric.Prunes).
		Int("ties", len(best)).
		Float64("value", bestValue).
		Stringer("action", choice).
		Msg("search complete")

	return choice, metric, nil
}
