package searcher

import (
	"multiagent/experiments/metrics"

	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// WithSeed makes root tie-breaks reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares a random source, e.g. between the agents of one game.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}
