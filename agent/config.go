package agent

import (
	"errors"
	"fmt"
	"multiagent/game"
	"multiagent/heuristic"
	"multiagent/meta"
	"multiagent/searcher"
	"os"
	"strconv"
	"time"

	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

// ErrConfiguration is returned for a configuration that cannot build an agent.
var ErrConfiguration = errors.New("configuration error")

const (
	PolicyMinimax    = "minimax"
	PolicyAlphaBeta  = "alphabeta"
	PolicyExpectimax = "expectimax"
	PolicyReflex     = "reflex"
)

// Config describes agent 0. Seed 0 seeds tie-breaks from the clock.
type Config struct {
	Policy       string                 `yaml:"policy"`
	Evaluation   string                 `yaml:"evaluation"`
	Depth        int                    `yaml:"depth"`
	Seed         uint64                 `yaml:"seed"`
	Coefficients heuristic.Coefficients `yaml:"coefficients"`
}

func DefaultConfig() Config {
	return Config{
		Policy:       PolicyExpectimax,
		Evaluation:   "better",
		Depth:        meta.DEPTH,
		Coefficients: heuristic.DefaultCoefficients(),
	}
}

// ParseConfig decodes a YAML document over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseDepth reads a search depth given as text, e.g. from a flag.
func ParseDepth(text string) (int, error) {
	depth, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: depth %q is not a number", ErrConfiguration, text)
	}
	if depth < 1 {
		return 0, fmt.Errorf("%w: depth must be positive, got %d", ErrConfiguration, depth)
	}
	return depth, nil
}

func (c Config) Validate() error {
	switch c.Policy {
	case PolicyMinimax, PolicyAlphaBeta, PolicyExpectimax, PolicyReflex:
	default:
		return fmt.Errorf("%w: unknown policy %q", ErrConfiguration, c.Policy)
	}
	if c.Depth < 1 {
		return fmt.Errorf("%w: depth must be positive, got %d", ErrConfiguration, c.Depth)
	}
	if _, err := heuristic.Lookup(c.Evaluation, c.Coefficients); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := c.Coefficients.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

func (c Config) String() string {
	if c.Policy == PolicyReflex {
		return c.Policy
	}
	return fmt.Sprintf("%s/%s/depth=%d", c.Policy, c.Evaluation, c.Depth)
}

// New builds the agent described by cfg.
func New(cfg Config) (Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	if cfg.Policy == PolicyReflex {
		return NewReflexAgent(cfg.Coefficients, rng), nil
	}

	evaluate, err := heuristic.Lookup(cfg.Evaluation, cfg.Coefficients)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return newSearchAgent(cfg.Policy, cfg.Depth, evaluate, searcher.WithRand(rng), searcher.WithMetrics())
}

func newSearchAgent(policy string, depth int, evaluate game.Evaluate, options ...searcher.Option) (Agent, error) {
	switch policy {
	case PolicyMinimax:
		return NewMinimaxAgent(depth, evaluate, options...), nil
	case PolicyAlphaBeta:
		return NewAlphaBetaAgent(depth, evaluate, options...), nil
	case PolicyExpectimax:
		return NewExpectimaxAgent(depth, evaluate, options...), nil
	}
	return nil, fmt.Errorf("%w: unknown policy %q", ErrConfiguration, policy)
}
