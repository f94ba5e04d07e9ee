package experiments

import (
	"fmt"
	"multiagent/agent"
	"multiagent/engine"
	"multiagent/experiments/metrics"
	"multiagent/meta"
	"multiagent/world"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Experiment plays Games games on Layout for each configuration of agent 0,
// against adversaries moving uniformly at random.
type Experiment struct {
	Name    string
	Layout  string
	Games   int // Per configuration, meta.GAMES if 0
	Configs []agent.Config
	Seed    uint64 // Seeds the adversaries, from the clock if 0
	OutDir  string // Results are only written when set
}

type Result struct {
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Dir     string // Output directory of the run, if written
}

// PolicyConfigs derives one configuration per policy from base, so that the
// policies are compared with the same evaluation and depth.
func PolicyConfigs(base agent.Config) []agent.Config {
	policies := []string{agent.PolicyReflex, agent.PolicyMinimax, agent.PolicyAlphaBeta, agent.PolicyExpectimax}
	configs := make([]agent.Config, 0, len(policies))
	for _, policy := range policies {
		config := base
		config.Policy = policy
		configs = append(configs, config)
	}
	return configs
}

// Run plays the experiment and stores its records as CSV under
// OutDir/Name/<run ID>.
func Run(exp Experiment) (Result, error) {
	result, err := runExperiment(exp)
	if err != nil {
		return result, err
	}
	if exp.OutDir == "" {
		return result, nil
	}

	writer, err := metrics.NewWriter(exp.OutDir, exp.Name)
	if err != nil {
		return result, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	result.Dir = writer.Dir()

	err = writer.WriteAgentConfigs(result.Configs)
	if err != nil {
		return result, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return result, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return result, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records of run %s", writer.RunID)

	return result, nil
}

func runExperiment(exp Experiment) (Result, error) {
	if len(exp.Configs) == 0 {
		return Result{}, fmt.Errorf("%w: experiment %s has no configurations", agent.ErrConfiguration, exp.Name)
	}
	if exp.Games < 0 {
		return Result{}, fmt.Errorf("%w: negative number of games %d", agent.ErrConfiguration, exp.Games)
	}
	games := exp.Games
	if games == 0 {
		games = meta.GAMES
	}
	seed := exp.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	result := Result{
		Configs: []metrics.AgentConfig{},
		Games:   []metrics.GameRecord{},
		Moves:   []metrics.MoveRecord{},
	}
	count := 0

	log.Info().Msgf("starting %s experiment on layout %s...", exp.Name, exp.Layout)

	for ci, config := range exp.Configs {
		id := ci + 1
		result.Configs = append(result.Configs, metrics.AgentConfig{
			ID:         id,
			Policy:     config.Policy,
			Evaluation: config.Evaluation,
			Depth:      config.Depth,
			Seed:       config.Seed,
			Estimator:  string(config.Coefficients.Estimator),
		})

		log.Info().Msgf("starting configuration %d of %d: %s", id, len(exp.Configs), config)

		wins, total := 0, 0.0
		for i := 0; i < games; i++ {
			outcome, gameMetric, moveMetrics, err := runGame(config, exp.Layout, rng)
			if err != nil {
				return result, fmt.Errorf("configuration %s game %d: %w", config, i+1, err)
			}
			count++
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Agent:      id,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			if outcome == engine.Win {
				wins++
			}
			total += gameMetric.Score

			log.Debug().Msgf("completed game %d of %d: %s", i+1, games, outcome)
		}
		log.Info().Msgf("completed configuration %d: %d of %d won, mean score %.1f", id, wins, games, total/float64(games))
	}

	log.Info().Msgf("completed %s experiment", exp.Name)
	return result, nil
}

// runGame plays a single game of agent 0 configured by config against random
// adversaries.
func runGame(config agent.Config, layout string, rng *rand.Rand) (engine.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := world.Load(layout)
	if err != nil {
		return engine.Unfinished, metrics.GameMetric{}, nil, err
	}
	player, err := agent.New(config)
	if err != nil {
		return engine.Unfinished, metrics.GameMetric{}, nil, err
	}

	agents := []agent.Agent{player}
	for index := 1; index < state.NumAgents(); index++ {
		agents = append(agents, agent.NewRandomAgent(index, rand.New(rand.NewSource(rng.Uint64()))))
	}
	e := engine.NewLocalEngine(state, agents)

	return e.Run()
}
