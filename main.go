package main

import (
	"flag"
	"fmt"
	"multiagent/agent"
	"multiagent/experiments"
	"multiagent/meta"
	"multiagent/world"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	layout := flag.String("layout", "small", fmt.Sprintf("Maze to play (%s)", strings.Join(world.LayoutNames(), ", ")))
	configPath := flag.String("config", "", "YAML file configuring agent 0")
	policy := flag.String("policy", "", "Policy of agent 0 (minimax, alphabeta, expectimax, reflex), overrides the config")
	depth := flag.String("depth", "", "Search depth in rounds, overrides the config")
	compare := flag.Bool("compare", false, "Play every policy with the same evaluation and depth")
	games := flag.Int("games", meta.GAMES, "Games per configuration")
	seed := flag.Uint64("seed", 0, "Seed of the adversaries and of agent 0, from the clock if 0")
	out := flag.String("out", "experiments", "Directory of the CSV results, none if empty")
	verbose := flag.Bool("v", false, "Log every decision")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	config, err := loadConfig(*configPath, *policy, *depth, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	configs := []agent.Config{config}
	name := config.Policy
	if *compare {
		configs = experiments.PolicyConfigs(config)
		name = "policies"
	}

	result, err := experiments.Run(experiments.Experiment{
		Name:    name,
		Layout:  *layout,
		Games:   *games,
		Configs: configs,
		Seed:    *seed,
		OutDir:  *out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	if result.Dir != "" {
		log.Info().Msgf("results written to %s", result.Dir)
	}
}

// loadConfig reads the config file, if any, and applies the flags on top.
func loadConfig(path, policy, depth string, seed uint64) (agent.Config, error) {
	config := agent.DefaultConfig()
	if path != "" {
		var err error
		config, err = agent.LoadConfig(path)
		if err != nil {
			return config, err
		}
	}

	if policy != "" {
		config.Policy = policy
	}
	if depth != "" {
		d, err := agent.ParseDepth(depth)
		if err != nil {
			return config, err
		}
		config.Depth = d
	}
	if seed != 0 && config.Seed == 0 {
		config.Seed = seed
	}

	log.Debug().Uint64("seed", config.Seed).Msgf("agent 0 configured as %s", config)
	return config, config.Validate()
}
