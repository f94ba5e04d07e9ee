package experiments

import (
	"multiagent/agent"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func configs(policies ...string) []agent.Config {
	base := agent.DefaultConfig()
	base.Depth = 1
	base.Seed = 3
	result := []agent.Config{}
	for _, policy := range policies {
		config := base
		config.Policy = policy
		result = append(result, config)
	}
	return result
}

func TestRun(t *testing.T) {
	t.Run("recording every game", func(t *testing.T) {
		exp := Experiment{
			Name:    "policies",
			Layout:  "corridor",
			Games:   2,
			Configs: configs(agent.PolicyReflex, agent.PolicyAlphaBeta),
			Seed:    11,
			OutDir:  t.TempDir(),
		}

		result, err := Run(exp)

		require.NoError(t, err)
		require.Len(t, result.Configs, 2)
		require.Len(t, result.Games, 4)
		for i, game := range result.Games {
			require.Equal(t, i+1, game.ID)
			require.Equal(t, i/2+1, game.Agent)
			require.Positive(t, game.TotalMoves)
		}
		require.NotEmpty(t, result.Moves)
		for _, move := range result.Moves {
			require.NotEqual(t, "Stop", move.Action)
		}

		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(result.Dir, name))
			require.NoError(t, err, name)
		}
	})

	t.Run("skipping output without a directory", func(t *testing.T) {
		exp := Experiment{Name: "dry", Layout: "corridor", Games: 1, Configs: configs(agent.PolicyExpectimax), Seed: 1}

		result, err := Run(exp)

		require.NoError(t, err)
		require.Empty(t, result.Dir)
		require.Len(t, result.Games, 1)
		require.Equal(t, "expectimax", result.Moves[0].Variant)
	})

	t.Run("failing on an unknown layout", func(t *testing.T) {
		exp := Experiment{Name: "missing", Layout: "nowhere", Games: 1, Configs: configs(agent.PolicyReflex)}

		_, err := Run(exp)

		require.Error(t, err)
	})

	t.Run("failing without configurations", func(t *testing.T) {
		_, err := Run(Experiment{Name: "empty", Layout: "corridor"})

		require.ErrorIs(t, err, agent.ErrConfiguration)
	})

	t.Run("failing on an invalid configuration", func(t *testing.T) {
		bad := configs(agent.PolicyMinimax)
		bad[0].Depth = 0

		_, err := Run(Experiment{Name: "bad", Layout: "corridor", Games: 1, Configs: bad})

		require.ErrorIs(t, err, agent.ErrConfiguration)
	})
}

func TestPolicyConfigs(t *testing.T) {
	base := agent.DefaultConfig()
	base.Depth = 3

	got := PolicyConfigs(base)

	require.Len(t, got, 4)
	for _, config := range got {
		require.NoError(t, config.Validate())
		require.Equal(t, 3, config.Depth)
	}
	require.Equal(t, agent.PolicyReflex, got[0].Policy)
}
