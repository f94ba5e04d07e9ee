package agent

import (
	"multiagent/game"
	"multiagent/heuristic"
	"multiagent/searcher"
	"multiagent/world"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func load(t *testing.T, name string) *world.State {
	state, err := world.Load(name)
	require.NoError(t, err)
	return state
}

func TestReflexAgent(t *testing.T) {
	t.Run("never stopping", func(t *testing.T) {
		state := load(t, "open")
		agent := NewReflexAgent(heuristic.DefaultCoefficients(), rand.New(rand.NewSource(1)))

		for i := 0; i < 20; i++ {
			action, metric, err := agent.ChooseAction(state)
			require.NoError(t, err)
			require.NotEqual(t, game.Stop, action)
			require.Contains(t, state.LegalActions(0), action)
			require.Equal(t, "reflex", metric.Variant)
		}
	})

	t.Run("taking the only way forward", func(t *testing.T) {
		state := load(t, "corridor")
		agent := NewReflexAgent(heuristic.DefaultCoefficients(), rand.New(rand.NewSource(1)))

		action, metric, err := agent.ChooseAction(state)

		require.NoError(t, err)
		require.Equal(t, game.East, action)
		require.Equal(t, 1, metric.Nodes, "Only East should be scored")
	})

	t.Run("stopping on a finished game", func(t *testing.T) {
		state, err := world.ParseLayout("%%%%\n%PG%\n%.%%\n%%%%")
		require.NoError(t, err)
		lost := state.Successor(1, game.West)
		require.True(t, lost.IsLose())
		agent := NewReflexAgent(heuristic.DefaultCoefficients(), rand.New(rand.NewSource(1)))

		action, _, err := agent.ChooseAction(lost)

		require.NoError(t, err)
		require.Equal(t, game.Stop, action)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("choosing among legal moves", func(t *testing.T) {
		state := load(t, "open")
		agent := NewRandomAgent(1, rand.New(rand.NewSource(3)))

		seen := map[game.Action]bool{}
		for i := 0; i < 50; i++ {
			action, _, err := agent.ChooseAction(state)
			require.NoError(t, err)
			require.NotEqual(t, game.Stop, action)
			require.Contains(t, state.LegalActions(1), action)
			seen[action] = true
		}
		require.Len(t, seen, len(state.LegalActions(1)))
	})

	t.Run("failing when trapped", func(t *testing.T) {
		state, err := world.ParseLayout("%%%%%\n%P.G%\n%%%%%")
		require.NoError(t, err)
		agent := NewRandomAgent(1, rand.New(rand.NewSource(3)))

		// Walled in on three sides, only West is open
		action, _, err := agent.ChooseAction(state)
		require.NoError(t, err)
		require.Equal(t, game.West, action)

		boxed, err := world.ParseLayout("%%%%%\n%P.%%\n%%%G%\n%%%%%")
		require.NoError(t, err)
		_, _, err = agent.ChooseAction(boxed)
		require.ErrorIs(t, err, searcher.ErrInvalidState)
	})
}

func TestSearchAgents(t *testing.T) {
	evaluate := heuristic.Better(heuristic.DefaultCoefficients())
	agents := map[string]Agent{
		"minimax":    NewMinimaxAgent(1, evaluate, searcher.WithSeed(1)),
		"alphabeta":  NewAlphaBetaAgent(1, evaluate, searcher.WithSeed(1)),
		"expectimax": NewExpectimaxAgent(1, evaluate, searcher.WithSeed(1)),
	}
	for name, agent := range agents {
		t.Run(name, func(t *testing.T) {
			state := load(t, "corridor")

			action, _, err := agent.ChooseAction(state)

			require.NoError(t, err)
			require.Equal(t, game.East, action)
		})
	}
}

func TestParseDepth(t *testing.T) {
	depth, err := ParseDepth("3")
	require.NoError(t, err)
	require.Equal(t, 3, depth)

	for _, text := range []string{"three", "", "2.5", "0", "-1"} {
		_, err := ParseDepth(text)
		require.ErrorIs(t, err, ErrConfiguration, text)
	}
}

func TestParseConfig(t *testing.T) {
	t.Run("overriding defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
policy: alphabeta
depth: 3
seed: 7
coefficients:
  estimator: spanning_tree
`))

		require.NoError(t, err)
		require.Equal(t, PolicyAlphaBeta, cfg.Policy)
		require.Equal(t, 3, cfg.Depth)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, "better", cfg.Evaluation)
		require.Equal(t, heuristic.SpanningTree, cfg.Coefficients.Estimator)
	})

	t.Run("rejecting a non-numeric depth", func(t *testing.T) {
		_, err := ParseConfig([]byte("depth: deep\n"))

		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("rejecting bad values", func(t *testing.T) {
		for name, text := range map[string]string{
			"policy":     "policy: mcts\n",
			"depth":      "depth: 0\n",
			"evaluation": "evaluation: magic\n",
			"estimator":  "coefficients:\n  estimator: euclid\n",
		} {
			_, err := ParseConfig([]byte(text))
			require.ErrorIs(t, err, ErrConfiguration, name)
		}
	})

	t.Run("loading from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agent.yaml")
		require.NoError(t, os.WriteFile(path, []byte("policy: minimax\nevaluation: score\n"), 0o644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, PolicyMinimax, cfg.Policy)
		require.Equal(t, "score", cfg.Evaluation)
	})
}

func TestNew(t *testing.T) {
	for _, policy := range []string{PolicyMinimax, PolicyAlphaBeta, PolicyExpectimax, PolicyReflex} {
		t.Run(policy, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Policy = policy
			cfg.Depth = 1
			cfg.Seed = 5

			agent, err := New(cfg)
			require.NoError(t, err)

			action, _, err := agent.ChooseAction(load(t, "corridor"))
			require.NoError(t, err)
			require.Equal(t, game.East, action)
		})
	}

	t.Run("rejecting an unknown policy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Policy = "greedy"

		_, err := New(cfg)

		require.ErrorIs(t, err, ErrConfiguration)
	})
}
