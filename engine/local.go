package engine

import (
	"fmt"
	"multiagent/agent"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/meta"
	"multiagent/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State    game.State
	Agents   []agent.Agent // Indexed like the agents of State
	maxTurns int
}

type Option func(*LocalEngine)

// WithMaxTurns caps the number of turns of agent 0.
func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		e.maxTurns = turns
	}
}

// NewLocalEngine plays agents against each other from state. Every agent
// of the state must have exactly one controller.
func NewLocalEngine(state game.State, agents []agent.Agent, options ...Option) *LocalEngine {
	if len(agents) != state.NumAgents() {
		panic(fmt.Sprintf("number of agents %d does not match the state's %d", len(agents), state.NumAgents()))
	}

	e := &LocalEngine{
		State:    state,
		Agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	if e.maxTurns < 1 {
		panic("max turns must be positive")
	}
	return e
}

// Run executes the game loop. Agents move in index order; a turn is one move
// of every agent still able to move.
func (e *LocalEngine) Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("starting game with %d agents", len(e.Agents))

	for turn := 1; turn <= e.maxTurns && !game.IsTerminal(e.State); turn++ {
		for index, a := range e.Agents {
			if game.IsTerminal(e.State) {
				break
			}

			action, searchMetric, err := a.ChooseAction(e.State)
			if err != nil {
				return Unfinished, gameMetric, moveMetrics, fmt.Errorf("agent %d on turn %d: %w", index, turn, err)
			}
			if utils.FindIndex(e.State.LegalActions(index), action) < 0 {
				return Unfinished, gameMetric, moveMetrics, fmt.Errorf("%w: agent %d chose %s on turn %d", ErrIllegalAction, index, action, turn)
			}
			if index == 0 {
				moveMetrics = append(moveMetrics, metrics.MoveMetric{
					Step:         turn,
					Action:       action.String(),
					SearchMetric: searchMetric,
				})
			}

			e.State = e.State.Successor(index, action)
			gameMetric.TotalMoves++
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Win = e.State.IsWin()
	gameMetric.Lose = e.State.IsLose()
	gameMetric.Score = e.State.Score()

	outcome := Unfinished
	switch {
	case gameMetric.Win:
		outcome = Win
	case gameMetric.Lose:
		outcome = Lose
	default:
		log.Warn().Msgf("stopped after %d turns without a result", e.maxTurns)
	}
	log.Info().Msgf("game over: %s with score %.0f after %d moves", outcome, gameMetric.Score, gameMetric.TotalMoves)

	return outcome, gameMetric, moveMetrics, nil
}

var _ Engine = (*LocalEngine)(nil)
