package engine

import (
	"errors"
	"multiagent/experiments/metrics"
)

// ErrIllegalAction is returned when an agent picks an action its state does
// not allow.
var ErrIllegalAction = errors.New("illegal action")

// Outcome of a finished game from agent 0's perspective.
type Outcome int

const (
	Unfinished Outcome = iota // Stopped by the turn cap
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "unfinished"
}

type Engine interface {
	// Run plays a game till it is won, lost or the turn cap is reached
	Run() (outcome Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
