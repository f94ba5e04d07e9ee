package world

import (
	"fmt"
	"multiagent/game"
	"multiagent/meta"
	"multiagent/utils"
)

// Scoring of the maze.
const (
	TimePenalty    = 1.0   // Per move of agent 0
	ObjectiveScore = 10.0  // Per objective eaten
	WinScore       = 500.0 // Clearing every objective
	LoseScore      = 500.0 // Caught by a dangerous adversary
	CatchScore     = 200.0 // Catching a vulnerable adversary
)

type agentState struct {
	Pos   game.Position
	Start game.Position
	Timer int // Vulnerability timer, adversaries only
}

// State is an immutable maze position. Agent 0 collects objectives while the
// adversaries chase it; Successor always returns a copy.
type State struct {
	walls    game.Grid // Shared by every successor
	food     game.Grid // Copied when an objective is eaten
	capsules []game.Position
	agents   []agentState
	score    float64
	win      bool
	lose     bool
}

// Copy of the State. Walls are never modified and stay shared.
func (s *State) Copy() *State {
	agentsCopy := make([]agentState, len(s.agents))
	copy(agentsCopy, s.agents)

	capsulesCopy := make([]game.Position, len(s.capsules))
	copy(capsulesCopy, s.capsules)

	return &State{
		walls:    s.walls,
		food:     s.food,
		capsules: capsulesCopy,
		agents:   agentsCopy,
		score:    s.score,
		win:      s.win,
		lose:     s.lose,
	}
}

func (s *State) NumAgents() int {
	return len(s.agents)
}

func (s *State) IsWin() bool {
	return s.win
}

func (s *State) IsLose() bool {
	return s.lose
}

func (s *State) Score() float64 {
	return s.score
}

func (s *State) AgentPosition(agent int) game.Position {
	return s.agents[agent].Pos
}

func (s *State) Objectives() game.Grid {
	return s.food
}

func (s *State) SpecialObjectives() []game.Position {
	return s.capsules
}

func (s *State) VulnerabilityTimer(agent int) int {
	if agent == 0 {
		return 0
	}
	return s.agents[agent].Timer
}

func (s *State) Walls() game.Grid {
	return s.walls
}

// LegalActions returns the moves not blocked by walls. Agent 0 may also stop,
// adversaries may not. A finished game has no legal actions.
func (s *State) LegalActions(agent int) []game.Action {
	if s.win || s.lose {
		return nil
	}
	actions := []game.Action{}
	if agent == 0 {
		actions = append(actions, game.Stop)
	}
	pos := s.agents[agent].Pos
	for _, a := range game.Directions {
		if next := pos.Add(a.Vector()); s.inside(next) && !s.walls.Get(next) {
			actions = append(actions, a)
		}
	}
	return actions
}

func (s *State) inside(p game.Position) bool {
	return p.X >= 0 && p.X < s.walls.Width() && p.Y >= 0 && p.Y < s.walls.Height()
}

// Successor plays action for agent. Playing on a finished game or playing an
// illegal action is a programming error and panics.
func (s *State) Successor(agent int, action game.Action) game.State {
	if s.win || s.lose {
		panic("cannot generate a successor of a finished game")
	}
	if utils.FindIndex(s.LegalActions(agent), action) < 0 {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, agent))
	}

	next := s.Copy()
	next.agents[agent].Pos = next.agents[agent].Pos.Add(action.Vector())

	if agent == 0 {
		next.score -= TimePenalty
		next.consume()
		for ghost := 1; ghost < len(next.agents); ghost++ {
			next.collide(ghost)
		}
	} else {
		if next.agents[agent].Timer > 0 {
			next.agents[agent].Timer--
		}
		next.collide(agent)
	}
	return next
}

// consume eats whatever lies under agent 0.
func (s *State) consume() {
	pos := s.agents[0].Pos
	if s.food.Get(pos) {
		s.food = s.food.Copy()
		s.food[pos.X][pos.Y] = false
		s.score += ObjectiveScore
		if s.food.Count() == 0 && !s.lose {
			s.score += WinScore
			s.win = true
		}
	}
	if i := utils.FindIndex(s.capsules, pos); i >= 0 {
		s.capsules = append(s.capsules[:i], s.capsules[i+1:]...)
		for ghost := 1; ghost < len(s.agents); ghost++ {
			s.agents[ghost].Timer = meta.SCARED_TIME
		}
	}
}

// collide resolves agent 0 and ghost sharing a cell.
func (s *State) collide(ghost int) {
	if s.agents[ghost].Pos != s.agents[0].Pos {
		return
	}
	if s.agents[ghost].Timer > 0 {
		s.score += CatchScore
		s.agents[ghost].Pos = s.agents[ghost].Start
		s.agents[ghost].Timer = 0
		return
	}
	if !s.win {
		s.score -= LoseScore
		s.lose = true
	}
}
