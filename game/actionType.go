package game

import "fmt"

// Action is a single move of one agent.
type Action int

const (
	Stop Action = iota // No-op, never searched
	North
	South
	East
	West
)

var actionNames = [...]string{"Stop", "North", "South", "East", "West"}

// Directions lists every action that moves an agent.
var Directions = []Action{North, South, East, West}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Vector returns the position offset of the action. Rows grow southwards.
func (a Action) Vector() (dx, dy int) {
	switch a {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Reverse returns the action that undoes a.
func (a Action) Reverse() Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return a
}
