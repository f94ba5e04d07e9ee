package game

// State is the world as seen by the search: immutable, every operation that
// changes the world returns a new State. Agent 0 is the maximizing agent,
// agents 1..NumAgents()-1 are its adversaries.
type State interface {
	NumAgents() int
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	IsWin() bool
	IsLose() bool
	Score() float64
	AgentPosition(agent int) Position
	Objectives() Grid
	SpecialObjectives() []Position
	// VulnerabilityTimer reports how many adversary moves remain during which
	// the adversary is harmless. Always 0 for agent 0.
	VulnerabilityTimer(agent int) int
}

// Evaluate scores a state from agent 0's perspective, higher is better.
type Evaluate func(State) float64

// IsTerminal reports whether the game is over for the state.
func IsTerminal(s State) bool {
	return s.IsWin() || s.IsLose()
}
