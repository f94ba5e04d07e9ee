package searcher

import (
	"multiagent/game"
)

// mockState is an explicit game tree. Child i is reached by Action(i+1).
type mockState struct {
	agents   int
	children []*mockState
	value    float64
	win      bool
	lose     bool
	stopOnly bool
}

func leaf(value float64) *mockState {
	return &mockState{value: value}
}

func leaves(values ...float64) []*mockState {
	nodes := make([]*mockState, len(values))
	for i, v := range values {
		nodes[i] = leaf(v)
	}
	return nodes
}

func node(children ...*mockState) *mockState {
	return &mockState{children: children}
}

// tree stamps the number of agents on every node below root.
func tree(agents int, root *mockState) *mockState {
	root.agents = agents
	for _, child := range root.children {
		tree(agents, child)
	}
	return root
}

func evaluateMock(s game.State) float64 {
	return s.(*mockState).value
}

func (m *mockState) NumAgents() int {
	return m.agents
}

func (m *mockState) LegalActions(agent int) []game.Action {
	if m.stopOnly {
		return []game.Action{game.Stop}
	}
	actions := make([]game.Action, len(m.children))
	for i := range m.children {
		actions[i] = game.Action(i + 1)
	}
	return actions
}

func (m *mockState) Successor(agent int, action game.Action) game.State {
	return m.children[int(action)-1]
}

func (m *mockState) IsWin() bool                           { return m.win }
func (m *mockState) IsLose() bool                          { return m.lose }
func (m *mockState) Score() float64                        { return m.value }
func (m *mockState) AgentPosition(agent int) game.Position { return game.Position{} }
func (m *mockState) Objectives() game.Grid                 { return game.NewGrid(0, 0) }
func (m *mockState) SpecialObjectives() []game.Position    { return nil }
func (m *mockState) VulnerabilityTimer(agent int) int      { return 0 }

// plyState is an endless uniform tree recording how many plies led to it.
type plyState struct {
	agents    int
	branching int
	ply       int
	movers    []int // Agent that made each ply
}

func (p plyState) NumAgents() int { return p.agents }

func (p plyState) LegalActions(agent int) []game.Action {
	return game.Directions[:p.branching]
}

func (p plyState) Successor(agent int, action game.Action) game.State {
	movers := append(append([]int{}, p.movers...), agent)
	return plyState{agents: p.agents, branching: p.branching, ply: p.ply + 1, movers: movers}
}

func (p plyState) IsWin() bool                           { return false }
func (p plyState) IsLose() bool                          { return false }
func (p plyState) Score() float64                        { return 0 }
func (p plyState) AgentPosition(agent int) game.Position { return game.Position{} }
func (p plyState) Objectives() game.Grid                 { return game.NewGrid(0, 0) }
func (p plyState) SpecialObjectives() []game.Position    { return nil }
func (p plyState) VulnerabilityTimer(agent int) int      { return 0 }
