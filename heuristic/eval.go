package heuristic

import (
	"fmt"
	"math"
	"multiagent/game"
)

// Sentinels returned for terminal states regardless of coefficients.
const (
	Win  = math.MaxFloat64
	Loss = -math.MaxFloat64
)

// opportunityOnTop is the inverted opportunity distance when the agent shares
// a cell with a vulnerable adversary, above 1/d for every d >= 1.
const opportunityOnTop = 2.0

// Features are the raw terms of the linear evaluation.
type Features struct {
	Score               float64
	ObjectiveDistance   float64 // Closest objective or spanning tree weight, 0 if none remain
	Opportunity         float64 // 1/d of the nearest vulnerable adversary in reach, 0 if none
	Threat              float64 // Distance to the nearest dangerous adversary, 0 if none
	ObjectivesRemaining float64
	SpecialRemaining    float64
}

// Extract computes the features of a non-terminal state.
func Extract(s game.State, estimator Estimator) Features {
	pos := s.AgentPosition(0)
	objectives := s.Objectives().Positions()

	f := Features{
		Score:               s.Score(),
		ObjectivesRemaining: float64(len(objectives)),
		SpecialRemaining:    float64(len(s.SpecialObjectives())),
	}

	switch estimator {
	case SpanningTree:
		f.ObjectiveDistance = float64(EstimateTour(objectives, pos))
	default:
		f.ObjectiveDistance = float64(closestDistance(objectives, pos))
	}

	// Classify each adversary: harmless long enough to be caught, or a threat
	closestOpportunity, closestThreat := -1, -1
	for agent := 1; agent < s.NumAgents(); agent++ {
		dist := game.ManhattanDistance(pos, s.AgentPosition(agent))
		if s.VulnerabilityTimer(agent) > dist {
			if closestOpportunity < 0 || dist < closestOpportunity {
				closestOpportunity = dist
			}
		} else if closestThreat < 0 || dist < closestThreat {
			closestThreat = dist
		}
	}
	switch {
	case closestOpportunity > 0:
		f.Opportunity = 1.0 / float64(closestOpportunity)
	case closestOpportunity == 0:
		f.Opportunity = opportunityOnTop
	}
	if closestThreat >= 0 {
		f.Threat = float64(closestThreat)
	}

	return f
}

// Combine returns the weighted sum of the features.
func (c Coefficients) Combine(f Features) float64 {
	return c.Score*f.Score +
		c.ObjectiveDistance*f.ObjectiveDistance +
		c.Opportunity*f.Opportunity +
		c.Threat*f.Threat +
		c.ObjectivesRemaining*f.ObjectivesRemaining +
		c.SpecialRemaining*f.SpecialRemaining
}

// Evaluate scores s from agent 0's perspective. Terminal states map to the
// Win and Loss sentinels, ignoring the coefficients.
func Evaluate(s game.State, c Coefficients) float64 {
	if s.IsWin() {
		return Win
	}
	if s.IsLose() {
		return Loss
	}
	return c.Combine(Extract(s, c.Estimator))
}

// Differential scores moving from current to successor, the shared baseline
// of both states cancels out.
func Differential(current, successor game.State, c Coefficients) float64 {
	after := Evaluate(successor, c)
	if after == Win || after == Loss {
		return after
	}
	return after - Evaluate(current, c)
}

// Better returns the composite evaluation bound to c.
func Better(c Coefficients) game.Evaluate {
	return func(s game.State) float64 {
		return Evaluate(s, c)
	}
}

// ScoreOnly evaluates a state by the world's intrinsic score alone.
func ScoreOnly(s game.State) float64 {
	return s.Score()
}

// Lookup resolves an evaluation function by name.
func Lookup(name string, c Coefficients) (game.Evaluate, error) {
	switch name {
	case "better", "":
		return Better(c), nil
	case "score":
		return ScoreOnly, nil
	}
	return nil, fmt.Errorf("unknown evaluation function %q", name)
}

func closestDistance(objectives []game.Position, pos game.Position) int {
	closest := -1
	for _, objective := range objectives {
		if d := game.ManhattanDistance(pos, objective); closest < 0 || d < closest {
			closest = d
		}
	}
	if closest < 0 {
		return 0
	}
	return closest
}
