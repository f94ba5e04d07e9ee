package heuristic

import (
	"fmt"
	"math"
)

// Estimator selects how the distance to the remaining objectives is measured.
type Estimator string

const (
	// ClosestObjective uses the Manhattan distance to the nearest objective.
	ClosestObjective Estimator = "closest"
	// SpanningTree uses the total weight of a minimum spanning tree over the
	// agent and every remaining objective.
	SpanningTree Estimator = "spanning_tree"
)

// Coefficients weighs each feature of the evaluation. Omitted YAML fields keep
// the value they had before decoding, so decode into DefaultCoefficients().
type Coefficients struct {
	Score               float64   `yaml:"score"`
	ObjectiveDistance   float64   `yaml:"objective_distance"`
	Opportunity         float64   `yaml:"opportunity"`
	Threat              float64   `yaml:"threat"`
	ObjectivesRemaining float64   `yaml:"objectives_remaining"`
	SpecialRemaining    float64   `yaml:"special_remaining"`
	Estimator           Estimator `yaml:"estimator"`
}

// DefaultCoefficients rewards progress (negative weight on distance and on
// what is left to eat), strongly rewards hunting vulnerable adversaries and
// mildly prefers keeping distance from dangerous ones.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Score:               1.0,
		ObjectiveDistance:   -1.5,
		Opportunity:         100.0,
		Threat:              2.0,
		ObjectivesRemaining: -4.0,
		SpecialRemaining:    -20.0,
		Estimator:           ClosestObjective,
	}
}

// Validate rejects weights that are not finite numbers and unknown estimators.
func (c Coefficients) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"score", c.Score},
		{"objective_distance", c.ObjectiveDistance},
		{"opportunity", c.Opportunity},
		{"threat", c.Threat},
		{"objectives_remaining", c.ObjectivesRemaining},
		{"special_remaining", c.SpecialRemaining},
	}
	for _, w := range weights {
		if math.IsNaN(w.value) || math.IsInf(w.value, 0) {
			return fmt.Errorf("coefficient %s is not finite: %v", w.name, w.value)
		}
	}
	switch c.Estimator {
	case ClosestObjective, SpanningTree:
	default:
		return fmt.Errorf("unknown objective estimator %q", c.Estimator)
	}
	return nil
}
