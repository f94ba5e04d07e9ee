package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Variant  string
	Depth    int
	Duration time.Duration
	Nodes    int
	Prunes   int
	Value    float64
}

type MoveMetric struct {
	Step   int // Turn of agent 0, from 1
	Action string
	SearchMetric
}

type GameMetric struct {
	Win        bool
	Lose       bool // Neither is set when the turn cap ends the game
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates the statistics of a single decision.
type Collector interface {
	Start(variant string, depth int)
	AddNode()
	AddPrune()
	SetValue(value float64)
	Complete() SearchMetric
}

type collector struct {
	variant   string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	prunes    atomic.Int64
	value     float64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(variant string, depth int) {
	m.startTime = time.Now()
	m.variant = variant
	m.depth = depth
	m.nodes.Store(0)
	m.prunes.Store(0)
	m.value = 0
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) SetValue(value float64) {
	m.value = value
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Variant:  m.variant,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Prunes:   int(m.prunes.Load()),
		Value:    m.value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(variant string, depth int) {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddPrune()                       {}
func (m *dummyCollector) SetValue(value float64)          {}
func (m *dummyCollector) Complete() SearchMetric          { return SearchMetric{} }
