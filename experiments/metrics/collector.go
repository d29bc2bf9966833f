package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration   time.Duration
	Depth      int // Deepest completed iteration, -1 if none completed
	Score      int
	Nodes      int
	TableHits  int
	Researches int // Zero window and aspiration re-searches
}

type MoveMetric struct {
	Step int
	Team string
	Move string
	SearchMetric
}

type GameMetric struct {
	StartTeam  string
	Winner     string // "" on a draw
	FishOne    int
	FishTwo    int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddNode()
	AddTableHit()
	AddResearch()
	Complete(depth, score int) SearchMetric
}

type collector struct {
	startTime  time.Time
	nodes      atomic.Int64
	tableHits  atomic.Int64
	researches atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.tableHits.Store(0)
	m.researches.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *collector) AddResearch() {
	m.researches.Add(1)
}

func (m *collector) Complete(depth, score int) SearchMetric {
	return SearchMetric{
		Duration:   time.Since(m.startTime),
		Depth:      depth,
		Score:      score,
		Nodes:      int(m.nodes.Load()),
		TableHits:  int(m.tableHits.Load()),
		Researches: int(m.researches.Load()),
	}
}

type dummyCollector struct {
	startTime time.Time
}

// NewDummyCollector only keeps track of time, depth and score.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()       { m.startTime = time.Now() }
func (m *dummyCollector) AddNode()     {}
func (m *dummyCollector) AddTableHit() {}
func (m *dummyCollector) AddResearch() {}
func (m *dummyCollector) Complete(depth, score int) SearchMetric {
	return SearchMetric{Duration: time.Since(m.startTime), Depth: depth, Score: score}
}
