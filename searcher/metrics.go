package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	TableHits int64
}

type MetricsCollector interface {
	Start()
	Stop()
	AddNode()
	AddTableHit()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	duration  time.Duration
	nodes     atomic.Int64
	tableHits atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.duration = 0
	m.nodes.Store(0)
	m.tableHits.Store(0)
}

func (m *metricsCollector) Stop() {
	m.duration = time.Since(m.startTime)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  m.duration,
		Nodes:     m.nodes.Load(),
		TableHits: m.tableHits.Load(),
	}
}

// NewDummyCollector returns a collector that records nothing, for
// searches that do not report metrics.
func NewDummyCollector() MetricsCollector {
	return dummyCollector{}
}

type dummyCollector struct{}

func (dummyCollector) Start()                  {}
func (dummyCollector) Stop()                   {}
func (dummyCollector) AddNode()                {}
func (dummyCollector) AddTableHit()            {}
func (dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
