package searcher

import "fmt"

// Minimax is a fixed-depth adversarial search over the State contract.
// Position values are memoized in a transposition table so states
// reached through different move orders are searched once. A Minimax
// and its table belong to one caller at a time; clone the game state
// before handing a search to a background worker.
type Minimax struct {
	evaluate  Evaluator
	generate  Generator
	depth     int
	table     *TranspositionTable
	collector MetricsCollector
}

// MaxSearchDepth bounds the search depth; fixed-depth minimax over a
// branching game is infeasible long before this, and the bound keeps
// depths within the table entry's range.
const MaxSearchDepth = 64

type Option func(m *Minimax)

func WithTable(table *TranspositionTable) Option {
	return func(m *Minimax) {
		if table != nil {
			m.table = table
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.collector = NewMetricsCollector()
	}
}

func NewMinimax(evaluate Evaluator, generate Generator, depth int, options ...Option) *Minimax {
	if depth < 1 || depth > MaxSearchDepth {
		panic(fmt.Sprintf("search depth must be between 1 and %d", MaxSearchDepth))
	}
	m := &Minimax{
		evaluate:  evaluate,
		generate:  generate,
		depth:     depth,
		collector: NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.table == nil {
		m.table = NewTranspositionTable(DefaultTableCapacity)
	}
	return m
}

// FindBestState searches to the configured depth and returns the best
// successor of root. The caller recovers the chosen move from the
// returned state's recorded action. Returns false when root has no
// successor.
func (m *Minimax) FindBestState(root State) (State, bool) {
	m.collector.Start()
	defer m.collector.Stop()
	m.table.NextGeneration()

	successors := m.generate.Successors(root)
	if len(successors) == 0 {
		return nil, false
	}

	maximizing := root.Player() == MaxPlayer
	best := successors[0]
	bestValue := m.value(best, m.depth-1)
	for _, successor := range successors[1:] {
		v := m.value(successor, m.depth-1)
		if (maximizing && v > bestValue) || (!maximizing && v < bestValue) {
			best, bestValue = successor, v
		}
	}
	return best, true
}

// Metrics returns the counters from the most recent search.
func (m *Minimax) Metrics() SearchMetrics {
	return m.collector.Complete()
}

func (m *Minimax) value(state State, depth int) float64 {
	m.collector.AddNode()

	key := state.Fingerprint()
	if v, ok := m.table.Load(key, depth); ok {
		m.collector.AddTableHit()
		return v
	}

	var v float64
	if state.IsTerminal() || depth <= 0 {
		v = m.evaluate.Evaluate(state)
	} else if successors := m.generate.Successors(state); len(successors) == 0 {
		// No legal move is a terminal condition even when the phase
		// object has not flipped yet; the evaluator scores it.
		v = m.evaluate.Evaluate(state)
	} else if state.Player() == MaxPlayer {
		v = m.value(successors[0], depth-1)
		for _, successor := range successors[1:] {
			if sv := m.value(successor, depth-1); sv > v {
				v = sv
			}
		}
	} else {
		v = m.value(successors[0], depth-1)
		for _, successor := range successors[1:] {
			if sv := m.value(successor, depth-1); sv < v {
				v = sv
			}
		}
	}

	m.table.Store(key, depth, v)
	return v
}
