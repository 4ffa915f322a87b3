package agent

import (
	"konane/game"
	"konane/player"
	"konane/searcher"
)

// AIPlayer selects moves with fixed-depth minimax search. It keeps one
// transposition table for its lifetime, so positions cached during one
// move help the next; the table's generation counter ages entries out
// between searches. One AIPlayer serves one search at a time.
type AIPlayer struct {
	color       game.Color
	depth       int
	table       *searcher.TranspositionTable
	lastMetrics searcher.SearchMetrics
}

type AIOption func(p *AIPlayer)

func WithTableCapacity(capacity int) AIOption {
	return func(p *AIPlayer) {
		if capacity > 0 {
			p.table = searcher.NewTranspositionTable(capacity)
		}
	}
}

func NewAIPlayer(color game.Color, depth int, options ...AIOption) *AIPlayer {
	p := &AIPlayer{
		color: color,
		depth: depth,
	}
	for _, option := range options {
		option(p)
	}
	if p.table == nil {
		p.table = searcher.NewTranspositionTable(searcher.DefaultTableCapacity)
	}
	return p
}

func (p *AIPlayer) Color() game.Color {
	return p.color
}

// ComputeMove searches from state and returns the chosen move, nil
// when the side to move has no legal move (the game is already over or
// stuck).
func (p *AIPlayer) ComputeMove(state *game.GameState) *player.PlayerMove {
	root := NewState(state.Copy())
	search := searcher.NewMinimax(Evaluator{}, Generator{}, p.depth,
		searcher.WithTable(p.table),
		searcher.WithMetrics())

	best, ok := search.FindBestState(root)
	p.lastMetrics = search.Metrics()
	if !ok {
		return nil
	}

	action := best.(*State).LastAction
	switch {
	case action.OpeningRemoval != nil:
		return &player.PlayerMove{OpeningRemoval: action.OpeningRemoval}
	case action.Jump != nil:
		return &player.PlayerMove{Jump: action.Jump}
	}
	return nil
}

func (p *AIPlayer) RequestMove(state *game.GameState) *player.PlayerMove {
	return p.ComputeMove(state)
}

// LastSearchMetrics returns the counters from the most recent search.
func (p *AIPlayer) LastSearchMetrics() searcher.SearchMetrics {
	return p.lastMetrics
}
