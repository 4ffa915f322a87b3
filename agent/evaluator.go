package agent

import (
	"konane/game"
	"konane/searcher"
)

const winValue = 1000.0

// Evaluator scores positions by mobility: Black's legal jump count
// minus White's. Terminal positions score the fixed win magnitudes,
// and a side to move with zero jumps scores as an immediate loss even
// before the phase flips to GameOver.
type Evaluator struct{}

func (Evaluator) MaxWinsValue() float64 { return winValue }
func (Evaluator) MinWinsValue() float64 { return -winValue }

func (e Evaluator) Evaluate(s searcher.State) float64 {
	state, ok := s.(*State)
	if !ok {
		panic("unexpected state type")
	}
	gs := state.Game

	if winner, over := gs.Phase.Winner(); over {
		if winner == game.Black {
			return e.MaxWinsValue()
		}
		return e.MinWinsValue()
	}

	blackMobility := mobility(gs, game.Black)
	if gs.CurrentPlayer == game.Black && blackMobility == 0 {
		return e.MinWinsValue()
	}
	whiteMobility := mobility(gs, game.White)
	if gs.CurrentPlayer == game.White && whiteMobility == 0 {
		return e.MaxWinsValue()
	}

	return float64(blackMobility - whiteMobility)
}

// mobility counts color's legal jumps by re-aiming the mover on a
// scratch copy, which rescans the whole board.
func mobility(gs *game.GameState, color game.Color) int {
	if gs.Phase != game.PhasePlay {
		return 0
	}
	probe := gs.Copy()
	probe.CurrentPlayer = color
	return len(game.AllValidJumps(probe))
}
