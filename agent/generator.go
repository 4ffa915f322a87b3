package agent

import (
	"konane/game"
	"konane/searcher"
)

// Generator expands a Kōnane state into one successor per legal move.
// During Play every partial chain length is a separate successor; the
// GameOver and Setup phases expand to nothing.
type Generator struct{}

func (Generator) Successors(s searcher.State) []searcher.State {
	state, ok := s.(*State)
	if !ok {
		panic("unexpected state type")
	}

	switch state.Game.Phase {
	case game.PhaseOpeningBlackRemoval, game.PhaseOpeningWhiteRemoval:
		removals := game.ValidOpeningRemovals(state.Game)
		successors := make([]searcher.State, 0, len(removals))
		for _, pos := range removals {
			p := pos
			successors = append(successors, state.Apply(Action{OpeningRemoval: &p}))
		}
		return successors
	case game.PhasePlay:
		jumps := game.AllValidJumps(state.Game)
		successors := make([]searcher.State, 0, len(jumps))
		for _, jump := range jumps {
			j := jump
			successors = append(successors, state.Apply(Action{Jump: &j}))
		}
		return successors
	}
	return nil
}
