package agent

import (
	"konane/game"
	"konane/searcher"
)

// Action is one move in search terms: either an opening removal or a
// jump, carrying the full detail needed to re-apply it. Exactly one
// field is set.
type Action struct {
	OpeningRemoval *game.Position
	Jump           *game.Jump
}

// State pairs a game state with the action that produced it (nil at
// the search root) and adapts it to the searcher contract. Black is
// the maximizing player.
type State struct {
	Game       *game.GameState
	LastAction *Action
}

func NewState(gs *game.GameState) *State {
	return &State{Game: gs}
}

func (s *State) Fingerprint() uint64 {
	return s.Game.Hash()
}

func (s *State) Player() searcher.PlayerID {
	if s.Game.CurrentPlayer == game.Black {
		return searcher.MaxPlayer
	}
	return searcher.MinPlayer
}

func (s *State) IsTerminal() bool {
	return s.Game.Phase.IsGameOver()
}

// Apply clones the underlying game state and plays action on the copy.
// Actions come from the generator, so rule errors cannot occur here.
func (s *State) Apply(action Action) *State {
	next := s.Game.Copy()
	switch {
	case action.OpeningRemoval != nil:
		_, _ = game.ApplyOpeningRemoval(next, *action.OpeningRemoval)
	case action.Jump != nil:
		_, _ = game.ApplyJump(next, *action.Jump)
	}
	a := action
	return &State{Game: next, LastAction: &a}
}
