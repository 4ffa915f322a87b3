package player

import (
	"konane/game"

	"golang.org/x/exp/rand"
)

// PlayerMove is a move chosen by a player: exactly one field is set.
type PlayerMove struct {
	OpeningRemoval *game.Position
	Jump           *game.Jump
}

// Player is anything that can pick moves for one side: an AI, a random
// baseline, or a UI-driven human. RequestMove returns nil when the
// player has no move to offer.
type Player interface {
	Color() game.Color
	RequestMove(state *game.GameState) *PlayerMove
}

// RandomPlayer picks uniformly among legal moves. Useful as a baseline
// opponent.
type RandomPlayer struct {
	color game.Color
	rng   *rand.Rand
}

func NewRandomPlayer(color game.Color, seed uint64) *RandomPlayer {
	return &RandomPlayer{color: color, rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Color() game.Color {
	return p.color
}

func (p *RandomPlayer) RequestMove(state *game.GameState) *PlayerMove {
	switch state.Phase {
	case game.PhaseOpeningBlackRemoval, game.PhaseOpeningWhiteRemoval:
		removals := game.ValidOpeningRemovals(state)
		if len(removals) == 0 {
			return nil
		}
		pos := removals[p.rng.Intn(len(removals))]
		return &PlayerMove{OpeningRemoval: &pos}
	case game.PhasePlay:
		jumps := game.AllValidJumps(state)
		if len(jumps) == 0 {
			return nil
		}
		jump := jumps[p.rng.Intn(len(jumps))]
		return &PlayerMove{Jump: &jump}
	}
	return nil
}
