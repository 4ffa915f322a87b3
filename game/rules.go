package game

import (
	"errors"
	"fmt"
	"slices"

	"konane/utils"
)

// Jump is a capturing move: the piece at From hops along Direction,
// landing on To and removing every piece in Captured. Captured is
// ordered along the chain; a chain never changes direction.
type Jump struct {
	From      Position
	To        Position
	Direction Direction
	Captured  []Position
}

var (
	ErrWrongPhase     = errors.New("move not allowed in this phase")
	ErrInvalidRemoval = errors.New("invalid removal position")
	ErrInvalidJump    = errors.New("invalid jump")
)

// ValidBlackOpeningRemovals lists where Black may take the opening
// removal: the center and corner cells holding Black pieces. On a
// fresh checkerboard parity makes that exactly two centers and two
// corners.
func ValidBlackOpeningRemovals(state *GameState) []Position {
	var positions []Position
	candidates := append(state.Board.CenterPositions(), state.Board.CornerPositions()...)
	for _, pos := range candidates {
		if color, ok := state.Board.PieceColor(pos); ok && color == Black {
			positions = append(positions, pos)
		}
	}
	return positions
}

// ValidWhiteOpeningRemovals lists where White may respond: white pieces
// orthogonally adjacent to the cell Black vacated. Empty until Black
// has removed.
func ValidWhiteOpeningRemovals(state *GameState) []Position {
	if state.FirstRemoval == nil {
		return nil
	}
	var positions []Position
	for _, neighbor := range state.Board.OrthogonalNeighbors(*state.FirstRemoval) {
		if color, ok := state.Board.PieceColor(neighbor); ok && color == White {
			positions = append(positions, neighbor)
		}
	}
	return positions
}

// ValidOpeningRemovals dispatches on the opening phase for the side to
// move, nil outside the opening.
func ValidOpeningRemovals(state *GameState) []Position {
	switch state.Phase {
	case PhaseOpeningBlackRemoval:
		return ValidBlackOpeningRemovals(state)
	case PhaseOpeningWhiteRemoval:
		return ValidWhiteOpeningRemovals(state)
	}
	return nil
}

// singleJump tests the one-hop pattern from from along d: an opposing
// piece adjacent, then an empty landing cell beyond it.
func singleJump(board *Board, from Position, d Direction, mover Color) (captured, to Position, ok bool) {
	over, inBounds := d.Step(from, board.Size())
	if !inBounds {
		return Position{}, Position{}, false
	}
	if color, occupied := board.PieceColor(over); !occupied || color != mover.Opposite() {
		return Position{}, Position{}, false
	}
	landing, inBounds := d.Step(over, board.Size())
	if !inBounds || !board.IsEmpty(landing) {
		return Position{}, Position{}, false
	}
	return over, landing, true
}

// ValidJumpsFrom enumerates every jump the side to move can start at
// from. Each partial chain length is its own jump, because a player
// may stop a chain after any capture. Chains in different directions
// are independent and never combine.
func ValidJumpsFrom(state *GameState, from Position) []Jump {
	board := state.Board
	mover := state.CurrentPlayer
	if color, ok := board.PieceColor(from); !ok || color != mover {
		return nil
	}

	var jumps []Jump
	for _, d := range Directions() {
		captured, to, ok := singleJump(board, from, d, mover)
		if !ok {
			continue
		}
		chain := []Position{captured}
		jumps = append(jumps, Jump{From: from, To: to, Direction: d, Captured: append([]Position(nil), chain...)})

		// Simulate the capture on a scratch board and keep probing the
		// same direction from each landing cell.
		scratch := board.Copy()
		scratch.Remove(from)
		scratch.Remove(captured)
		scratch.Set(to, OccupiedCell(mover))

		current := to
		for {
			next, landing, ok := singleJump(scratch, current, d, mover)
			if !ok {
				break
			}
			scratch.Remove(current)
			scratch.Remove(next)
			scratch.Set(landing, OccupiedCell(mover))
			chain = append(chain, next)
			current = landing
			jumps = append(jumps, Jump{From: from, To: current, Direction: d, Captured: append([]Position(nil), chain...)})
		}
	}
	return jumps
}

// AllValidJumps unions ValidJumpsFrom over the whole board.
func AllValidJumps(state *GameState) []Jump {
	var jumps []Jump
	size := state.Board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			jumps = append(jumps, ValidJumpsFrom(state, NewPosition(row, col))...)
		}
	}
	return jumps
}

// HasValidMove reports whether the side to move has any legal move in
// the current phase. Always false in Setup and GameOver.
func HasValidMove(state *GameState) bool {
	switch state.Phase {
	case PhaseOpeningBlackRemoval:
		return len(ValidBlackOpeningRemovals(state)) > 0
	case PhaseOpeningWhiteRemoval:
		return len(ValidWhiteOpeningRemovals(state)) > 0
	case PhasePlay:
		return len(AllValidJumps(state)) > 0
	}
	return false
}

// MovablePieces lists positions holding a piece of the side to move
// with at least one jump.
func MovablePieces(state *GameState) []Position {
	var pieces []Position
	size := state.Board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := NewPosition(row, col)
			if len(ValidJumpsFrom(state, pos)) > 0 {
				pieces = append(pieces, pos)
			}
		}
	}
	return pieces
}

// ApplyOpeningRemoval validates and performs an opening removal,
// advancing phase and turn. When White's removal puts the game into
// Play and Black already has no jump, the game ends immediately with
// White as winner. The state is untouched on error.
func ApplyOpeningRemoval(state *GameState, pos Position) (MoveRecord, error) {
	switch state.Phase {
	case PhaseOpeningBlackRemoval:
		if !utils.Contains(ValidBlackOpeningRemovals(state), pos) {
			return MoveRecord{}, fmt.Errorf("%w: %s is not a legal Black opening removal", ErrInvalidRemoval, pos)
		}
		first := pos
		state.RemoveStone(pos)
		state.FirstRemoval = &first
		state.ChangePhase(PhaseOpeningWhiteRemoval)
		state.EndTurn()
		return NewOpeningRemovalRecord(Black, pos), nil
	case PhaseOpeningWhiteRemoval:
		if !utils.Contains(ValidWhiteOpeningRemovals(state), pos) {
			return MoveRecord{}, fmt.Errorf("%w: %s is not a legal White opening removal", ErrInvalidRemoval, pos)
		}
		state.RemoveStone(pos)
		state.ChangePhase(PhasePlay)
		state.EndTurn()
		if !HasValidMove(state) {
			state.ChangePhase(GameOverPhase(White))
		}
		return NewOpeningRemovalRecord(White, pos), nil
	}
	return MoveRecord{}, fmt.Errorf("%w: opening removal during %s", ErrWrongPhase, state.Phase)
}

// ApplyJump validates and performs a jump for the side to move. The
// jump must exactly match a candidate from ValidJumpsFrom. If the new
// mover is left without a jump the game ends with the mover who just
// jumped as winner. The state is untouched on error.
func ApplyJump(state *GameState, jump Jump) (MoveRecord, error) {
	if state.Phase != PhasePlay {
		return MoveRecord{}, fmt.Errorf("%w: jump during %s", ErrWrongPhase, state.Phase)
	}
	if !matchesValidJump(state, jump) {
		return MoveRecord{}, fmt.Errorf("%w: %s-%s", ErrInvalidJump, jump.From, jump.To)
	}
	mover := state.CurrentPlayer
	state.MoveStone(jump.From, jump.To)
	for _, pos := range jump.Captured {
		state.RemoveStone(pos)
	}
	state.EndTurn()
	if !HasValidMove(state) {
		state.ChangePhase(GameOverPhase(mover))
	}
	return NewJumpRecord(mover, jump.From, jump.To, jump.Captured), nil
}

func matchesValidJump(state *GameState, jump Jump) bool {
	for _, candidate := range ValidJumpsFrom(state, jump.From) {
		if candidate.To == jump.To && slices.Equal(candidate.Captured, jump.Captured) {
			return true
		}
	}
	return false
}
