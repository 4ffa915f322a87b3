package game

// GameState is the full dynamic state of one game: the board, the
// phase, the side to move, and (during the opening only) the cell
// vacated by the first removal, which constrains the second. It owns
// its board outright, so Copy is a fully independent snapshot. The
// zobrist hash is maintained incrementally by the mutators and must
// always agree with HashState computed from scratch.
type GameState struct {
	Board         *Board
	Phase         GamePhase
	CurrentPlayer Color
	FirstRemoval  *Position
	hash          uint64
}

// NewGameState starts a fresh game: full checkerboard, Black to make
// the first opening removal.
func NewGameState(size int) (*GameState, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	gs := &GameState{
		Board:         board,
		Phase:         PhaseOpeningBlackRemoval,
		CurrentPlayer: Black,
	}
	gs.hash = HashState(gs.Board, gs.Phase, gs.CurrentPlayer)
	return gs, nil
}

// Copy returns a deep, independent copy of the state.
func (gs *GameState) Copy() *GameState {
	var firstRemoval *Position
	if gs.FirstRemoval != nil {
		p := *gs.FirstRemoval
		firstRemoval = &p
	}
	return &GameState{
		Board:         gs.Board.Copy(),
		Phase:         gs.Phase,
		CurrentPlayer: gs.CurrentPlayer,
		FirstRemoval:  firstRemoval,
		hash:          gs.hash,
	}
}

// Hash returns the incrementally maintained zobrist fingerprint.
func (gs *GameState) Hash() uint64 {
	return gs.hash
}

// RemoveStone empties pos. Removing an already empty cell is a no-op so
// the hash only toggles for real removals.
func (gs *GameState) RemoveStone(pos Position) {
	if gs.Board.IsEmpty(pos) {
		return
	}
	gs.Board.Remove(pos)
	gs.hash ^= cellKey(pos)
}

// MoveStone relocates the piece at from to the empty cell to.
func (gs *GameState) MoveStone(from, to Position) {
	color, ok := gs.Board.PieceColor(from)
	if !ok {
		return
	}
	gs.Board.Remove(from)
	gs.Board.Set(to, OccupiedCell(color))
	gs.hash ^= cellKey(from)
	gs.hash ^= cellKey(to)
}

// EndTurn hands the move to the other side.
func (gs *GameState) EndTurn() {
	gs.CurrentPlayer = gs.CurrentPlayer.Opposite()
	gs.hash ^= turnKey()
}

// ChangePhase advances the phase state machine.
func (gs *GameState) ChangePhase(phase GamePhase) {
	gs.hash ^= phaseKey(gs.Phase)
	gs.hash ^= phaseKey(phase)
	gs.Phase = phase
}
