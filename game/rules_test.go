package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, size int) *GameState {
	t.Helper()
	state, err := NewGameState(size)
	require.NoError(t, err)
	return state
}

func setupPlayPhase(t *testing.T) *GameState {
	t.Helper()
	state := newState(t, 8)
	_, err := ApplyOpeningRemoval(state, NewPosition(3, 3))
	require.NoError(t, err)
	_, err = ApplyOpeningRemoval(state, NewPosition(3, 4))
	require.NoError(t, err)
	return state
}

// stripWhite removes every white piece so Black has no capture target.
func stripWhite(state *GameState) {
	size := state.Board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := NewPosition(row, col)
			if color, ok := state.Board.PieceColor(pos); ok && color == White {
				state.RemoveStone(pos)
			}
		}
	}
}

func TestValidBlackOpeningRemovals(t *testing.T) {
	t.Run("returns the Black center and corner pieces", func(t *testing.T) {
		state := newState(t, 8)
		valid := ValidBlackOpeningRemovals(state)

		require.ElementsMatch(t, []Position{
			NewPosition(3, 3), NewPosition(4, 4), NewPosition(0, 0), NewPosition(7, 7),
		}, valid)
	})

	t.Run("only Black pieces on every size", func(t *testing.T) {
		for size := MinBoardSize; size <= MaxBoardSize; size += 2 {
			state := newState(t, size)
			for _, pos := range ValidBlackOpeningRemovals(state) {
				color, ok := state.Board.PieceColor(pos)
				require.True(t, ok)
				require.Equal(t, Black, color)
			}
		}
	})
}

func TestValidWhiteOpeningRemovals(t *testing.T) {
	t.Run("empty before Black has removed", func(t *testing.T) {
		state := newState(t, 8)
		require.Empty(t, ValidWhiteOpeningRemovals(state))
	})

	t.Run("returns white pieces adjacent to the vacancy", func(t *testing.T) {
		state := newState(t, 8)
		_, err := ApplyOpeningRemoval(state, NewPosition(3, 3))
		require.NoError(t, err)

		require.ElementsMatch(t, []Position{
			NewPosition(2, 3), NewPosition(4, 3), NewPosition(3, 2), NewPosition(3, 4),
		}, ValidWhiteOpeningRemovals(state))
	})
}

func TestValidJumpsFrom(t *testing.T) {
	t.Run("empty for an opponent piece", func(t *testing.T) {
		state := setupPlayPhase(t)
		require.Empty(t, ValidJumpsFrom(state, NewPosition(0, 1)))
	})

	t.Run("empty for an empty cell", func(t *testing.T) {
		state := setupPlayPhase(t)
		require.Empty(t, ValidJumpsFrom(state, NewPosition(3, 3)))
	})

	t.Run("finds a single jump", func(t *testing.T) {
		state := newState(t, 4)
		state.ChangePhase(PhasePlay)
		state.RemoveStone(NewPosition(0, 2))

		jumps := ValidJumpsFrom(state, NewPosition(0, 0))
		require.Len(t, jumps, 1)
		require.Equal(t, NewPosition(0, 0), jumps[0].From)
		require.Equal(t, NewPosition(0, 2), jumps[0].To)
		require.Equal(t, Right, jumps[0].Direction)
		require.Equal(t, []Position{NewPosition(0, 1)}, jumps[0].Captured)
	})

	t.Run("emits every chain length in one direction", func(t *testing.T) {
		// Along the bottom rank: Black a1, White b1, empty c1,
		// White d1, empty e1.
		state := newState(t, 8)
		state.ChangePhase(PhasePlay)
		state.RemoveStone(NewPosition(0, 2))
		state.RemoveStone(NewPosition(0, 4))

		jumps := ValidJumpsFrom(state, NewPosition(0, 0))
		require.Len(t, jumps, 2)

		var single, double *Jump
		for i := range jumps {
			switch jumps[i].To {
			case NewPosition(0, 2):
				single = &jumps[i]
			case NewPosition(0, 4):
				double = &jumps[i]
			}
		}
		require.NotNil(t, single)
		require.Equal(t, []Position{NewPosition(0, 1)}, single.Captured)
		require.NotNil(t, double)
		require.Equal(t, []Position{NewPosition(0, 1), NewPosition(0, 3)}, double.Captured)
	})

	t.Run("chains in different directions stay independent", func(t *testing.T) {
		state := newState(t, 8)
		state.ChangePhase(PhasePlay)
		state.RemoveStone(NewPosition(2, 4))
		state.RemoveStone(NewPosition(4, 2))

		jumps := ValidJumpsFrom(state, NewPosition(2, 2))
		require.Len(t, jumps, 2)
		for _, jump := range jumps {
			require.Len(t, jump.Captured, 1)
		}
	})
}

func TestAllValidJumps(t *testing.T) {
	state := newState(t, 4)
	state.ChangePhase(PhasePlay)
	state.RemoveStone(NewPosition(0, 2))
	state.RemoveStone(NewPosition(2, 0))

	all := AllValidJumps(state)
	require.GreaterOrEqual(t, len(all), 2)
	for _, jump := range all {
		color, ok := state.Board.PieceColor(jump.From)
		require.True(t, ok)
		require.Equal(t, Black, color)
	}
}

func TestHasValidMove(t *testing.T) {
	t.Run("true during the opening", func(t *testing.T) {
		state := newState(t, 8)
		require.True(t, HasValidMove(state))

		_, err := ApplyOpeningRemoval(state, NewPosition(3, 3))
		require.NoError(t, err)
		require.True(t, HasValidMove(state))
	})

	t.Run("false with no capture targets", func(t *testing.T) {
		state := newState(t, 4)
		state.ChangePhase(PhasePlay)
		stripWhite(state)
		require.False(t, HasValidMove(state))
	})

	t.Run("false during setup and game over", func(t *testing.T) {
		state := newState(t, 4)
		state.ChangePhase(PhaseSetup)
		require.False(t, HasValidMove(state))
		state.ChangePhase(PhaseGameOverBlackWins)
		require.False(t, HasValidMove(state))
	})
}

func TestMovablePieces(t *testing.T) {
	t.Run("returns pieces with a jump", func(t *testing.T) {
		state := newState(t, 4)
		state.ChangePhase(PhasePlay)
		state.RemoveStone(NewPosition(0, 2))

		movable := MovablePieces(state)
		require.Contains(t, movable, NewPosition(0, 0))
	})

	t.Run("empty when nothing can move", func(t *testing.T) {
		state := newState(t, 4)
		state.ChangePhase(PhasePlay)
		stripWhite(state)
		require.Empty(t, MovablePieces(state))
	})
}

func TestApplyJump(t *testing.T) {
	t.Run("moves the piece and removes captures", func(t *testing.T) {
		state := newState(t, 4)
		state.ChangePhase(PhasePlay)
		state.RemoveStone(NewPosition(0, 2))

		jumps := ValidJumpsFrom(state, NewPosition(0, 0))
		require.Len(t, jumps, 1)

		record, err := ApplyJump(state, jumps[0])
		require.NoError(t, err)

		require.True(t, state.Board.IsEmpty(NewPosition(0, 0)))
		require.True(t, state.Board.IsEmpty(NewPosition(0, 1)))
		color, ok := state.Board.PieceColor(NewPosition(0, 2))
		require.True(t, ok)
		require.Equal(t, Black, color)
		require.Equal(t, White, state.CurrentPlayer)

		require.NotNil(t, record.Jump)
		require.Equal(t, Black, record.Jump.Color)
		require.Equal(t, NewPosition(0, 0), record.Jump.From)
		require.Equal(t, NewPosition(0, 2), record.Jump.To)
		require.Len(t, record.Jump.Captured, 1)
	})

	t.Run("a two capture chain vacates both victims and waypoints", func(t *testing.T) {
		state := newState(t, 8)
		state.ChangePhase(PhasePlay)
		state.RemoveStone(NewPosition(0, 2))
		state.RemoveStone(NewPosition(0, 4))

		jumps := ValidJumpsFrom(state, NewPosition(0, 0))
		var double *Jump
		for i := range jumps {
			if len(jumps[i].Captured) == 2 {
				double = &jumps[i]
			}
		}
		require.NotNil(t, double)

		_, err := ApplyJump(state, *double)
		require.NoError(t, err)

		require.True(t, state.Board.IsEmpty(NewPosition(0, 0)))
		require.True(t, state.Board.IsEmpty(NewPosition(0, 1)))
		require.True(t, state.Board.IsEmpty(NewPosition(0, 2)))
		require.True(t, state.Board.IsEmpty(NewPosition(0, 3)))
		color, ok := state.Board.PieceColor(NewPosition(0, 4))
		require.True(t, ok)
		require.Equal(t, Black, color)
	})

	t.Run("ends the game when the opponent is left without a move", func(t *testing.T) {
		state := newState(t, 4)
		state.ChangePhase(PhasePlay)
		for _, pos := range []Position{NewPosition(0, 2)} {
			state.RemoveStone(pos)
		}
		// Leave b1 as White's only piece, then capture it.
		size := state.Board.Size()
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				pos := NewPosition(row, col)
				if pos == NewPosition(0, 1) {
					continue
				}
				if color, ok := state.Board.PieceColor(pos); ok && color == White {
					state.RemoveStone(pos)
				}
			}
		}

		jumps := ValidJumpsFrom(state, NewPosition(0, 0))
		require.Len(t, jumps, 1)
		_, err := ApplyJump(state, jumps[0])
		require.NoError(t, err)

		require.Equal(t, PhaseGameOverBlackWins, state.Phase)
	})

	t.Run("rejects a jump outside Play", func(t *testing.T) {
		state := newState(t, 4)
		_, err := ApplyJump(state, Jump{From: NewPosition(0, 0), To: NewPosition(0, 2), Direction: Right, Captured: []Position{NewPosition(0, 1)}})
		require.ErrorIs(t, err, ErrWrongPhase)
	})

	t.Run("rejects an illegal jump without mutating state", func(t *testing.T) {
		state := newState(t, 4)
		state.ChangePhase(PhasePlay)
		before := state.Hash()

		_, err := ApplyJump(state, Jump{From: NewPosition(0, 0), To: NewPosition(0, 2), Direction: Right, Captured: []Position{NewPosition(0, 1)}})
		require.ErrorIs(t, err, ErrInvalidJump)
		require.Equal(t, before, state.Hash())
		require.Equal(t, Black, state.CurrentPlayer)
	})
}

func TestApplyOpeningRemoval(t *testing.T) {
	t.Run("Black removal transitions to the White phase", func(t *testing.T) {
		state := newState(t, 8)
		record, err := ApplyOpeningRemoval(state, NewPosition(3, 3))
		require.NoError(t, err)

		require.Equal(t, PhaseOpeningWhiteRemoval, state.Phase)
		require.Equal(t, White, state.CurrentPlayer)
		require.NotNil(t, state.FirstRemoval)
		require.Equal(t, NewPosition(3, 3), *state.FirstRemoval)

		require.NotNil(t, record.OpeningRemoval)
		require.Equal(t, Black, record.OpeningRemoval.Color)
		require.Equal(t, NewPosition(3, 3), record.OpeningRemoval.Position)
	})

	t.Run("White removal transitions to Play with Black to move", func(t *testing.T) {
		state := newState(t, 8)
		_, err := ApplyOpeningRemoval(state, NewPosition(3, 3))
		require.NoError(t, err)
		_, err = ApplyOpeningRemoval(state, NewPosition(3, 4))
		require.NoError(t, err)

		require.Equal(t, PhasePlay, state.Phase)
		require.Equal(t, Black, state.CurrentPlayer)
	})

	t.Run("rejects an invalid Black position without mutating state", func(t *testing.T) {
		state := newState(t, 8)
		before := state.Hash()

		_, err := ApplyOpeningRemoval(state, NewPosition(0, 1))
		require.ErrorIs(t, err, ErrInvalidRemoval)
		require.Equal(t, before, state.Hash())
		require.Equal(t, PhaseOpeningBlackRemoval, state.Phase)
	})

	t.Run("rejects a non adjacent White position", func(t *testing.T) {
		state := newState(t, 8)
		_, err := ApplyOpeningRemoval(state, NewPosition(3, 3))
		require.NoError(t, err)

		_, err = ApplyOpeningRemoval(state, NewPosition(0, 0))
		require.ErrorIs(t, err, ErrInvalidRemoval)
	})

	t.Run("rejects a removal during Play", func(t *testing.T) {
		state := newState(t, 8)
		state.ChangePhase(PhasePlay)
		_, err := ApplyOpeningRemoval(state, NewPosition(3, 3))
		require.ErrorIs(t, err, ErrWrongPhase)
	})

	t.Run("ends the game immediately when Black cannot answer", func(t *testing.T) {
		state := newState(t, 8)
		_, err := ApplyOpeningRemoval(state, NewPosition(3, 3))
		require.NoError(t, err)

		// With no Black pieces on the board, entering Play leaves the
		// new mover without a jump.
		size := state.Board.Size()
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				pos := NewPosition(row, col)
				if color, ok := state.Board.PieceColor(pos); ok && color == Black {
					state.RemoveStone(pos)
				}
			}
		}

		_, err = ApplyOpeningRemoval(state, NewPosition(3, 4))
		require.NoError(t, err)
		require.Equal(t, PhaseGameOverWhiteWins, state.Phase)
	})
}

func TestOpeningScenario4x4(t *testing.T) {
	// Black removes its center b2; White must answer on one of the
	// four white neighbors; then Play starts with Black to move.
	state := newState(t, 4)
	_, err := ApplyOpeningRemoval(state, NewPosition(1, 1))
	require.NoError(t, err)

	require.ElementsMatch(t, []Position{
		NewPosition(0, 1), NewPosition(2, 1), NewPosition(1, 0), NewPosition(1, 2),
	}, ValidWhiteOpeningRemovals(state))

	_, err = ApplyOpeningRemoval(state, NewPosition(1, 2))
	require.NoError(t, err)
	require.Equal(t, PhasePlay, state.Phase)
	require.Equal(t, Black, state.CurrentPlayer)
	require.NotEmpty(t, AllValidJumps(state))
}
