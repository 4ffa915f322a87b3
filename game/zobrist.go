package game

import (
	"sync"

	"golang.org/x/exp/rand"
)

// Zobrist keys for position fingerprinting: one key per cell (piece
// presence, not color), one for White to move, one per phase. The
// tables are generated once from a fixed seed so fingerprints are
// stable across runs, and every toggle is self-inverse.

const zobristSeed = 0x123456789abcdef0

const numPhases = 6

var (
	zobristOnce  sync.Once
	cellKeys     [MaxBoardSize * MaxBoardSize]uint64
	whiteTurnKey uint64
	phaseKeys    [numPhases]uint64
)

func initZobrist() {
	rng := rand.New(rand.NewSource(zobristSeed))
	next := func() uint64 {
		// A zero key would make its XOR toggle a no-op.
		for {
			if v := rng.Uint64(); v != 0 {
				return v
			}
		}
	}
	for i := range cellKeys {
		cellKeys[i] = next()
	}
	whiteTurnKey = next()
	for i := range phaseKeys {
		phaseKeys[i] = next()
	}
}

// Cell keys are indexed against the maximum board size so a given
// coordinate hashes identically on every board.
func cellKey(pos Position) uint64 {
	zobristOnce.Do(initZobrist)
	return cellKeys[pos.Row*MaxBoardSize+pos.Col]
}

func turnKey() uint64 {
	zobristOnce.Do(initZobrist)
	return whiteTurnKey
}

func phaseKey(phase GamePhase) uint64 {
	zobristOnce.Do(initZobrist)
	return phaseKeys[int(phase)]
}

// HashState computes a state fingerprint from scratch: the XOR of every
// occupied cell key, the turn key when White is to move, and the phase
// key. It must always agree with the incrementally maintained
// GameState hash.
func HashState(board *Board, phase GamePhase, turn Color) uint64 {
	var h uint64
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := NewPosition(row, col)
			if !board.IsEmpty(pos) {
				h ^= cellKey(pos)
			}
		}
	}
	if turn == White {
		h ^= turnKey()
	}
	h ^= phaseKey(phase)
	return h
}
