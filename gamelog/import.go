package gamelog

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"konane/game"
)

// ImportedGame is the move-log interchange document.
type ImportedGame struct {
	BoardSize int               `json:"board_size"`
	Winner    *string           `json:"winner,omitempty"`
	Moves     []game.MoveRecord `json:"moves"`
}

// Replay is the result of importing a log: the final state, the move
// history, and a snapshot of the state before each move, ready to seed
// an external undo stack.
type Replay struct {
	State     *game.GameState
	History   []game.MoveRecord
	Snapshots []*game.GameState
}

// ImportFile reads and replays a move log from disk.
func ImportFile(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Import(data)
}

// Import replays a move-log document from a fresh board, validating
// every move against the rules. Errors identify the offending 1-based
// move index.
func Import(data []byte) (*Replay, error) {
	var imported ImportedGame
	if err := json.Unmarshal(data, &imported); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if imported.Moves == nil {
		return nil, fmt.Errorf("missing moves")
	}

	state, err := game.NewGameState(imported.BoardSize)
	if err != nil {
		return nil, err
	}

	replay := &Replay{State: state}
	for index, record := range imported.Moves {
		moveNumber := index + 1
		replay.Snapshots = append(replay.Snapshots, state.Copy())
		applied, err := validateAndApply(state, record, moveNumber)
		if err != nil {
			return nil, err
		}
		replay.History = append(replay.History, applied)
	}

	if err := validateWinner(state, imported.Winner); err != nil {
		return nil, err
	}
	return replay, nil
}

func validateAndApply(state *game.GameState, record game.MoveRecord, moveNumber int) (game.MoveRecord, error) {
	switch {
	case record.OpeningRemoval != nil && record.Jump == nil:
		removal := record.OpeningRemoval
		if err := validateOpeningRemoval(state, removal, moveNumber); err != nil {
			return game.MoveRecord{}, err
		}
		applied, err := game.ApplyOpeningRemoval(state, removal.Position)
		if err != nil {
			return game.MoveRecord{}, fmt.Errorf("move %d: %w", moveNumber, err)
		}
		return applied, nil
	case record.Jump != nil && record.OpeningRemoval == nil:
		jump, err := validateJump(state, record.Jump, moveNumber)
		if err != nil {
			return game.MoveRecord{}, err
		}
		applied, err := game.ApplyJump(state, jump)
		if err != nil {
			return game.MoveRecord{}, fmt.Errorf("move %d: %w", moveNumber, err)
		}
		return applied, nil
	}
	return game.MoveRecord{}, fmt.Errorf("move %d: record must hold exactly one of OpeningRemoval or Jump", moveNumber)
}

func validateOpeningRemoval(state *game.GameState, removal *game.OpeningRemovalRecord, moveNumber int) error {
	if state.Phase != game.PhaseOpeningBlackRemoval && state.Phase != game.PhaseOpeningWhiteRemoval {
		return fmt.Errorf("move %d: opening removal not allowed during %s", moveNumber, state.Phase)
	}
	if removal.Color != state.CurrentPlayer {
		return fmt.Errorf("move %d: expected %s to move, got %s", moveNumber, state.CurrentPlayer, removal.Color)
	}
	return validateInBounds(state, removal.Position, moveNumber, "position")
}

func validateJump(state *game.GameState, record *game.JumpRecord, moveNumber int) (game.Jump, error) {
	if state.Phase != game.PhasePlay {
		return game.Jump{}, fmt.Errorf("move %d: jump not allowed during %s", moveNumber, state.Phase)
	}
	if record.Color != state.CurrentPlayer {
		return game.Jump{}, fmt.Errorf("move %d: expected %s to move, got %s", moveNumber, state.CurrentPlayer, record.Color)
	}
	if err := validateInBounds(state, record.From, moveNumber, "from position"); err != nil {
		return game.Jump{}, err
	}
	if err := validateInBounds(state, record.To, moveNumber, "to position"); err != nil {
		return game.Jump{}, err
	}
	if len(record.Captured) == 0 {
		return game.Jump{}, fmt.Errorf("move %d: jump must capture at least one piece", moveNumber)
	}
	for _, pos := range record.Captured {
		if err := validateInBounds(state, pos, moveNumber, "captured position"); err != nil {
			return game.Jump{}, err
		}
	}

	for _, candidate := range game.ValidJumpsFrom(state, record.From) {
		if candidate.To == record.To && slices.Equal(candidate.Captured, record.Captured) {
			return candidate, nil
		}
	}
	return game.Jump{}, fmt.Errorf("move %d: invalid jump from %s to %s", moveNumber, record.From, record.To)
}

func validateInBounds(state *game.GameState, pos game.Position, moveNumber int, label string) error {
	if !state.Board.InBounds(pos) {
		return fmt.Errorf("move %d: %s %s is out of bounds", moveNumber, label, pos)
	}
	return nil
}

func validateWinner(state *game.GameState, winner *string) error {
	if winner == nil {
		return nil
	}
	winnerColor, err := game.ParseColor(*winner)
	if err != nil {
		return fmt.Errorf("invalid winner: must be \"Black\" or \"White\"")
	}
	actual, over := state.Phase.Winner()
	if !over {
		return fmt.Errorf("winner specified but game is not over")
	}
	if actual != winnerColor {
		return fmt.Errorf("winner mismatch: expected %s, got %s", winnerColor, actual)
	}
	return nil
}
