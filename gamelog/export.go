package gamelog

import (
	"encoding/json"
	"fmt"
	"os"

	"konane/game"
)

// Export serializes a finished or in-progress game as an interchange
// document. The winner field is present only once the game is over.
func Export(state *game.GameState, history []game.MoveRecord) ([]byte, error) {
	doc := ImportedGame{
		BoardSize: state.Board.Size(),
		Moves:     history,
	}
	if doc.Moves == nil {
		doc.Moves = []game.MoveRecord{}
	}
	if winner, over := state.Phase.Winner(); over {
		w := winner.String()
		doc.Winner = &w
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportFile writes the interchange document to disk.
func ExportFile(path string, state *game.GameState, history []game.MoveRecord) error {
	data, err := Export(state, history)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
