package game

// GamePhase tracks progress through a game. Phases only move forward;
// the two GameOver variants are terminal. The numeric order doubles as
// the zobrist phase index.
type GamePhase int

const (
	PhaseSetup GamePhase = iota
	PhaseOpeningBlackRemoval
	PhaseOpeningWhiteRemoval
	PhasePlay
	PhaseGameOverBlackWins
	PhaseGameOverWhiteWins
)

// GameOverPhase returns the terminal phase for the given winner.
func GameOverPhase(winner Color) GamePhase {
	if winner == Black {
		return PhaseGameOverBlackWins
	}
	return PhaseGameOverWhiteWins
}

func (p GamePhase) IsGameOver() bool {
	return p == PhaseGameOverBlackWins || p == PhaseGameOverWhiteWins
}

// Winner reports who won, false unless the game is over.
func (p GamePhase) Winner() (Color, bool) {
	switch p {
	case PhaseGameOverBlackWins:
		return Black, true
	case PhaseGameOverWhiteWins:
		return White, true
	}
	return Black, false
}

func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseOpeningBlackRemoval:
		return "OpeningBlackRemoval"
	case PhaseOpeningWhiteRemoval:
		return "OpeningWhiteRemoval"
	case PhasePlay:
		return "Play"
	case PhaseGameOverBlackWins:
		return "GameOver(Black wins)"
	case PhaseGameOverWhiteWins:
		return "GameOver(White wins)"
	}
	return "Unknown"
}
