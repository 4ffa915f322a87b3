package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"konane/game"
	"konane/player"
	"konane/searcher"
)

// MoveMetrics ties one applied move to the search counters behind it.
type MoveMetrics struct {
	Step   int
	Player game.Color
	Search searcher.SearchMetrics
}

// MaxTurns caps runaway games; a Kōnane game on a 16x16 board cannot
// reach this many moves, so hitting the cap means a player bug.
const MaxTurns = 500

// Engine drives a local game between two players until it ends. It is
// synchronous and single-threaded; the state belongs to the engine for
// the duration of Run.
type Engine struct {
	State   *game.GameState
	History []game.MoveRecord
	players map[game.Color]player.Player
}

func NewLocalEngine(state *game.GameState, black, white player.Player) (*Engine, error) {
	if black.Color() != game.Black || white.Color() != game.White {
		return nil, fmt.Errorf("players must cover Black and White")
	}
	return &Engine{
		State:   state,
		players: map[game.Color]player.Player{game.Black: black, game.White: white},
	}, nil
}

// Players that expose search counters get them recorded per move.
type searchMetricsProvider interface {
	LastSearchMetrics() searcher.SearchMetrics
}

// Run executes the game loop until GameOver or the turn cap, returning
// per-move metrics for players that report them.
func (e *Engine) Run() ([]MoveMetrics, error) {
	log.Info().Msgf("%s starts on a %dx%d board", e.State.CurrentPlayer, e.State.Board.Size(), e.State.Board.Size())

	var metrics []MoveMetrics
	for turn := 1; !e.State.Phase.IsGameOver(); turn++ {
		if turn > MaxTurns {
			return metrics, fmt.Errorf("no winner after %d turns", MaxTurns)
		}

		mover := e.State.CurrentPlayer
		current := e.players[mover]
		move := current.RequestMove(e.State)
		if move == nil {
			return metrics, fmt.Errorf("turn %d: %s returned no move during %s", turn, mover, e.State.Phase)
		}

		record, err := e.apply(move)
		if err != nil {
			return metrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		e.History = append(e.History, record)

		if provider, ok := current.(searchMetricsProvider); ok {
			metrics = append(metrics, MoveMetrics{Step: turn, Player: mover, Search: provider.LastSearchMetrics()})
		}
		log.Info().Int("turn", turn).Msgf("%s", record)
	}

	winner, _ := e.State.Phase.Winner()
	log.Info().Msgf("game over: %s wins after %d moves", winner, len(e.History))
	return metrics, nil
}

func (e *Engine) apply(move *player.PlayerMove) (game.MoveRecord, error) {
	switch {
	case move.OpeningRemoval != nil:
		return game.ApplyOpeningRemoval(e.State, *move.OpeningRemoval)
	case move.Jump != nil:
		return game.ApplyJump(e.State, *move.Jump)
	}
	return game.MoveRecord{}, fmt.Errorf("empty move")
}

// Winner reports the game result, false while still in progress.
func (e *Engine) Winner() (game.Color, bool) {
	return e.State.Phase.Winner()
}
