package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"konane/agent"
	"konane/engine"
	"konane/experiments/metrics"
	"konane/game"
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
}

// RunDepthExperiment plays every deeper config against the depth-1
// baseline and writes the game and per-move search records as CSV.
// Minimax play is deterministic, so each matchup is played once per
// color assignment rather than repeated.
func RunDepthExperiment(boardSize int, metricsDir string) error {
	writer, err := metrics.NewWriter(metricsDir, "depth")
	if err != nil {
		return err
	}

	baseline := depthConfigs[0]
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	log.Info().Msg("starting depth experiment...")

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0
	for _, matchup := range matchUps {
		for swap := 0; swap < 2; swap++ {
			blackConfig, whiteConfig := matchup[0], matchup[1]
			if swap == 1 {
				blackConfig, whiteConfig = whiteConfig, blackConfig
			}
			gameID++
			gameRecord, moves, err := runGame(gameID, boardSize, blackConfig, whiteConfig)
			if err != nil {
				return err
			}
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, moves...)
			log.Info().Msgf("game %d: depth %d (Black) vs depth %d (White) -> %s",
				gameID, blackConfig.Depth, whiteConfig.Depth, gameRecord.Winner)
		}
	}

	if err := writer.WriteAgentConfigs(depthConfigs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("wrote experiment records to %s", writer.BaseDir())
	return nil
}

func runGame(id, boardSize int, blackConfig, whiteConfig metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	state, err := game.NewGameState(boardSize)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	black := agent.NewAIPlayer(game.Black, blackConfig.Depth, agent.WithTableCapacity(blackConfig.TableCapacity))
	white := agent.NewAIPlayer(game.White, whiteConfig.Depth, agent.WithTableCapacity(whiteConfig.TableCapacity))
	e, err := engine.NewLocalEngine(state, black, white)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	start := time.Now()
	moveMetrics, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	end := time.Now()

	winner := ""
	if w, over := e.Winner(); over {
		winner = w.String()
	}

	gameRecord := metrics.GameRecord{
		ID:        id,
		Agent1:    blackConfig.ID,
		Agent2:    whiteConfig.ID,
		Winner:    winner,
		Moves:     len(e.History),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}

	var moves []metrics.MoveRecord
	for _, m := range moveMetrics {
		moves = append(moves, metrics.MoveRecord{
			Game:      id,
			Step:      m.Step,
			Player:    m.Player,
			Duration:  m.Search.Duration,
			Nodes:     m.Search.Nodes,
			TableHits: m.Search.TableHits,
		})
	}
	return gameRecord, moves, nil
}
