package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"konane/agent"
	"konane/config"
	"konane/engine"
	"konane/experiments"
	"konane/game"
	"konane/gamelog"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	switch cfg.Mode {
	case config.ModeExperiment:
		if err := experiments.RunDepthExperiment(cfg.BoardSize, cfg.MetricsDir); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	default:
		for i := 1; i <= cfg.Games; i++ {
			if err := runMatch(cfg, i); err != nil {
				log.Fatal().Err(err).Msgf("game %d failed", i)
			}
		}
	}
}

func runMatch(cfg config.Config, id int) error {
	state, err := game.NewGameState(cfg.BoardSize)
	if err != nil {
		return err
	}

	black := agent.NewAIPlayer(game.Black, cfg.BlackDepth, agent.WithTableCapacity(cfg.TableCapacity))
	white := agent.NewAIPlayer(game.White, cfg.WhiteDepth, agent.WithTableCapacity(cfg.TableCapacity))
	e, err := engine.NewLocalEngine(state, black, white)
	if err != nil {
		return err
	}
	if _, err := e.Run(); err != nil {
		return err
	}

	if cfg.ExportDir != "" {
		if err := os.MkdirAll(cfg.ExportDir, 0755); err != nil {
			return err
		}
		logPath := filepath.Join(cfg.ExportDir, fmt.Sprintf("game_%d.json", id))
		if err := gamelog.ExportFile(logPath, e.State, e.History); err != nil {
			return err
		}
		log.Info().Msgf("exported move log to %s", logPath)
	}
	return nil
}
