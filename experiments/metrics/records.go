package metrics

import (
	"time"

	"konane/game"
)

// AgentConfig identifies one search configuration under test.
type AgentConfig struct {
	ID            int
	Depth         int
	TableCapacity int
}

// GameRecord summarizes one finished game between two configs.
type GameRecord struct {
	ID        int
	Agent1    int // AgentConfig.ID playing Black
	Agent2    int // AgentConfig.ID playing White
	Winner    string
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// MoveRecord summarizes the search behind one move of one game.
type MoveRecord struct {
	Game      int // GameRecord.ID
	Step      int
	Player    game.Color
	Duration  time.Duration
	Nodes     int64
	TableHits int64
}
