package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a board coordinate. Row 0 is the bottom row (rank 1) and
// rows increase upward; col 0 is the 'a' file and columns increase to
// the right.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Algebraic renders the position as file+rank, e.g. (0,0) -> "a1".
func (p Position) Algebraic() string {
	return fmt.Sprintf("%c%d", rune('a'+p.Col), p.Row+1)
}

func (p Position) String() string {
	return p.Algebraic()
}

// ParseAlgebraic parses file+rank notation such as "a1" or "E4".
func ParseAlgebraic(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Position{}, fmt.Errorf("invalid position %q", s)
	}
	file := s[0]
	if file < 'a' || file > 'p' {
		return Position{}, fmt.Errorf("invalid file in position %q", s)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || rank < 1 {
		return Position{}, fmt.Errorf("invalid rank in position %q", s)
	}
	return NewPosition(rank-1, int(file-'a')), nil
}

// Direction is one of the four orthogonal step directions.
type Direction int

const (
	Up Direction = iota // toward higher ranks
	Down
	Left
	Right
)

func Directions() [4]Direction {
	return [4]Direction{Up, Down, Left, Right}
}

// Step moves pos one cell along d on a size wide board, reporting false
// at the board edge.
func (d Direction) Step(pos Position, size int) (Position, bool) {
	switch d {
	case Up:
		if pos.Row < size-1 {
			return NewPosition(pos.Row+1, pos.Col), true
		}
	case Down:
		if pos.Row > 0 {
			return NewPosition(pos.Row-1, pos.Col), true
		}
	case Left:
		if pos.Col > 0 {
			return NewPosition(pos.Row, pos.Col-1), true
		}
	case Right:
		if pos.Col < size-1 {
			return NewPosition(pos.Row, pos.Col+1), true
		}
	}
	return Position{}, false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Unknown"
}
