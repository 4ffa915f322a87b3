package game

import "fmt"

// Cell holds the contents of one board square.
type Cell int

const (
	EmptyCell Cell = iota
	BlackCell
	WhiteCell
)

func OccupiedCell(color Color) Cell {
	if color == Black {
		return BlackCell
	}
	return WhiteCell
}

const (
	MinBoardSize = 4
	MaxBoardSize = 16
)

// Board is a square Kōnane board stored as a flat cell slice. A fresh
// board is a full checkerboard with Black on (0,0), color alternating
// on (row+col) parity.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize || size%2 != 0 {
		return nil, fmt.Errorf("invalid board size %d: must be even and between %d and %d", size, MinBoardSize, MaxBoardSize)
	}
	b := &Board{size: size, cells: make([]Cell, size*size)}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			color := Black
			if (row+col)%2 == 1 {
				color = White
			}
			b.cells[row*size+col] = OccupiedCell(color)
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.size && pos.Col >= 0 && pos.Col < b.size
}

// Get returns the cell at pos, reporting false out of bounds.
func (b *Board) Get(pos Position) (Cell, bool) {
	if !b.InBounds(pos) {
		return EmptyCell, false
	}
	return b.cells[pos.Row*b.size+pos.Col], true
}

// Set writes the cell at pos. Out of bounds writes are ignored.
func (b *Board) Set(pos Position, cell Cell) {
	if b.InBounds(pos) {
		b.cells[pos.Row*b.size+pos.Col] = cell
	}
}

func (b *Board) Remove(pos Position) {
	b.Set(pos, EmptyCell)
}

func (b *Board) IsEmpty(pos Position) bool {
	cell, ok := b.Get(pos)
	return ok && cell == EmptyCell
}

// PieceColor returns the color of the piece at pos, reporting false for
// empty or out of bounds cells.
func (b *Board) PieceColor(pos Position) (Color, bool) {
	switch cell, _ := b.Get(pos); cell {
	case BlackCell:
		return Black, true
	case WhiteCell:
		return White, true
	}
	return Black, false
}

// CenterPositions returns the 2x2 block straddling the middle of the
// board.
func (b *Board) CenterPositions() []Position {
	mid := b.size / 2
	return []Position{
		NewPosition(mid-1, mid-1),
		NewPosition(mid-1, mid),
		NewPosition(mid, mid-1),
		NewPosition(mid, mid),
	}
}

// CornerPositions returns the four corners. With the checkerboard fill,
// (0,0) and (size-1,size-1) are Black, the other two White.
func (b *Board) CornerPositions() []Position {
	return []Position{
		NewPosition(0, 0),
		NewPosition(0, b.size-1),
		NewPosition(b.size-1, 0),
		NewPosition(b.size-1, b.size-1),
	}
}

// OrthogonalNeighbors returns the in-bounds neighbors of pos in the
// four step directions.
func (b *Board) OrthogonalNeighbors(pos Position) []Position {
	neighbors := make([]Position, 0, 4)
	for _, d := range Directions() {
		if neighbor, ok := d.Step(pos, b.size); ok {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// Copy returns an independent deep copy.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}
