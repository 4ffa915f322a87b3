package game

import "fmt"

// OpeningRemovalRecord describes one opening-phase removal.
type OpeningRemovalRecord struct {
	Color    Color    `json:"color"`
	Position Position `json:"position"`
}

// JumpRecord describes one capturing jump. Captured is in capture order
// along the chain.
type JumpRecord struct {
	Color    Color      `json:"color"`
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Captured []Position `json:"captured"`
}

// MoveRecord is a tagged union of the two move kinds: exactly one field
// is set. The JSON form keys the record by its kind, which is the
// move-log interchange shape.
type MoveRecord struct {
	OpeningRemoval *OpeningRemovalRecord `json:"OpeningRemoval,omitempty"`
	Jump           *JumpRecord           `json:"Jump,omitempty"`
}

func NewOpeningRemovalRecord(color Color, pos Position) MoveRecord {
	return MoveRecord{OpeningRemoval: &OpeningRemovalRecord{Color: color, Position: pos}}
}

func NewJumpRecord(color Color, from, to Position, captured []Position) MoveRecord {
	return MoveRecord{Jump: &JumpRecord{
		Color:    color,
		From:     from,
		To:       to,
		Captured: append([]Position(nil), captured...),
	}}
}

// Algebraic renders the move in game notation: "d4" for a removal,
// "a1-a5" for a jump.
func (r MoveRecord) Algebraic() string {
	switch {
	case r.OpeningRemoval != nil:
		return r.OpeningRemoval.Position.Algebraic()
	case r.Jump != nil:
		return fmt.Sprintf("%s-%s", r.Jump.From.Algebraic(), r.Jump.To.Algebraic())
	}
	return ""
}

func (r MoveRecord) String() string {
	switch {
	case r.OpeningRemoval != nil:
		return fmt.Sprintf("%s removes piece at %s", r.OpeningRemoval.Color, r.OpeningRemoval.Position)
	case r.Jump != nil:
		return fmt.Sprintf("%s jumps %s capturing %d piece(s)", r.Jump.Color, r.Algebraic(), len(r.Jump.Captured))
	}
	return "no move"
}
