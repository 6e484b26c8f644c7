package primitives

import "fmt"

// Direction is an enum representing the orientation of a slot in a grid, either 'Across' or 'Down'.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Slot is a single fill-in word position in a grid: a maximal run of
// fillable cells, identified by its start cell, length and direction.
//
// Slots are value types; two slots are the same iff all four fields match.
type Slot struct {
	Row       int
	Col       int
	Length    int
	Direction Direction
}

// Cell returns the grid coordinates of the k-th letter of the slot.
func (s Slot) Cell(k int) (row, col int) {
	if s.Direction == Down {
		return s.Row + k, s.Col
	}
	return s.Row, s.Col + k
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d)/%d %s", s.Row, s.Col, s.Length, s.Direction)
}

// Overlap describes the crossing cell of two slots: letter XPos of the
// first slot's word and letter YPos of the second slot's word share a cell.
type Overlap struct {
	XPos int
	YPos int
}

// Flip returns the same overlap seen from the other slot.
func (o Overlap) Flip() Overlap {
	return Overlap{XPos: o.YPos, YPos: o.XPos}
}
