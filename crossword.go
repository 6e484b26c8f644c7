package xwfill

import (
	"fmt"

	"crosswarped.com/xwfill/pkg/primitives"
)

// Crossword is the fixed geometry of a puzzle: which cells are fillable,
// the slots derived from them, and how slots cross each other.
//
// Slots are enumerated once at construction; everything downstream
// (domains, arcs, assignments) is indexed by that dense enumeration rather
// than keyed by slot values.
type Crossword struct {
	Height int
	Width  int

	cells     [][]bool
	slots     []primitives.Slot
	slotIndex map[primitives.Slot]int

	// overlaps is a dense n*n table; overlaps[x*n+y] is nil when slots x and
	// y never share a cell.
	overlaps  []*primitives.Overlap
	neighbors [][]int
}

// NewCrossword derives the slot set and overlap table from a boolean cell
// matrix (true = fillable). Rows must all have the same width; a malformed
// matrix is the loader's bug, not a puzzle property.
func NewCrossword(cells [][]bool) *Crossword {
	height := len(cells)
	width := 0
	if height > 0 {
		width = len(cells[0])
	}
	for i, row := range cells {
		if len(row) != width {
			panic(fmt.Sprintf("row %d has width %d, want %d -- this should never happen", i, len(row), width))
		}
	}

	cw := &Crossword{
		Height:    height,
		Width:     width,
		cells:     cells,
		slotIndex: make(map[primitives.Slot]int),
	}

	// Across slots: maximal horizontal runs of length >= 2.
	for i := 0; i < height; i++ {
		for j := 0; j < width; {
			if !cells[i][j] {
				j++
				continue
			}
			start := j
			for j < width && cells[i][j] {
				j++
			}
			if j-start >= 2 {
				cw.addSlot(primitives.Slot{Row: i, Col: start, Length: j - start, Direction: primitives.Across})
			}
		}
	}

	// Down slots: maximal vertical runs of length >= 2.
	for j := 0; j < width; j++ {
		for i := 0; i < height; {
			if !cells[i][j] {
				i++
				continue
			}
			start := i
			for i < height && cells[i][j] {
				i++
			}
			if i-start >= 2 {
				cw.addSlot(primitives.Slot{Row: start, Col: j, Length: i - start, Direction: primitives.Down})
			}
		}
	}

	cw.buildOverlaps()
	return cw
}

func (cw *Crossword) addSlot(s primitives.Slot) {
	cw.slotIndex[s] = len(cw.slots)
	cw.slots = append(cw.slots, s)
}

func (cw *Crossword) buildOverlaps() {
	n := len(cw.slots)
	cw.overlaps = make([]*primitives.Overlap, n*n)
	cw.neighbors = make([][]int, n)

	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			o, ok := crossing(cw.slots[x], cw.slots[y])
			if !ok {
				continue
			}
			flip := o.Flip()
			cw.overlaps[x*n+y] = &o
			cw.overlaps[y*n+x] = &flip
			cw.neighbors[x] = append(cw.neighbors[x], y)
			cw.neighbors[y] = append(cw.neighbors[y], x)
		}
	}
}

// crossing returns the overlap of two slots, if any. Parallel slots never
// share a cell: two maximal runs in the same row or column are disjoint.
func crossing(a, b primitives.Slot) (primitives.Overlap, bool) {
	if a.Direction == b.Direction {
		return primitives.Overlap{}, false
	}
	if a.Direction == primitives.Down {
		o, ok := crossing(b, a)
		return o.Flip(), ok
	}

	// a is across, b is down; they meet at (a.Row, b.Col) if both spans
	// cover it.
	if b.Col < a.Col || b.Col >= a.Col+a.Length {
		return primitives.Overlap{}, false
	}
	if a.Row < b.Row || a.Row >= b.Row+b.Length {
		return primitives.Overlap{}, false
	}
	return primitives.Overlap{XPos: b.Col - a.Col, YPos: a.Row - b.Row}, true
}

// Slots returns the dense slot enumeration. Callers must not mutate it.
func (cw *Crossword) Slots() []primitives.Slot {
	return cw.slots
}

// NumSlots returns the number of slots in the puzzle.
func (cw *Crossword) NumSlots() int {
	return len(cw.slots)
}

// Slot returns the slot at the given dense index.
func (cw *Crossword) Slot(idx int) primitives.Slot {
	return cw.slots[idx]
}

// SlotIndex returns the dense index of a slot. Asking about a slot that is
// not part of the puzzle is a contract violation, not a puzzle property.
func (cw *Crossword) SlotIndex(s primitives.Slot) int {
	idx, ok := cw.slotIndex[s]
	if !ok {
		panic(fmt.Sprintf("slot %s is not part of this crossword -- this should never happen", s))
	}
	return idx
}

// Overlap returns the crossing positions of slots x and y, or false if they
// never share a cell.
func (cw *Crossword) Overlap(x, y int) (primitives.Overlap, bool) {
	o := cw.overlaps[x*len(cw.slots)+y]
	if o == nil {
		return primitives.Overlap{}, false
	}
	return *o, true
}

// Neighbors returns the slots crossing slot x. Callers must not mutate it.
func (cw *Crossword) Neighbors(x int) []int {
	return cw.neighbors[x]
}

// Degree returns the number of slots crossing slot x.
func (cw *Crossword) Degree(x int) int {
	return len(cw.neighbors[x])
}

// Fillable reports whether the cell at (row, col) takes a letter.
func (cw *Crossword) Fillable(row, col int) bool {
	return cw.cells[row][col]
}
