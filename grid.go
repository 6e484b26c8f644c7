package xwfill

import (
	"fmt"
	"strings"

	"crosswarped.com/xwfill/pkg/primitives"
)

// Blocked is the rune marking a non-fillable cell in a rendered grid.
const Blocked = '`'

// Grid is a 2D grid of runes.
//
// It represents a completed fill laid back onto the puzzle's cells.
type Grid struct {
	grid [][]rune
}

func NewGrid(g [][]rune) Grid {
	return Grid{
		grid: g,
	}
}

// LetterGrid lays a solution back onto the crossword's cells. Blocked
// cells render as the Blocked rune; fillable cells not covered by the
// solution stay as spaces.
func (cw *Crossword) LetterGrid(solution map[primitives.Slot]string) Grid {
	g := make([][]rune, cw.Height)
	for i := range g {
		g[i] = make([]rune, cw.Width)
		for j := range g[i] {
			if cw.Fillable(i, j) {
				g[i][j] = ' '
			} else {
				g[i][j] = Blocked
			}
		}
	}

	for slot, word := range solution {
		for k, r := range word {
			row, col := slot.Cell(k)
			g[row][col] = r
		}
	}

	return NewGrid(g)
}

func (g Grid) Width() int {
	return len(g.grid[0])
}

func (g Grid) Height() int {
	return len(g.grid)
}

func (g Grid) Get(x, y int) rune {
	return g.grid[y][x]
}

func (g Grid) Repr() string {
	lines := make([]string, g.Height())
	for y := range g.Height() {
		lines[y] = string(g.grid[y])
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, grid: %v}", g.Width(), g.Height(), g.grid)
}
