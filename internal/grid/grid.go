// Package grid holds the 2048 board and the operations that mutate it:
// free-cell scanning, tile spawning and directional collapsing.
package grid

import (
	"fmt"
	"strings"
)

// Size is the fixed board dimension.
const Size = 4

// Position is a cell coordinate. Values returned by FreeCells are only
// meaningful for the grid they were scanned from.
type Position struct {
	Col, Row int
}

// Direction selects the edge tiles are pushed toward.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is a Size x Size board of tile values stored row-major. Zero marks
// an empty cell, every other cell holds a power of two not less than 2.
type Grid struct {
	cells [Size * Size]int
}

// New returns an empty grid.
func New() Grid {
	return Grid{}
}

// FromRows builds a grid from rows listed top to bottom.
func FromRows(rows [Size][Size]int) Grid {
	var g Grid
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g.cells[index(c, r)] = rows[r][c]
		}
	}
	return g
}

func index(col, row int) int {
	return row*Size + col
}

// Get returns the value at p.
func (g Grid) Get(p Position) int {
	return g.cells[index(p.Col, p.Row)]
}

func (g *Grid) set(p Position, v int) {
	g.cells[index(p.Col, p.Row)] = v
}

// Rows returns a copy of the board, top row first.
func (g Grid) Rows() [Size][Size]int {
	var rows [Size][Size]int
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			rows[r][c] = g.cells[index(c, r)]
		}
	}
	return rows
}

// Equal reports whether both grids hold the same values.
func (g Grid) Equal(other Grid) bool {
	return g.cells == other.cells
}

// Count returns the number of occupied cells.
func (g Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	sum := 0
	for _, v := range g.cells {
		sum += v
	}
	return sum
}

// Max returns the largest tile on the board, 0 for an empty board.
func (g Grid) Max() int {
	max := 0
	for _, v := range g.cells {
		if v > max {
			max = v
		}
	}
	return max
}

// Valid reports whether every cell is empty or a power of two >= 2.
func (g Grid) Valid() bool {
	for _, v := range g.cells {
		if !validTile(v) {
			return false
		}
	}
	return true
}

func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// String renders the board as tab separated rows.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			fmt.Fprintf(&b, "%d\t", g.cells[index(c, r)])
		}
		b.WriteString("\n")
	}
	return b.String()
}
