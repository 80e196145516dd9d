package grid

// cells is a one-dimensional run of tiles ordered from the leading edge
// (offset 0) to the trailing edge.
type cells interface {
	Len() int
	At(i int) int
	Put(i, v int)
}

// line maps offsets of one row or column onto grid cells. Offset 0 is
// the edge the direction pushes toward.
type line struct {
	g     *Grid
	dir   Direction
	fixed int // column for Up/Down, row for Left/Right
}

func (l line) Len() int { return Size }

func (l line) pos(i int) int {
	switch l.dir {
	case Up:
		return index(l.fixed, i)
	case Down:
		return index(l.fixed, Size-1-i)
	case Left:
		return index(i, l.fixed)
	default: // Right
		return index(Size-1-i, l.fixed)
	}
}

func (l line) At(i int) int { return l.g.cells[l.pos(i)] }

func (l line) Put(i, v int) { l.g.cells[l.pos(i)] = v }

type sliceLine []int

func (s sliceLine) Len() int { return len(s) }

func (s sliceLine) At(i int) int { return s[i] }

func (s sliceLine) Put(i, v int) { s[i] = v }

// Collapse slides and merges every line of the grid toward the edge
// selected by dir. Each tile takes part in at most one merge.
func (g *Grid) Collapse(dir Direction) {
	for k := 0; k < Size; k++ {
		collapse(line{g: g, dir: dir, fixed: k})
	}
}

// CollapseLine collapses values in place toward index 0.
func CollapseLine(values []int) {
	collapse(sliceLine(values))
}

// collapse walks the line once behind a frontier: the nearest cell to the
// leading edge that can still receive a tile. A merge moves the frontier
// past the merged tile so it cannot merge again this pass.
func collapse(l cells) {
	frontier := 0
	for i := 1; i < l.Len(); i++ {
		cur := l.At(i)
		switch head := l.At(frontier); {
		case cur == 0:
			continue
		case head == 0:
			l.Put(frontier, cur)
			l.Put(i, 0)
		case head == cur:
			l.Put(frontier, cur*2)
			l.Put(i, 0)
			frontier++
		default:
			frontier++
			l.Put(i, 0)
			l.Put(frontier, cur)
		}
	}
}
