package grid

// Source is the randomness the spawner draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// FourChance is the denominator of the 1-in-N chance of spawning a 4.
const FourChance = 10

// FreeCells returns the empty cells in row-major order.
func (g Grid) FreeCells() []Position {
	free := make([]Position, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.cells[index(c, r)] == 0 {
				free = append(free, Position{Col: c, Row: r})
			}
		}
	}
	return free
}

// Spawn places a 2 (or a 4, one time in FourChance) on a uniformly chosen
// empty cell. It returns false and leaves the grid untouched when no cell
// is free.
func (g *Grid) Spawn(src Source) bool {
	free := g.FreeCells()
	if len(free) == 0 {
		return false
	}
	p := free[src.Intn(len(free))]
	v := 2
	if src.Intn(FourChance) == 0 {
		v = 4
	}
	g.set(p, v)
	return true
}
