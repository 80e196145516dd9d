// Package game drives one 2048 session: it turns input symbols into
// collapses and spawns and reports when the board has filled up.
package game

import (
	"fmt"

	"github.com/vinser/go2048/internal/grid"
	"github.com/vinser/go2048/internal/input"
)

// SpawnPolicy decides when a turn tries to spawn a tile.
type SpawnPolicy string

const (
	// SpawnAlways spawns after every symbol, even unmapped ones or moves
	// that left the board unchanged.
	SpawnAlways SpawnPolicy = "always"
	// SpawnOnChange spawns only after a move that changed the board. An
	// ineffective turn on a full board still ends the game.
	SpawnOnChange SpawnPolicy = "moved"

	DefaultSpawnPolicy = SpawnAlways
)

// ParseSpawnPolicy validates a policy name.
func ParseSpawnPolicy(s string) (SpawnPolicy, error) {
	switch p := SpawnPolicy(s); p {
	case SpawnAlways, SpawnOnChange:
		return p, nil
	case "":
		return DefaultSpawnPolicy, nil
	default:
		return "", fmt.Errorf("unknown spawn policy %q: use %q or %q", s, SpawnAlways, SpawnOnChange)
	}
}

// Outcome describes what the last turn did.
type Outcome struct {
	Direction grid.Direction
	Mapped    bool // symbol named a direction
	Changed   bool // collapse moved at least one tile
	Merges    int
	Spawned   bool
}

type Game struct {
	grid   grid.Grid
	src    grid.Source
	keys   input.KeyMap
	policy SpawnPolicy
	moves  int
	over   bool
	last   Outcome
}

// Option configures a Game.
type Option func(*Game)

func WithSpawnPolicy(p SpawnPolicy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

func WithKeyMap(km input.KeyMap) Option {
	return func(g *Game) {
		g.keys = km
	}
}

func WithMoves(n int) Option {
	return func(g *Game) {
		g.moves = n
	}
}

// New starts a game on an empty board with two spawned tiles.
func New(src grid.Source, opts ...Option) *Game {
	g := newGame(grid.New(), src, opts...)
	g.grid.Spawn(src)
	g.grid.Spawn(src)
	return g
}

// Restore continues a game from a saved board without spawning.
func Restore(board grid.Grid, src grid.Source, opts ...Option) *Game {
	return newGame(board, src, opts...)
}

func newGame(board grid.Grid, src grid.Source, opts ...Option) *Game {
	g := &Game{
		grid:   board,
		src:    src,
		keys:   input.DefaultKeyMap(),
		policy: DefaultSpawnPolicy,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Turn applies one input symbol and reports whether a tile could be
// spawned afterwards. False means the board is full and the game is over;
// further turns are ignored.
func (g *Game) Turn(symbol string) bool {
	if g.over {
		return false
	}
	out := Outcome{}
	if dir, ok := g.keys.Direction(symbol); ok {
		before := g.grid
		g.grid.Collapse(dir)
		g.moves++
		out.Direction = dir
		out.Mapped = true
		out.Changed = !g.grid.Equal(before)
		// every merge removes exactly one tile
		out.Merges = before.Count() - g.grid.Count()
	}

	if g.policy == SpawnOnChange && !out.Changed && len(g.grid.FreeCells()) > 0 {
		g.last = out
		return true
	}

	out.Spawned = g.grid.Spawn(g.src)
	g.last = out
	if !out.Spawned {
		g.over = true
	}
	return out.Spawned
}

// Grid returns a copy of the board.
func (g *Game) Grid() grid.Grid {
	return g.grid
}

// Last returns the outcome of the most recent turn.
func (g *Game) Last() Outcome {
	return g.last
}

// Moves counts turns that named a direction.
func (g *Game) Moves() int {
	return g.moves
}

func (g *Game) Over() bool {
	return g.over
}

func (g *Game) Policy() SpawnPolicy {
	return g.policy
}
