package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// General UI
	SetupTitle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	SetupItem         = lipgloss.NewStyle()
	SetupItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple
	Status            = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Board
	Board     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241"))
	EmptyTile = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("236"))
)

// TileWidth and TileHeight are the size of one rendered cell in characters.
const (
	TileWidth  = 7
	TileHeight = 3
)

type tileColors struct {
	fg, bg string
}

// palette follows the classic 2048 colors, approximated in xterm-256.
var palette = map[int]tileColors{
	2:    {"239", "255"},
	4:    {"239", "230"},
	8:    {"255", "215"},
	16:   {"255", "209"},
	32:   {"255", "203"},
	64:   {"255", "196"},
	128:  {"239", "229"},
	256:  {"239", "228"},
	512:  {"239", "227"},
	1024: {"239", "226"},
	2048: {"239", "220"},
}

var superTile = tileColors{"255", "237"}

// Tile returns the style of a cell holding value.
func Tile(value int) lipgloss.Style {
	base := lipgloss.NewStyle().
		Width(TileWidth).
		Height(TileHeight).
		Align(lipgloss.Center, lipgloss.Center)
	if value == 0 {
		return base.Inherit(EmptyTile)
	}
	c, ok := palette[value]
	if !ok {
		c = superTile
	}
	return base.Bold(true).
		Foreground(lipgloss.Color(c.fg)).
		Background(lipgloss.Color(c.bg))
}
