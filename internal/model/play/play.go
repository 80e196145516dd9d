package play

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/go2048/internal/game"
	"github.com/vinser/go2048/internal/grid"
	"github.com/vinser/go2048/internal/input"
	"github.com/vinser/go2048/internal/model/tips"
	"github.com/vinser/go2048/internal/render"
	"github.com/vinser/go2048/internal/sound"
	"github.com/vinser/go2048/internal/style"
)

// bigTile is the smallest new maximum that earns the fanfare sound.
const bigTile = 128

// Effect levels in volume steps relative to the recorded sample.
const (
	slideVolume    = -1.5
	mergeVolume    = 0
	bigMergeVolume = 0.5
)

const (
	tipsRepeats  = 2
	tipsInterval = 30 * time.Second
)

type Model struct {
	game         *game.Game
	seed         int64
	keys         input.KeyMap
	help         help.Model
	tips         tips.Model
	soundManager player
	termWidth    int
	termHeight   int
}

type player interface {
	PlayWithVolume(name string, db float64) error
}

// GameOverMsg is sent when a turn could not spawn a tile.
type GameOverMsg struct {
	Moves   int
	MaxTile int
	Board   grid.Grid
}

func gameOverCmd(g *game.Game) tea.Cmd {
	return func() tea.Msg {
		return GameOverMsg{
			Moves:   g.Moves(),
			MaxTile: g.Grid().Max(),
			Board:   g.Grid(),
		}
	}
}

// OpenAboutMsg asks the app to show the about page.
type OpenAboutMsg struct{}

func openAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return OpenAboutMsg{}
	}
}

// OpenSetupMsg asks the app to show the options screen.
type OpenSetupMsg struct{}

func openSetupCmd() tea.Cmd {
	return func() tea.Msg {
		return OpenSetupMsg{}
	}
}

// New returns a play model for g. sm may be nil.
func New(g *game.Game, seed int64, keys input.KeyMap, sm *sound.Manager) Model {
	m := Model{
		game: g,
		seed: seed,
		keys: keys,
		help: help.New(),
		tips: tips.New(boardWidth(), tipsRepeats, tipsInterval),
	}
	if sm != nil {
		m.soundManager = sm
	}
	return m
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	m.help.Width = width
}

// Start restarts the tips ticker. Ticks from an earlier start are ignored.
func (m *Model) Start() tea.Cmd {
	return m.tips.Start()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if _, ok := msg.(tips.TickMsg); ok {
		m.tips, cmd = m.tips.Update(msg)
		return m, cmd
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	symbol := keyMsg.String()
	switch {
	case input.Is(symbol, m.keys.About):
		return m, openAboutCmd()
	case input.Is(symbol, m.keys.Setup):
		return m, openSetupCmd()
	}

	prevMax := m.game.Grid().Max()
	spawned := m.game.Turn(symbol)
	m.playTurnSound(prevMax)
	if !spawned {
		return m, gameOverCmd(m.game)
	}
	return m, nil
}

func (m Model) playTurnSound(prevMax int) {
	if m.soundManager == nil {
		return
	}
	last := m.game.Last()
	switch newMax := m.game.Grid().Max(); {
	case last.Merges > 0 && newMax > prevMax && newMax >= bigTile:
		m.playSound(sound.BIG_MERGE, bigMergeVolume)
	case last.Merges > 0:
		m.playSound(sound.MERGE, mergeVolume)
	case last.Changed:
		m.playSound(sound.SLIDE, slideVolume)
	}
}

func (m Model) playSound(name string, db float64) {
	if err := m.soundManager.PlayWithVolume(name, db); err != nil {
		log.Printf("sound %s: %v", name, err)
	}
}

func (m Model) Game() *game.Game {
	return m.game
}

func (m Model) Seed() int64 {
	return m.seed
}

func (m Model) View() string {
	g := m.game.Grid()
	status := fmt.Sprintf("Moves: %d  Max tile: %d  Spawn: %s  Seed: %d", m.game.Moves(), g.Max(), m.game.Policy(), m.seed)

	view := lipgloss.JoinVertical(
		lipgloss.Center,
		style.Title.Render("2048"),
		style.Status.Render(status),
		render.Grid(g),
		m.tips.View(),
		m.help.View(m.keys),
	)
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// boardWidth is the rendered width of the board including its border.
func boardWidth() int {
	return grid.Size*style.TileWidth + style.Board.GetHorizontalFrameSize()
}
