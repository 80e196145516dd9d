package splash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/go2048/internal/render"
	"github.com/vinser/go2048/internal/style"
)

const (
	revealTickDuration = 250 * time.Millisecond
	finalPause         = 2 * time.Second
)

// banner spells the game name with tiles colored like 2, 16, 4 and 8.
var banner = []struct {
	label string
	value int
}{
	{"2", 2},
	{"0", 16},
	{"4", 4},
	{"8", 8},
}

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	shown      int
	pauseUntil time.Time
}

type RevealMsg struct{}

func revealCmd() tea.Cmd {
	return tea.Tick(revealTickDuration, func(t time.Time) tea.Msg {
		return RevealMsg{}
	})
}

type MakeSettingsMsg struct{}

func makeSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return MakeSettingsMsg{}
	}
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:  width,
		height: height,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return revealCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RevealMsg:
		return m.reveal(time.Now())
	case tea.KeyMsg:
		switch msg.String() {
		case "o":
			return m, makeSettingsCmd()
		case "enter", "esc", " ":
			return m, timedoutCmd()
		}
	}
	return m, nil
}

// reveal shows the next banner tile, then holds the full banner for a
// moment before handing over to the game.
func (m Model) reveal(now time.Time) (Model, tea.Cmd) {
	if m.shown < len(banner) {
		m.shown++
		if m.shown == len(banner) {
			m.pauseUntil = now.Add(finalPause)
		}
		return m, revealCmd()
	}
	if now.Before(m.pauseUntil) {
		return m, revealCmd()
	}
	return m, timedoutCmd()
}

const footer = "o — options, space — play, m — mute, q — quit"

func (m Model) View() string {
	tiles := make([]string, 0, len(banner))
	for i, b := range banner {
		if i < m.shown {
			tiles = append(tiles, style.Tile(b.value).Render(b.label))
		} else {
			tiles = append(tiles, style.Tile(0).Render(""))
		}
	}
	content := style.Board.Render(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	return render.Page("Join the tiles, get to 2048!", content, footer, m.width, m.height, m.termWidth, m.termHeight)
}
