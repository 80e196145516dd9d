package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/go2048/internal/render"
)

const quitPeriod = 2 * time.Second

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	moves     int
	saved     bool
	quitUntil time.Time
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New builds the farewell screen. saved tells whether the unfinished
// game was stored for the next run.
func New(moves int, saved bool, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:     width,
		height:    height,
		moves:     moves,
		saved:     saved,
		quitUntil: time.Now().Add(quitPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, timedoutCmd()
	}
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

const footer = "any key — leave now"

func (m Model) View() string {
	content := fmt.Sprintf("You made %d moves.", m.moves)
	if m.saved {
		content += "\nThe board is saved, see you next time."
	}
	content += "\nBye!"
	return render.Page("Leaving so soon?", content, footer, m.width, m.height, m.termWidth, m.termHeight)
}
