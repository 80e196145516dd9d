package over

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/go2048/internal/grid"
	"github.com/vinser/go2048/internal/render"
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	moves   int
	maxTile int
	board   grid.Grid
}

// PlayAgainMsg is a message sent when the user chooses to play again.
type PlayAgainMsg struct{}

func playAgainCmd() tea.Cmd {
	return func() tea.Msg {
		return PlayAgainMsg{}
	}
}

// QuitGameMsg is a message sent when the user chooses to quit from the game over screen.
type QuitGameMsg struct{}

func quitGameCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitGameMsg{}
	}
}

func New(board grid.Grid, moves, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:   width,
		height:  height,
		moves:   moves,
		maxTile: board.Max(),
		board:   board,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "a", "enter":
			return m, playAgainCmd()
		case "q", "esc":
			return m, quitGameCmd()
		}
	}
	return m, nil
}

const footer = "a — play again, q — quit"

func (m Model) View() string {
	return render.Page("No free cells left", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		render.Grid(m.board),
		"",
		fmt.Sprintf("Moves: %d", m.moves),
		fmt.Sprintf("Largest tile: %d", m.maxTile),
	)
}

func (m Model) Moves() int {
	return m.moves
}
