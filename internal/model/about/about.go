// Package about shows the rules and key reference rendered from markdown.
package about

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/go2048/internal/embeddata"
	"github.com/vinser/go2048/internal/input"
	"github.com/vinser/go2048/internal/render"
)

const (
	// pageChrome is the title and footer height around the viewport.
	pageChrome    = 5
	glamourGutter = 2
)

var scroll = key.NewBinding(
	key.WithKeys("up", "down", "pgup", "pgdown"),
	key.WithHelp("↑/↓", "scroll"),
)

type Model struct {
	keys   input.KeyMap
	footer string

	pageWidth  int
	pageHeight int
	height     int
	termWidth  int
	termHeight int

	viewport viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

// New renders the about page for a width x height frame. The page widens
// to fit its footer.
func New(width, height int, keys input.KeyMap) Model {
	footer := help.New().ShortHelpView([]key.Binding{scroll, keys.Back, keys.Quit})
	width = max(width, lipgloss.Width(footer))

	md, err := embeddata.ReadAboutMD()
	if err != nil {
		log.Printf("about: %v", err)
	}
	vp := viewport.New(width, height)
	vp.SetContent(renderMarkdown(string(md), width-vp.Style.GetHorizontalFrameSize()-glamourGutter))

	return Model{
		keys:       keys,
		footer:     footer,
		pageWidth:  width,
		pageHeight: height,
		height:     height,
		viewport:   vp,
	}
}

// SetSize shrinks the viewport when the terminal is shorter than the page.
func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	if m.pageHeight > height-pageChrome {
		m.height = height
		m.viewport.Height = height - pageChrome
		return
	}
	m.height = m.pageHeight
	m.viewport.Height = m.pageHeight
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && input.Is(k.String(), m.keys.Back, m.keys.About) {
		return m, closeAboutCmd()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return render.Page("About", m.viewport.View(), m.footer, m.pageWidth, m.height, m.termWidth, m.termHeight)
}

// renderMarkdown wraps content at width columns. The raw text is shown
// when glamour cannot render it.
func renderMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return out
}
