package setup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/go2048/internal/game"
	"github.com/vinser/go2048/internal/style"
)

const width = 60

const (
	selectedMute = iota
	selectedSpawn
	selectedSeed
	selectedNewGame
	numSettings
)

type Model struct {
	mute    bool
	spawn   game.SpawnPolicy
	newGame bool
	seed    textinput.Model

	selectedSetting int
	termWidth       int
	termHeight      int
}

// SaveSettingsMsg carries the chosen options. A non-zero Seed or NewGame
// asks for a fresh game.
type SaveSettingsMsg struct {
	Mute    bool
	Spawn   game.SpawnPolicy
	Seed    int64
	NewGame bool
}

func saveSettingsCmd(mute bool, spawn game.SpawnPolicy, seed int64, newGame bool) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{
			Mute:    mute,
			Spawn:   spawn,
			Seed:    seed,
			NewGame: newGame,
		}
	}
}

type DiscardSettingsMsg struct{}

func discardSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardSettingsMsg{}
	}
}

func New(mute bool, spawn game.SpawnPolicy) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "random"
	ti.CharLimit = 18
	ti.Width = 20

	return Model{
		mute:  mute,
		spawn: spawn,
		seed:  ti,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

// Editing reports whether keystrokes go to the seed field.
func (m Model) Editing() bool {
	return m.seed.Focused()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.seed, cmd = m.seed.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "s", "ctrl+s":
		return m, m.save()
	case "esc":
		return m, discardSettingsCmd()
	case "up":
		if m.selectedSetting > 0 {
			m.selectedSetting--
		}
		return m, m.focusSeed()
	case "down", "tab":
		if m.selectedSetting < numSettings-1 {
			m.selectedSetting++
		}
		return m, m.focusSeed()
	case "enter", " ":
		switch m.selectedSetting {
		case selectedMute:
			m.mute = !m.mute
		case selectedSpawn:
			m.spawn = nextSpawn(m.spawn)
		case selectedNewGame:
			m.newGame = !m.newGame
		case selectedSeed:
			return m, m.save()
		}
		return m, nil
	}

	if m.seed.Focused() && digitsOnly(keyMsg) {
		var cmd tea.Cmd
		m.seed, cmd = m.seed.Update(msg)
		return m, cmd
	}
	return m, nil
}

// focusSeed moves keyboard focus to the seed field when it is selected.
func (m *Model) focusSeed() tea.Cmd {
	if m.selectedSetting == selectedSeed {
		return m.seed.Focus()
	}
	m.seed.Blur()
	return nil
}

func (m Model) save() tea.Cmd {
	seed, err := strconv.ParseInt(strings.TrimSpace(m.seed.Value()), 10, 64)
	if err != nil {
		seed = 0
	}
	return saveSettingsCmd(m.mute, m.spawn, seed, m.newGame || seed != 0)
}

func digitsOnly(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}

func nextSpawn(current game.SpawnPolicy) game.SpawnPolicy {
	switch current {
	case game.SpawnAlways:
		return game.SpawnOnChange
	default:
		return game.SpawnAlways
	}
}

func (m Model) View() string {
	type option struct {
		label string
		value string
	}

	options := []option{
		{"Mute all sounds", fmt.Sprintf("%v", m.mute)},
		{"Spawn after", string(m.spawn)},
		{"Seed", m.seed.View()},
		{"Start a new game", fmt.Sprintf("%v", m.newGame)},
	}

	var b strings.Builder
	title := style.SetupTitle.Render("Options")
	b.WriteString("\n" + centerText(title) + "\n\n")

	for i, opt := range options {
		prefix := "  "
		if i == m.selectedSetting {
			prefix = "➤ "
		}
		line := fmt.Sprintf("%s%s: %s", prefix, opt.label, opt.value)
		if i == m.selectedSetting {
			b.WriteString(centerText(style.SetupItemSelected.Render(line)))
		} else {
			b.WriteString(centerText(style.SetupItem.Render(line)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n\n" + centerText("↑ ↓ — select, space — change, s — save, esc — cancel") + "\n")
	view := b.String()
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func centerText(text string) string {
	padding := (width - lipgloss.Width(text)) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}
