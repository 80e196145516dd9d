package setup

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/go2048/internal/game"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func saved(t *testing.T, cmd tea.Cmd) SaveSettingsMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("no command")
	}
	msg, ok := cmd().(SaveSettingsMsg)
	if !ok {
		t.Fatalf("got %T, want SaveSettingsMsg", cmd())
	}
	return msg
}

func TestToggleAndSave(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}

	m := New(false, game.SpawnAlways)
	_, cmd := press(t, m, space, down, space, runes("s"))
	got := saved(t, cmd)
	want := SaveSettingsMsg{Mute: true, Spawn: game.SpawnOnChange}
	if got != want {
		t.Errorf("saved %+v, want %+v", got, want)
	}
}

func TestSeedStartsNewGame(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}

	m := New(true, game.SpawnOnChange)
	m, _ = press(t, m, down, down)
	if !m.Editing() {
		t.Fatal("seed field is not focused")
	}
	m, _ = press(t, m, runes("4"), runes("x"), runes("2"))
	if v := m.seed.Value(); v != "42" {
		t.Errorf("seed field = %q, want digits only", v)
	}
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	got := saved(t, cmd)
	want := SaveSettingsMsg{Mute: true, Spawn: game.SpawnOnChange, Seed: 42, NewGame: true}
	if got != want {
		t.Errorf("saved %+v, want %+v", got, want)
	}

	m, _ = press(t, m, down)
	if m.Editing() {
		t.Error("seed field kept focus after leaving it")
	}
}

func TestNewGameWithoutSeed(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	m := New(false, game.SpawnAlways)
	_, cmd := press(t, m, down, down, down, tea.KeyMsg{Type: tea.KeyEnter}, runes("s"))
	got := saved(t, cmd)
	if !got.NewGame || got.Seed != 0 {
		t.Errorf("saved %+v, want a new random game", got)
	}
}

func TestEscDiscards(t *testing.T) {
	_, cmd := New(false, game.SpawnAlways).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(DiscardSettingsMsg); !ok {
		t.Errorf("esc produced %T, want DiscardSettingsMsg", cmd())
	}
}

func TestSelectionStaysInRange(t *testing.T) {
	m := New(false, game.SpawnAlways)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.selectedSetting != 0 {
		t.Errorf("selected %d after moving above the first item", m.selectedSetting)
	}
	for i := 0; i < numSettings+2; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.selectedSetting != numSettings-1 {
		t.Errorf("selected %d after moving past the last item", m.selectedSetting)
	}
}
