package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/go2048/internal/game"
	"github.com/vinser/go2048/internal/grid"
	"github.com/vinser/go2048/internal/model/about"
	"github.com/vinser/go2048/internal/model/over"
	"github.com/vinser/go2048/internal/model/play"
	"github.com/vinser/go2048/internal/model/quit"
	"github.com/vinser/go2048/internal/model/setup"
	"github.com/vinser/go2048/internal/model/splash"
	"github.com/vinser/go2048/internal/state"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newApp(t *testing.T, seed int64) (Model, *state.State) {
	t.Helper()
	st := state.New(t.TempDir())
	m := New(st, nil, seed)
	m, _ = update(t, m, splash.TimedoutMsg{})
	if m.status != statusGameplay {
		t.Fatalf("status after splash = %d, want gameplay", m.status)
	}
	return m, st
}

func TestNewGameHasTwoTiles(t *testing.T) {
	m, _ := newApp(t, 7)
	if n := m.play.Game().Grid().Count(); n != 2 {
		t.Errorf("new game has %d tiles, want 2", n)
	}
	if m.play.Seed() != 7 {
		t.Errorf("seed = %d, want 7", m.play.Seed())
	}
}

func TestSameSeedSameGame(t *testing.T) {
	a, _ := newApp(t, 99)
	b, _ := newApp(t, 99)
	for _, k := range []string{"a", "w", "d", "s"} {
		a, _ = update(t, a, key(k))
		b, _ = update(t, b, key(k))
	}
	if !a.play.Game().Grid().Equal(b.play.Game().Grid()) {
		t.Errorf("boards differ:\n%s\n%s", a.play.Game().Grid(), b.play.Game().Grid())
	}
}

func TestQuitSavesAndResumes(t *testing.T) {
	m, st := newApp(t, 3)
	m, _ = update(t, m, key("a"))
	board := m.play.Game().Grid()

	m, cmd := update(t, m, key("q"))
	if m.status != statusQuitting {
		t.Fatalf("status = %d, want quitting", m.status)
	}
	if cmd == nil {
		t.Error("quit screen did not start its timer")
	}
	m, cmd = update(t, m, quit.TimedoutMsg{})
	if cmd == nil {
		t.Fatal("timeout did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("timeout produced %T, want tea.QuitMsg", cmd())
	}

	loaded, err := state.Read(st.Dir())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !loaded.HasGame() {
		t.Fatal("quit did not save the game")
	}
	resumed := New(loaded, nil, 0)
	if got := resumed.play.Game().Grid(); !got.Equal(board) {
		t.Errorf("resumed board:\n%s\nwant:\n%s", got, board)
	}
	if got := resumed.play.Game().Moves(); got != 1 {
		t.Errorf("resumed moves = %d, want 1", got)
	}
	if resumed.play.Seed() != 3 {
		t.Errorf("resumed seed = %d, want 3", resumed.play.Seed())
	}
}

func TestSeedOverridesSavedGame(t *testing.T) {
	st := state.New(t.TempDir())
	st.Board = &[grid.Size][grid.Size]int{{2, 4, 8, 16}}
	st.Moves = 10
	m := New(st, nil, 5)
	if m.play.Game().Moves() != 0 {
		t.Error("explicit seed resumed the saved game")
	}
}

func TestGameOverClearsSavedGame(t *testing.T) {
	m, st := newApp(t, 11)
	rows := m.play.Game().Grid().Rows()
	st.Board = &rows

	board := grid.FromRows([grid.Size][grid.Size]int{{2, 4}, {4, 2}})
	m, _ = update(t, m, play.GameOverMsg{Moves: 40, MaxTile: 4, Board: board})
	if m.status != statusGameOver {
		t.Fatalf("status = %d, want game over", m.status)
	}
	if st.HasGame() {
		t.Error("finished game is still saved")
	}
	if m.over.Moves() != 40 {
		t.Errorf("over screen moves = %d, want 40", m.over.Moves())
	}

	m, _ = update(t, m, over.PlayAgainMsg{})
	if m.status != statusGameplay {
		t.Fatalf("status = %d, want gameplay", m.status)
	}
	if n := m.play.Game().Grid().Count(); n != 2 {
		t.Errorf("new game has %d tiles, want 2", n)
	}
}

func TestMuteToggle(t *testing.T) {
	m, st := newApp(t, 1)
	m, _ = update(t, m, key("m"))
	if !st.Mute {
		t.Error("m did not mute")
	}
	m, _ = update(t, m, key("m"))
	if st.Mute {
		t.Error("second m did not unmute")
	}
	if m.play.Game().Moves() != 0 {
		t.Error("mute key counted as a move")
	}
}

func TestSettingsKeepBoard(t *testing.T) {
	m, st := newApp(t, 21)
	m, _ = update(t, m, key("d"))
	board := m.play.Game().Grid()

	m, _ = update(t, m, play.OpenSetupMsg{})
	if m.status != statusDoSettings {
		t.Fatalf("status = %d, want settings", m.status)
	}
	m, _ = update(t, m, setup.SaveSettingsMsg{Mute: true, Spawn: game.SpawnOnChange})
	if m.status != statusGameplay {
		t.Fatalf("status = %d, want gameplay", m.status)
	}
	g := m.play.Game()
	if !g.Grid().Equal(board) || g.Moves() != 1 {
		t.Error("changing options replaced the game")
	}
	if g.Policy() != game.SpawnOnChange || st.Spawn != game.SpawnOnChange {
		t.Errorf("policy = %s, state = %s, want moved", g.Policy(), st.Spawn)
	}
	if !st.Mute {
		t.Error("mute option not stored")
	}
}

func TestSettingsNewSeededGame(t *testing.T) {
	m, _ := newApp(t, 21)
	m, _ = update(t, m, key("o"))
	m, _ = update(t, m, play.OpenSetupMsg{})
	m, _ = update(t, m, setup.SaveSettingsMsg{Spawn: game.SpawnAlways, Seed: 1234, NewGame: true})
	if m.play.Seed() != 1234 {
		t.Errorf("seed = %d, want 1234", m.play.Seed())
	}
	if m.play.Game().Moves() != 0 {
		t.Error("seeded game did not start fresh")
	}
}

func TestAboutRoundTrip(t *testing.T) {
	m, _ := newApp(t, 2)
	m, _ = update(t, m, play.OpenAboutMsg{})
	if m.status != statusAbout {
		t.Fatalf("status = %d, want about", m.status)
	}
	m, _ = update(t, m, about.CloseAboutMsg{})
	if m.status != statusGameplay {
		t.Errorf("status = %d, want gameplay", m.status)
	}
}

func TestWindowSizeIsCached(t *testing.T) {
	m, _ := newApp(t, 2)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.termWidth != 100 || m.termHeight != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.termWidth, m.termHeight)
	}
	m, _ = update(t, m, play.OpenSetupMsg{})
	if m.View() == "" {
		t.Error("settings view is empty")
	}
}

func TestReenteringGameplayKeepsOneTicker(t *testing.T) {
	st := state.New(t.TempDir())
	m := New(st, nil, 4)
	m, first := update(t, m, splash.TimedoutMsg{})
	if first == nil {
		t.Fatal("gameplay did not start the tips ticker")
	}
	inFlight := first()

	m, _ = update(t, m, play.OpenSetupMsg{})
	m, second := update(t, m, setup.DiscardSettingsMsg{})
	if second == nil {
		t.Fatal("returning to gameplay did not restart the ticker")
	}

	if _, cmd := update(t, m, inFlight); cmd != nil {
		t.Error("tick from before the options screen started a second chain")
	}
	if _, cmd := update(t, m, second()); cmd == nil {
		t.Error("current ticker stopped")
	}
}
