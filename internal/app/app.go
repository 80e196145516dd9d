package app

import (
	"log"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/go2048/internal/game"
	"github.com/vinser/go2048/internal/grid"
	"github.com/vinser/go2048/internal/input"
	"github.com/vinser/go2048/internal/model/about"
	"github.com/vinser/go2048/internal/model/over"
	"github.com/vinser/go2048/internal/model/play"
	"github.com/vinser/go2048/internal/model/quit"
	"github.com/vinser/go2048/internal/model/setup"
	"github.com/vinser/go2048/internal/model/splash"
	"github.com/vinser/go2048/internal/sound"
	"github.com/vinser/go2048/internal/state"
)

type status uint

const (
	statusStartSplash status = iota
	statusDoSettings
	statusGameplay
	statusAbout
	statusGameOver
	statusQuitting
)

// Page sizes of the secondary screens.
const (
	pageWidth   = 40
	pageHeight  = 20
	aboutWidth  = 64
	aboutHeight = 24
)

type Model struct {
	status       status
	state        *state.State
	soundManager *sound.Manager
	keys         input.KeyMap
	src          grid.Source
	// models
	splash splash.Model
	setup  setup.Model
	play   play.Model
	about  about.Model
	over   over.Model
	quit   quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New builds the application. A zero seed resumes the saved game if there
// is one and otherwise starts a game with a time based seed. sm may be nil.
func New(st *state.State, sm *sound.Manager, seed int64) Model {
	m := Model{
		status:       statusStartSplash,
		state:        st,
		soundManager: sm,
		keys:         input.DefaultKeyMap(),
		splash:       splash.New(pageWidth, pageHeight),
	}
	m.applyMute()
	if seed == 0 && st.HasGame() {
		m.resumeGame()
	} else {
		m.startGame(seed)
	}
	return m
}

// startGame replaces the play model with a fresh game.
func (m *Model) startGame(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.src = rand.New(rand.NewSource(seed))
	g := game.New(m.src, game.WithSpawnPolicy(m.state.Spawn), game.WithKeyMap(m.keys))
	m.resetPlayModel(g, seed)
}

// resumeGame continues the saved board. The random source is derived from
// the saved seed and move count, so spawns differ from the session that saved it.
func (m *Model) resumeGame() {
	seed := m.state.Seed
	m.src = rand.New(rand.NewSource(seed + int64(m.state.Moves)))
	g := game.Restore(m.state.SavedGrid(), m.src,
		game.WithSpawnPolicy(m.state.Spawn),
		game.WithMoves(m.state.Moves),
		game.WithKeyMap(m.keys),
	)
	m.resetPlayModel(g, seed)
}

func (m *Model) resetPlayModel(g *game.Game, seed int64) {
	m.play = play.New(g, seed, m.keys, m.soundManager)
}

// enterGameplay shows the board and restarts its tips ticker. A tick that
// was in flight when the board was left belongs to the old chain and is dropped.
func (m *Model) enterGameplay() tea.Cmd {
	m.status = statusGameplay
	// Seed the play model with the latest terminal size so it renders correctly before any manual resize
	m.play.SetSize(m.termWidth, m.termHeight)
	return m.play.Start()
}

func (m *Model) applyMute() {
	if m.soundManager == nil {
		return
	}
	if m.state.Mute {
		m.soundManager.Mute()
	} else {
		m.soundManager.Unmute()
	}
}

func (m *Model) playSound(name string) {
	if m.soundManager == nil {
		return
	}
	if err := m.soundManager.Play(name); err != nil {
		log.Printf("sound %s: %v", name, err)
	}
}

func (m *Model) saveState() {
	if err := m.state.Save(); err != nil {
		log.Printf("save state: %v", err)
	}
}

// keysCaptured reports whether the current screen consumes every key,
// including the global ones.
func (m Model) keysCaptured() bool {
	return m.status == statusQuitting || (m.status == statusDoSettings && m.setup.Editing())
}

func (m Model) Init() tea.Cmd {
	return m.splash.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.keysCaptured() {
			symbol := msg.String()
			switch {
			case input.Is(symbol, m.keys.Quit):
				return m.startQuit()
			case input.Is(symbol, m.keys.Mute) && m.status != statusDoSettings:
				m.state.Mute = !m.state.Mute
				m.applyMute()
				m.saveState()
				return m, nil
			}
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		switch m.status {
		case statusStartSplash:
			m.splash.SetSize(msg.Width, msg.Height)
		case statusDoSettings:
			m.setup.SetSize(msg.Width, msg.Height)
		case statusGameplay:
			m.play.SetSize(msg.Width, msg.Height)
		case statusAbout:
			m.about.SetSize(msg.Width, msg.Height)
		case statusGameOver:
			m.over.SetSize(msg.Width, msg.Height)
		case statusQuitting:
			m.quit.SetSize(msg.Width, msg.Height)
		}
		return m, tea.ClearScreen
	}

	switch m.status {
	case statusStartSplash:
		switch msg := msg.(type) {
		case splash.MakeSettingsMsg:
			m.openSetup()
		case splash.TimedoutMsg:
			cmd = m.enterGameplay()
		default:
			m.splash, cmd = m.splash.Update(msg)
		}
	case statusDoSettings:
		switch msg := msg.(type) {
		case setup.SaveSettingsMsg:
			m.applySettings(msg)
			cmd = m.enterGameplay()
		case setup.DiscardSettingsMsg:
			cmd = m.enterGameplay()
		default:
			m.setup, cmd = m.setup.Update(msg)
		}
	case statusGameplay:
		switch msg := msg.(type) {
		case play.GameOverMsg:
			m.playSound(sound.GAME_OVER)
			m.state.ClearGame()
			m.saveState()
			m.status = statusGameOver
			m.over = over.New(msg.Board, msg.Moves, pageWidth, pageHeight)
			m.over.SetSize(m.termWidth, m.termHeight)
		case play.OpenAboutMsg:
			m.status = statusAbout
			m.about = about.New(aboutWidth, aboutHeight, m.keys)
			m.about.SetSize(m.termWidth, m.termHeight)
		case play.OpenSetupMsg:
			m.openSetup()
		default:
			m.play, cmd = m.play.Update(msg)
		}
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			cmd = m.enterGameplay()
		default:
			m.about, cmd = m.about.Update(msg)
		}
	case statusGameOver:
		switch msg := msg.(type) {
		case over.PlayAgainMsg:
			m.startGame(0)
			cmd = m.enterGameplay()
		case over.QuitGameMsg:
			return m, tea.Quit
		default:
			m.over, cmd = m.over.Update(msg)
		}
	case statusQuitting:
		switch msg := msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
	}
	return m, cmd
}

func (m *Model) openSetup() {
	m.status = statusDoSettings
	m.setup = setup.New(m.state.Mute, m.state.Spawn)
	m.setup.SetSize(m.termWidth, m.termHeight)
}

// applySettings stores the chosen options and either starts a new game or
// carries the current board over under the new spawn policy.
func (m *Model) applySettings(msg setup.SaveSettingsMsg) {
	m.state.Mute = msg.Mute
	m.state.Spawn = msg.Spawn
	m.applyMute()

	if msg.NewGame {
		m.startGame(msg.Seed)
	} else {
		current := m.play.Game()
		g := game.Restore(current.Grid(), m.src,
			game.WithSpawnPolicy(msg.Spawn),
			game.WithMoves(current.Moves()),
			game.WithKeyMap(m.keys),
		)
		m.resetPlayModel(g, m.play.Seed())
	}
	m.saveState()
}

// startQuit stores an unfinished game and shows the farewell screen.
func (m Model) startQuit() (tea.Model, tea.Cmd) {
	g := m.play.Game()
	saved := !g.Over()
	if saved {
		m.state.SaveGame(g, m.play.Seed())
	} else {
		m.state.ClearGame()
	}
	m.saveState()

	if m.soundManager != nil {
		m.soundManager.StopAll()
	}
	m.playSound(sound.QUIT)

	m.status = statusQuitting
	m.quit = quit.New(g.Moves(), saved, pageWidth, pageHeight)
	m.quit.SetSize(m.termWidth, m.termHeight)
	return m, m.quit.Init()
}

func (m Model) View() string {
	switch m.status {
	case statusStartSplash:
		return m.splash.View()
	case statusDoSettings:
		return m.setup.View()
	case statusGameplay:
		return m.play.View()
	case statusAbout:
		return m.about.View()
	case statusGameOver:
		return m.over.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
