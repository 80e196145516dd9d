// Package tips scrolls short gameplay hints across a fixed-width frame.
package tips

import (
	"encoding/json"
	"log"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/go2048/internal/embeddata"
)

const scrollTickDuration = 200 * time.Millisecond

type Model struct {
	tips       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   string
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
	chain     uint64
}

// chains numbers every started tick chain across all models.
var chains atomic.Uint64

// TickMsg advances the scroll. Only the chain that produced it moves the text.
type TickMsg struct {
	chain uint64
}

func (m Model) tick() tea.Cmd {
	chain := m.chain
	return tea.Tick(scrollTickDuration, func(time.Time) tea.Msg {
		return TickMsg{chain: chain}
	})
}

type tipsFile struct {
	Tips []string `json:"tips"`
}

// New picks a random tip to scroll repeats times through a frame of
// frameWidth columns, then waits interval before the next one.
func New(frameWidth, repeats int, interval time.Duration) Model {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tips, err := load()
	if err != nil {
		log.Printf("tips: %v", err)
	}
	if len(tips) == 0 {
		tips = []string{"Keep your largest tile in a corner."}
	}

	return Model{
		tips:       tips,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    tips[rng.Intn(len(tips))],
		lastShown:  time.Now(),
		rng:        rng,
	}
}

func load() ([]string, error) {
	b, err := embeddata.ReadTips()
	if err != nil {
		return nil, err
	}
	var f tipsFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return f.Tips, nil
}

// Start begins a new tick chain. Ticks still in flight from an earlier
// chain are dropped when they arrive.
func (m *Model) Start() tea.Cmd {
	m.chain = chains.Add(1)
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.chain != m.chain {
		return m, nil
	}
	if m.doneCount >= m.repeats {
		if time.Since(m.lastShown) >= m.interval {
			m.current = m.tips[m.rng.Intn(len(m.tips))]
			m.lastShown = time.Now()
			m.doneCount = 0
			m.offset = 0
		}
		return m, m.tick()
	}
	m.offset++
	if m.offset >= len([]rune(m.current))+m.frameWidth {
		m.offset = 0
		m.doneCount++
	}
	return m, m.tick()
}

func (m Model) View() string {
	if m.frameWidth <= 0 {
		return ""
	}
	spaces := strings.Repeat(" ", m.frameWidth)
	text := []rune(spaces + m.current + spaces)

	start := min(m.offset, len(text))
	end := min(start+m.frameWidth, len(text))
	return m.style.Render(string(text[start:end]))
}

func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
