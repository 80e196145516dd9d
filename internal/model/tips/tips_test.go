package tips

import (
	"strings"
	"testing"
	"time"
)

func TestScrollWraps(t *testing.T) {
	m := New(10, 1, time.Hour)
	m.current = "corner"
	full := len(m.current) + m.frameWidth

	for i := 0; i < full; i++ {
		m, _ = m.Update(TickMsg{})
	}
	if m.offset != 0 || m.doneCount != 1 {
		t.Errorf("after a full pass offset = %d, done = %d", m.offset, m.doneCount)
	}

	m, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("ticker stopped")
	}
	if m.offset != 0 {
		t.Error("ticker kept scrolling while waiting for the next tip")
	}
}

func TestViewWidth(t *testing.T) {
	m := New(12, 2, time.Second)
	m.current = "keep the big tile in a corner"
	for i := 0; i < 20; i++ {
		m, _ = m.Update(TickMsg{})
		if w := len([]rune(m.View())); w > 12 {
			t.Fatalf("view is %d runes wide, frame is 12", w)
		}
	}
	m.offset = 12
	if !strings.HasPrefix(m.View(), "keep the big") {
		t.Errorf("view = %q, want the tip start", m.View())
	}
}

func TestEmptyFrame(t *testing.T) {
	m := New(0, 1, time.Second)
	if m.View() != "" {
		t.Error("zero-width frame rendered text")
	}
}

func TestTipsLoaded(t *testing.T) {
	m := New(10, 1, time.Second)
	if len(m.tips) < 2 {
		t.Errorf("loaded %d tips, want the embedded list", len(m.tips))
	}
}

func TestRestartDropsOldChain(t *testing.T) {
	m := New(10, 1, time.Hour)
	m.current = "corner"
	m.Start()
	stale := TickMsg{chain: m.chain}
	m.Start()
	current := TickMsg{chain: m.chain}

	m, cmd := m.Update(stale)
	if cmd != nil || m.offset != 0 {
		t.Errorf("tick from an old chain scrolled: offset = %d, cmd = %v", m.offset, cmd != nil)
	}
	m, cmd = m.Update(current)
	if cmd == nil || m.offset != 1 {
		t.Errorf("tick from the current chain: offset = %d, cmd = %v", m.offset, cmd != nil)
	}
}
