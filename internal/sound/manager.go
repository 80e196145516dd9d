// Package sound manages playback of short synthesized effects with support
// for interrupting a sample and muting all output.
package sound

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

// Sound names
const (
	SLIDE     = "slide"
	MERGE     = "merge"
	BIG_MERGE = "big_merge"
	GAME_OVER = "game_over"
	QUIT      = "quit"
)

const CommonSampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// tones describes every sample as a sequence of sine notes.
var tones = map[string][]note{
	SLIDE:     {{freq: 330, dur: 25 * time.Millisecond}},
	MERGE:     {{freq: 523.25, dur: 40 * time.Millisecond}, {freq: 659.25, dur: 40 * time.Millisecond}},
	BIG_MERGE: {{freq: 523.25, dur: 50 * time.Millisecond}, {freq: 659.25, dur: 50 * time.Millisecond}, {freq: 783.99, dur: 80 * time.Millisecond}},
	GAME_OVER: {{freq: 392, dur: 150 * time.Millisecond}, {freq: 329.63, dur: 150 * time.Millisecond}, {freq: 261.63, dur: 300 * time.Millisecond}},
	QUIT:      {{freq: 261.63, dur: 80 * time.Millisecond}, {freq: 196, dur: 160 * time.Millisecond}},
}

// Manager controls the loading and playback of audio samples.
type Manager struct {
	mu        sync.Mutex
	samples   map[string]*beep.Buffer
	ctrl      map[string]*beep.Ctrl
	mix       *beep.Mixer
	format    beep.Format
	muted     bool
	vol       *effects.Volume // mixer output
	backend   any
	pulseCtrl *pulseControl
}

// NewManager initializes the audio backend and creates a new Manager.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := newManager(sampleRate)
	bufferSize := sampleRate.N(time.Second / 10)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("init audio backend: %w", err)
	}
	return mgr, nil
}

// newManager builds a manager that is not attached to any output.
func newManager(sampleRate beep.SampleRate) *Manager {
	mgr := &Manager{
		samples: make(map[string]*beep.Buffer),
		ctrl:    make(map[string]*beep.Ctrl),
		mix:     &beep.Mixer{},
		format:  beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
	}
	mgr.vol = &effects.Volume{
		Streamer: lockedStreamer{mu: &mgr.mu, s: mgr.mix},
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	return mgr
}

// lockedStreamer keeps the backend from reading the mixer while samples are
// added or stopped.
type lockedStreamer struct {
	mu *sync.Mutex
	s  beep.Streamer
}

func (l lockedStreamer) Stream(samples [][2]float64) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Stream(samples)
}

func (l lockedStreamer) Err() error {
	return l.s.Err()
}

// LoadSamples synthesizes every effect into memory.
func (mgr *Manager) LoadSamples() error {
	for name, notes := range tones {
		if err := mgr.loadTone(name, notes); err != nil {
			return fmt.Errorf("load sample %s: %w", name, err)
		}
	}
	return nil
}

func (mgr *Manager) loadTone(name string, notes []note) error {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	var streamers []beep.Streamer
	for _, n := range notes {
		sine, err := generators.SineTone(mgr.format.SampleRate, n.freq)
		if err != nil {
			return err
		}
		streamers = append(streamers, beep.Take(mgr.format.SampleRate.N(n.dur), sine))
	}
	buf := beep.NewBuffer(mgr.format)
	buf.Append(beep.Seq(streamers...))
	mgr.samples[name] = buf
	return nil
}

// playInternal plays the sample by name from the start, db louder or
// quieter than recorded. Volume steps are powers of two.
func (mgr *Manager) playInternal(name string, db float64) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return errors.New("sample not loaded: " + name)
	}
	if mgr.muted {
		return nil
	}
	// Interrupt previous if exists
	if ctrl, exists := mgr.ctrl[name]; exists {
		ctrl.Streamer = nil
	}

	vol := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   db,
		Silent:   false,
	}
	ctrl := &beep.Ctrl{Streamer: vol, Paused: false}
	mgr.mix.Add(ctrl)
	mgr.ctrl[name] = ctrl
	return nil
}

// Play stops current playback of the sample (if any) and plays it from the start.
func (mgr *Manager) Play(name string) error {
	return mgr.playInternal(name, 0)
}

// PlayWithVolume is Play with the sample level shifted by db.
func (mgr *Manager) PlayWithVolume(name string, db float64) error {
	return mgr.playInternal(name, db)
}

// StopListed stops playback of the specified samples by name.
// If a sample is not currently playing, it is ignored.
func (mgr *Manager) StopListed(names ...string) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for _, name := range names {
		if ctrl, ok := mgr.ctrl[name]; ok {
			// a nil streamer drains the control from the mixer
			ctrl.Streamer = nil
			delete(mgr.ctrl, name)
		}
	}
}

// StopAll halts playback of all currently playing samples.
func (mgr *Manager) StopAll() {
	mgr.mu.Lock()
	names := make([]string, 0, len(mgr.ctrl))
	for name := range mgr.ctrl {
		names = append(names, name)
	}
	mgr.mu.Unlock()
	mgr.StopListed(names...)
}

// Mute disables all audio output.
func (mgr *Manager) Mute() {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = true
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = false
}

func (mgr *Manager) Muted() bool {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Close stops playback and frees the backend.
func (mgr *Manager) Close() {
	mgr.StopAll()
	if mgr.backend != nil {
		mgr.closeBackend()
	}
}
