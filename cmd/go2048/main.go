package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/vinser/go2048/internal/app"
	"github.com/vinser/go2048/internal/console"
	"github.com/vinser/go2048/internal/flags"
	"github.com/vinser/go2048/internal/game"
	"github.com/vinser/go2048/internal/sound"
	"github.com/vinser/go2048/internal/state"
)

func main() {
	// A .env file may provide GO2048_* defaults; it is optional.
	envErr := godotenv.Load()

	fl, err := flags.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if err := run(fl, envErr, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run sets up logging and plays until the user quits. in and out serve the
// plain mode; the full screen UI owns the terminal. Everything run opens is
// closed before it returns.
func run(fl *flags.Flags, envErr error, in io.Reader, out io.Writer) error {
	if fl.Debug {
		f, err := tea.LogToFile("go2048.log", "go2048")
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetOutput(io.Discard)
	}
	if envErr != nil && !os.IsNotExist(envErr) {
		log.Printf("load .env: %v", envErr)
	}

	st := loadState(fl)

	if fl.Plain {
		return runPlain(fl, st, in, out)
	}

	sm, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		log.Printf("sound disabled: %v", err)
		sm = nil
	} else {
		defer sm.Close()
		if err := sm.LoadSamples(); err != nil {
			log.Printf("load samples: %v", err)
			sm.Mute()
		}
	}

	p := tea.NewProgram(app.New(st, sm, fl.Seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("run: %v", err)
		return err
	}
	return nil
}

// loadState reads the saved state and applies the command-line overrides.
func loadState(fl *flags.Flags) *state.State {
	var st *state.State
	if fl.Reset {
		st = state.New(fl.StateDir)
	} else {
		st = state.Load(fl.StateDir)
	}
	if fl.MuteSet {
		st.Mute = fl.Mute
	}
	if fl.SpawnSet {
		st.Spawn = fl.Spawn
	}
	return st
}

// runPlain plays a fresh game on in and out without the full screen UI.
func runPlain(fl *flags.Flags, st *state.State, in io.Reader, out io.Writer) error {
	seed := fl.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.New(rand.New(rand.NewSource(seed)), game.WithSpawnPolicy(st.Spawn))
	return console.Run(in, out, g)
}
