package flags

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vinser/go2048/internal/game"
)

// Environment variables providing defaults for the matching flags.
const (
	EnvStateDir = "GO2048_STATE_DIR"
	EnvSpawn    = "GO2048_SPAWN"
)

// Flags stores the parsed command-line options
type Flags struct {
	Mute     bool
	Reset    bool
	Plain    bool
	Debug    bool
	Seed     int64
	Spawn    game.SpawnPolicy
	StateDir string

	// explicitly set on the command line
	MuteSet  bool
	SpawnSet bool
}

// Parse parses command-line flags. Invalid values are reported as errors
// after the usage text has been written to out.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	var (
		mute     bool
		reset    bool
		plain    bool
		debug    bool
		seed     int64
		spawn    string
		stateDir string
	)

	fsv := NewFlagSetWithVisit(name, flag.ContinueOnError)
	fsv.SetOutput(out)

	fsv.BoolVar(&mute, "mute", "m", false, "Mute all sounds")
	fsv.BoolVar(&reset, "reset", "r", false, "Forget saved settings and the game in progress")
	fsv.BoolVar(&plain, "plain", "p", false, "Line mode: print the board and read one key per turn")
	fsv.BoolVar(&debug, "debug", "d", false, "Write a debug log to go2048.log")
	fsv.Int64Var(&seed, "seed", "s", 0, "Random seed for a new game (0 picks one)")
	fsv.StringVar(&spawn, "spawn", "", envOr(EnvSpawn, string(game.DefaultSpawnPolicy)), "Spawn after: always (every key) or moved (only effective moves)")
	fsv.StringVar(&stateDir, "state-dir", "", os.Getenv(EnvStateDir), "Directory for the save file (default: user config dir)")

	if err := fsv.Parse(args); err != nil {
		return nil, err
	}

	policy, err := game.ParseSpawnPolicy(strings.ToLower(spawn))
	if err != nil {
		fmt.Fprintln(out, err)
		fsv.Usage()
		return nil, err
	}

	return &Flags{
		Mute:     mute,
		Reset:    reset,
		Plain:    plain,
		Debug:    debug,
		Seed:     seed,
		Spawn:    policy,
		StateDir: stateDir,
		MuteSet:  fsv.IsCustom("mute"),
		SpawnSet: fsv.IsCustom("spawn") || os.Getenv(EnvSpawn) != "",
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
