package flags

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vinser/go2048/internal/game"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Flags
	}{
		{
			name: "defaults",
			args: nil,
			want: Flags{Spawn: game.SpawnAlways},
		},
		{
			name: "long names",
			args: []string{"-mute", "-seed", "42", "-spawn", "moved", "-state-dir", "/tmp/x"},
			want: Flags{Mute: true, MuteSet: true, Seed: 42, Spawn: game.SpawnOnChange, SpawnSet: true, StateDir: "/tmp/x"},
		},
		{
			name: "short aliases",
			args: []string{"-m", "-p", "-r", "-d", "-s=7"},
			want: Flags{Mute: true, MuteSet: true, Plain: true, Reset: true, Debug: true, Seed: 7, Spawn: game.SpawnAlways},
		},
		{
			name: "spawn is case insensitive",
			args: []string{"-spawn=MOVED"},
			want: Flags{Spawn: game.SpawnOnChange, SpawnSet: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSpawn, "")
			t.Setenv(EnvStateDir, "")
			var out bytes.Buffer
			got, err := Parse("go2048", tt.args, &out)
			if err != nil {
				t.Fatalf("Parse() error = %v\n%s", err, out.String())
			}
			if *got != tt.want {
				t.Errorf("Parse(%v) = %+v, want %+v", tt.args, *got, tt.want)
			}
		})
	}
}

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv(EnvSpawn, "moved")
	t.Setenv(EnvStateDir, "/var/lib/go2048")
	got, err := Parse("go2048", nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Spawn != game.SpawnOnChange || !got.SpawnSet || got.StateDir != "/var/lib/go2048" {
		t.Errorf("Parse() = %+v", *got)
	}

	got, err = Parse("go2048", []string{"-spawn", "always"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Spawn != game.SpawnAlways {
		t.Errorf("flag should override env: %q", got.Spawn)
	}
}

func TestParseErrors(t *testing.T) {
	t.Setenv(EnvSpawn, "")
	for _, args := range [][]string{
		{"-spawn", "never"},
		{"-seed", "abc"},
		{"-unknown"},
	} {
		var out bytes.Buffer
		if _, err := Parse("go2048", args, &out); err == nil {
			t.Errorf("Parse(%v) should fail", args)
		}
		if !strings.Contains(out.String(), "Usage of go2048") {
			t.Errorf("Parse(%v) did not print usage:\n%s", args, out.String())
		}
	}
}

func TestExpandAliases(t *testing.T) {
	fsv := NewFlagSetWithVisit("x", 0)
	var b bool
	var s string
	fsv.BoolVar(&b, "mute", "m", false, "")
	fsv.StringVar(&s, "spawn", "", "", "")
	got := fsv.expandAliases([]string{"-m", "-m=true", "--mute", "-spawn", "x", "-z"})
	want := []string{"-mute", "-mute=true", "--mute", "-spawn", "x", "-z"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("expandAliases() = %v, want %v", got, want)
	}
}
