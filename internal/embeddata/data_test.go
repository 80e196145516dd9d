package embeddata

import (
	"encoding/json"
	"io/fs"
	"strings"
	"testing"
)

func TestReadAboutMD(t *testing.T) {
	b, err := ReadAboutMD()
	if err != nil {
		t.Fatalf("ReadAboutMD() error = %v", err)
	}
	if !strings.HasPrefix(string(b), "# go2048") {
		t.Errorf("about.md starts with %q", strings.SplitN(string(b), "\n", 2)[0])
	}
	if _, err := fs.Stat(FS(), "about.md"); err != nil {
		t.Errorf("FS() is missing about.md: %v", err)
	}
}

func TestReadTips(t *testing.T) {
	b, err := ReadTips()
	if err != nil {
		t.Fatalf("ReadTips() error = %v", err)
	}
	var tips struct {
		Tips []string `json:"tips"`
	}
	if err := json.Unmarshal(b, &tips); err != nil {
		t.Fatalf("tips.json: %v", err)
	}
	if len(tips.Tips) == 0 {
		t.Error("tips.json has no tips")
	}
}
