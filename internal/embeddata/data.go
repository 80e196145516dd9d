package embeddata

import (
	"embed"
	"io/fs"
)

//go:embed about.md tips.json
var embeddedFS embed.FS

// FS returns the embedded filesystem with access to about.md and tips.json.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

// ReadTips returns the contents of tips.json.
func ReadTips() ([]byte, error) {
	return embeddedFS.ReadFile("tips.json")
}
