package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/denisbrodbeck/machineid"
	"github.com/vinser/go2048/internal/game"
	"github.com/vinser/go2048/internal/grid"
)

// ErrCorrupt is returned when the save file fails decryption or its
// integrity check.
var ErrCorrupt = errors.New("state: corrupt save file")

const (
	appID    = "go2048"
	fileName = "state.dat"
)

// State holds preferences and the game in progress between sessions.
type State struct {
	Mute  bool                       `json:"mute"`            // Mute all sounds
	Spawn game.SpawnPolicy           `json:"spawn"`           // When to spawn tiles: always or moved
	Seed  int64                      `json:"seed"`            // Seed of the game in progress
	Moves int                        `json:"moves"`           // Moves played in the game in progress
	Board *[grid.Size][grid.Size]int `json:"board,omitempty"` // Board of the game in progress, nil when none

	dir string
}

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	id, err := machineid.ProtectedID(appID)
	if err != nil {
		id = "default-go2048-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(id))
	return sum[:]
}

// New returns default state stored in dir. An empty dir selects the user
// config directory.
func New(dir string) *State {
	return &State{
		Spawn: game.DefaultSpawnPolicy,
		dir:   dir,
	}
}

// Load reads the state from dir, falling back to defaults when the file is
// missing or unreadable.
func Load(dir string) *State {
	s, err := Read(dir)
	if err != nil {
		return New(dir)
	}
	return s
}

// Read decrypts and verifies the save file in dir.
func Read(dir string) (*State, error) {
	path, err := savePath(dir)
	if err != nil {
		return nil, err
	}
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return nil, ErrCorrupt
	}

	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return nil, ErrCorrupt
	}

	s := New(dir)
	if err := json.Unmarshal(payload, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if _, err := game.ParseSpawnPolicy(string(s.Spawn)); err != nil {
		s.Spawn = game.DefaultSpawnPolicy
	}
	if s.Board != nil && !grid.FromRows(*s.Board).Valid() {
		s.ClearGame()
	}
	return s, nil
}

// Save persists the state to an encrypted file with an integrity check.
func (s *State) Save() error {
	path, err := savePath(s.dir)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encrypted, 0644)
}

// SaveGame records the game in progress.
func (s *State) SaveGame(g *game.Game, seed int64) {
	rows := g.Grid().Rows()
	s.Board = &rows
	s.Moves = g.Moves()
	s.Seed = seed
}

// ClearGame forgets the game in progress.
func (s *State) ClearGame() {
	s.Board = nil
	s.Moves = 0
	s.Seed = 0
}

// HasGame reports whether there is a game to resume.
func (s *State) HasGame() bool {
	return s.Board != nil
}

// SavedGrid returns the board of the game in progress.
func (s *State) SavedGrid() grid.Grid {
	if s.Board == nil {
		return grid.New()
	}
	return grid.FromRows(*s.Board)
}

// Dir returns the directory the state is stored in.
func (s *State) Dir() string {
	return s.dir
}

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}

// savePath returns the path to the save file, creating its directory.
func savePath(dir string) (string, error) {
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(configDir, appID)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}
