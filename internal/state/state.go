// Package state persists reading positions between sessions.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/flickread/flick/internal/slides"
)

const (
	stateFileName = "reading_positions.json"
	hashBytes     = 8192 // First 8KB for content hash
)

// StateStore manages persistent reading positions keyed by book content
// hash. The record is the durable {chapter, word offset} position, which
// stays valid no matter how the reader resizes slides.
type StateStore struct {
	path string
	data map[string]slides.Position
	mu   sync.RWMutex
}

// NewStateStore creates or loads state from XDG_STATE_HOME/flick/
func NewStateStore() (*StateStore, error) {
	dir := getStateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	store := &StateStore{
		path: filepath.Join(dir, stateFileName),
		data: make(map[string]slides.Position),
	}
	if err := store.load(); err != nil {
		// Non-fatal - start with empty state
		store.data = make(map[string]slides.Position)
	}
	return store, nil
}

// getStateDir returns XDG_STATE_HOME/flick or ~/.local/state/flick
func getStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "flick")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "flick")
}

// ComputeHash generates content hash for file identity
func ComputeHash(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, hashBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}

	hash := sha256.Sum256(buf[:n])
	return hex.EncodeToString(hash[:16]), nil // First 16 bytes = 32 hex chars
}

// GetPosition returns the saved position for a book, or the zero position
// if none is known.
func (s *StateStore) GetPosition(hash string) slides.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[hash]
}

// SetPosition saves the position for a book.
func (s *StateStore) SetPosition(hash string, pos slides.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[hash] = pos
	return s.save()
}

// Clear removes the saved position for a book.
func (s *StateStore) Clear(hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, hash)
	return s.save()
}

func (s *StateStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

func (s *StateStore) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
