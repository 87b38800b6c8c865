package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage persists the session record across process restarts.
type Storage interface {
	// Load returns the persisted state, or nil when none exists.
	Load() (*State, error)
	Save(State) error
	Clear() error
}

// NopStorage keeps the session in memory only.
type NopStorage struct{}

func (NopStorage) Load() (*State, error) { return nil, nil }
func (NopStorage) Save(State) error      { return nil }
func (NopStorage) Clear() error          { return nil }

// FileStorage serializes the session as a single JSON record on disk, the
// durable-storage equivalent of the mobile app's keyed async storage.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return &state, nil
}

// Save writes atomically via a temp file rename so a crash mid-write never
// leaves a truncated session behind.
func (f *FileStorage) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
