package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/rs/zerolog/log"
)

// FileStorage persists the cart snapshot as a single JSON file on disk.
// It is the server-process analog of the browser localStorage slot the
// cart was originally persisted to.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage writing to the given path.
// Parent directories are created on the first Save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the persisted snapshot. An absent file yields (nil, nil).
// A file that exists but does not parse is treated as absent: the corruption
// is logged and the stale file removed so the next Save starts clean.
func (s *FileStorage) Load() (*model.CartData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}

	var data model.CartData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Warn().
			Err(err).
			Str("path", s.path).
			Msg("Discarding corrupt cart snapshot")
		_ = os.Remove(s.path)
		return nil, nil
	}

	return &data, nil
}

// Save writes the snapshot atomically: marshal to a temp file in the same
// directory, then rename over the slot. A crash mid-write leaves the previous
// snapshot intact.
func (s *FileStorage) Save(data model.CartData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal cart snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace cart snapshot: %w", err)
	}
	return nil
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (s *FileStorage) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}
