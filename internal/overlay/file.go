package overlay

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/talgya/turnmap/internal/world"
)

// Serialize encodes the overlay as human-readable JSON: a flat object
// whose keys are "<x>,<y>" coordinate strings. Round-tripping through
// Deserialize reproduces the same coordinate → facts pairs regardless
// of insertion order.
func (s *Store) Serialize() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*Facts, len(s.facts))
	for coord, f := range s.facts {
		out[coord.Key()] = f
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize overlay: %w", err)
	}
	return data, nil
}

// Deserialize replaces the store's contents with the entries decoded
// from data. On any decode error the store is left exactly as it was.
func (s *Store) Deserialize(data []byte) error {
	var raw map[string]*Facts
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse overlay: %w", err)
	}

	decoded := make(map[world.Coord]*Facts, len(raw))
	for key, f := range raw {
		coord, err := world.ParseKey(key)
		if err != nil {
			return fmt.Errorf("parse overlay: %w", err)
		}
		if f == nil {
			f = &Facts{}
		}
		decoded[coord] = f
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts = decoded
	return nil
}

// LoadFile reads the overlay from path. A missing file is not an error:
// the session simply starts with an empty overlay. A corrupt file is an
// error, and the in-memory overlay keeps its pre-call state.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("no overlay file, starting empty", "path", path)
			return nil
		}
		return fmt.Errorf("read overlay %s: %w", path, err)
	}
	if err := s.Deserialize(data); err != nil {
		return fmt.Errorf("overlay %s: %w", path, err)
	}
	return nil
}

// SaveFile writes the overlay to path via a temp file and an atomic
// rename, so a failed write never leaves a truncated overlay behind.
func (s *Store) SaveFile(path string) error {
	data, err := s.Serialize()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save overlay %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save overlay %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save overlay %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save overlay %s: %w", path, err)
	}
	return nil
}
