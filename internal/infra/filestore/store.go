package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wohnheimsbot/internal/domain"
)

// Data file names inside the data directory. The directory itself comes
// from config (DATA_FILE_DIRECTORY in the container).
const (
	choreDataFile            = "chore_data.json"
	roomAssignmentsFile      = "room_assignments.json"
	registrationRequestsFile = "registration_requests.json"
	rolesFile                = "roles.json"
	shoppingListFile         = "shopping_list.json"
	penaltyLogFile           = "penalty_log.csv"
	lockFile                 = "wohnheimsbot.lock"
)

// Store is the shared access point for the JSON files under the data
// directory. All repositories in this package go through it so in-process
// writers are serialized by one mutex; cross-process writers are serialized
// by the DirLocker.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New ensures the data directory exists and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readJSON decodes the named file into v. A missing file maps to
// domain.ErrNotFound so callers can choose their own default.
func (s *Store) readJSON(name string, v any) error {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", name, domain.ErrNotFound)
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// writeJSON writes v atomically: encode into a temp file in the same
// directory, then rename over the target. Readers never observe a torn
// file.
func (s *Store) writeJSON(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// remove deletes the named file; a file that is already gone is fine.
func (s *Store) remove(name string) error {
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}
