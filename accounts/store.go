package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrAuth covers both unknown users and wrong passwords, so a failed
	// login can fall through to registration without leaking which part
	// failed.
	ErrAuth = errors.New("authentication failed")

	// ErrNameTaken rejects renames onto an existing account.
	ErrNameTaken = errors.New("username already taken")

	// ErrInvalidRecord rejects records with empty credentials or a
	// non-positive balance.
	ErrInvalidRecord = errors.New("invalid account record")
)

// Record is the flat account document persisted per user.
type Record struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Balance  float64 `json:"balance"`
}

// Store keeps one JSON file per account under a single directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store { return &Store{dir: dir} }

func (s *Store) path(username string) string {
	return filepath.Join(s.dir, username+".json")
}

// Load reads and authenticates an account.
func (s *Store) Load(username, password string) (Record, error) {
	data, err := os.ReadFile(s.path(username))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, fmt.Errorf("no saved data for %q: %w", username, ErrAuth)
		}
		return Record{}, fmt.Errorf("read account %q: %w", username, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode account %q: %w", username, err)
	}
	if rec.Password != password {
		return Record{}, fmt.Errorf("wrong password for %q: %w", username, ErrAuth)
	}
	return rec, nil
}

// Save writes the record, creating the store directory on demand. The write
// goes through a temp file so a failure never leaves a half-written account.
func (s *Store) Save(rec Record) error {
	if rec.Username == "" || rec.Password == "" || rec.Balance <= 0 {
		return ErrInvalidRecord
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("encode account %q: %w", rec.Username, err)
	}
	tmp := s.path(rec.Username) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write account %q: %w", rec.Username, err)
	}
	if err := os.Rename(tmp, s.path(rec.Username)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit account %q: %w", rec.Username, err)
	}
	return nil
}

// Delete removes an account file, reporting whether it existed.
func (s *Store) Delete(username string) (bool, error) {
	err := os.Remove(s.path(username))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete account %q: %w", username, err)
	}
	return true, nil
}

// Exists reports whether an account file is present for the username.
func (s *Store) Exists(username string) bool {
	_, err := os.Stat(s.path(username))
	return err == nil
}

// Rename moves an account to a new username. The original record stays in
// place unless the renamed one was fully written.
func (s *Store) Rename(oldName, newName string) error {
	if newName == "" {
		return ErrInvalidRecord
	}
	if s.Exists(newName) {
		return ErrNameTaken
	}
	data, err := os.ReadFile(s.path(oldName))
	if err != nil {
		return fmt.Errorf("read account %q: %w", oldName, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode account %q: %w", oldName, err)
	}
	rec.Username = newName
	if err := s.Save(rec); err != nil {
		return err
	}
	if err := os.Remove(s.path(oldName)); err != nil {
		os.Remove(s.path(newName))
		return fmt.Errorf("remove old account %q: %w", oldName, err)
	}
	return nil
}
