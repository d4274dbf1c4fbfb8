// Package profile holds the shared install profile that screens write their
// selections into. One instance exists per installer session and is passed by
// reference to every screen.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Profile is the mutable configuration document assembled over the course of
// an install. Each screen owns one section and must only write to that
// section during Apply.
type Profile struct {
	SessionID string        `toml:"session_id"`
	Language  LanguageSpec  `toml:"language"`
	Keyboard  KeyboardSpec  `toml:"keyboard"`
	Storage   StorageSpec   `toml:"storage"`
	Software  SoftwareSpec  `toml:"software"`
	User      UserSpec      `toml:"user"`
}

type LanguageSpec struct {
	Locale string `toml:"locale"`
}

type KeyboardSpec struct {
	Layout  string `toml:"layout"`
	Variant string `toml:"variant,omitempty"`
}

type StorageSpec struct {
	Device string `toml:"device"`
	Scheme string `toml:"scheme"`
}

type SoftwareSpec struct {
	Environment string   `toml:"environment"`
	Groups      []string `toml:"groups,omitempty"`
}

type UserSpec struct {
	Name     string `toml:"name"`
	FullName string `toml:"full_name,omitempty"`
	Admin    bool   `toml:"admin"`
}

// New returns an empty profile with a fresh session id.
func New() *Profile {
	return &Profile{SessionID: uuid.NewString()}
}

// Save writes the profile manifest as TOML.
func (p *Profile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("profile dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("profile create: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("profile encode: %w", err)
	}
	return nil
}

// Load reads a previously saved manifest. Missing file is not an error; an
// empty profile with a new session id is returned instead.
func Load(path string) (*Profile, error) {
	p := New()
	if _, err := toml.DecodeFile(path, p); err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("profile decode: %w", err)
	}
	return p, nil
}
