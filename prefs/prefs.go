// Package prefs loads and saves the board's persisted preferences.
// The only preference today is the theme.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prefs is the on-disk document.
type Prefs struct {
	Theme string `yaml:"theme,omitempty"`
}

// DefaultPath returns ~/.jobboard/prefs.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".jobboard", "prefs.yaml")
	}
	return filepath.Join(home, ".jobboard", "prefs.yaml")
}

// Load reads preferences from filePath. A missing file yields zero Prefs.
func Load(filePath string) (Prefs, error) {
	f, err := os.Open(expand(filePath))
	if err != nil {
		if os.IsNotExist(err) {
			return Prefs{}, nil
		}
		return Prefs{}, fmt.Errorf("failed to open prefs file '%s': %w", filePath, err)
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (Prefs, error) {
	var p Prefs
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Prefs{}, nil // empty file
		}
		return Prefs{}, fmt.Errorf("decoding prefs: %w", err)
	}
	return p, nil
}

// Save writes p to filePath, creating its directory if needed.
func Save(p Prefs, filePath string) error {
	if filePath == "" {
		return errors.New("prefs save path cannot be empty")
	}
	filePath = expand(filePath)
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create prefs directory '%s': %w", dir, err)
	}

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open prefs file '%s' for writing: %w", filePath, err)
	}
	defer f.Close()
	return encode(p, f)
}

func encode(p Prefs, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("writing prefs: %w", err)
	}
	return enc.Close()
}

// expand resolves a leading "~/".
func expand(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
