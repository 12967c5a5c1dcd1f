package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sessionFile persists the opaque session secret between CLI invocations,
// the way the mobile SDK persists its session cookie. The secret is the only
// thing stored; it is never inspected.
type sessionFile struct {
	path string
}

func (s sessionFile) load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read session file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s sessionFile) save(secret string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(secret+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s sessionFile) clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
