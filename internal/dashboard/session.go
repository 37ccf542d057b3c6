// Package dashboard holds the view state of the admin console: the order
// workflow, the product form and catalog, the user directory, and the
// session. Each view owns its fetched list and edit draft exclusively;
// nothing is shared across views.
package dashboard

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Session is the explicit session-state value: authenticated means a token
// is held. It is re-derived at boot by reading the persisted token file.
type Session struct {
	path  string
	token string
}

func LoadSession(path string) *Session {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// DefaultSessionPath is where the token persists between invocations.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "slugma-admin", "token"), nil
}

func (s *Session) Authenticated() bool {
	return s.token != ""
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return err
	}
	s.token = token
	return nil
}

func (s *Session) Clear() error {
	s.token = ""
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
