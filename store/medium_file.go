//go:build !js

package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	appDirName    = "pomotide"
	prefsFileName = "preferences.yaml"
)

// FileMedium keeps the document in the user's config directory. Used
// by native builds and tooling; the browser build uses LocalMedium.
type FileMedium struct {
	path string
}

func NewFileMedium() (*FileMedium, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve config dir")
	}
	return &FileMedium{path: filepath.Join(base, appDirName, prefsFileName)}, nil
}

func (m *FileMedium) Read() ([]byte, error) {
	return os.ReadFile(m.path)
}

func (m *FileMedium) Write(raw []byte) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	return os.WriteFile(m.path, raw, 0o644)
}
