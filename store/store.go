package store

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Medium is the byte-level backing for the preferences document:
// localStorage in the browser, a config-dir file elsewhere. Read
// returns os.ErrNotExist when nothing was ever saved.
type Medium interface {
	Read() ([]byte, error)
	Write(raw []byte) error
}

// Store loads and saves the preferences document over a Medium.
type Store struct {
	medium Medium
}

func NewStore(m Medium) *Store {
	return &Store{medium: m}
}

// Load reads, migrates, and sanitizes the stored preferences. A
// missing document yields defaults silently; a corrupt one yields
// defaults with a warning rather than an error, so the app always
// starts.
func (s *Store) Load() (Preferences, error) {
	raw, err := s.medium.Read()
	if errors.Is(err, os.ErrNotExist) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return DefaultPreferences(), errors.Wrap(err, "read preferences")
	}
	p, err := decodePrefs(raw)
	if err != nil {
		log.Warn().Err(err).Msg("discarding unreadable preferences")
		return DefaultPreferences(), nil
	}
	return Sanitize(p), nil
}

// Save sanitizes and writes the current-version document.
func (s *Store) Save(p Preferences) error {
	raw, err := encodePrefs(Sanitize(p))
	if err != nil {
		return err
	}
	return errors.Wrap(s.medium.Write(raw), "write preferences")
}
