package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ferrule/pomotide/timer"
)

// ErrPresetNotFound reports a lookup or delete against an unknown ID.
var ErrPresetNotFound = errors.New("preset not found")

// Preset is a named timer configuration the user can recall later.
type Preset struct {
	ID     string
	Name   string
	Config timer.Config
}

// AddPreset appends a named snapshot of cfg to p and persists. The
// generated ID is returned for immediate selection in the UI.
func (s *Store) AddPreset(p *Preferences, name string, cfg timer.Config) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, errors.New("preset name is empty")
	}
	preset := Preset{
		ID:     uuid.NewString(),
		Name:   name,
		Config: sanitizeConfig(cfg),
	}
	p.Presets = append(p.Presets, preset)
	if err := s.Save(*p); err != nil {
		return Preset{}, err
	}
	return preset, nil
}

// RenamePreset changes a preset's display name and persists.
func (s *Store) RenamePreset(p *Preferences, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("preset name is empty")
	}
	for i := range p.Presets {
		if p.Presets[i].ID == id {
			p.Presets[i].Name = name
			return s.Save(*p)
		}
	}
	return errors.Wrap(ErrPresetNotFound, id)
}

// DeletePreset removes a preset by ID and persists.
func (s *Store) DeletePreset(p *Preferences, id string) error {
	for i := range p.Presets {
		if p.Presets[i].ID == id {
			p.Presets = append(p.Presets[:i], p.Presets[i+1:]...)
			return s.Save(*p)
		}
	}
	return errors.Wrap(ErrPresetNotFound, id)
}

// FindPreset looks a preset up by ID.
func FindPreset(p Preferences, id string) (Preset, bool) {
	for _, preset := range p.Presets {
		if preset.ID == id {
			return preset, true
		}
	}
	return Preset{}, false
}
