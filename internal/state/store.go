// Package state persists the rotation position to a local JSON file so
// restarts resume where the previous run left off.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// positionRecord is the whole persisted document. No other keys are
// recognized or preserved.
type positionRecord struct {
	CurrentIndex int `json:"current_index"`
}

type Store struct {
	path string
	log  zerolog.Logger
}

func New(path string, log zerolog.Logger) *Store {
	return &Store{
		path: path,
		log:  log.With().Str("component", "position-store").Logger(),
	}
}

// Load reads the persisted position. A missing file is created with position
// 0; an unreadable or corrupt file falls back to 0 with a warning. Load never
// fails the caller.
func (s *Store) Load() int {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if saveErr := s.Save(0); saveErr != nil {
			s.log.Error().Err(saveErr).Str("file", s.path).Msg("failed to initialize state file")
		}
		return 0
	}
	if err != nil {
		s.log.Warn().Err(err).Str("file", s.path).Msg("failed to read state file, starting from zero")
		return 0
	}

	var rec positionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		s.log.Warn().Err(err).Str("file", s.path).Msg("state file is corrupt, starting from zero")
		return 0
	}
	if rec.CurrentIndex < 0 {
		s.log.Warn().Int("current_index", rec.CurrentIndex).Str("file", s.path).Msg("negative position in state file, starting from zero")
		return 0
	}

	s.log.Info().Int("current_index", rec.CurrentIndex).Msg("state loaded")
	return rec.CurrentIndex
}

// Save overwrites the state file with the given position.
func (s *Store) Save(position int) error {
	data, err := json.Marshal(positionRecord{CurrentIndex: position})
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}

	s.log.Info().Int("current_index", position).Msg("state saved")
	return nil
}
