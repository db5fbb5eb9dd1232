package music

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write encodes the score as indented musical_data JSON.
func (s *Score) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode score: %w", err)
	}
	return nil
}

// WriteFile writes the score to path, creating parent directories as needed.
func (s *Score) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create score directory %q: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create score file: %w", err)
	}
	defer file.Close()
	if err := s.Write(file); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close score file: %w", err)
	}
	return nil
}

// ReadFile loads a serialized score. The audio front end is the primary
// consumer of these files; this reader exists for the runs and show
// tooling.
func ReadFile(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read score file: %w", err)
	}
	var score Score
	if err := json.Unmarshal(data, &score); err != nil {
		return nil, fmt.Errorf("parse score file %s: %w", path, err)
	}
	return &score, nil
}
