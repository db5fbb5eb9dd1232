package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"namesong/internal/digest"
)

// Metadata describes a serialized trace.
type Metadata struct {
	TraceID           string    `json:"trace_id"`
	Name              string    `json:"name"`
	TotalInstructions int       `json:"total_instructions"`
	Truncated         bool      `json:"truncated"`
	Fingerprint       uint32    `json:"fingerprint"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// File is the on-disk trace envelope consumed by the music converter and
// the audio front end.
type File struct {
	Metadata     Metadata      `json:"metadata"`
	Instructions []Instruction `json:"instructions"`
}

// Envelope packages the trace for serialization, assigning a fresh trace ID.
func (t *Trace) Envelope() File {
	return File{
		Metadata: Metadata{
			TraceID:           uuid.NewString(),
			Name:              t.Name,
			TotalInstructions: len(t.Instructions),
			Truncated:         t.Truncated,
			Fingerprint:       t.Report.Result,
			GeneratedAt:       time.Now().UTC(),
		},
		Instructions: t.Instructions,
	}
}

// Write encodes the trace envelope as indented JSON.
func (t *Trace) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t.Envelope()); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return nil
}

// WriteFile writes the trace envelope to path, creating parent directories
// as needed.
func (t *Trace) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create trace directory %q: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()
	if err := t.Write(file); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close trace file: %w", err)
	}
	return nil
}

// ReadFile loads a trace envelope from path and reconstructs the trace. The
// digest report is recomputed from the stored name, which holds by the
// determinism contract.
func ReadFile(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace file: %w", err)
	}
	var envelope File
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parse trace file %s: %w", path, err)
	}
	return &Trace{
		Name:         envelope.Metadata.Name,
		Report:       digest.Sum(envelope.Metadata.Name),
		Instructions: envelope.Instructions,
		Truncated:    envelope.Metadata.Truncated,
	}, nil
}
