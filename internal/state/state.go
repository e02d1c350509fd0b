// Package state reads and writes .devctl-state.yaml, the record of the
// ticket/branch a successful start committed. The file is overwritten
// wholesale on each successful start and never partially written.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	devctlerrors "devctl.dev/devctl/internal/errors"
)

// FileName is the state file name, resolved against the workspace dir
const FileName = ".devctl-state.yaml"

// Record is the persisted sync state
type Record struct {
	Ticket       string  `yaml:"ticket"`
	Branch       string  `yaml:"branch"`
	BaseOverride *string `yaml:"base_override"`
}

// Write persists the record, replacing any previous one. The write goes
// through a temp file and rename so a reader never observes a half-written
// record.
func Write(dir string, rec Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	path := filepath.Join(dir, FileName)
	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// Load reads the state file. A missing file is ErrStateNotFound so the CLI
// can tell the user to run start first; a record without ticket or branch
// is malformed.
func Load(dir string) (*Record, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", path, devctlerrors.ErrStateNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if rec.Ticket == "" || rec.Branch == "" {
		return nil, fmt.Errorf("state file %s is missing 'ticket' or 'branch'; delete it and run 'devctl start' again", path)
	}
	return &rec, nil
}
