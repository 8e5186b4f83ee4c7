// Package backup implements whole-workspace export and restore. Restore is
// the only fully destructive operation in the system: on success it replaces
// every collection, on any validation failure it changes nothing.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nadiaferrer/tessera/internal/store"
)

// TypeWorkspaceBackup is the envelope type tag for workspace backup files.
const TypeWorkspaceBackup = "TESSERA_WORKSPACE_BACKUP"

// ErrInvalidBackup wraps every envelope validation failure.
var ErrInvalidBackup = errors.New("invalid backup file")

// Envelope is the top-level JSON structure of a workspace backup file.
type Envelope struct {
	Type       string         `json:"type"`
	AppVersion string         `json:"app_version"`
	ExportDate time.Time      `json:"export_date"`
	Data       store.Snapshot `json:"data"`
}

// Export wraps a snapshot with the current type and version tags.
func Export(snap store.Snapshot, appVersion string) Envelope {
	return Envelope{
		Type:       TypeWorkspaceBackup,
		AppVersion: appVersion,
		ExportDate: time.Now().UTC(),
		Data:       snap,
	}
}

// WriteFile serializes an envelope to disk.
func WriteFile(path string, env Envelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

// ReadFile parses a backup file and validates its tags against the running
// version. Both tags must match exactly; every mismatching field is named in
// the error. On any failure the caller's state must remain untouched.
func ReadFile(path string, appVersion string) (store.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return store.Snapshot{}, err
	}
	return Decode(data, appVersion)
}

// Decode parses and validates backup bytes.
func Decode(data []byte, appVersion string) (store.Snapshot, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return store.Snapshot{}, fmt.Errorf("%w: parsing: %v", ErrInvalidBackup, err)
	}

	var mismatches []string
	if env.Type != TypeWorkspaceBackup {
		mismatches = append(mismatches, fmt.Sprintf("type: got %q, want %q", env.Type, TypeWorkspaceBackup))
	}
	if env.AppVersion != appVersion {
		mismatches = append(mismatches, fmt.Sprintf("app_version: got %q, want %q", env.AppVersion, appVersion))
	}
	if len(mismatches) > 0 {
		return store.Snapshot{}, fmt.Errorf("%w: %s", ErrInvalidBackup, strings.Join(mismatches, "; "))
	}

	return env.Data, nil
}
