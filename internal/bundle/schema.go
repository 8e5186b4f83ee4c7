// Package bundle defines the project interchange file: a self-contained
// export of one project plus everything it transitively references, and the
// merge engine that folds such a bundle into an existing workspace with
// fresh identifiers.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nadiaferrer/tessera/internal/domain"
)

// TypeProjectExport is the envelope type tag for project export files.
const TypeProjectExport = "TESSERA_PROJECT_EXPORT"

// Envelope is the top-level JSON structure of a project export file.
type Envelope struct {
	Type       string    `json:"type"`
	AppVersion string    `json:"app_version"`
	ExportDate time.Time `json:"export_date"`
	Data       Bundle    `json:"data"`
}

// Bundle is one project and its transitive closure.
type Bundle struct {
	Project        domain.Project         `json:"project"`
	Tasks          []domain.Task          `json:"tasks"`
	Activities     []domain.Activity      `json:"activities"`
	DirectExpenses []domain.DirectExpense `json:"direct_expenses"`
	Members        []domain.Member        `json:"members"`
}

// NewEnvelope wraps a bundle with the current type and version tags.
func NewEnvelope(b Bundle, appVersion string) Envelope {
	return Envelope{
		Type:       TypeProjectExport,
		AppVersion: appVersion,
		ExportDate: time.Now().UTC(),
		Data:       b,
	}
}

// LoadEnvelope reads and parses a project export file. Parsing only; call
// ValidateEnvelope before touching the data.
func LoadEnvelope(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing export file: %w", err)
	}
	return &env, nil
}

// WriteEnvelope serializes an envelope to the given path.
func WriteEnvelope(path string, env Envelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}
