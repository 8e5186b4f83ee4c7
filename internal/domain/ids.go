package domain

import "github.com/google/uuid"

// NewID mints a fresh opaque identifier. All entity and budget-item ids in a
// workspace come from here; nothing else may invent identifiers.
func NewID() string {
	return uuid.New().String()
}
