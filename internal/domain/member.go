package domain

import (
	"strings"
	"time"
)

// Member is a person who collaborates on projects and logs time.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmailKey returns the normalized form of the member's email used for
// deduplication during bundle merge. Matching is case-insensitive.
func (m *Member) EmailKey() string {
	return strings.ToLower(strings.TrimSpace(m.Email))
}
