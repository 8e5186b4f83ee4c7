package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailKeyNormalizes(t *testing.T) {
	m := Member{Email: "  Ana.Lucia@Example.ORG "}
	assert.Equal(t, "ana.lucia@example.org", m.EmailKey())
}

func TestEmailKeyEmpty(t *testing.T) {
	m := Member{}
	assert.Equal(t, "", m.EmailKey())
}

func TestHasCollaborator(t *testing.T) {
	p := Project{Collaborators: []Collaborator{{MemberID: "m1"}}}
	assert.True(t, p.HasCollaborator("m1"))
	assert.False(t, p.HasCollaborator("m2"))
}
