package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileService(t *testing.T) {
	p := NewProfileService()

	_, ok := p.Email()
	assert.False(t, ok, "fresh profile has no email")

	p.SetEmail("  user@example.com ")
	email, ok := p.Email()
	assert.True(t, ok)
	assert.Equal(t, "user@example.com", email, "email should be trimmed")

	p.SetEmail("other@example.com")
	email, _ = p.Email()
	assert.Equal(t, "other@example.com", email, "later onboarding overwrites")
}
