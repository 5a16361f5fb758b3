package service

import (
	"strings"
	"sync"
)

// ProfileService holds the single-user contact profile captured during
// onboarding. In-memory only; the demo keeps no account records.
type ProfileService struct {
	mu    sync.RWMutex
	email string
}

// NewProfileService creates an empty profile.
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// SetEmail records the onboarding contact email.
func (p *ProfileService) SetEmail(email string) {
	p.mu.Lock()
	p.email = strings.TrimSpace(email)
	p.mu.Unlock()
}

// Email returns the recorded email and whether one has been set.
func (p *ProfileService) Email() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.email, p.email != ""
}
