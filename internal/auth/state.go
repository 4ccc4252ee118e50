package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const stateTTL = 10 * time.Minute

type StateEntry struct {
	CreatedAt   time.Time
	Provider    string
	UserAgent   string
	RedirectURI string
}

// StateManager keeps the one-time OAuth state tokens issued to browsers
type StateManager struct {
	states map[string]StateEntry
	mutex  sync.Mutex
	now    func() time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{
		states: make(map[string]StateEntry),
		now:    time.Now,
	}
}

func (sm *StateManager) Generate(provider, userAgent, redirectURI string) (string, error) {
	logger := slog.With("component", "state_manager", "operation", "generate", "provider", provider)

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		logger.Error("Failed to generate random bytes for state token", "error", err)
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	state := base64.URLEncoding.EncodeToString(b)

	sm.mutex.Lock()
	sm.states[state] = StateEntry{
		CreatedAt:   sm.now(),
		Provider:    provider,
		UserAgent:   userAgent,
		RedirectURI: redirectURI,
	}
	sm.mutex.Unlock()

	logger.Debug("OAuth state token generated")
	return state, nil
}

// Validate consumes state; a token is good exactly once, for the provider it was issued for
func (sm *StateManager) Validate(state, provider, userAgent string) (StateEntry, error) {
	logger := slog.With("component", "state_manager", "operation", "validate", "provider", provider)

	if state == "" {
		return StateEntry{}, fmt.Errorf("state token is required")
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	entry, exists := sm.states[state]
	if !exists {
		logger.Warn("Invalid or expired state token")
		return StateEntry{}, fmt.Errorf("invalid or expired state token")
	}
	delete(sm.states, state)

	if sm.now().Sub(entry.CreatedAt) > stateTTL {
		logger.Warn("Expired state token", "created_at", entry.CreatedAt)
		return StateEntry{}, fmt.Errorf("state token has expired")
	}
	if entry.Provider != provider {
		logger.Warn("State token provider mismatch",
			"expected_provider", entry.Provider,
			"received_provider", provider)
		return StateEntry{}, fmt.Errorf("state token provider mismatch")
	}
	if entry.UserAgent != userAgent {
		logger.Warn("State token user agent mismatch")
	}

	return entry, nil
}

// Cleanup drops expired tokens and returns how many were removed
func (sm *StateManager) Cleanup() int {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	now := sm.now()
	expired := 0
	for state, entry := range sm.states {
		if now.Sub(entry.CreatedAt) > stateTTL {
			delete(sm.states, state)
			expired++
		}
	}
	return expired
}

// RunCleanup sweeps expired tokens every interval until done is closed
func (sm *StateManager) RunCleanup(interval time.Duration, done <-chan struct{}) {
	logger := slog.With("component", "state_manager", "operation", "cleanup")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if n := sm.Cleanup(); n > 0 {
				logger.Debug("Cleaned up expired state tokens", "expired_count", n)
			}
		}
	}
}
