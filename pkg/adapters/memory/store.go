// Package memory provides an in-memory StateStore, mainly for tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fableworks/storybook/pkg/domain"
)

// Store implements ports.StateStore in process memory. Safe for concurrent
// use. State is copied on Save and Load so callers never share pointers
// through the store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{sessions: make(map[string][]byte)}
}

// Save stores a deep copy of the state.
func (s *Store) Save(ctx context.Context, sessionID string, state *domain.SessionState) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = data
	return nil
}

// Load returns a copy of the stored state.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	s.mu.RLock()
	data, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	var state domain.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return &state, nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
