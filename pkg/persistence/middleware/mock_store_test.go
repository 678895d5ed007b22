package middleware_test

import (
	"context"
	"fmt"

	"github.com/fableworks/storybook/pkg/domain"
)

// mockStore records what actually reaches the backend, so tests can
// assert on the persisted representation.
type mockStore struct {
	states map[string]*domain.SessionState
}

func newMockStore() *mockStore {
	return &mockStore{states: make(map[string]*domain.SessionState)}
}

func (s *mockStore) Save(ctx context.Context, sessionID string, state *domain.SessionState) error {
	s.states[sessionID] = state
	return nil
}

func (s *mockStore) Load(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	state, ok := s.states[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, sessionID)
	}
	return state, nil
}

func (s *mockStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.states, sessionID)
	return nil
}
