package ports

import (
	"context"

	"github.com/fableworks/storybook/pkg/domain"
)

// StateStore defines the interface for persisting session state.
// Sessions survive process restarts, so a user returning later finds the
// form exactly as they left it.
type StateStore interface {
	// Save persists the state for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.SessionState) error

	// Load retrieves the state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.SessionState, error)

	// Delete removes the state for a given session ID.
	Delete(ctx context.Context, sessionID string) error
}
