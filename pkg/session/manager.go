package session

import (
	"context"
	"errors"
	"sync"

	"log/slog"

	"github.com/fableworks/storybook/internal/logging"
	"github.com/fableworks/storybook/pkg/catalog"
	"github.com/fableworks/storybook/pkg/domain"
	"github.com/fableworks/storybook/pkg/ports"
	"github.com/fableworks/storybook/pkg/pricing"
	"github.com/fableworks/storybook/pkg/pronouns"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent operations.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	store   ports.StateStore
	catalog *catalog.Catalog

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithHooks registers lifecycle hooks; OnSessionSaved fires after every
// successful persist.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Manager) {
		m.hooks = hooks
	}
}

// NewManager creates a Session Manager backed by the given store. The
// catalog provides the default template selection for new and reset
// sessions.
func NewManager(store ports.StateStore, cat *catalog.Catalog, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		catalog: cat,
		locks:   make(map[string]*lockEntry),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// withLock executes fn while holding the lock for the session.
func (m *Manager) withLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	return fn(ctx)
}

// LoadOrStart retrieves the session, seeding a fresh one from defaults when
// the session is missing or its stored state cannot be read. Read failures
// are never surfaced; the user simply starts over from the seed values.
func (m *Manager) LoadOrStart(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	var state *domain.SessionState
	err := m.withLock(ctx, sessionID, func(ctx context.Context) error {
		state = m.loadLocked(ctx, sessionID)
		return nil
	})
	return state, err
}

// loadLocked reads the session or falls back to defaults. Caller holds the lock.
func (m *Manager) loadLocked(ctx context.Context, sessionID string) *domain.SessionState {
	state, err := m.store.Load(ctx, sessionID)
	if err == nil {
		m.normalize(state)
		return state
	}

	if !errors.Is(err, domain.ErrSessionNotFound) {
		m.logger.Warn("session read failed, falling back to defaults",
			"session_id", sessionID,
			"err", err,
		)
	}
	return domain.NewSessionState(m.catalog.First().ID)
}

// Update is the single mutation entry point. It loads the current state,
// applies fn, normalizes the result, and persists it. A write failure is
// logged and dropped; the in-memory state is still returned so the preview
// stays consistent with what the user entered.
func (m *Manager) Update(ctx context.Context, sessionID string, fn func(*domain.SessionState)) (*domain.SessionState, error) {
	var state *domain.SessionState
	err := m.withLock(ctx, sessionID, func(ctx context.Context) error {
		state = m.loadLocked(ctx, sessionID)
		fn(state)
		m.normalize(state)
		m.saveLocked(ctx, sessionID, state)
		return nil
	})
	return state, err
}

// Reset atomically restores every field to its seed value and reselects the
// first catalog template. The mock cart is emptied as well.
func (m *Manager) Reset(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	var state *domain.SessionState
	err := m.withLock(ctx, sessionID, func(ctx context.Context) error {
		state = domain.NewSessionState(m.catalog.First().ID)
		m.saveLocked(ctx, sessionID, state)
		return nil
	})
	return state, err
}

// Clear destroys the session entirely.
func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	return m.withLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// Store returns the underlying state store.
func (m *Manager) Store() ports.StateStore {
	return m.store
}

// saveLocked persists the state, swallowing write failures. Caller holds the lock.
func (m *Manager) saveLocked(ctx context.Context, sessionID string, state *domain.SessionState) {
	if err := m.store.Save(ctx, sessionID, state); err != nil {
		m.logger.Warn("session write failed, dropping update",
			"session_id", sessionID,
			"err", err,
		)
		return
	}
	if m.hooks.OnSessionSaved != nil {
		m.hooks.OnSessionSaved(ctx, sessionID)
	}
}

// normalize coerces invalid field values to their nearest valid form
// instead of rejecting them.
func (m *Manager) normalize(state *domain.SessionState) {
	if state.Form.Age < 0 {
		state.Form.Age = 0
	}
	if !pronouns.Valid(pronouns.Category(state.Form.Pronouns)) {
		state.Form.Pronouns = string(pronouns.Neutral)
	}

	state.Order.Quantity = pricing.ClampQuantity(state.Order.Quantity)

	if _, err := m.catalog.Get(state.Order.TemplateID); err != nil {
		state.Order.TemplateID = m.catalog.First().ID
	}
}
