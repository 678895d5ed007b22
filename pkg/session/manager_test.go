package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/storybook/pkg/adapters/memory"
	"github.com/fableworks/storybook/pkg/catalog"
	"github.com/fableworks/storybook/pkg/domain"
)

func newManager(t *testing.T) (*Manager, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewManager(store, catalog.Builtin()), store
}

func TestLoadOrStart_SeedsDefaults(t *testing.T) {
	m, _ := newManager(t)

	state, err := m.LoadOrStart(context.Background(), "fresh")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultForm(), state.Form)
	assert.Equal(t, "forest-adventure", state.Order.TemplateID)
	assert.Equal(t, 1, state.Order.Quantity)
	assert.Empty(t, state.Cart)
}

func TestUpdate_PersistsEveryMutation(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()

	_, err := m.Update(ctx, "s1", func(s *domain.SessionState) {
		s.Form.ChildName = "Ava"
		s.Form.Pronouns = "she"
	})
	require.NoError(t, err)

	// Read straight from the store, bypassing the manager.
	persisted, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ava", persisted.Form.ChildName)
	assert.Equal(t, "she", persisted.Form.Pronouns)
}

func TestUpdate_NormalizesInvalidValues(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	state, err := m.Update(ctx, "s1", func(s *domain.SessionState) {
		s.Form.Age = -2
		s.Form.Pronouns = "xe"
		s.Order.Quantity = 0
		s.Order.TemplateID = "no-such-template"
	})
	require.NoError(t, err)

	assert.Equal(t, 0, state.Form.Age)
	assert.Equal(t, "they", state.Form.Pronouns)
	assert.Equal(t, 1, state.Order.Quantity)
	assert.Equal(t, "forest-adventure", state.Order.TemplateID)
}

func TestReset_RestoresDocumentedDefaults(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	_, err := m.Update(ctx, "s1", func(s *domain.SessionState) {
		s.Form.ChildName = "Ava"
		s.Form.IncludePhoto = true
		s.Order.TemplateID = "ocean-of-wishes"
		s.Order.Hardcover = true
		s.Cart = append(s.Cart, domain.CartLine{ID: "x"})
	})
	require.NoError(t, err)

	state, err := m.Reset(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultForm(), state.Form)
	assert.Equal(t, "forest-adventure", state.Order.TemplateID, "reset reselects the first catalog template")
	assert.False(t, state.Order.Hardcover)
	assert.Empty(t, state.Cart)
}

// failingStore simulates a broken storage backend.
type failingStore struct {
	saveErr error
	loadErr error
}

func (f *failingStore) Save(ctx context.Context, id string, s *domain.SessionState) error {
	return f.saveErr
}

func (f *failingStore) Load(ctx context.Context, id string) (*domain.SessionState, error) {
	return nil, f.loadErr
}

func (f *failingStore) Delete(ctx context.Context, id string) error { return nil }

func TestStorageFailuresAreSwallowed(t *testing.T) {
	boom := errors.New("disk on fire")
	m := NewManager(&failingStore{saveErr: boom, loadErr: boom}, catalog.Builtin())
	ctx := context.Background()

	// Read failure falls back to defaults.
	state, err := m.LoadOrStart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultForm(), state.Form)

	// Write failure is dropped; the mutated state is still returned.
	state, err = m.Update(ctx, "s1", func(s *domain.SessionState) {
		s.Form.ChildName = "Ava"
	})
	require.NoError(t, err)
	assert.Equal(t, "Ava", state.Form.ChildName)
}

func TestUpdate_ConcurrentMutationsSerialize(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Update(ctx, "shared", func(s *domain.SessionState) {
				s.Form.Age++
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := m.LoadOrStart(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultForm().Age+20, state.Form.Age)
}

func TestHooks_OnSessionSaved(t *testing.T) {
	store := memory.New()
	var saved []string
	m := NewManager(store, catalog.Builtin(), WithHooks(domain.LifecycleHooks{
		OnSessionSaved: func(_ context.Context, id string) {
			saved = append(saved, id)
		},
	}))

	_, err := m.Update(context.Background(), "hooked", func(s *domain.SessionState) {})
	require.NoError(t, err)
	assert.Equal(t, []string{"hooked"}, saved)
}

func TestClear(t *testing.T) {
	m, store := newManager(t)
	ctx := context.Background()

	_, err := m.Update(ctx, "gone", func(s *domain.SessionState) {})
	require.NoError(t, err)
	require.NoError(t, m.Clear(ctx, "gone"))

	_, err = store.Load(ctx, "gone")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
