package middleware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/storybook/pkg/persistence/middleware"
)

func TestPIIMiddleware_MasksMatchingFields(t *testing.T) {
	backend := newMockStore()
	store := middleware.NewPIIMiddleware([]string{"child_name", "nickname", "photo_ref"})(backend)

	state := sampleState()
	state.Form.Nickname = "Avy"
	state.Order.PhotoRef = "ref-123"

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "s1", state))

	persisted := backend.states["s1"]
	require.NotNil(t, persisted)
	assert.Equal(t, "***", persisted.Form.ChildName)
	assert.Equal(t, "***", persisted.Form.Nickname)
	assert.Equal(t, "***", persisted.Order.PhotoRef)

	// Unmatched fields survive untouched.
	assert.Equal(t, "a clumsy dragon", persisted.Form.Companion)
	assert.Equal(t, 2, persisted.Order.Quantity)

	// The caller's state is never mutated.
	assert.Equal(t, "Ava", state.Form.ChildName)
}

func TestPIIMiddleware_DropsNonStringMatches(t *testing.T) {
	backend := newMockStore()
	store := middleware.NewPIIMiddleware([]string{"^age$"})(backend)

	require.NoError(t, store.Save(context.Background(), "s1", sampleState()))

	persisted := backend.states["s1"]
	require.NotNil(t, persisted)
	assert.Zero(t, persisted.Form.Age)
}

func TestPIIMiddleware_LoadPassesThrough(t *testing.T) {
	backend := newMockStore()
	store := middleware.NewPIIMiddleware([]string{"child_name"})(backend)

	ctx := context.Background()
	require.NoError(t, backend.Save(ctx, "s1", sampleState()))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ava", loaded.Form.ChildName)
}

func TestChain_OrderIsOutermostFirst(t *testing.T) {
	backend := newMockStore()
	store := middleware.Chain(backend,
		middleware.NewPIIMiddleware([]string{"child_name"}),
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)}),
	)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "s1", sampleState()))

	// Encryption ran closest to the backend, so only an envelope lands.
	persisted := backend.states["s1"]
	require.NotNil(t, persisted)
	assert.NotEmpty(t, persisted.Sealed)

	// Loading decrypts, and the name was masked before encryption.
	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "***", loaded.Form.ChildName)
}
