package middleware_test

import (
	"context"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/storybook/pkg/domain"
	"github.com/fableworks/storybook/pkg/persistence/middleware"
)

func generateKey(t *testing.T) []byte {
	t.Helper()
	k := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, k); err != nil {
		t.Fatal(err)
	}
	return k
}

func sampleState() *domain.SessionState {
	state := domain.NewSessionState("forest-adventure")
	state.Form.ChildName = "Ava"
	state.Form.Companion = "a clumsy dragon"
	state.Order.Quantity = 2
	return state
}

func TestEncryptionMiddleware_RoundTrip(t *testing.T) {
	backend := newMockStore()
	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: generateKey(t),
	})(backend)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "s1", sampleState()))

	// The backend must only ever see the sealed envelope.
	persisted := backend.states["s1"]
	require.NotNil(t, persisted)
	assert.NotEmpty(t, persisted.Sealed)
	assert.Empty(t, persisted.Form.ChildName)
	assert.Zero(t, persisted.Order.Quantity)

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ava", loaded.Form.ChildName)
	assert.Equal(t, 2, loaded.Order.Quantity)
	assert.Empty(t, loaded.Sealed)
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	oldKey := generateKey(t)
	newKey := generateKey(t)
	backend := newMockStore()
	ctx := context.Background()

	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: oldKey})(backend)
	require.NoError(t, oldStore.Save(ctx, "s1", sampleState()))

	// A store rotated to a new active key still reads old envelopes.
	rotated := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})(backend)

	loaded, err := rotated.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ava", loaded.Form.ChildName)

	// Without the fallback the envelope is unreadable.
	strict := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: newKey})(backend)
	_, err = strict.Load(ctx, "s1")
	assert.Error(t, err)
}

func TestEncryptionMiddleware_RejectsPlainState(t *testing.T) {
	backend := newMockStore()
	require.NoError(t, backend.Save(context.Background(), "plain", sampleState()))

	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: generateKey(t),
	})(backend)

	_, err := store.Load(context.Background(), "plain")
	assert.Error(t, err)
}

func TestEncryptionMiddleware_ShortKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short")})
	})
}
