package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/storybook/pkg/domain"
	"github.com/fableworks/storybook/pkg/ports/tests"
)

func TestStore_Contract(t *testing.T) {
	tests.StateStoreContractTest(t, New(t.TempDir()))
}

func TestStore_CorruptFileFallsBackToNotFound(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))

	_, err := store.Load(context.Background(), "bad")
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound), "corrupt data should read as not found, got %v", err)
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "one", domain.NewSessionState("forest-adventure")))
	require.NoError(t, store.Save(ctx, "two", domain.NewSessionState("forest-adventure")))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, ids)
}

func TestNew_DefaultPath(t *testing.T) {
	store := New("")
	assert.Equal(t, filepath.Join(".storybook", "sessions"), store.BasePath)
}
