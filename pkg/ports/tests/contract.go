// Package tests provides reusable contract suites for port implementations.
package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/fableworks/storybook/pkg/domain"
	"github.com/fableworks/storybook/pkg/ports"
)

// StateStoreContractTest is a reusable test suite that verifies an adapter
// complies with ports.StateStore semantics.
func StateStoreContractTest(t *testing.T, store ports.StateStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "contract-missing")
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Save_Load_RoundTrip", func(t *testing.T) {
		state := domain.NewSessionState("forest-adventure")
		state.Form.ChildName = "Ava"
		state.Form.Pronouns = "she"
		state.Order.Quantity = 2
		state.Order.Hardcover = true

		if err := store.Save(ctx, "contract-roundtrip", state); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "contract-roundtrip")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.Form.ChildName != "Ava" {
			t.Errorf("child name mismatch: got %q", loaded.Form.ChildName)
		}
		if loaded.Order.Quantity != 2 || !loaded.Order.Hardcover {
			t.Errorf("order mismatch: %+v", loaded.Order)
		}
		if loaded.Order.TemplateID != "forest-adventure" {
			t.Errorf("template mismatch: %q", loaded.Order.TemplateID)
		}
	})

	t.Run("Save_Overwrites", func(t *testing.T) {
		state := domain.NewSessionState("forest-adventure")
		state.Form.ChildName = "First"
		if err := store.Save(ctx, "contract-overwrite", state); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		state.Form.ChildName = "Second"
		if err := store.Save(ctx, "contract-overwrite", state); err != nil {
			t.Fatalf("second save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "contract-overwrite")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.Form.ChildName != "Second" {
			t.Errorf("expected overwrite, got %q", loaded.Form.ChildName)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		state := domain.NewSessionState("forest-adventure")
		if err := store.Save(ctx, "contract-delete", state); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if err := store.Delete(ctx, "contract-delete"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := store.Load(ctx, "contract-delete"); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
		}
	})

	t.Run("Delete_Missing_IsNoop", func(t *testing.T) {
		if err := store.Delete(ctx, "contract-never-existed"); err != nil {
			t.Errorf("deleting a missing session should not fail, got %v", err)
		}
	})
}
