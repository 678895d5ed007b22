// Package middleware provides composable wrappers around a StateStore.
// Session states carry a child's personal details, so stores can be
// hardened with encryption at rest or field redaction without the
// session manager knowing.
package middleware

import "github.com/fableworks/storybook/pkg/ports"

// Middleware allows wrapping a StateStore to add behavior.
type Middleware func(ports.StateStore) ports.StateStore

// Chain applies the middlewares to store in order; the first middleware
// is the outermost wrapper.
func Chain(store ports.StateStore, mws ...Middleware) ports.StateStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
