package middleware

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/fableworks/storybook/pkg/domain"
	"github.com/fableworks/storybook/pkg/ports"
)

type piiMiddleware struct {
	next     ports.StateStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks values of JSON fields
// whose keys match the patterns before the state is persisted. Masking
// is intentionally lossy: a store under a strict data policy keeps the
// session shape but never the child's details.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.StateStore) ports.StateStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, sessionID string, state *domain.SessionState) error {
	// Work on a JSON tree so the in-memory state used by the session
	// manager is never touched.
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return err
	}

	maskMap(tree, m.patterns)

	masked, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	var cloned domain.SessionState
	if err := json.Unmarshal(masked, &cloned); err != nil {
		return err
	}
	return m.next.Save(ctx, sessionID, &cloned)
}

func (m *piiMiddleware) Load(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	return m.next.Load(ctx, sessionID)
}

func (m *piiMiddleware) Delete(ctx context.Context, sessionID string) error {
	return m.next.Delete(ctx, sessionID)
}

// Helpers

func maskMap(m map[string]any, patterns []*regexp.Regexp) {
	for k, v := range m {
		for _, p := range patterns {
			if !p.MatchString(k) {
				continue
			}
			// Strings are masked in place; other types are dropped so
			// they decode back to their zero value.
			if _, ok := v.(string); ok {
				m[k] = "***"
			} else {
				delete(m, k)
			}
			break
		}

		if subMap, ok := m[k].(map[string]any); ok {
			maskMap(subMap, patterns)
		}
	}
}
