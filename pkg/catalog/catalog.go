// Package catalog holds the static story template catalog.
//
// Templates are declarative data, validated against the StoryTemplate schema
// on load, so new stories can be added without touching rendering logic. The
// catalog is immutable after construction. Besides the built-in set, a
// catalog can be loaded from YAML files or from a directory of markdown
// documents (see the loam adapter under pkg/adapters).
package catalog

import (
	"fmt"

	"github.com/fableworks/storybook/pkg/domain"
)

// Catalog is an immutable, ordered collection of story templates.
type Catalog struct {
	templates []domain.StoryTemplate
	byID      map[string]int
}

// New builds a catalog from the given templates, validating each one.
// Duplicate IDs are a validation failure.
func New(templates ...domain.StoryTemplate) (*Catalog, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("catalog requires at least one template")
	}

	var errs []error
	byID := make(map[string]int, len(templates))
	for i, t := range templates {
		if err := Validate(t); err != nil {
			if nested := ValidationErrors(err); nested != nil {
				errs = append(errs, nested...)
			} else {
				errs = append(errs, err)
			}
			continue
		}
		if _, dup := byID[t.ID]; dup {
			errs = append(errs, &ValidationError{TemplateID: t.ID, Field: "id", Reason: "duplicate template ID"})
			continue
		}
		byID[t.ID] = i
	}
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}

	return &Catalog{templates: templates, byID: byID}, nil
}

// MustNew is New for static catalogs; it panics on validation failure.
func MustNew(templates ...domain.StoryTemplate) *Catalog {
	c, err := New(templates...)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return c
}

// All returns the templates in catalog order. The returned slice is a copy.
func (c *Catalog) All() []domain.StoryTemplate {
	out := make([]domain.StoryTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// Get returns the template with the given ID, or domain.ErrTemplateNotFound.
func (c *Catalog) Get(id string) (domain.StoryTemplate, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.StoryTemplate{}, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, id)
	}
	return c.templates[i], nil
}

// First returns the first template in catalog order. It is the template a
// fresh or fully reset session selects.
func (c *Catalog) First() domain.StoryTemplate {
	return c.templates[0]
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
