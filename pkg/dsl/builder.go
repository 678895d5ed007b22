package dsl

import (
	"github.com/fableworks/storybook/pkg/catalog"
	"github.com/fableworks/storybook/pkg/domain"
)

// Builder manages the catalog construction.
type Builder struct {
	order   []string
	stories map[string]*StoryBuilder
}

// New creates a new catalog builder.
func New() *Builder {
	return &Builder{
		stories: make(map[string]*StoryBuilder),
	}
}

// Story creates a new template in the catalog.
// If the template already exists, it returns the existing builder.
func (b *Builder) Story(id string) *StoryBuilder {
	if sb, ok := b.stories[id]; ok {
		return sb
	}
	sb := newStoryBuilder(id)
	b.stories[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build compiles the templates, in declaration order, into a validated
// catalog.
func (b *Builder) Build() (*catalog.Catalog, error) {
	templates := make([]domain.StoryTemplate, 0, len(b.order))
	for _, id := range b.order {
		templates = append(templates, b.stories[id].Template())
	}
	return catalog.New(templates...)
}
