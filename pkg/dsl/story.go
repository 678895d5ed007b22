package dsl

import "github.com/fableworks/storybook/pkg/domain"

// StoryBuilder provides a fluent API for configuring a story template.
type StoryBuilder struct {
	template domain.StoryTemplate
}

func newStoryBuilder(id string) *StoryBuilder {
	return &StoryBuilder{
		template: domain.StoryTemplate{ID: id},
	}
}

// Title sets the cover title pattern. Placeholders are allowed.
func (s *StoryBuilder) Title(pattern string) *StoryBuilder {
	s.template.Title = pattern
	return s
}

// Ages sets the recommended age range label, e.g. "4-8".
func (s *StoryBuilder) Ages(ageRange string) *StoryBuilder {
	s.template.AgeRange = ageRange
	return s
}

// Price sets the base price in minor currency units per copy.
func (s *StoryBuilder) Price(minorUnits int64) *StoryBuilder {
	s.template.BasePrice = minorUnits
	return s
}

// Covers defines the selectable cover styles. The first entry is the
// default selection.
func (s *StoryBuilder) Covers(covers ...string) *StoryBuilder {
	s.template.Covers = append(s.template.Covers, covers...)
	return s
}

// Languages defines the selectable book languages.
func (s *StoryBuilder) Languages(languages ...string) *StoryBuilder {
	s.template.Languages = append(s.template.Languages, languages...)
	return s
}

// Page appends a story page with a background style token, a heading and
// a body pattern. Headings and bodies may contain placeholders.
func (s *StoryBuilder) Page(background, heading, body string) *StoryBuilder {
	s.template.Pages = append(s.template.Pages, domain.PageTemplate{
		Background: background,
		Heading:    heading,
		Body:       body,
	})
	return s
}

// Template returns the underlying domain.StoryTemplate.
// This is primarily used by the Builder, but exposed for advanced usage.
func (s *StoryBuilder) Template() domain.StoryTemplate {
	return s.template
}
