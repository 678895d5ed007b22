package catalog

import (
	"fmt"

	"github.com/fableworks/storybook/internal/render"
	"github.com/fableworks/storybook/pkg/domain"
)

var knownFields = func() map[string]bool {
	m := make(map[string]bool)
	for _, k := range domain.ContextKeys() {
		m[k] = true
	}
	return m
}()

// Validate checks a single template against the catalog schema: required
// fields present, option sets non-empty and unique, at least one page, and
// every pattern referencing only known placeholder identifiers.
func Validate(t domain.StoryTemplate) error {
	var errs []error

	fail := func(field, reason string) {
		errs = append(errs, &ValidationError{TemplateID: t.ID, Field: field, Reason: reason})
	}

	if t.ID == "" {
		fail("id", "required")
	}
	if t.Title == "" {
		fail("title", "required")
	}
	if t.BasePrice <= 0 {
		fail("base_price", "must be positive minor units")
	}

	checkOptions(t.Covers, "covers", fail)
	checkOptions(t.Languages, "languages", fail)

	if len(t.Pages) == 0 {
		fail("pages", "at least one page is required")
	}

	checkPattern(t.Title, "title", fail)
	for i, p := range t.Pages {
		checkPattern(p.Heading, fmt.Sprintf("pages[%d].heading", i), fail)
		checkPattern(p.Body, fmt.Sprintf("pages[%d].body", i), fail)
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func checkOptions(values []string, field string, fail func(field, reason string)) {
	if len(values) == 0 {
		fail(field, "at least one option is required")
		return
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" {
			fail(field, "options cannot be empty")
			continue
		}
		if seen[v] {
			fail(field, fmt.Sprintf("duplicate option %q", v))
		}
		seen[v] = true
	}
}

func checkPattern(pattern, field string, fail func(field, reason string)) {
	for _, name := range render.Fields(pattern) {
		if !knownFields[name] {
			fail(field, fmt.Sprintf("unknown placeholder %q", name))
		}
	}
}
