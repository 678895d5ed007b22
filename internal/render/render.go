// Package render implements the placeholder substitution engine used to
// personalize story patterns.
//
// A placeholder has the shape "{{name}}": double open brace, optional
// whitespace, one identifier made of word characters, optional whitespace,
// double close brace. A placeholder may carry a literal fallback after a
// pipe, "{{pronoun | they}}", used when the context has no value for the
// identifier. Anything that does not match this shape is not a placeholder
// and passes through unchanged.
package render

import (
	"regexp"
	"strings"
)

// placeholder matches {{ident}} and {{ident | fallback}} tokens.
// The fallback part cannot contain braces or pipes, so unbalanced or nested
// tokens fail to match and are emitted literally.
var placeholder = regexp.MustCompile(`\{\{\s*(\w+)(?:\s*\|([^{}|]*))?\s*\}\}`)

// Render substitutes every placeholder in pattern with its value from ctx.
//
// Missing or empty values resolve to the placeholder's fallback if one is
// present, otherwise to the empty string. Substituted values are never
// re-expanded: the scan is a single pass over the original pattern, so a
// value containing "{{...}}" is emitted as-is. Render never fails; for a
// pattern without placeholders it returns the input unchanged.
func Render(pattern string, ctx map[string]string) string {
	if !strings.Contains(pattern, "{{") {
		return pattern
	}

	return placeholder.ReplaceAllStringFunc(pattern, func(token string) string {
		groups := placeholder.FindStringSubmatch(token)
		name := groups[1]

		if val, ok := ctx[name]; ok && val != "" {
			return val
		}
		return strings.TrimSpace(groups[2])
	})
}

// Fields returns the placeholder identifiers referenced by pattern, in order
// of first appearance. Useful for validating catalog templates against the
// closed set of known context keys.
func Fields(pattern string) []string {
	matches := placeholder.FindAllStringSubmatch(pattern, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	fields := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			fields = append(fields, m[1])
		}
	}
	return fields
}
