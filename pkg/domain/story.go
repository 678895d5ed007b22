package domain

// PageTemplate describes one inner page of a story before personalization.
// Heading and Body are pattern strings containing zero or more {{placeholder}}
// tokens. Background is an opaque style token interpreted by the rasterizer.
type PageTemplate struct {
	Background string `json:"background" yaml:"background"`
	Heading    string `json:"heading" yaml:"heading"`
	Body       string `json:"body" yaml:"body"`
}

// StoryTemplate is a parameterized story definition shared across all users
// who pick it. Templates are loaded once at startup and never mutated.
//
// BasePrice is expressed in minor currency units (cents) of the single
// system-wide currency.
type StoryTemplate struct {
	ID        string         `json:"id" yaml:"id"`
	Title     string         `json:"title" yaml:"title"`
	AgeRange  string         `json:"age_range" yaml:"age_range"`
	BasePrice int64          `json:"base_price" yaml:"base_price"`
	Covers    []string       `json:"covers" yaml:"covers"`
	Languages []string       `json:"languages" yaml:"languages"`
	Pages     []PageTemplate `json:"pages" yaml:"pages"`
}

// PageCount returns the number of rendered pages a preview of this template
// produces: one cover plus one page per PageTemplate.
func (t StoryTemplate) PageCount() int {
	return 1 + len(t.Pages)
}
