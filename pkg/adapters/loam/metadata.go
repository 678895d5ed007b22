package loam

// TemplateMetadata represents the frontmatter of a story template document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
//
// BasePrice and the page list are kept loosely typed here: Loam's strict
// mode yields json.Number for numerics, and pages arrive as raw maps. The
// loader normalizes both into domain types.
type TemplateMetadata struct {
	ID        string   `json:"id" mapstructure:"id"`
	Title     string   `json:"title" mapstructure:"title"`
	AgeRange  string   `json:"age_range" mapstructure:"age_range"`
	BasePrice any      `json:"base_price" mapstructure:"base_price"`
	Covers    []string `json:"covers" mapstructure:"covers"`
	Languages []string `json:"languages" mapstructure:"languages"`
	Pages     []any    `json:"pages" mapstructure:"pages"`
}

// PageMetadata is the decoded shape of one entry in the pages list.
type PageMetadata struct {
	Background string `json:"background" mapstructure:"background"`
	Heading    string `json:"heading" mapstructure:"heading"`
	Body       string `json:"body" mapstructure:"body"`
}
