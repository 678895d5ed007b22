// Package loam adapts the Loam document library to the storybook catalog.
//
// A catalog directory holds one markdown document per story template. The
// YAML frontmatter carries the template metadata and page list; the markdown
// body is free-form notes for authors and is ignored by the loader.
package loam

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/mitchellh/mapstructure"

	"github.com/fableworks/storybook/pkg/catalog"
	"github.com/fableworks/storybook/pkg/domain"
)

// Loader reads story templates out of a Loam repository.
type Loader struct {
	Repo *loam.TypedRepository[TemplateMetadata]
}

// New creates a new Loam catalog loader.
func New(repo *loam.TypedRepository[TemplateMetadata]) *Loader {
	return &Loader{Repo: repo}
}

// Open initializes a Loam repository at path and loads the catalog from it.
// Strict mode keeps numeric frontmatter values consistent (json.Number);
// read-only mode is enforced because the loader never writes documents.
func Open(ctx context.Context, path string) (*catalog.Catalog, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[TemplateMetadata](repo)).Load(ctx)
}

// Load lists every document in the repository, converts each one into a
// StoryTemplate, and builds a validated catalog. Documents are ordered by
// normalized ID so the first template of a catalog directory is stable.
func (l *Loader) Load(ctx context.Context) (*catalog.Catalog, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("catalog directory holds no template documents")
	}

	templates := make([]domain.StoryTemplate, 0, len(docs))
	for _, doc := range docs {
		tmpl, err := l.buildTemplate(doc.ID, doc.Data)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	sort.Slice(templates, func(i, j int) bool { return templates[i].ID < templates[j].ID })

	return catalog.New(templates...)
}

// Get retrieves a single story template by document ID.
func (l *Loader) Get(ctx context.Context, id string) (domain.StoryTemplate, error) {
	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		return domain.StoryTemplate{}, fmt.Errorf("loam get failed for %s: %w", id, err)
	}
	return l.buildTemplate(doc.ID, doc.Data)
}

func (l *Loader) buildTemplate(docID string, meta TemplateMetadata) (domain.StoryTemplate, error) {
	rawID := meta.ID
	if rawID == "" {
		rawID = docID
	}
	id := trimExtension(rawID)

	price, err := toMinorUnits(meta.BasePrice)
	if err != nil {
		return domain.StoryTemplate{}, fmt.Errorf("template %s: base_price: %w", id, err)
	}

	pages, err := decodePages(meta.Pages)
	if err != nil {
		return domain.StoryTemplate{}, fmt.Errorf("template %s: %w", id, err)
	}

	return domain.StoryTemplate{
		ID:        id,
		Title:     meta.Title,
		AgeRange:  meta.AgeRange,
		BasePrice: price,
		Covers:    meta.Covers,
		Languages: meta.Languages,
		Pages:     pages,
	}, nil
}

// decodePages converts the raw frontmatter page list into PageTemplates.
// Entries must be inline maps; anything else is a document authoring error.
func decodePages(raw []any) ([]domain.PageTemplate, error) {
	pages := make([]domain.PageTemplate, 0, len(raw))
	for i, item := range raw {
		switch item.(type) {
		case map[string]any, map[any]any:
			var page PageMetadata
			if err := mapstructure.Decode(item, &page); err != nil {
				return nil, fmt.Errorf("pages[%d]: failed to decode: %w", i, err)
			}
			pages = append(pages, domain.PageTemplate{
				Background: page.Background,
				Heading:    page.Heading,
				Body:       page.Body,
			})
		default:
			return nil, fmt.Errorf("pages[%d]: invalid page definition type: %T", i, item)
		}
	}
	return pages, nil
}

// toMinorUnits normalizes the loosely typed base_price frontmatter value.
// Loam's strict mode yields json.Number; plain YAML decoding may yield int.
func toMinorUnits(raw any) (int64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, fmt.Errorf("required")
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected integer minor units, got %q", v.String())
		}
		return n, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		return int64(v), nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("expected integer minor units, got %v", v)
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("expected integer minor units, got %T", raw)
	}
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
