package loam

import (
	"context"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/storybook/internal/testutils"
)

const meadowDoc = `---
id: meadow-days
title: "{{childName}} in the Meadow"
age_range: "3-6"
base_price: 2199
covers: [Daisy, Clover]
languages: [English]
pages:
  - background: meadow-morning
    heading: "Hello, Meadow"
    body: "Good morning, {{childName}}! The meadow waited all night for {{pronounObject}}."
---
Author notes: keep the meadow palette warm.`

const cometDoc = `---
id: comet-chase
title: "Captain {{childName}}"
age_range: "4-8"
base_price: 2399
covers: [Night Sky]
languages: [English, Spanish]
pages:
  - background: space
    heading: "Lift Off"
    body: "Up went {{childName}} and {{companion}}."
  - background: space-tail
    heading: "The Tail of the Comet"
    body: "Holding on tight, {{pronoun | they}} laughed all the way home."
---
`

func seed(t *testing.T, repo core.Repository, docs map[string]string) {
	t.Helper()
	ctx := context.Background()
	for id, content := range docs {
		require.NoError(t, repo.Save(ctx, core.Document{ID: id, Content: content}))
	}
}

func TestLoader_Load(t *testing.T) {
	_, repo := testutils.SetupCatalogRepo(t)
	seed(t, repo, map[string]string{
		"meadow-days.md": meadowDoc,
		"comet-chase.md": cometDoc,
	})

	loader := New(loam.NewTypedRepository[TemplateMetadata](repo))
	cat, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, cat.Len())
	// Templates are ordered by ID, so comet-chase comes first.
	assert.Equal(t, "comet-chase", cat.First().ID)

	meadow, err := cat.Get("meadow-days")
	require.NoError(t, err)
	assert.Equal(t, int64(2199), meadow.BasePrice)
	assert.Equal(t, []string{"Daisy", "Clover"}, meadow.Covers)
	require.Len(t, meadow.Pages, 1)
	assert.Equal(t, "meadow-morning", meadow.Pages[0].Background)
}

func TestLoader_Get_NormalizesID(t *testing.T) {
	_, repo := testutils.SetupCatalogRepo(t)
	seed(t, repo, map[string]string{"meadow-days.md": meadowDoc})

	loader := New(loam.NewTypedRepository[TemplateMetadata](repo))
	tmpl, err := loader.Get(context.Background(), "meadow-days")
	require.NoError(t, err)
	assert.Equal(t, "meadow-days", tmpl.ID)
}

func TestLoader_RejectsInvalidDocuments(t *testing.T) {
	_, repo := testutils.SetupCatalogRepo(t)
	seed(t, repo, map[string]string{"broken.md": `---
id: broken
title: "No Pages Here"
base_price: not-a-number
covers: [One]
languages: [English]
pages: []
---
`})

	loader := New(loam.NewTypedRepository[TemplateMetadata](repo))
	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_price")
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int64
		wantErr bool
	}{
		{"int", 2499, 2499, false},
		{"int64", int64(100), 100, false},
		{"whole float", float64(600), 600, false},
		{"fractional float", 6.5, 0, true},
		{"nil", nil, 0, true},
		{"string", "2499", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toMinorUnits(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
