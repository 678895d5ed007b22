package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/storybook/pkg/catalog"
	"github.com/fableworks/storybook/pkg/domain"
)

func avaForm() domain.UserForm {
	form := domain.DefaultForm()
	form.ChildName = "Ava"
	form.Nickname = "Avy"
	form.Companion = "Milo the fox"
	form.FavoriteSong = "Twinkle Twinkle"
	form.BigWish = "to fly over the treetops"
	form.Age = 6
	form.Pronouns = "she"
	form.Cover = "Emerald Canopy"
	return form
}

func forest(t *testing.T) domain.StoryTemplate {
	t.Helper()
	tmpl, err := catalog.Builtin().Get("forest-adventure")
	require.NoError(t, err)
	return tmpl
}

func TestCompose_PageCount(t *testing.T) {
	form := avaForm()
	for _, tmpl := range catalog.Builtin().All() {
		pages := Compose(tmpl, form, false)
		assert.Len(t, pages, 1+len(tmpl.Pages), "template %q", tmpl.ID)
	}
}

func TestCompose_CoverView(t *testing.T) {
	pages := Compose(forest(t), avaForm(), false)

	cover := pages[0]
	assert.Equal(t, 0, cover.Index)
	assert.Equal(t, domain.PageCover, cover.Kind)
	assert.Equal(t, "Ava and the Whispering Forest", cover.Heading)
	assert.Equal(t, "Ava", cover.ChildName)
	assert.False(t, cover.HasPhoto())
}

func TestCompose_ForestAdventureScenario(t *testing.T) {
	pages := Compose(forest(t), avaForm(), false)

	// First inner page, pronoun category "she".
	body := pages[1].Body
	assert.Contains(t, body, "brave kid named Ava. Today, she would hear the forest whisper")
	assert.Contains(t, body, "meant only for her")
}

func TestCompose_PronounFallbackSyntax(t *testing.T) {
	tmpl, err := catalog.Builtin().Get("starship-lullaby")
	require.NoError(t, err)

	form := avaForm()
	form.ShipName = ""

	pages := Compose(tmpl, form, false)
	assert.Contains(t, pages[0].Heading, "Captain Ava of the Starlight")
}

func TestCompose_PhotoRules(t *testing.T) {
	tmpl := forest(t)

	t.Run("flag set and photo attached", func(t *testing.T) {
		form := avaForm()
		form.IncludePhoto = true

		pages := Compose(tmpl, form, true)
		assert.Equal(t, domain.PhotoCoverAnchor, pages[0].Photo)

		// Inner pages are 0-indexed within the template; only odd ones
		// carry the photo, with alternating placement.
		for i, view := range pages[1:] {
			if i%2 == 1 {
				assert.True(t, view.HasPhoto(), "inner page %d should carry the photo", i)
			} else {
				assert.False(t, view.HasPhoto(), "inner page %d should not carry the photo", i)
			}
		}
	})

	t.Run("flag set without photo", func(t *testing.T) {
		form := avaForm()
		form.IncludePhoto = true

		for _, view := range Compose(tmpl, form, false) {
			assert.False(t, view.HasPhoto())
		}
	})

	t.Run("photo without flag", func(t *testing.T) {
		for _, view := range Compose(tmpl, avaForm(), true) {
			assert.False(t, view.HasPhoto())
		}
	})
}

func TestCompose_PhotoPlacementAlternates(t *testing.T) {
	form := avaForm()
	form.IncludePhoto = true

	pages := Compose(forest(t), form, true)

	var placements []domain.PhotoPlacement
	for _, view := range pages[1:] {
		if view.HasPhoto() {
			placements = append(placements, view.Photo)
		}
	}
	require.Equal(t, []domain.PhotoPlacement{domain.PhotoLeft, domain.PhotoRight}, placements)
}

func TestCompose_IsPure(t *testing.T) {
	tmpl := forest(t)
	form := avaForm()

	first := Compose(tmpl, form, false)
	second := Compose(tmpl, form, false)
	assert.Equal(t, first, second)
}

func TestBuildContext_ProfileWinsOnAlias(t *testing.T) {
	form := avaForm()
	ctx := BuildContext(form)

	assert.Equal(t, "she", ctx[domain.FieldPronoun])
	assert.Equal(t, "her", ctx[domain.FieldPronounObject])
	assert.Equal(t, "6", ctx[domain.FieldAge])

	// Every context key is part of the closed enumeration.
	known := map[string]bool{}
	for _, k := range domain.ContextKeys() {
		known[k] = true
	}
	for k := range ctx {
		assert.True(t, known[k], "unexpected context key %q", k)
	}
}
