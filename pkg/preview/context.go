package preview

import (
	"strconv"

	"github.com/fableworks/storybook/pkg/domain"
	"github.com/fableworks/storybook/pkg/pronouns"
)

// BuildContext merges the user form with the resolved pronoun profile into
// the substitution mapping fed to the template renderer. Keys form a closed
// set (domain.ContextKeys); when the form and the profile would produce the
// same key, the profile wins, so substitution stays deterministic.
func BuildContext(form domain.UserForm) map[string]string {
	ctx := map[string]string{
		domain.FieldChildName:    form.ChildName,
		domain.FieldNickname:     form.Nickname,
		domain.FieldCompanion:    form.Companion,
		domain.FieldFavoriteSong: form.FavoriteSong,
		domain.FieldBigWish:      form.BigWish,
		domain.FieldShipName:     form.ShipName,
		domain.FieldAge:          strconv.Itoa(form.Age),
		domain.FieldLanguage:     form.Language,
		domain.FieldCover:        form.Cover,
	}

	profile := pronouns.Resolve(pronouns.Category(form.Pronouns))
	ctx[domain.FieldPronoun] = profile.Subject
	ctx[domain.FieldPronounObject] = profile.Object
	ctx[domain.FieldPronounPossessive] = profile.Possessive
	ctx[domain.FieldPronounReflexive] = profile.Reflexive

	return ctx
}
