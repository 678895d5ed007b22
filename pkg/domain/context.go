package domain

// Placeholder identifiers recognized in story patterns. The substitution
// context is a closed mapping: catalog validation rejects patterns that
// reference anything outside this set instead of relying on silent
// empty-string fallback for typos.
const (
	FieldChildName    = "childName"
	FieldNickname     = "nickname"
	FieldCompanion    = "companion"
	FieldFavoriteSong = "favoriteSong"
	FieldBigWish      = "bigWish"
	FieldShipName     = "shipName"
	FieldAge          = "age"
	FieldLanguage     = "language"
	FieldCover        = "cover"

	// Pronoun fields are written by the resolved pronoun profile. They are
	// aliased on purpose: when the form and the profile would produce the
	// same placeholder name, the profile wins.
	FieldPronoun           = "pronoun"
	FieldPronounObject     = "pronounObject"
	FieldPronounPossessive = "pronounPossessive"
	FieldPronounReflexive  = "pronounReflexive"
)

// ContextKeys returns the closed set of valid placeholder identifiers.
func ContextKeys() []string {
	return []string{
		FieldChildName,
		FieldNickname,
		FieldCompanion,
		FieldFavoriteSong,
		FieldBigWish,
		FieldShipName,
		FieldAge,
		FieldLanguage,
		FieldCover,
		FieldPronoun,
		FieldPronounObject,
		FieldPronounPossessive,
		FieldPronounReflexive,
	}
}
