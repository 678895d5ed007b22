// Package pronouns maps a pronoun selection to the grammatical forms used
// during template substitution.
package pronouns

// Category is a pronoun-category token from the fixed enumerated set.
type Category string

const (
	Feminine  Category = "she"
	Masculine Category = "he"
	Neutral   Category = "they"
)

// Profile holds the resolved grammatical forms for one category. Profiles
// are fixed at process start and never mutated.
type Profile struct {
	// Subject is the subject form ("she would hear...").
	Subject string
	// Object is the object form ("the forest called to her").
	Object string
	// Possessive is the possessive determiner ("her backpack").
	Possessive string
	// Reflexive is the reflexive/alternate form ("all by herself").
	Reflexive string
}

var profiles = map[Category]Profile{
	Feminine:  {Subject: "she", Object: "her", Possessive: "her", Reflexive: "herself"},
	Masculine: {Subject: "he", Object: "him", Possessive: "his", Reflexive: "himself"},
	Neutral:   {Subject: "they", Object: "them", Possessive: "their", Reflexive: "themselves"},
}

// Resolve returns the profile for the given category.
//
// The UI is expected to restrict the selector to valid categories; if an
// unknown token slips through anyway, Resolve fails closed and returns the
// neutral-plural profile so preview rendering stays available.
func Resolve(category Category) Profile {
	if p, ok := profiles[category]; ok {
		return p
	}
	return profiles[Neutral]
}

// Valid reports whether category is part of the fixed enumeration.
func Valid(category Category) bool {
	_, ok := profiles[category]
	return ok
}

// Categories lists the valid categories in selector order.
func Categories() []Category {
	return []Category{Feminine, Masculine, Neutral}
}
