package catalog

import "github.com/fableworks/storybook/pkg/domain"

// Builtin returns the catalog shipped with the module. The first entry is
// the default selection for new sessions.
func Builtin() *Catalog {
	return MustNew(forestAdventure, starshipLullaby, oceanOfWishes)
}

var forestAdventure = domain.StoryTemplate{
	ID:        "forest-adventure",
	Title:     "{{childName}} and the Whispering Forest",
	AgeRange:  "3-7",
	BasePrice: 2499,
	Covers:    []string{"Emerald Canopy", "Golden Autumn", "Moonlit Pines"},
	Languages: []string{"English", "Spanish", "Portuguese"},
	Pages: []domain.PageTemplate{
		{
			Background: "forest-morning",
			Heading:    "A Secret in the Trees",
			Body: "Deep in the old woods lived a brave kid named {{childName}}. " +
				"Today, {{pronoun | they}} would hear the forest whisper a secret " +
				"meant only for {{pronounObject}}.",
		},
		{
			Background: "forest-path",
			Heading:    "{{nickname}} Finds a Friend",
			Body: "Along the mossy path, {{companion}} appeared with a grin. " +
				"\"Follow me, {{nickname}},\" said {{companion}}, \"the trees are singing {{favoriteSong}}!\"",
		},
		{
			Background: "forest-clearing",
			Heading:    "The Wishing Clearing",
			Body: "In a clearing full of fireflies, {{childName}} closed {{pronounPossessive}} eyes " +
				"and made the biggest wish of all: {{bigWish}}.",
		},
		{
			Background: "forest-night",
			Heading:    "Home Under the Stars",
			Body: "At {{age}} years old, {{childName}} had found the bravest part of " +
				"{{pronounReflexive}}. The forest would keep the secret, always.",
		},
	},
}

var starshipLullaby = domain.StoryTemplate{
	ID:        "starship-lullaby",
	Title:     "Captain {{childName}} of the {{shipName | Starlight}}",
	AgeRange:  "4-8",
	BasePrice: 2699,
	Covers:    []string{"Nebula Blue", "Rocket Red"},
	Languages: []string{"English", "Spanish"},
	Pages: []domain.PageTemplate{
		{
			Background: "space-launch",
			Heading:    "Countdown at Bedtime",
			Body: "Captain {{childName}} buckled in aboard the {{shipName | Starlight}}. " +
				"Three, two, one... and up {{pronoun | they}} went, past the sleepy clouds.",
		},
		{
			Background: "space-comets",
			Heading:    "Racing the Comets",
			Body: "{{companion}} plotted the course while the comets hummed {{favoriteSong}}. " +
				"Nothing could catch the {{shipName | Starlight}} tonight.",
		},
		{
			Background: "space-moon",
			Heading:    "A Wish on the Far Moon",
			Body: "On the far side of the moon, {{childName}} whispered {{pronounPossessive}} " +
				"dearest wish into the quiet dark: {{bigWish}}.",
		},
	},
}

var oceanOfWishes = domain.StoryTemplate{
	ID:        "ocean-of-wishes",
	Title:     "{{childName}} and the Ocean of Wishes",
	AgeRange:  "3-6",
	BasePrice: 2299,
	Covers:    []string{"Coral Reef", "Deep Teal", "Pearl Shell"},
	Languages: []string{"English", "Portuguese"},
	Pages: []domain.PageTemplate{
		{
			Background: "ocean-shore",
			Heading:    "The Tide Brings a Map",
			Body: "One bright morning, the tide left a bottle at the feet of {{childName}}. " +
				"Inside was a map, and {{pronoun | they}} knew exactly what to do.",
		},
		{
			Background: "ocean-deep",
			Heading:    "Singing with the Whales",
			Body: "Down where the water glows, {{companion}} taught the whales to sing " +
				"{{favoriteSong}} until the whole sea swayed along.",
		},
		{
			Background: "ocean-cave",
			Heading:    "The Pearl of {{nickname}}",
			Body: "In the glimmering cave, a pearl lit up with the one wish " +
				"{{childName}} held closest: {{bigWish}}.",
		},
		{
			Background: "ocean-sunset",
			Heading:    "Back with the Tide",
			Body: "The sea carried {{childName}} home, salt in {{pronounPossessive}} hair " +
				"and the map tucked away for next time.",
		},
	},
}
