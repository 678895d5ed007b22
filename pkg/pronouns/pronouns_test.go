package pronouns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	she := Resolve(Feminine)
	assert.Equal(t, "she", she.Subject)
	assert.Equal(t, "her", she.Object)
	assert.Equal(t, "herself", she.Reflexive)

	he := Resolve(Masculine)
	assert.Equal(t, "he", he.Subject)
	assert.Equal(t, "his", he.Possessive)

	they := Resolve(Neutral)
	assert.Equal(t, "they", they.Subject)
	assert.Equal(t, "themselves", they.Reflexive)
}

func TestResolve_UnknownFallsBackToNeutral(t *testing.T) {
	assert.Equal(t, Resolve(Neutral), Resolve(Category("xe")))
	assert.Equal(t, Resolve(Neutral), Resolve(Category("")))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Feminine))
	assert.True(t, Valid(Neutral))
	assert.False(t, Valid(Category("xe")))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{Feminine, Masculine, Neutral}, Categories())
}
