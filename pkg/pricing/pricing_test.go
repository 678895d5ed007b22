package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fableworks/storybook/pkg/domain"
)

var tmpl = domain.StoryTemplate{ID: "forest-adventure", BasePrice: 2499}

func TestTotal_BaseOnly(t *testing.T) {
	assert.Equal(t, tmpl.BasePrice, Total(tmpl, AddOns{}, 1))
}

func TestTotal_AddOnsApplyPerCopy(t *testing.T) {
	base := Total(tmpl, AddOns{}, 3)
	hard := Total(tmpl, AddOns{Hardcover: true}, 3)
	wrapped := Total(tmpl, AddOns{Hardcover: true, GiftWrap: true}, 3)

	// Fees are added before multiplying by quantity.
	assert.Equal(t, base+HardcoverFee*3, hard)
	assert.Equal(t, hard+GiftWrapFee*3, wrapped)
}

func TestTotal_QuantityCoercion(t *testing.T) {
	addOns := AddOns{GiftWrap: true}
	want := Total(tmpl, addOns, 1)

	assert.Equal(t, want, Total(tmpl, addOns, 0))
	assert.Equal(t, want, Total(tmpl, addOns, -3))
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 2 ", 2},
		{"abc", 1},
		{"", 1},
		{"0", 1},
		{"-5", 1},
		{"2.5", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseQuantity(tt.raw), "input %q", tt.raw)
	}
}

func TestNewQuote(t *testing.T) {
	q := NewQuote(tmpl, AddOns{Hardcover: true}, 2)

	assert.Equal(t, Currency, q.Currency)
	assert.Equal(t, int64(2499), q.Base)
	assert.Equal(t, HardcoverFee, q.Extras)
	assert.Equal(t, int64(3099), q.PerCopy)
	assert.Equal(t, 2, q.Quantity)
	assert.Equal(t, int64(6198), q.Total)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$24.99", FormatAmount(2499))
	assert.Equal(t, "$6.00", FormatAmount(600))
	assert.Equal(t, "$0.05", FormatAmount(5))
	assert.Equal(t, "-$1.50", FormatAmount(-150))
}
