// Package pricing derives order totals from a story template, optional
// add-ons, and quantity.
//
// All amounts are integer minor units (cents) of the single system-wide
// currency, so repeated recalculation never accumulates rounding error.
// Conversion to a display string happens only at the edge, in FormatAmount.
package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fableworks/storybook/pkg/domain"
)

// Currency is the ISO code of the single supported currency.
const Currency = "USD"

// Add-on fees in minor units.
const (
	HardcoverFee int64 = 600
	GiftWrapFee  int64 = 400
)

// AddOns are the optional extras applied per copy, before quantity scaling.
type AddOns struct {
	Hardcover bool
	GiftWrap  bool
}

// Quote is the line-item breakdown of a priced order.
type Quote struct {
	Currency string `json:"currency"`
	Base     int64  `json:"base"`
	Extras   int64  `json:"extras"`
	PerCopy  int64  `json:"per_copy"`
	Quantity int    `json:"quantity"`
	Total    int64  `json:"total"`
}

// ClampQuantity coerces non-positive quantities to 1.
func ClampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}

// ParseQuantity interprets free-form quantity input. Non-numeric or
// non-positive input is treated as 1, never rejected.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return ClampQuantity(n)
}

// Extras returns the per-copy add-on amount.
func Extras(addOns AddOns) int64 {
	var extras int64
	if addOns.Hardcover {
		extras += HardcoverFee
	}
	if addOns.GiftWrap {
		extras += GiftWrapFee
	}
	return extras
}

// Total computes (base + extras) * quantity. Extras apply per copy, so
// enabling an add-on raises the total by exactly fee * quantity. Pure
// function, safe to call on every keystroke.
func Total(template domain.StoryTemplate, addOns AddOns, quantity int) int64 {
	return (template.BasePrice + Extras(addOns)) * int64(ClampQuantity(quantity))
}

// NewQuote computes the full breakdown for a priced order.
func NewQuote(template domain.StoryTemplate, addOns AddOns, quantity int) Quote {
	quantity = ClampQuantity(quantity)
	extras := Extras(addOns)
	perCopy := template.BasePrice + extras
	return Quote{
		Currency: Currency,
		Base:     template.BasePrice,
		Extras:   extras,
		PerCopy:  perCopy,
		Quantity: quantity,
		Total:    perCopy * int64(quantity),
	}
}

// FormatAmount renders minor units as a display string, e.g. 2499 -> "$24.99".
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s$%d.%02d", sign, amount/100, amount%100)
}
