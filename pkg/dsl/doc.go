/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically
constructing story template catalogs.

It allows developers to define templates using a type-safe, fluent builder
pattern instead of external YAML or markdown files. This is particularly
useful for dynamic catalog generation, unit testing, and leveraging IDE
autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/fableworks/storybook/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Story("pirate-cove").
			Title("Captain {{childName | Jo}} and the Hidden Cove").
			Ages("4-8").
			Price(2599).
			Covers("cove", "stormy-sea").
			Languages("English").
			Page("deck", "Setting Sail",
				"{{childName}} hoisted the sails of the {{shipName | Seastar}}.").
			Page("cove", "The Hidden Cove",
				"Behind the waterfall, {{pronoun}} found a map.")

		// The resulting catalog can be passed to storybook.New via WithCatalog.
		cat, err := b.Build()
		// ...
		_ = cat
		_ = err
	}
*/
package dsl
