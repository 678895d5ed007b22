package storybook_test

import (
	"context"
	"fmt"
	"log"

	"github.com/fableworks/storybook"
	"github.com/fableworks/storybook/pkg/domain"
	"github.com/fableworks/storybook/pkg/pricing"
)

// Example demonstrates the basic configure-preview-quote loop against the
// built-in catalog.
func Example() {
	studio, err := storybook.New("")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	_, err = studio.Update(ctx, "demo", func(s *domain.SessionState) {
		s.Form.ChildName = "Ava"
		s.Form.Pronouns = "she"
		s.Order.Hardcover = true
		s.Order.Quantity = 2
	})
	if err != nil {
		log.Fatal(err)
	}

	pages, err := studio.Preview(ctx, "demo")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("pages:", len(pages))

	quote, err := studio.Quote(ctx, "demo")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("total:", pricing.FormatAmount(quote.Total))

	// Output:
	// pages: 5
	// total: $61.98
}
