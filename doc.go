/*
Package storybook is an embeddable configurator for personalized children's
storybooks. It turns a story template and a set of user inputs (child name,
companion, pronouns, a photo) into a fully substituted book: a live page
preview, a price quote, and a print-ready PDF export.

It separates the story catalog (templates), the session state (user inputs)
and the rendering side-effects (rasterizer, PDF assembly). This Hexagonal
Architecture lets the configurator run behind any surface: a TUI, an HTTP
server, or a desktop shell.

# Key Features

  - Pure page composition: the same form always produces the same pages.
  - Pronoun-aware text: templates reference pronoun slots, not fixed words.
  - Session persistence: every change survives restarts via pluggable stores.
  - Atomic export: a PDF either arrives complete or not at all.

# Usage

Initialize a Studio and drive it with a session ID. The built-in catalog is
used unless a template directory or custom catalog is provided.

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/fableworks/storybook"
		"github.com/fableworks/storybook/pkg/domain"
	)

	func main() {
		studio, err := storybook.New("")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()

		// Fill in the form; the session is persisted after every update.
		_, err = studio.Update(ctx, "session-123", func(s *domain.SessionState) {
			s.Form.ChildName = "Ava"
			s.Form.Pronouns = "she"
			s.Order.Hardcover = true
		})
		if err != nil {
			log.Fatal(err)
		}

		// Preview the composed pages.
		pages, err := studio.Preview(ctx, "session-123")
		if err != nil {
			log.Fatal(err)
		}
		for _, p := range pages {
			log.Println(p.Heading)
		}

		// Export the finished book.
		f, err := os.Create("ava.pdf")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if _, err := studio.Export(ctx, "session-123", f); err != nil {
			log.Fatal(err)
		}
	}
*/
package storybook
