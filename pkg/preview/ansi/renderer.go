// Package ansi renders page views as styled terminal output, primarily for
// examples and quick visual checks during catalog authoring.
package ansi

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/fableworks/storybook/pkg/domain"
)

// Renderer turns page views into ANSI-styled text.
type Renderer struct {
	render func(string) (string, error)
	color  termenv.Profile
}

// NewRenderer initializes a glamour-backed renderer with automatic
// light/dark background detection.
func NewRenderer() *Renderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return &Renderer{
		render: r.Render,
		color:  termenv.ColorProfile(),
	}
}

// RenderPages renders the full page sequence, cover first, separated by
// styled page markers.
func (r *Renderer) RenderPages(pages []domain.PageView) (string, error) {
	var out strings.Builder

	for _, page := range pages {
		marker := fmt.Sprintf("— page %d (%s) —", page.Index+1, page.Background)
		out.WriteString(termenv.String(marker).Foreground(r.color.Color("#a78bfa")).String())
		out.WriteString("\n")

		body, err := r.render(pageMarkdown(page))
		if err != nil {
			return "", fmt.Errorf("failed to render page %d: %w", page.Index, err)
		}
		out.WriteString(body)
	}

	return out.String(), nil
}

// pageMarkdown converts one page view into the markdown fed to glamour.
func pageMarkdown(page domain.PageView) string {
	var md strings.Builder

	if page.Kind == domain.PageCover {
		md.WriteString("# " + page.Heading + "\n\n")
		md.WriteString("**" + page.ChildName + "**\n")
	} else {
		md.WriteString("## " + page.Heading + "\n\n")
		md.WriteString(page.Body + "\n")
	}

	if page.HasPhoto() {
		md.WriteString(fmt.Sprintf("\n*[photo: %s]*\n", page.Photo))
	}

	return md.String()
}
