package ports

import (
	"context"
	"image"
	"io"

	"github.com/fableworks/storybook/pkg/domain"
)

// Rasterizer converts one fully rendered page view into a fixed-resolution
// bitmap. Implementations decide typography and layout; the pipeline only
// requires that the bitmap matches the document's page proportions.
type Rasterizer interface {
	// Rasterize draws the page, including its photo overlay if one is
	// attached. The photo argument is nil when the page carries no photo.
	Rasterize(ctx context.Context, page domain.PageView, photo image.Image) (image.Image, error)
}

// PhotoSource hands the core an opaque byte source for a user-selected
// image. The core never inspects file contents beyond decoding them for the
// rendering surface.
type PhotoSource interface {
	// Open returns a reader over the raw image bytes.
	Open(ctx context.Context) (io.ReadCloser, error)
}
