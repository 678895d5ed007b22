// Package assets manages the user-selected photo for a session.
//
// A photo enters as an opaque byte source, is decoded once for the
// rendering surface, and lives in process memory behind a reference-counted
// handle. Photos are never written to durable storage and never shared
// across sessions; a persisted photo reference that no longer resolves is
// treated as no photo at all.
package assets

import (
	"context"
	"fmt"
	"image"
	"io"
	"sync/atomic"

	// Decoders for the formats the rendering surface accepts.
	_ "image/jpeg"
	_ "image/png"

	"github.com/fableworks/storybook/pkg/ports"
)

// Photo is a reference-counted, decoded image handle.
type Photo struct {
	img    image.Image
	format string
	refs   atomic.Int32
}

// Load reads and decodes a photo from an opaque byte source. The returned
// handle starts with one reference.
func Load(ctx context.Context, src ports.PhotoSource) (*Photo, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open photo source: %w", err)
	}
	defer rc.Close()

	return Decode(rc)
}

// Decode builds a photo handle from raw image bytes.
func Decode(r io.Reader) (*Photo, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo: %w", err)
	}

	p := &Photo{img: img, format: format}
	p.refs.Store(1)
	return p, nil
}

// Image returns the decoded image. It is only valid while at least one
// reference is held.
func (p *Photo) Image() image.Image {
	return p.img
}

// Format returns the detected source format ("png", "jpeg").
func (p *Photo) Format() string {
	return p.format
}

// Retain adds a reference and returns the same handle for chaining.
func (p *Photo) Retain() *Photo {
	p.refs.Add(1)
	return p
}

// Release drops a reference. When the count reaches zero the decoded pixels
// are unpinned so the session no longer holds them.
func (p *Photo) Release() {
	if p.refs.Add(-1) <= 0 {
		p.img = nil
	}
}

// Refs returns the current reference count.
func (p *Photo) Refs() int {
	return int(p.refs.Load())
}
