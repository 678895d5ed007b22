package export

import (
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/fableworks/storybook/pkg/domain"
)

// Raster is the default Rasterizer. It draws each page as a flat-color
// background derived from the page's style token, the heading and body text
// in the embedded Go fonts, and the photo overlay at its anchor.
type Raster struct {
	heading font.Face
	body    font.Face
	title   font.Face
}

// NewRaster parses the embedded fonts and prepares the faces used for all
// pages. The faces are sized for the oversampled bitmap.
func NewRaster() (*Raster, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	newFace := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size * Oversample,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	r := &Raster{}
	if r.title, err = newFace(bold, 34); err != nil {
		return nil, fmt.Errorf("failed to build title face: %w", err)
	}
	if r.heading, err = newFace(bold, 22); err != nil {
		return nil, fmt.Errorf("failed to build heading face: %w", err)
	}
	if r.body, err = newFace(regular, 14); err != nil {
		return nil, fmt.Errorf("failed to build body face: %w", err)
	}
	return r, nil
}

// Rasterize draws one page into a fresh RGBA bitmap at the fixed page
// resolution. It never mutates page or photo.
func (r *Raster) Rasterize(ctx context.Context, page domain.PageView, photo image.Image) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, RasterWidth, RasterHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor(page.Background)), image.Point{}, draw.Src)

	margin := 60 * Oversample

	switch page.Kind {
	case domain.PageCover:
		r.drawWrapped(img, r.title, page.Heading, margin, 140*Oversample, RasterWidth-2*margin)
		if page.ChildName != "" {
			r.drawWrapped(img, r.heading, page.ChildName, margin, 260*Oversample, RasterWidth-2*margin)
		}
		if page.HasPhoto() && photo != nil {
			overlayPhoto(img, photo, photoRect(page.Photo))
		}
	default:
		r.drawWrapped(img, r.heading, page.Heading, margin, 100*Oversample, RasterWidth-2*margin)
		top := 160 * Oversample
		textWidth := RasterWidth - 2*margin
		left := margin

		if page.HasPhoto() && photo != nil {
			rect := photoRect(page.Photo)
			overlayPhoto(img, photo, rect)
			// Flow the body beside the photo band.
			textWidth = RasterWidth - 3*margin - rect.Dx()
			if page.Photo == domain.PhotoLeft {
				left = rect.Max.X + margin
			}
		}
		r.drawWrapped(img, r.body, page.Body, left, top, textWidth)
	}

	return img, nil
}

// drawWrapped renders text with greedy word wrapping inside the given width.
func (r *Raster) drawWrapped(dst draw.Image, face font.Face, text string, left, top, width int) {
	if text == "" {
		return
	}

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{A: 255}),
		Face: face,
	}

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil() + metrics.Height.Ceil()/4
	maxWidth := fixed.I(width)

	y := top
	for _, line := range wrapText(drawer, text, maxWidth) {
		drawer.Dot = fixed.P(left, y)
		drawer.DrawString(line)
		y += lineHeight
	}
}

// wrapText splits text into lines that fit maxWidth under the drawer's face.
func wrapText(drawer *font.Drawer, text string, maxWidth fixed.Int26_6) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if drawer.MeasureString(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// photoRect returns the overlay rectangle for a placement anchor.
func photoRect(placement domain.PhotoPlacement) image.Rectangle {
	const (
		size   = 180 * Oversample
		margin = 60 * Oversample
	)

	switch placement {
	case domain.PhotoCoverAnchor:
		// Fixed anchor: horizontally centered in the upper half.
		x := (RasterWidth - size) / 2
		return image.Rect(x, 340*Oversample, x+size, 340*Oversample+size)
	case domain.PhotoRight:
		return image.Rect(RasterWidth-margin-size, 160*Oversample, RasterWidth-margin, 160*Oversample+size)
	default:
		return image.Rect(margin, 160*Oversample, margin+size, 160*Oversample+size)
	}
}

// overlayPhoto scales the photo into rect preserving aspect ratio by
// covering the rectangle and clipping the overflow.
func overlayPhoto(dst draw.Image, photo image.Image, rect image.Rectangle) {
	src := photo.Bounds()
	if src.Dx() == 0 || src.Dy() == 0 {
		return
	}

	scale := float64(rect.Dx()) / float64(src.Dx())
	if s := float64(rect.Dy()) / float64(src.Dy()); s > scale {
		scale = s
	}
	w := int(float64(src.Dx()) * scale)
	h := int(float64(src.Dy()) * scale)
	// Center the covering image on the rectangle.
	target := image.Rect(0, 0, w, h).Add(rect.Min).Sub(image.Pt((w-rect.Dx())/2, (h-rect.Dy())/2))

	clipped := clippedImage{dst: dst, clip: rect}
	xdraw.ApproxBiLinear.Scale(&clipped, target, photo, src, xdraw.Over, nil)
}

// clippedImage restricts writes to a clip rectangle.
type clippedImage struct {
	dst  draw.Image
	clip image.Rectangle
}

func (c *clippedImage) ColorModel() color.Model { return c.dst.ColorModel() }
func (c *clippedImage) Bounds() image.Rectangle { return c.dst.Bounds() }
func (c *clippedImage) At(x, y int) color.Color { return c.dst.At(x, y) }

func (c *clippedImage) Set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.clip) {
		c.dst.Set(x, y, col)
	}
}

// backgroundColor derives a stable pastel tone from a style token, so the
// same token always paints the same page color.
func backgroundColor(token string) color.RGBA {
	if token == "" {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(token))
	v := h.Sum32()

	// Bias every channel toward white to stay in storybook-pastel range.
	return color.RGBA{
		R: uint8(180 + v%60),
		G: uint8(180 + (v>>8)%60),
		B: uint8(180 + (v>>16)%60),
		A: 255,
	}
}
