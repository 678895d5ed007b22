package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// assembler accumulates rasterized pages into a single PDF document.
// Nothing is written to the destination until Flush, so a failed export
// never leaves a partial document behind.
type assembler struct {
	pdf *gofpdf.Fpdf
}

func newAssembler() *assembler {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: PageWidthPt, Ht: PageHeightPt},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &assembler{pdf: pdf}
}

// appendPage encodes the bitmap and places it full bleed on a new page.
// The encoded bytes are handed to gofpdf immediately, so only one page
// bitmap is alive at a time.
func (a *assembler) appendPage(index int, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode page %d: %w", index, err)
	}

	name := fmt.Sprintf("page-%d", index)
	a.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	a.pdf.AddPage()
	a.pdf.ImageOptions(name, 0, 0, PageWidthPt, PageHeightPt, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if a.pdf.Err() {
		return fmt.Errorf("failed to append page %d: %v", index, a.pdf.Error())
	}
	return nil
}

// Flush writes the assembled document to w.
func (a *assembler) Flush(w io.Writer) error {
	if err := a.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Filename derives the download name from the child's name, with a fixed
// suffix. Separator characters are normalized so the name is always a
// valid single path element.
func Filename(childName string) string {
	name := strings.TrimSpace(childName)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		}
		return r
	}, name)

	if name == "" {
		return "storybook.pdf"
	}
	return name + "-storybook.pdf"
}
