package export

// Page geometry is fixed: A4 in points, full bleed. Bitmaps are oversampled
// to keep text sharp when the document is zoomed or printed.
const (
	// PageWidthPt and PageHeightPt are the A4 dimensions in points.
	PageWidthPt  = 595.28
	PageHeightPt = 841.89

	// Oversample is the rasterization scale factor relative to points.
	Oversample = 2

	// RasterWidth and RasterHeight are the bitmap dimensions in pixels:
	// the page size in points times the oversample factor, rounded up.
	RasterWidth  = 1191
	RasterHeight = 1684
)
