package domain

// PageKind distinguishes the cover from inner story pages.
type PageKind string

const (
	PageCover PageKind = "cover"
	PageInner PageKind = "inner"
)

// PhotoPlacement is the anchor position of the photo overlay on a page.
type PhotoPlacement string

const (
	// PhotoNone means no photo is attached to the page.
	PhotoNone PhotoPlacement = ""
	// PhotoCoverAnchor is the fixed anchor used on the cover.
	PhotoCoverAnchor PhotoPlacement = "cover"
	// PhotoLeft and PhotoRight alternate on inner pages carrying a photo.
	PhotoLeft  PhotoPlacement = "left"
	PhotoRight PhotoPlacement = "right"
)

// PageView is one fully rendered page, ready for display or rasterization.
//
// Index is stable and reproducible: the cover is always 0 and inner pages
// follow in template order, so the export pipeline can address pages
// independently.
type PageView struct {
	Index      int
	Kind       PageKind
	Background string
	Heading    string
	Body       string
	ChildName  string
	Photo      PhotoPlacement
}

// HasPhoto reports whether a photo overlay is attached to this page.
func (p PageView) HasPhoto() bool {
	return p.Photo != PhotoNone
}
