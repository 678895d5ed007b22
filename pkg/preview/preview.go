// Package preview composes the catalog, the session form, and the template
// renderer into the ordered sequence of pages shown to the user and handed
// to the export pipeline.
package preview

import (
	"github.com/fableworks/storybook/internal/render"
	"github.com/fableworks/storybook/pkg/domain"
)

// Compose renders the full page sequence for a template and form: one cover
// view followed by one view per page template, in template order.
//
// Compose is a pure function of its inputs. The same template, form, and
// photo flag always produce the same page views, so the preview can be
// recomputed on every form change and the export pipeline sees exactly what
// the user saw.
//
// The photo overlay appears on the cover only when the include-photo flag
// is set and a photo is attached. Inner pages carry it only on odd template
// indices under the same condition, alternating left and right placement so
// consecutive photo pages do not repeat visually.
func Compose(template domain.StoryTemplate, form domain.UserForm, photoAttached bool) []domain.PageView {
	ctx := BuildContext(form)
	withPhoto := form.IncludePhoto && photoAttached

	pages := make([]domain.PageView, 0, template.PageCount())

	cover := domain.PageView{
		Index:      0,
		Kind:       domain.PageCover,
		Background: "cover:" + form.Cover,
		Heading:    render.Render(template.Title, ctx),
		ChildName:  form.ChildName,
	}
	if withPhoto {
		cover.Photo = domain.PhotoCoverAnchor
	}
	pages = append(pages, cover)

	side := domain.PhotoLeft
	for i, pt := range template.Pages {
		view := domain.PageView{
			Index:      i + 1,
			Kind:       domain.PageInner,
			Background: pt.Background,
			Heading:    render.Render(pt.Heading, ctx),
			Body:       render.Render(pt.Body, ctx),
			ChildName:  form.ChildName,
		}
		if withPhoto && i%2 == 1 {
			view.Photo = side
			if side == domain.PhotoLeft {
				side = domain.PhotoRight
			} else {
				side = domain.PhotoLeft
			}
		}
		pages = append(pages, view)
	}

	return pages
}
