package partials

import (
	"context"
	"io"

	"price_tag_app_go/middleware"
	"price_tag_app_go/services/layout"

	"github.com/a-h/templ"
)

// SheetView is everything needed to draw one composed A4 sheet
type SheetView struct {
	Composition  layout.Composition
	Background   string // shared by every tile, never modified per tile
	Target       layout.Target
	PreviewScale float64
}

// Sheet renders the composed page: the print rules for its orientation, the
// page element (scaled for preview, literal size for print) and one tile per
// grid cell
func Sheet(view SheetView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		comp := view.Composition
		style := layout.PageStyleFor(view.Target, comp.Page, view.PreviewScale)

		h.rawf(`<div id="sheet" class="sheet-viewport" data-target="%s" data-orientation="%s" data-page-width="%g" data-page-height="%g">`,
			view.Target, comp.Page.Orientation, comp.Page.SizePx.Width, comp.Page.SizePx.Height)

		h.rawf(`<style id="print-config"%s>`, nonceAttr(middleware.GetNonce(ctx)))
		h.raw(layout.PrintStylesheet(comp.Page.Orientation))
		h.raw(`</style>`)

		h.rawf(`<div class="%s page" style="%s">`, layout.PrintContainerClass, esc(style.CSS()))
		h.rawf(`<div class="tag-grid" style="grid-template-rows: repeat(%d, 1fr); grid-template-columns: repeat(%d, 1fr);">`,
			comp.Grid.Rows, comp.Grid.Cols)

		for _, cell := range comp.Cells {
			h.rawf(`<div class="tag-cell" data-cell-index="%d" data-cell-width="%g" data-cell-height="%g">`,
				cell.Index, cell.SizePx.Width, cell.SizePx.Height)
			if h.err == nil {
				h.err = PriceTag(cell.Record, view.Background, cell.TileScale()).Render(ctx, w)
			}
			h.raw(`</div>`)
		}

		h.raw(`</div></div></div>`)
		return h.err
	})
}
