package partials

import (
	"context"
	"io"

	"price_tag_app_go/services"

	"github.com/a-h/templ"
)

// Workspace is the swappable editor + sheet pair. Mode and tab changes
// replace it whole; field edits only replace the sheet.
func Workspace(snap services.WorkspaceSnapshot, sheet SheetView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div id="workspace" class="workspace">`)
		if h.err == nil {
			h.err = EditorPanel(snap).Render(ctx, w)
		}
		h.raw(`<main class="sheet-area">`)
		if h.err == nil {
			h.err = Sheet(sheet).Render(ctx, w)
		}
		h.raw(`</main></div>`)
		return h.err
	})
}
