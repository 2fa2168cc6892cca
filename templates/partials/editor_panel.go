package partials

import (
	"context"
	"fmt"
	"io"

	"price_tag_app_go/models"
	"price_tag_app_go/services"
	"price_tag_app_go/services/layout"

	"github.com/a-h/templ"
)

// EditorPanel renders the editing chrome: mode buttons, one tab per visible
// tag and the field form bound to the active tag. It never reaches paper.
func EditorPanel(snap services.WorkspaceSnapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.rawf(`<aside id="editor" class="%s">`, classes(layout.PreviewOnlyClass, "editor-panel"))
		h.raw(`<h2 class="editor-title">Editor de Etiquetas</h2>`)

		h.raw(`<div class="editor-modes"><label class="editor-label">Formato A4</label><div class="editor-row">`)
		for _, mode := range models.LayoutModes {
			active := ""
			if mode == snap.Mode {
				active = "is-active"
			}
			h.rawf(`<button type="button" class="%s" hx-post="/htmx/mode" hx-vals='{"mode": "%s"}' hx-target="#workspace" hx-swap="outerHTML">`,
				classes("mode-button", active), esc(string(mode)))
			h.text(mode.Label())
			h.raw(`</button>`)
		}
		h.raw(`</div></div>`)

		if count := snap.Mode.VisibleCount(); count > 1 {
			h.raw(`<div class="editor-tabs">`)
			for i := 0; i < count; i++ {
				active := ""
				if i == snap.ActiveIndex {
					active = "is-active"
				}
				h.rawf(`<button type="button" class="%s" hx-post="/htmx/active" hx-vals='{"index": "%d"}' hx-target="#workspace" hx-swap="outerHTML">ETIQ. %d</button>`,
					classes("tab-button", active), i, i+1)
			}
			h.raw(`</div>`)
		}

		record := snap.ActiveRecord()
		h.rawf(`<form class="editor-fields" hx-put="/htmx/tags/%d" hx-trigger="input changed delay:250ms" hx-target="#sheet" hx-swap="outerHTML">`,
			snap.ActiveIndex)
		for _, field := range models.TagFields {
			id := fmt.Sprintf("field-%s", field.Name)
			h.rawf(`<div class="editor-field"><label class="editor-label" for="%s">`, id)
			h.text(field.Label)
			h.raw(`</label>`)
			if field.Multiline {
				h.rawf(`<textarea id="%s" name="%s" rows="2">`, id, field.Name)
				h.text(field.Value(record))
				h.raw(`</textarea>`)
			} else {
				h.rawf(`<input id="%s" type="text" name="%s" value="%s">`, id, field.Name, esc(field.Value(record)))
			}
			h.raw(`</div>`)
		}
		h.raw(`</form>`)

		h.raw(`<div id="notices" class="notices" aria-live="polite"></div>`)
		h.raw(`<div class="editor-actions">`)
		h.raw(`<button type="button" class="print-button" data-action="print">Imprimir</button>`)
		h.raw(`<a class="action-link" href="/print" target="_blank" rel="noopener">Vista de impresión</a>`)
		h.raw(`<a class="action-link" href="/api/tags/export">Exportar XLSX</a>`)
		h.raw(`<form class="import-form" hx-post="/api/tags/import" hx-encoding="multipart/form-data" hx-target="#workspace" hx-swap="outerHTML">`)
		h.raw(`<input type="file" name="file" accept=".xlsx"><button type="submit">Importar XLSX</button></form>`)
		h.raw(`</div>`)

		h.raw(`</aside>`)
		return h.err
	})
}
