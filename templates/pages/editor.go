package pages

import (
	"context"
	"fmt"
	"io"

	"price_tag_app_go/middleware"
	"price_tag_app_go/templates/components"
	"price_tag_app_go/templates/partials"

	"github.com/a-h/templ"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Editor is the full editor page: editor panel beside the scaled sheet
func Editor(view EditorView) templ.Component {
	return document(view, partials.Workspace(view.Snapshot, view.Sheet))
}

// Print is the print page: the sheet alone at its literal physical size
func Print(view EditorView) templ.Component {
	return document(view, partials.Sheet(view.Sheet))
}

func document(view EditorView, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		nonce := middleware.GetNonce(ctx)
		nonceAttr := ""
		if nonce != "" {
			nonceAttr = fmt.Sprintf(` nonce="%s"`, templ.EscapeString(nonce))
		}

		head := fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/css/app.css?v=%s">
<script src="%s"%s></script>
<script src="/static/js/scale.js?v=%s" defer%s></script>
</head>
<body data-target="%s" data-autoprint="%t" data-layout="%s" hx-headers="%s">
`,
			templ.EscapeString(view.Title),
			middleware.GetCSSVersion(ctx),
			htmxSrc, nonceAttr,
			middleware.GetAppJSVersion(ctx), nonceAttr,
			view.Sheet.Target, view.AutoPrint,
			templ.EscapeString(components.JSON(components.DefaultLayoutConfig())),
			templ.EscapeString(components.JSON(map[string]string{middleware.CSRFHeader: view.CSRFToken})))

		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</body>\n</html>\n")
		return err
	})
}
